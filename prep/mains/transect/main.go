package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/eghenson/coastal-veg/prep"
)

func main() {
	dir := flag.String("d", ".", "setup directory holding the *_old.grd inputs")
	row := flag.Int("row", 5, "transect row to extract")
	offset := flag.Float64("ne", 0.011, "non-erodible layer offset below the bed [m]")
	flag.Parse()

	jp := func(n string) string { return filepath.Join(*dir, n) }
	in := prep.TransectFiles{
		X: jp("x_old.grd"), Y: jp("y_old.grd"), Z: jp("z_old.grd"),
		Veg: jp("veg_old.grd"), Ne: jp("ne_old.grd"),
	}
	out := prep.TransectFiles{
		X: jp("x.grd"), Y: jp("y.grd"), Z: jp("z.grd"),
		Veg: jp("veg.grd"), Ne: jp("ne.grd"),
	}
	if err := prep.ExtractTransect(in, out, *row, *offset); err != nil {
		log.Fatalln(err)
	}
}
