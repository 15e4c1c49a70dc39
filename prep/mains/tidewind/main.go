package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/eghenson/coastal-veg/prep"
)

func main() {
	dir := flag.String("d", ".", "output directory")
	speed := flag.Float64("u", 10., "wind speed [m/s]")
	direction := flag.Float64("dir", 0., "wind direction [deg]")
	amp := flag.Float64("a", 1.5, "tide amplitude [m]")
	flag.Parse()

	if err := prep.WriteWindSeries(filepath.Join(*dir, "wind.txt"), prep.SecPerYear, prep.WindStep, *speed, *direction); err != nil {
		log.Fatalln(err)
	}
	if err := prep.WriteTideSeries(filepath.Join(*dir, "tide.txt"), prep.SecPerYear, prep.TideStep, *amp, prep.SemiDiurnalPeriod); err != nil {
		log.Fatalln(err)
	}
}
