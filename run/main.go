package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/eghenson/coastal-veg/config"
	"github.com/eghenson/coastal-veg/delta"
	"github.com/eghenson/coastal-veg/grid"
	"github.com/eghenson/coastal-veg/output"
	"github.com/maseology/mmio"
)

func main() {
	cfgfp := flag.String("c", "vegetation.yml", "run configuration file")
	flag.Parse()

	fmt.Println("")
	tt := mmio.NewTimer()

	cfg, err := config.Load(*cfgfp)
	if err != nil {
		log.Fatalln(err)
	}

	gd, err := grid.NewDefinition(cfg.Nrows, cfg.Ncols, cfg.CellSize)
	if err != nil {
		log.Fatalln(err)
	}
	out, err := output.NewWriter(cfg.OutDir, gd, cfg.SaveVegFracFigs)
	if err != nil {
		log.Fatalln(err)
	}

	mdl, err := delta.NewModel(cfg, out)
	if err != nil {
		log.Fatalln(err)
	}
	v, err := delta.NewVegetation(cfg)
	if err != nil {
		log.Fatalln(err)
	}
	if err := mdl.AttachVegetation(v); err != nil {
		log.Fatalln(err)
	}
	tt.Print("domain build complete")

	fmt.Printf("\n running %d timesteps (dt = %.0f s)..\n\n", cfg.Timesteps, cfg.Dt)
	if err := mdl.Run(cfg.Timesteps); err != nil {
		log.Fatalln(err)
	}
	tt.Lap("run complete")
}
