package delta

import (
	"github.com/eghenson/coastal-veg/config"
	"github.com/eghenson/coastal-veg/veg"
)

// NewVegetation builds the vegetation module from run configuration. The
// module is built whether or not vegetation is enabled: with it disabled the
// growth/mortality block is skipped and the weights stay at one, matching
// the reference model.
func NewVegetation(cfg *config.Config) (*veg.Model, error) {
	par, err := veg.NewParams(veg.Input{
		Enabled:           cfg.Vegetation,
		Policy:            cfg.GrowthPolicy,
		DRoot:             cfg.PVegDRoot,
		DStem:             cfg.PVegDStem,
		K:                 cfg.PVegK,
		R:                 cfg.PVegR,
		FloodDurDays:      cfg.PVegEstFloodDur,
		InterfloodDurDays: cfg.PVegEstInterDur,
		EstDepth:          cfg.PVegEstDepth,
		EstRoc:            cfg.PVegEstRoc,
		EstInit:           cfg.PVegEstInit,
	})
	if err != nil {
		return nil, err
	}
	return veg.New(par), nil
}
