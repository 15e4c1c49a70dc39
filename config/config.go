// Package config reads the YAML run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// vegetation
	Vegetation      bool    `yaml:"vegetation"`
	SaveVegFracFigs bool    `yaml:"save_veg_frac_figs"`
	GrowthPolicy    string  `yaml:"growth_policy"`
	PVegDRoot       float64 `yaml:"p_veg_d_root"`       // stem rooting depth [m]
	PVegDStem       float64 `yaml:"p_veg_d_stem"`       // stem diameter [m]
	PVegK           float64 `yaml:"p_veg_K"`            // stem density [stems/m²]
	PVegR           float64 `yaml:"p_veg_r"`            // growth rate [1/yr]
	PVegEstFloodDur float64 `yaml:"p_veg_est_flood_dur"` // flood duration [d]
	PVegEstInterDur float64 `yaml:"p_veg_est_inter_dur"` // interflood duration [d]
	PVegEstDepth    float64 `yaml:"p_veg_est_depth"`    // max depth to establish [m]
	PVegEstRoc      float64 `yaml:"p_veg_est_roc"`      // max bed change to establish, fraction of d_root
	PVegEstInit     float64 `yaml:"p_veg_est_init"`     // initial established fraction

	// host domain
	Nrows      int     `yaml:"nrows"`
	Ncols      int     `yaml:"ncols"`
	CellSize   float64 `yaml:"cell_size"` // [m]
	H0         float64 `yaml:"h0"`        // initial basin depth [m]
	Dt         float64 `yaml:"dt"`        // timestep [s]
	DryDepth   float64 `yaml:"dry_depth"` // [m]
	SLR        float64 `yaml:"slr"`       // sea-level rise rate [m/s]
	NCrossDiff int     `yaml:"n_crossdiff"`
	Alpha      float64 `yaml:"alpha"` // topographic diffusion coefficient

	// output
	Timesteps int     `yaml:"timesteps"`
	SaveDt    float64 `yaml:"save_dt"` // save interval [s]
	OutDir    string  `yaml:"out_dir"`
}

// Default returns the configuration with every option at its default value.
func Default() Config {
	return Config{
		GrowthPolicy:    "code",
		PVegDRoot:       0.20,
		PVegDStem:       0.06,
		PVegK:           800,
		PVegR:           1,
		PVegEstFloodDur: 3,
		PVegEstInterDur: 100,
		PVegEstDepth:    0.5,
		PVegEstRoc:      0.01,
		PVegEstInit:     0.05,

		Nrows:      120,
		Ncols:      240,
		CellSize:   50,
		H0:         5,
		Dt:         25000,
		DryDepth:   0.1,
		NCrossDiff: 10,
		Alpha:      0.1,

		Timesteps: 100,
		SaveDt:    86400,
		OutDir:    "veg_out",
	}
}

// Load overlays the YAML file at fp on the defaults and validates.
func Load(fp string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf(" config.Load: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf(" config.Load: %s: %w", fp, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	pos := func(name string, v float64) error {
		if v <= 0. {
			return fmt.Errorf(" config.Validate: %s must be positive, got %g", name, v)
		}
		return nil
	}
	for _, chk := range []struct {
		name string
		v    float64
	}{
		{"nrows", float64(c.Nrows)},
		{"ncols", float64(c.Ncols)},
		{"cell_size", c.CellSize},
		{"dt", c.Dt},
		{"dry_depth", c.DryDepth},
		{"n_crossdiff", float64(c.NCrossDiff)},
		{"alpha", c.Alpha},
		{"timesteps", float64(c.Timesteps)},
		{"save_dt", c.SaveDt},
	} {
		if err := pos(chk.name, chk.v); err != nil {
			return err
		}
	}
	if c.SLR < 0. {
		return fmt.Errorf(" config.Validate: slr must be non-negative, got %g", c.SLR)
	}
	switch c.GrowthPolicy {
	case "", "code", "paper":
	default:
		return fmt.Errorf(" config.Validate: unknown growth_policy %q", c.GrowthPolicy)
	}
	return nil
}
