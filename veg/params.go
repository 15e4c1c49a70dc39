// Package veg implements the vegetation growth/mortality/feedback model of
// Lauzon and Murray (2018) as a set of extension points plugged into a delta
// simulator's per-timestep pipeline.
package veg

import (
	"fmt"
	"math"
)

const (
	secPerDay = 86400.
	dayPerYr  = 365.25
)

// GrowthPolicy selects between the behaviour of the archived reference code
// and the narrative description in the paper. The two differ in whether dry
// cells may establish vegetation regardless of bed change.
type GrowthPolicy int

const (
	GrowthCode GrowthPolicy = iota // dry cells always establishment-eligible
	GrowthPaper
)

func ParseGrowthPolicy(s string) (GrowthPolicy, error) {
	switch s {
	case "", "code":
		return GrowthCode, nil
	case "paper":
		return GrowthPaper, nil
	}
	return 0, fmt.Errorf(" veg.ParseGrowthPolicy: unknown growth policy %q", s)
}

// Input collects the user-supplied vegetation constants.
type Input struct {
	Enabled bool
	Policy  string // "code" or "paper"

	DRoot float64 // stem rooting depth [m]
	DStem float64 // stem diameter [m]
	K     float64 // stem density [stems/m²]
	R     float64 // logistic growth-rate constant [1/yr]

	FloodDurDays      float64 // flood duration [d]
	InterfloodDurDays float64 // interflood duration [d]

	EstDepth float64 // max depth for establishment [m]
	EstRoc   float64 // max bed change for establishment, as a fraction of DRoot
	EstInit  float64 // fraction assigned on establishment
}

// Params is the immutable-after-init parameter set: the physical constants
// plus the coefficients derived from them once.
type Params struct {
	Enabled bool
	Policy  GrowthPolicy

	DRoot, DStem, K, R        float64
	EstDepth, EstRoc, EstInit float64

	FloodDur      float64 // [s]
	InterfloodDur float64 // [s]

	Rsec float64 // growth rate [1/s]
	B    float64 // density threshold below which vegetation has no effect on flow weighting
	A    float64 // flow-resistance normalization
}

// NewParams validates the inputs and computes the derived coefficients.
func NewParams(in Input) (*Params, error) {
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"d_root", in.DRoot},
		{"d_stem", in.DStem},
		{"K", in.K},
		{"r", in.R},
		{"flood duration", in.FloodDurDays},
		{"interflood duration", in.InterfloodDurDays},
		{"establishment depth", in.EstDepth},
		{"establishment rate-of-change fraction", in.EstRoc},
		{"establishment initial fraction", in.EstInit},
	} {
		if c.v <= 0. {
			return nil, fmt.Errorf(" veg.NewParams: %s must be positive, got %g", c.name, c.v)
		}
	}
	dsK := in.DStem * in.K
	if dsK == 0. {
		return nil, fmt.Errorf(" veg.NewParams: d_stem·K must be nonzero")
	}
	pol, err := ParseGrowthPolicy(in.Policy)
	if err != nil {
		return nil, err
	}

	b := 0.7 / dsK
	// "coefficient to make vegetation have proper influence" on flow weights
	a := 0.88 * 4. / (math.Pi * in.DStem * in.DStem * in.K * ((4. / dsK) - b))

	return &Params{
		Enabled:       in.Enabled,
		Policy:        pol,
		DRoot:         in.DRoot,
		DStem:         in.DStem,
		K:             in.K,
		R:             in.R,
		EstDepth:      in.EstDepth,
		EstRoc:        in.EstRoc,
		EstInit:       in.EstInit,
		FloodDur:      in.FloodDurDays * secPerDay,
		InterfloodDur: in.InterfloodDurDays * secPerDay,
		Rsec:          in.R / (secPerDay * dayPerYr),
		B:             b,
		A:             a,
	}, nil
}
