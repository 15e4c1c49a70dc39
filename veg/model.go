package veg

import (
	"math"

	"github.com/ctessum/sparse"
	"github.com/eghenson/coastal-veg/grid"
)

// Host is the contract the vegetation module needs from the delta simulator.
// The module is the sole writer of the vegetation fields in grid.State and
// only a reader of host-owned fields; everything else it needs is read
// through this interface, so the module can be exercised against a mock host.
type Host interface {
	DryDepth() float64            // depth below which a cell is considered dry [m]
	SLRRate() float64             // sea-level rise rate [m/s]
	RaiseSeaLevel(dh float64)     // advance the sea-level accumulator
	DiffusionMultiplier() float64 // topographic diffusion flux scale
	NCrossDiff() int              // diffusion sub-iterations per timestep
	Kernel1() *sparse.DenseArray
	Kernel2() *sparse.DenseArray
}

// Model holds the parameter set and the flood/interflood timer. All field
// state lives in the shared grid.State; the model keeps no private copies.
type Model struct {
	Par *Params

	// elapsed time since the last growth event [s]
	TimeSinceInterflood float64
}

func New(par *Params) *Model { return &Model{Par: par} }

// PreRouteWater recomputes the bank-stability coefficient and the
// water-weight modulation from the current vegetation fraction. Called by
// the host once per timestep, before water routing.
func (m *Model) PreRouteWater(s *grid.State) {
	p := m.Par
	for i, f := range s.VegFrac.Elements {
		// bank stability from vegetation density; with the fraction held in
		// [0,1] this stays in [0.001, 0.1], no clamp needed
		s.VegAlpha.Elements[i] = -0.099*f + 0.1

		// vegetation adds flow resistance only above the density threshold
		w := 1.
		if f >= p.B {
			w = 1. - p.A*math.Pi*p.DStem*p.DStem*p.K*(f-p.B)/4.
			if w < 0. {
				w = 0.
			} else if w > 1. {
				w = 1.
			}
		}
		s.ModWaterWeight.Elements[i] = w
	}
}

// PostRouteSediment applies the growth/death rules. Called by the host once
// per timestep, after sediment routing. Mortality runs every call; growth
// fires as one lump update for the whole interflood period once the timer
// reaches the flood duration, then the timer resets. The fraction clamp runs
// unconditionally, vegetation enabled or not.
func (m *Model) PostRouteSediment(s *grid.State, h Host, dt float64) {
	for i, e := range s.Eta.Elements {
		s.EtaChange.Elements[i] = e - s.Eta0.Elements[i]
	}

	if m.Par.Enabled {
		m.TimeSinceInterflood += dt

		m.mortality(s)

		if m.TimeSinceInterflood >= m.Par.FloodDur {
			m.growth(s, h)
			m.TimeSinceInterflood = 0
		}
	}

	// cannot have vegetation fraction outside [0,1]
	for i, f := range s.VegFrac.Elements {
		if f < 0. {
			s.VegFrac.Elements[i] = 0.
		} else if f > 1. {
			s.VegFrac.Elements[i] = 1.
		}
	}
}
