package veg

import (
	"math"

	"github.com/eghenson/coastal-veg/grid"
)

// mortality kills or thins vegetation cell by cell. Rule order matters and
// follows the reference implementation exactly: the two hard-zero rules
// first, then the proportional reduction computed from the already-updated
// fraction, applied only where 0 < |Δη| < d_root. A cell zeroed for depth
// is re-assigned by the proportional rule when its |Δη| falls in the partial
// band, but the product starts from zero so the cell stays dead.
func (m *Model) mortality(s *grid.State) {
	dr := m.Par.DRoot
	for i, f := range s.VegFrac.Elements {
		de := math.Abs(s.EtaChange.Elements[i])

		// bed change beyond the rooting depth kills outright
		if de >= dr {
			f = 0.
		}
		// drowned cells lose vegetation regardless of bed change
		if s.Depth.Elements[i] > 1. {
			f = 0.
		}
		// partial, non-destructive change thins proportionally; Δη = 0
		// leaves the fraction untouched
		if de > 0. && de < dr {
			f *= 1. - de/dr
		}

		s.VegFrac.Elements[i] = f
	}
}
