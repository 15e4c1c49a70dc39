package veg

import "github.com/eghenson/coastal-veg/grid"

// growth establishes vegetation on eligible bare cells and then advances
// every vegetated cell (newly established ones included) by one explicit
// Euler step of logistic growth sized for the entire interflood duration.
//
// Establishment requires zero existing fraction plus, under the paper
// policy, depth below the establishment threshold and bed change below the
// rate-of-change threshold. The code policy additionally admits any dry
// cell, regardless of bed change. The bed-change comparison is signed, as in
// the reference: erosion of any magnitude never blocks establishment.
func (m *Model) growth(s *grid.State, h Host) {
	p := m.Par
	rocThresh := p.EstRoc * p.DRoot
	dry := h.DryDepth()

	for i, f := range s.VegFrac.Elements {
		if f == 0. {
			d := s.Depth.Elements[i]
			valid := d < p.EstDepth && s.EtaChange.Elements[i] < rocThresh
			if p.Policy == GrowthCode {
				valid = valid || d < dry
			}
			if valid {
				f = p.EstInit
			}
		}

		// one lump logistic step for the whole interflood; bare cells stay
		// bare since the increment scales with f
		f += p.InterfloodDur * (1. - f) * p.Rsec * f
		s.VegFrac.Elements[i] = f
	}

	// the interflood "off" time is accounted for here, as one lump sea-level
	// update; it must not also be scaled by an intermittency factor
	h.RaiseSeaLevel(h.SLRRate() * p.InterfloodDur)
}
