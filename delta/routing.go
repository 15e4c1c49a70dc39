package delta

import "github.com/eghenson/coastal-veg/grid"

// Reference routing strategies. These stand in for the external routing
// collaborator: water routing restages flow depth against the current bed
// and sea level, sediment routing leaves the bed untouched. A full delta
// model replaces both via SetRouters; the weight-modulation contract is the
// same either way (the router reads ModWaterWeight, never writes it).

func routeWaterReference(m *Model, s *grid.State) {
	for i, e := range s.Eta.Elements {
		d := m.HSL - e
		if d < 0. {
			d = 0.
		}
		s.Depth.Elements[i] = d
	}
}

func routeSedimentReference(m *Model, s *grid.State) {}
