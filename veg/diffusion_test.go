package veg

import (
	"math"
	"testing"

	"github.com/eghenson/coastal-veg/grid"
)

func rippleState(t *testing.T) *grid.State {
	t.Helper()
	s := newTestState(t, 6, 6)
	for i := range s.Eta.Elements {
		s.Eta.Elements[i] = math.Sin(float64(i)) * 0.5
		s.Qs.Elements[i] = 0.2 + 0.1*math.Cos(float64(i))
	}
	// closed perimeter
	nr, nc := s.GD.Nrows, s.GD.Ncols
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if i == 0 || i == nr-1 || j == 0 || j == nc-1 {
				s.CellType.Set(grid.CellBoundary, i, j)
			}
		}
	}
	return s
}

func TestTopoDiffusionLeavesBoundariesAlone(t *testing.T) {
	m := newTestModel(t, true)
	s := rippleState(t)
	h := newTestHost()
	h.n = 3

	eta0 := s.Eta.Copy()
	m.TopoDiffusion(s, h)

	nr, nc := s.GD.Nrows, s.GD.Ncols
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			onBoundary := s.CellType.Get(i, j) == grid.CellBoundary || i == 0
			if onBoundary && s.Eta.Get(i, j) != eta0.Get(i, j) {
				t.Fatalf("boundary cell (%d,%d) diffused: %g -> %g", i, j, eta0.Get(i, j), s.Eta.Get(i, j))
			}
		}
	}

	// interior must actually move, or the test proves nothing
	moved := false
	for i := 1; i < nr-1 && !moved; i++ {
		for j := 1; j < nc-1; j++ {
			if s.Eta.Get(i, j) != eta0.Get(i, j) {
				moved = true
				break
			}
		}
	}
	if !moved {
		t.Fatal("no interior cell changed under diffusion")
	}
}

// Vegetation suppresses diffusive bank erosion in proportion to local
// stability: with a single sub-iteration, a uniformly scaled stability field
// scales the bed change by the same factor.
func TestTopoDiffusionScalesWithStability(t *testing.T) {
	m := newTestModel(t, true)
	h := newTestHost()
	h.n = 1

	sLo, sHi := rippleState(t), rippleState(t)
	for i := range sLo.VegAlpha.Elements {
		sLo.VegAlpha.Elements[i] = 0.001 // dense vegetation
		sHi.VegAlpha.Elements[i] = 0.1   // bare bed
	}
	etaRef := sLo.Eta.Copy()

	m.TopoDiffusion(sLo, h)
	m.TopoDiffusion(sHi, h)

	for i := range etaRef.Elements {
		dLo := sLo.Eta.Elements[i] - etaRef.Elements[i]
		dHi := sHi.Eta.Elements[i] - etaRef.Elements[i]
		if math.Abs(dHi-100.*dLo) > 1e-12 {
			t.Fatalf("cell %d: change %g under dense vegetation vs %g bare; want 100x ratio", i, dLo, dHi)
		}
	}
}
