package veg

import (
	"github.com/ctessum/sparse"
	"github.com/eghenson/coastal-veg/grid"
)

// TopoDiffusion replaces the host's lateral sediment-diffusion step. It is
// the host's cross-diffusion scheme with one change: the flux is scaled by
// the convolved bank-stability coefficient, so vegetation suppresses
// diffusive bank erosion in proportion to local stability. With the
// coefficient field all ones this reduces to the host's default update.
func (m *Model) TopoDiffusion(s *grid.State, h Host) {
	k1, k2 := h.Kernel1(), h.Kernel2()
	mult := h.DiffusionMultiplier()
	nc := s.GD.Ncols

	for it := 0; it < h.NCrossDiff(); it++ {
		qseta := sparse.ZerosDense(s.Qs.Shape...)
		for i, q := range s.Qs.Elements {
			qseta.Elements[i] = q * s.Eta.Elements[i]
		}

		a := grid.Convolve(s.Eta, k1)
		b := grid.Convolve(s.Qs, k2)
		c := grid.Convolve(qseta, k2)
		d := grid.Convolve(s.VegAlpha, k2)

		for i := range s.Eta.Elements {
			cf := d.Elements[i] * mult *
				(s.Qs.Elements[i]*a.Elements[i] - s.Eta.Elements[i]*b.Elements[i] + c.Elements[i])

			// no diffusion at closed boundaries, nor across the inlet row
			if s.CellType.Elements[i] == grid.CellBoundary || i < nc {
				cf = 0.
			}
			s.Eta.Elements[i] += cf
		}
	}
}
