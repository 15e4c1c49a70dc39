package delta

import (
	"github.com/ctessum/sparse"
	"github.com/eghenson/coastal-veg/grid"
)

// topoDiffusion is the host's default (unvegetated) lateral sediment
// diffusion: the same cross-diffusion scheme as the vegetation override but
// with a uniform stability coefficient of one. Kept as a separate code path
// so the override can be regression-tested against it.
func (m *Model) topoDiffusion() {
	s := m.S
	nc := m.GD.Ncols

	ones := sparse.ZerosDense(s.Eta.Shape...)
	for i := range ones.Elements {
		ones.Elements[i] = 1.
	}

	for it := 0; it < m.nCrossDiff; it++ {
		qseta := sparse.ZerosDense(s.Qs.Shape...)
		for i, q := range s.Qs.Elements {
			qseta.Elements[i] = q * s.Eta.Elements[i]
		}

		a := grid.Convolve(s.Eta, m.k1)
		b := grid.Convolve(s.Qs, m.k2)
		c := grid.Convolve(qseta, m.k2)
		d := grid.Convolve(ones, m.k2)

		for i := range s.Eta.Elements {
			cf := d.Elements[i] * m.diffMult *
				(s.Qs.Elements[i]*a.Elements[i] - s.Eta.Elements[i]*b.Elements[i] + c.Elements[i])
			if s.CellType.Elements[i] == grid.CellBoundary || i < nc {
				cf = 0.
			}
			s.Eta.Elements[i] += cf
		}
	}
}
