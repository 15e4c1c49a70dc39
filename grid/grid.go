// Package grid holds the 2-D raster state shared between the delta
// simulator and the vegetation module.
package grid

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// cell-type codes
const (
	CellBoundary = -2. // closed domain boundary, no flux
	CellOcean    = 0.
	CellChannel  = 1.
	CellLand     = 2.
)

// Definition describes the raster domain: a uniform rectangular grid of
// Nrows x Ncols cells of size CellSize.
type Definition struct {
	Nrows, Ncols int
	CellSize     float64 // [m]
}

func NewDefinition(nrows, ncols int, cellsize float64) (*Definition, error) {
	if nrows < 3 || ncols < 3 {
		return nil, fmt.Errorf(" grid.NewDefinition: domain must be at least 3x3, got %dx%d", nrows, ncols)
	}
	if cellsize <= 0. {
		return nil, fmt.Errorf(" grid.NewDefinition: cell size must be positive, got %g", cellsize)
	}
	return &Definition{Nrows: nrows, Ncols: ncols, CellSize: cellsize}, nil
}

func (gd *Definition) Ncells() int { return gd.Nrows * gd.Ncols }

// State is the per-cell field container. The host simulator owns it; the
// vegetation module reads and mutates designated fields in place. Eta, Eta0,
// Depth, CellType and Qs are host fields; VegFrac, VegAlpha, EtaChange and
// ModWaterWeight are written only by the vegetation module.
type State struct {
	GD *Definition

	Eta       *sparse.DenseArray // bed elevation [m]
	Eta0      *sparse.DenseArray // bed elevation at the start of the current timestep [m]
	EtaChange *sparse.DenseArray // Eta - Eta0 [m]
	Depth     *sparse.DenseArray // water depth [m]
	Qs        *sparse.DenseArray // sediment flux
	CellType  *sparse.DenseArray // cell classification (see cell-type codes)

	VegFrac        *sparse.DenseArray // areal vegetation coverage, in [0,1]
	VegAlpha       *sparse.DenseArray // bank-stability coefficient
	ModWaterWeight *sparse.DenseArray // flow-routing weight modulation, in [0,1]
}

// NewState builds a zero-filled State. The bank-stability coefficient and
// the water-weight modulation start at one (no vegetation effect).
func NewState(gd *Definition) *State {
	nr, nc := gd.Nrows, gd.Ncols
	s := &State{
		GD:             gd,
		Eta:            sparse.ZerosDense(nr, nc),
		Eta0:           sparse.ZerosDense(nr, nc),
		EtaChange:      sparse.ZerosDense(nr, nc),
		Depth:          sparse.ZerosDense(nr, nc),
		Qs:             sparse.ZerosDense(nr, nc),
		CellType:       sparse.ZerosDense(nr, nc),
		VegFrac:        sparse.ZerosDense(nr, nc),
		VegAlpha:       sparse.ZerosDense(nr, nc),
		ModWaterWeight: sparse.ZerosDense(nr, nc),
	}
	for i := range s.VegAlpha.Elements {
		s.VegAlpha.Elements[i] = 1.
		s.ModWaterWeight.Elements[i] = 1.
	}
	return s
}
