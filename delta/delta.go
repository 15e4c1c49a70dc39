// Package delta carries the host-simulator side of the vegetation coupling:
// the pipeline extension points, a reference host that satisfies them, and
// the sequential run loop. The routing numerics of a full delta model are an
// external collaborator; the reference host ships injectable stand-in
// routing strategies so the pipeline is runnable and testable end to end.
package delta

import (
	"errors"

	"github.com/eghenson/coastal-veg/grid"
	"github.com/eghenson/coastal-veg/veg"
)

// ErrIncompatibleHost is returned when a vegetation module is attached to a
// host that does not expose the water-weight modulation field.
var ErrIncompatibleHost = errors.New("delta: host does not expose water-weight modulation")

// Pipeline extension points, injected at construction. The vegetation
// module implements all three; a host with none attached runs its default
// behaviour.
type (
	// PreRouter runs before water routing each timestep.
	PreRouter interface {
		PreRouteWater(*grid.State)
	}
	// PostRouter runs after sediment routing each timestep.
	PostRouter interface {
		PostRouteSediment(*grid.State, veg.Host, float64)
	}
	// Diffuser replaces the default topographic diffusion step.
	Diffuser interface {
		TopoDiffusion(*grid.State, veg.Host)
	}
)

// RouterFunc is a routing strategy invoked by the host within a timestep.
type RouterFunc func(m *Model, s *grid.State)
