package delta

import (
	"fmt"
	"log"

	"github.com/ctessum/sparse"
	"github.com/eghenson/coastal-veg/config"
	"github.com/eghenson/coastal-veg/grid"
	"github.com/eghenson/coastal-veg/output"
	"github.com/eghenson/coastal-veg/veg"
	"github.com/gosuri/uiprogress"
)

// Model is the reference host: it owns the shared grid state, the sea-level
// accumulator and the per-timestep pipeline ordering. One Update is:
// snapshot eta0, pre-route hook, water routing, sediment routing,
// topographic diffusion (override or default), post-route hook.
type Model struct {
	GD *grid.Definition
	S  *grid.State

	HSL float64 // sea-level elevation [m]

	slr        float64 // sea-level rise rate [m/s]
	dt         float64 // timestep [s]
	dryDepth   float64
	nCrossDiff int
	diffMult   float64
	k1, k2     *sparse.DenseArray

	routeWater    RouterFunc
	routeSediment RouterFunc

	pre  PreRouter
	post PostRouter
	diff Diffuser

	out       *output.Writer
	saveDt    float64
	sinceSave float64

	time float64
	step int
}

// NewModel builds the reference host from configuration. The bed starts
// flat at -h0 below sea level, the domain perimeter is closed boundary and
// the routing strategies are the reference stand-ins until replaced with
// SetRouters.
func NewModel(cfg *config.Config, out *output.Writer) (*Model, error) {
	gd, err := grid.NewDefinition(cfg.Nrows, cfg.Ncols, cfg.CellSize)
	if err != nil {
		return nil, fmt.Errorf(" delta.NewModel: %w", err)
	}
	s := grid.NewState(gd)
	for i := 0; i < gd.Nrows; i++ {
		for j := 0; j < gd.Ncols; j++ {
			s.Eta.Set(-cfg.H0, i, j)
			s.Depth.Set(cfg.H0, i, j)
			if i == 0 || i == gd.Nrows-1 || j == 0 || j == gd.Ncols-1 {
				s.CellType.Set(grid.CellBoundary, i, j)
			}
		}
	}
	copy(s.Eta0.Elements, s.Eta.Elements)

	return &Model{
		GD:            gd,
		S:             s,
		slr:           cfg.SLR,
		dt:            cfg.Dt,
		dryDepth:      cfg.DryDepth,
		nCrossDiff:    cfg.NCrossDiff,
		diffMult:      cfg.Dt / float64(cfg.NCrossDiff) * cfg.Alpha * 0.5 / (cfg.CellSize * cfg.CellSize),
		k1:            grid.Kernel1(),
		k2:            grid.Kernel2(),
		routeWater:    routeWaterReference,
		routeSediment: routeSedimentReference,
		out:           out,
		saveDt:        cfg.SaveDt,
	}, nil
}

// veg.Host implementation; the vegetation module reads host scalars through
// these and nothing else.
func (m *Model) DryDepth() float64            { return m.dryDepth }
func (m *Model) SLRRate() float64             { return m.slr }
func (m *Model) RaiseSeaLevel(dh float64)     { m.HSL += dh }
func (m *Model) DiffusionMultiplier() float64 { return m.diffMult }
func (m *Model) NCrossDiff() int              { return m.nCrossDiff }
func (m *Model) Kernel1() *sparse.DenseArray  { return m.k1 }
func (m *Model) Kernel2() *sparse.DenseArray  { return m.k2 }

// SupportsWaterWeight reports whether the host carries the water-weight
// modulation field the vegetation module writes to.
func (m *Model) SupportsWaterWeight() bool {
	return m.S != nil && m.S.ModWaterWeight != nil
}

// AttachVegetation injects the vegetation module at all three extension
// points. It fails before any timestep runs when the host lacks the
// water-weight capability.
func (m *Model) AttachVegetation(v *veg.Model) error {
	if !m.SupportsWaterWeight() {
		return ErrIncompatibleHost
	}
	m.pre, m.post, m.diff = v, v, v
	return nil
}

// SetRouters replaces the stand-in routing strategies.
func (m *Model) SetRouters(water, sediment RouterFunc) {
	m.routeWater, m.routeSediment = water, sediment
}

// Update advances the model one timestep. A panic inside the step is
// recovered and returned as an error so the run loop can still finalize.
func (m *Model) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(" delta.Update: timestep %d: %v", m.step, r)
		}
	}()

	copy(m.S.Eta0.Elements, m.S.Eta.Elements)

	if m.pre != nil {
		m.pre.PreRouteWater(m.S)
	}
	m.routeWater(m, m.S)
	m.routeSediment(m, m.S)
	if m.diff != nil {
		m.diff.TopoDiffusion(m.S, m)
	} else {
		m.topoDiffusion()
	}
	if m.post != nil {
		m.post.PostRouteSediment(m.S, m, m.dt)
	}

	m.time += m.dt
	m.step++

	if m.out != nil {
		m.sinceSave += m.dt
		if m.sinceSave >= m.saveDt {
			m.sinceSave = 0
			if werr := m.out.Save(m.time, m.S); werr != nil {
				return fmt.Errorf(" delta.Update: timestep %d: %w", m.step, werr)
			}
		}
	}
	return nil
}

// Run executes nsteps timesteps sequentially. On a failed step it logs the
// failure with context, stops, and still finalizes output so completed work
// is flushed.
func (m *Model) Run(nsteps int) error {
	uiprogress.Start()
	bar := uiprogress.AddBar(nsteps).AppendCompleted().PrependElapsed()

	var runErr error
	for i := 0; i < nsteps; i++ {
		if err := m.Update(); err != nil {
			log.Printf(" delta.Run: aborting at timestep %d (t = %.0f s): %v", m.step, m.time, err)
			runErr = err
			break
		}
		bar.Incr()
	}
	uiprogress.Stop()

	if m.out != nil {
		if err := m.out.Finalize(); err != nil {
			log.Printf(" delta.Run: finalize: %v", err)
			if runErr == nil {
				runErr = err
			}
		}
	}
	return runErr
}

// Time returns the elapsed model time [s].
func (m *Model) Time() float64 { return m.time }
