package delta

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/eghenson/coastal-veg/config"
	"github.com/eghenson/coastal-veg/grid"
)

func testConfig() *config.Config {
	c := config.Default()
	c.Nrows, c.Ncols = 8, 10
	c.Timesteps = 5
	return &c
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestAttachVegetationRequiresWaterWeight(t *testing.T) {
	cfg := testConfig()
	v, err := NewVegetation(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// a host without the weight-modulation field is incompatible
	bare := &Model{S: &grid.State{}}
	if err := bare.AttachVegetation(v); !errors.Is(err, ErrIncompatibleHost) {
		t.Fatalf("expected ErrIncompatibleHost, got %v", err)
	}

	m := newTestModel(t)
	if err := m.AttachVegetation(v); err != nil {
		t.Fatalf("compatible host rejected: %v", err)
	}
}

func TestUpdateSnapshotsEtaAndRestagesDepth(t *testing.T) {
	m := newTestModel(t)
	m.HSL = 0.5
	m.S.Eta.Set(1., 3, 3) // emergent mound

	before := m.S.Eta.Copy()
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}

	for i, e := range before.Elements {
		if m.S.Eta0.Elements[i] != e {
			t.Fatalf("cell %d: eta0 = %g, want start-of-step elevation %g", i, m.S.Eta0.Elements[i], e)
		}
	}
	if d := m.S.Depth.Get(3, 3); d != 0. {
		t.Fatalf("emergent cell depth = %g, want 0", d)
	}
	if d := m.S.Depth.Get(2, 2); math.Abs(d-5.5) > 1e-12 {
		t.Fatalf("submerged cell depth = %g, want 5.5", d)
	}
}

func TestRunRecoversFromFailedTimestep(t *testing.T) {
	m := newTestModel(t)
	m.SetRouters(func(m *Model, s *grid.State) {
		panic("routing blew up")
	}, routeSedimentReference)

	err := m.Run(5)
	if err == nil {
		t.Fatal("expected the failed timestep to surface as an error")
	}
	if !strings.Contains(err.Error(), "timestep 0") {
		t.Fatalf("error lacks timestep context: %v", err)
	}
}

// The diffusion override with a stability-coefficient field of all ones must
// reduce exactly to the host's unmodified diffusion update.
func TestDefaultDiffusionMatchesOverrideWithUnitStability(t *testing.T) {
	cfg := testConfig()

	build := func() *Model {
		m, err := NewModel(cfg, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i := range m.S.Eta.Elements {
			m.S.Eta.Elements[i] = math.Sin(float64(i)) * 0.4
			m.S.Qs.Elements[i] = 0.1 + 0.05*math.Cos(float64(i))
		}
		return m
	}

	mDefault := build()
	mDefault.topoDiffusion()

	mVeg := build()
	v, err := NewVegetation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range mVeg.S.VegAlpha.Elements {
		mVeg.S.VegAlpha.Elements[i] = 1.
	}
	v.TopoDiffusion(mVeg.S, mVeg)

	for i := range mDefault.S.Eta.Elements {
		if mDefault.S.Eta.Elements[i] != mVeg.S.Eta.Elements[i] {
			t.Fatalf("cell %d: default %g != override-with-ones %g",
				i, mDefault.S.Eta.Elements[i], mVeg.S.Eta.Elements[i])
		}
	}
}

func TestVegetatedRunEndToEnd(t *testing.T) {
	cfg := testConfig()
	cfg.Vegetation = true
	cfg.SLR = 1e-9
	cfg.Dt = 86400
	cfg.H0 = 0.2 // shallow basin so cells sit in the establishment window

	m, err := NewModel(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	v, err := NewVegetation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AttachVegetation(v); err != nil {
		t.Fatal(err)
	}

	if err := m.Run(10); err != nil {
		t.Fatal(err)
	}

	grown := false
	for _, f := range m.S.VegFrac.Elements {
		if f < 0. || f > 1. {
			t.Fatalf("fraction %g out of [0,1] after run", f)
		}
		if f > 0. {
			grown = true
		}
	}
	if !grown {
		t.Fatal("no vegetation established over 10 days in a shallow basin")
	}
	if m.HSL <= 0. {
		t.Fatal("sea level did not rise across growth events")
	}
}
