// Package output saves the vegetation fraction as a time-indexed grid
// variable (NetCDF plus per-save float32 snapshots) and, optionally,
// figures.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/eghenson/coastal-veg/grid"
	"github.com/maseology/mmio"
	"gonum.org/v1/gonum/floats"
)

type Writer struct {
	dir   string
	figs  bool
	gd    *grid.Definition
	times []float64
	// saved veg_frac frames, one per save interval
	frames []*sparse.DenseArray
}

func NewWriter(dir string, gd *grid.Definition, saveFigs bool) (*Writer, error) {
	mmio.MakeDir(dir)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf(" output.NewWriter: %w", err)
	}
	return &Writer{dir: dir, figs: saveFigs, gd: gd}, nil
}

// Save records the current vegetation fraction field at model time t [s].
func (w *Writer) Save(t float64, s *grid.State) error {
	k := len(w.times)
	w.times = append(w.times, t)
	w.frames = append(w.frames, s.VegFrac.Copy())

	if err := writeFloats32(filepath.Join(w.dir, fmt.Sprintf("veg_frac_%05d.bil", k)), s.VegFrac.Elements); err != nil {
		return err
	}
	if w.figs {
		if err := writeFracPNG(filepath.Join(w.dir, fmt.Sprintf("veg_frac_%05d.png", k)), w.gd, s.VegFrac); err != nil {
			return err
		}
	}
	return nil
}

// Finalize writes the accumulated frames to veg_frac.nc and, when figures
// are enabled, a mean-fraction time-series chart.
func (w *Writer) Finalize() error {
	if len(w.frames) == 0 {
		return nil
	}
	if err := w.writeNetCDF(filepath.Join(w.dir, "veg_frac.nc")); err != nil {
		return err
	}
	if w.figs {
		means := make([]float64, len(w.frames))
		for i, f := range w.frames {
			means[i] = floats.Sum(f.Elements) / float64(len(f.Elements))
		}
		if err := writeMeanSeries(filepath.Join(w.dir, "veg_frac_mean.png"), w.times, means); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeNetCDF(fp string) error {
	nt, nr, nc := len(w.frames), w.gd.Nrows, w.gd.Ncols

	h := cdf.NewHeader([]string{"time", "x", "y"}, []int{nt, nr, nc})
	h.AddVariable("time", []string{"time"}, []float32{})
	h.AddVariable("veg_frac", []string{"time", "x", "y"}, []float32{})
	h.Define()

	ff, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" output.writeNetCDF: %w", err)
	}
	defer ff.Close()
	f, err := cdf.Create(ff, h)
	if err != nil {
		return fmt.Errorf(" output.writeNetCDF: %w", err)
	}

	t32 := make([]float32, nt)
	for i, t := range w.times {
		t32[i] = float32(t)
	}
	tw := f.Writer("time", []int{0}, f.Header.Lengths("time"))
	if _, err := tw.Write(t32); err != nil {
		return fmt.Errorf(" output.writeNetCDF: time: %w", err)
	}

	v32 := make([]float32, nt*nr*nc)
	for k, frame := range w.frames {
		for i, v := range frame.Elements {
			v32[k*nr*nc+i] = float32(v)
		}
	}
	vw := f.Writer("veg_frac", []int{0, 0, 0}, f.Header.Lengths("veg_frac"))
	if _, err := vw.Write(v32); err != nil {
		return fmt.Errorf(" output.writeNetCDF: veg_frac: %w", err)
	}
	return nil
}
