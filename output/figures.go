package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/ctessum/sparse"
	"github.com/eghenson/coastal-veg/grid"
	"github.com/wcharczuk/go-chart/v2"
)

// writeFracPNG renders the fraction field on a white-to-green ramp.
func writeFracPNG(fp string, gd *grid.Definition, frac *sparse.DenseArray) error {
	img := image.NewRGBA(image.Rect(0, 0, gd.Ncols, gd.Nrows))
	for i := 0; i < gd.Nrows; i++ {
		for j := 0; j < gd.Ncols; j++ {
			f := frac.Get(i, j)
			if f < 0. {
				f = 0.
			} else if f > 1. {
				f = 1.
			}
			c := uint8(255. * (1. - f))
			img.Set(j, i, color.RGBA{R: c, G: 255 - uint8(120.*f), B: c, A: 255})
		}
	}
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" output.writeFracPNG: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf(" output.writeFracPNG: %w", err)
	}
	return nil
}

func writeMeanSeries(fp string, times, means []float64) error {
	days := make([]float64, len(times))
	for i, t := range times {
		days[i] = t / 86400.
	}
	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "time [d]"},
		YAxis: chart.YAxis{Name: "mean vegetation fraction"},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: days, YValues: means},
		},
	}
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" output.writeMeanSeries: %w", err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf(" output.writeMeanSeries: %w", err)
	}
	return nil
}
