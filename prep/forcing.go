// Package prep builds model input files: synthetic wind and tide forcing
// series and transects sliced from 2-D setup grids.
package prep

import (
	"fmt"
	"math"

	"github.com/maseology/mmio"
)

const (
	SecPerYear = 31536000 // forcing-series length [s]
	WindStep   = 3600     // wind-record interval [s]
	TideStep   = 600      // tide-record interval [s]

	// M2 semi-diurnal tidal period [s]
	SemiDiurnalPeriod = 44712.
)

// WriteWindSeries writes a three-column wind-forcing file: time [s] at a
// fixed step, wind speed [m/s] and direction [deg].
func WriteWindSeries(fp string, duration, step int, speed, direction float64) error {
	if step <= 0 || duration <= 0 {
		return fmt.Errorf(" prep.WriteWindSeries: duration and step must be positive")
	}
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf(" prep.WriteWindSeries: %v", err)
	}
	defer tw.Close()
	for t := 0; t < duration; t += step {
		tw.WriteLine(fmt.Sprintf("%d %f %f", t, speed, direction))
	}
	return nil
}

// WriteTideSeries writes a two-column tide-forcing file: time [s] at a fixed
// step and harmonic tide height amplitude*sin(2πt/period).
func WriteTideSeries(fp string, duration, step int, amplitude, period float64) error {
	if step <= 0 || duration <= 0 {
		return fmt.Errorf(" prep.WriteTideSeries: duration and step must be positive")
	}
	if period <= 0. {
		return fmt.Errorf(" prep.WriteTideSeries: period must be positive, got %g", period)
	}
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf(" prep.WriteTideSeries: %v", err)
	}
	defer tw.Close()
	for t := 0; t < duration; t += step {
		h := amplitude * math.Sin(2.*math.Pi*float64(t)/period)
		tw.WriteLine(fmt.Sprintf("%d %f", t, h))
	}
	return nil
}
