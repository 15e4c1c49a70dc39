package prep

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// TransectFiles names the five grid files of one setup: coordinates, bed
// elevation, vegetation cover and non-erodible layer.
type TransectFiles struct {
	X, Y, Z, Veg, Ne string
}

// ExtractTransect slices row irow from the x, y, z and veg grids and writes
// each as a single-column file. The non-erodible layer is re-derived from
// the sliced bed, ne = z - bedOffset; the ne input grid is read only to
// check that the five grids agree in shape.
func ExtractTransect(in, out TransectFiles, irow int, bedOffset float64) error {
	x, err := readGridRow(in.X, irow)
	if err != nil {
		return err
	}
	y, err := readGridRow(in.Y, irow)
	if err != nil {
		return err
	}
	z, err := readGridRow(in.Z, irow)
	if err != nil {
		return err
	}
	vg, err := readGridRow(in.Veg, irow)
	if err != nil {
		return err
	}
	ne, err := readGridRow(in.Ne, irow)
	if err != nil {
		return err
	}
	for _, v := range [][]float64{y, z, vg, ne} {
		if len(v) != len(x) {
			return fmt.Errorf(" prep.ExtractTransect: grid widths disagree (%d vs %d)", len(v), len(x))
		}
	}

	nez := make([]float64, len(z))
	for i, v := range z {
		nez[i] = v - bedOffset
	}

	for _, w := range []struct {
		fp string
		v  []float64
	}{
		{out.X, x}, {out.Y, y}, {out.Z, z}, {out.Veg, vg}, {out.Ne, nez},
	} {
		if err := writeColumn(w.fp, w.v); err != nil {
			return err
		}
	}
	return nil
}

func readGridRow(fp string, irow int) ([]float64, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf(" prep.readGridRow: %s: %v", fp, err)
	}
	rows := make([][]float64, 0, len(lns))
	for _, ln := range lns {
		flds := strings.Fields(ln)
		if len(flds) == 0 {
			continue
		}
		r := make([]float64, len(flds))
		for i, f := range flds {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf(" prep.readGridRow: %s: %v", fp, err)
			}
			r[i] = v
		}
		rows = append(rows, r)
	}
	if irow < 0 || irow >= len(rows) {
		return nil, fmt.Errorf(" prep.readGridRow: %s: row %d out of range (%d rows)", fp, irow, len(rows))
	}
	return rows[irow], nil
}

func writeColumn(fp string, v []float64) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf(" prep.writeColumn: %v", err)
	}
	defer tw.Close()
	for _, x := range v {
		tw.WriteLine(strconv.FormatFloat(x, 'f', -1, 64))
	}
	return nil
}
