package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eghenson/coastal-veg/grid"
)

func TestSaveWritesSnapshots(t *testing.T) {
	gd, err := grid.NewDefinition(4, 6, 50.)
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(t.TempDir(), "out")
	w, err := NewWriter(dir, gd, false)
	if err != nil {
		t.Fatal(err)
	}

	s := grid.NewState(gd)
	s.VegFrac.Set(0.5, 2, 3)
	if err := w.Save(86400., s); err != nil {
		t.Fatal(err)
	}
	if err := w.Save(172800., s); err != nil {
		t.Fatal(err)
	}

	if len(w.frames) != 2 || len(w.times) != 2 {
		t.Fatalf("accumulated %d frames / %d times, want 2 / 2", len(w.frames), len(w.times))
	}
	// frames are copies, not aliases into the live state
	s.VegFrac.Set(0.9, 2, 3)
	if w.frames[0].Get(2, 3) != 0.5 {
		t.Fatalf("saved frame aliases the live field")
	}

	fi, err := os.Stat(filepath.Join(dir, "veg_frac_00000.bil"))
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() != int64(4*gd.Ncells()) {
		t.Fatalf("snapshot is %d bytes, want %d (float32 per cell)", fi.Size(), 4*gd.Ncells())
	}
}

func TestWriteFloats32(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "f.bil")
	if err := writeFloats32(fp, []float64{0., 0.5, 1.}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fp)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 12 {
		t.Fatalf("wrote %d bytes, want 12", len(b))
	}
	// 0.5 is exact in float32, little-endian 0x3f000000
	if b[4] != 0x00 || b[5] != 0x00 || b[6] != 0x00 || b[7] != 0x3f {
		t.Fatalf("unexpected encoding of 0.5: % x", b[4:8])
	}
}
