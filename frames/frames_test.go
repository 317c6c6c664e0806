package frames

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/grayscott/field"
	"github.com/pthm-cable/grayscott/palette"
)

var testLUT = palette.LUT{
	{R: 10, A: 255},
	{R: 20, A: 255},
	{R: 30, A: 255},
	{R: 40, A: 255},
}

func TestColorsMapsConcentration(t *testing.T) {
	f := field.New(4, 4)
	f.Set(1, 1, field.Saturated)

	r := &Rasterizer{LUT: testLUT}
	cols := r.Colors(f, 0, nil)
	if len(cols) != 16 {
		t.Fatalf("expected 16 colours, got %d", len(cols))
	}
	if cols[f.Index(0, 0)].R != 10 {
		t.Fatalf("b=0 should map to first entry, got %d", cols[0].R)
	}
	if cols[f.Index(1, 1)].R != 40 {
		t.Fatalf("b=1 should map to last entry, got %d", cols[f.Index(1, 1)].R)
	}

	// One frame with cycle 1 shifts every cell by one entry.
	r.Cycle = 1
	shifted := r.Colors(f, 1, nil)
	if shifted[0].R != 20 {
		t.Fatalf("expected shifted entry 20, got %d", shifted[0].R)
	}
}

func TestRenderScales(t *testing.T) {
	f := field.New(3, 2)
	f.Set(2, 1, field.Saturated)
	r := &Rasterizer{LUT: testLUT, Scale: 2}

	pm := r.Render(f, 0)
	if pm.Width() != 6 || pm.Height() != 4 {
		t.Fatalf("expected 6x4 pixmap, got %dx%d", pm.Width(), pm.Height())
	}
	img := pm.ToImage()
	if got := img.RGBAAt(5, 3); got != (color.RGBA{R: 40, A: 255}) {
		t.Fatalf("scaled saturated cell has colour %+v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 10, A: 255}) {
		t.Fatalf("quiescent cell has colour %+v", got)
	}
}

func TestStampWritesLabel(t *testing.T) {
	f := field.New(40, 20)
	r := &Rasterizer{LUT: testLUT}
	pm := r.Render(f, 0)
	Stamp(pm, "t=1")

	img := pm.ToImage()
	white := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			if img.RGBAAt(x, y).G > 200 {
				white++
			}
		}
	}
	if white == 0 {
		t.Fatal("expected label pixels to be drawn")
	}
	if got := img.RGBAAt(39, 19); got.R != 10 {
		t.Fatalf("pixels outside the label box should be untouched, got %+v", got)
	}
}

func TestSavePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	r := &Rasterizer{LUT: testLUT}
	pm := r.Render(field.New(8, 6), 0)

	path, err := SavePNG(pm, dir, SnapshotName(42))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "frame_000042.png" {
		t.Fatalf("unexpected name %s", path)
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer fh.Close()
	img, err := png.Decode(fh)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	r := &Rasterizer{LUT: testLUT, Scale: 2}

	rec, err := NewRecorder(path, 16, 12, 30, 80)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := rec.AddFrame(r.Render(field.New(8, 6), uint64(i))); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if err := rec.AddFrame(r.Render(field.New(4, 4), 0)); err == nil {
		t.Fatal("expected error for mismatched frame size")
	}
	if rec.Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", rec.Frames())
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Size() == 0 {
		t.Fatal("video file is empty")
	}
}
