package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestCosineEndpoints(t *testing.T) {
	lut := DefaultCosine.Build(255)
	if len(lut) != 255 {
		t.Fatalf("expected 255 entries, got %d", len(lut))
	}
	// t=0: offset + amplitude*cos(2π*phase)
	// red: 0.458 + 0.328*cos(2π*1.468) ≈ 0.1366
	if r := lut[0].R; r < 33 || r > 37 {
		t.Fatalf("unexpected red at t=0: %d", r)
	}
	for i, c := range lut {
		if c.A != 255 {
			t.Fatalf("entry %d not opaque", i)
		}
	}
}

func TestLookupWrapsAndCycles(t *testing.T) {
	lut := LUT{
		{R: 0, A: 255},
		{R: 1, A: 255},
		{R: 2, A: 255},
		{R: 3, A: 255},
	}
	if c := lut.Lookup(0, 0, 0.2); c.R != 0 {
		t.Fatalf("t=0 frame=0: got %d", c.R)
	}
	if c := lut.Lookup(1, 0, 0.2); c.R != 3 {
		t.Fatalf("t=1 frame=0: got %d", c.R)
	}
	// 3*1 + 5*0.2 = 4 -> wraps to 0
	if c := lut.Lookup(1, 5, 0.2); c.R != 0 {
		t.Fatalf("expected wrap to 0, got %d", c.R)
	}
	// negative concentrations still land inside the table
	if c := lut.Lookup(-0.5, 0, 0); c.R != 2 {
		t.Fatalf("expected negative index to wrap to 2, got %d", c.R)
	}
}

func TestShadeAddsVerticalTint(t *testing.T) {
	if v := Shade(0.25, 50, 100, 0.12); v != 0.25+0.06 {
		t.Fatalf("unexpected shade %g", v)
	}
	if v := Shade(0.25, 0, 100, 0.12); v != 0.25 {
		t.Fatalf("top row should be untinted, got %g", v)
	}
}

func TestNewPalettes(t *testing.T) {
	for _, name := range []string{"cosine", "hue", "viridis", "Inferno", "magma", "plasma", "turbo", "cividis"} {
		lut, err := New(name, 64, DefaultCosine)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(lut) != 64 {
			t.Fatalf("%s: expected 64 entries, got %d", name, len(lut))
		}
	}
	if _, err := New("sepia", 64, DefaultCosine); !errors.Is(err, ErrUnknownPalette) {
		t.Fatalf("expected ErrUnknownPalette, got %v", err)
	}
	if _, err := New("cosine", 1, DefaultCosine); err == nil {
		t.Fatal("expected error for size < 2")
	}
}

func TestHueStartsRed(t *testing.T) {
	lut := Hue(12)
	if lut[0] != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("hue 0 should be pure red, got %+v", lut[0])
	}
}
