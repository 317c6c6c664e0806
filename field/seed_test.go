package field

import (
	"math"
	"testing"
)

func countSaturated(f *Field) int {
	n := 0
	for _, c := range f.Cells() {
		if c == Saturated {
			n++
		}
	}
	return n
}

func TestInjectWritesCenteredSquare(t *testing.T) {
	f := New(10, 10)
	n := Inject(f, 5, 5, 4)
	if n != 16 {
		t.Fatalf("expected 16 cells written, got %d", n)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 3 && x < 7 && y >= 3 && y < 7
			if got := f.At(x, y) == Saturated; got != inside {
				t.Fatalf("cell (%d,%d) saturated=%v, expected %v", x, y, got, inside)
			}
		}
	}
}

func TestInjectOverwritesAndClips(t *testing.T) {
	f := New(6, 6)
	f.Set(0, 0, Cell{A: 0.3, B: 0.4})
	n := Inject(f, 0, 0, 4)
	if n != 4 {
		t.Fatalf("expected clipped square of 4 cells, got %d", n)
	}
	if f.At(0, 0) != Saturated || f.At(1, 1) != Saturated {
		t.Fatal("expected corner cells to be saturated")
	}
	if f.At(2, 0) != Quiescent {
		t.Fatal("cell outside the square changed")
	}
}

func TestInjectZeroSizeIsNoop(t *testing.T) {
	f := New(4, 4)
	if n := Inject(f, 2, 2, 0); n != 0 || countSaturated(f) != 0 {
		t.Fatalf("expected no-op, wrote %d", n)
	}
}

func TestInjectPanicsOutsideGrid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for centre outside grid")
		}
	}()
	Inject(New(4, 4), 4, 1, 2)
}

func TestInjectPanicsOnNegativeSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative size")
		}
	}()
	Inject(New(4, 4), 2, 2, -1)
}

func TestCenteredRegion(t *testing.T) {
	r := CenteredRegion(20, 10, 0.5)
	want := Region{X0: 8, Y0: 3, X1: 13, Y1: 8}
	if r != want {
		t.Fatalf("expected %+v, got %+v", want, r)
	}
	if r.Area() != 25 {
		t.Fatalf("expected area 25, got %d", r.Area())
	}

	// A seed square taller than the grid is wide is clipped.
	r = CenteredRegion(4, 20, 0.5)
	if r.X0 != 0 || r.X1 != 4 {
		t.Fatalf("expected horizontal clip to [0,4), got %+v", r)
	}
}

func TestSeedUsesThresholdAndScale(t *testing.T) {
	f := New(8, 8)
	var sampled [][2]float64
	noise := NoiseFunc(func(x, y float64) float64 {
		sampled = append(sampled, [2]float64{x, y})
		// Right half of the region is "high".
		if x > 0.35 {
			return 0.9
		}
		return 0.1
	})

	n := Seed(f, Region{X0: 2, Y0: 2, X1: 6, Y1: 6}, noise, 0.1, 0.55)
	if n != 8 {
		t.Fatalf("expected 8 seeded cells, got %d", n)
	}
	if len(sampled) != 16 {
		t.Fatalf("expected 16 noise samples, got %d", len(sampled))
	}
	if got := sampled[0]; math.Abs(got[0]-0.2) > 1e-12 || math.Abs(got[1]-0.2) > 1e-12 {
		t.Fatalf("expected first sample at (0.2,0.2), got %v", got)
	}
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			want := Quiescent
			if x >= 4 {
				want = Saturated
			}
			if got := f.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %+v, expected %+v", x, y, got, want)
			}
		}
	}
}

func TestSeedLeavesUnselectedCellsAlone(t *testing.T) {
	f := New(4, 4)
	f.Set(1, 1, Cell{A: 0.5, B: 0.5})
	Seed(f, Region{X1: 4, Y1: 4}, NoiseFunc(func(x, y float64) float64 { return 0.55 }), 1, 0.55)
	if got := f.At(1, 1); got.A != 0.5 || got.B != 0.5 {
		t.Fatalf("value equal to threshold must not seed, got %+v", got)
	}
}
