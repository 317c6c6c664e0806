package field

import (
	"math"
	"testing"
)

func TestNewIsQuiescent(t *testing.T) {
	f := New(7, 5)
	w, h := f.Size()
	if w != 7 || h != 5 {
		t.Fatalf("expected 7x5, got %dx%d", w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := f.At(x, y); c != Quiescent {
				t.Fatalf("cell (%d,%d) = %+v, expected (1,0)", x, y, c)
			}
		}
	}
}

func TestNewPanicsOnInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %dx%d", dims[0], dims[1])
				}
			}()
			New(dims[0], dims[1])
		}()
	}
}

func TestSetAndAt(t *testing.T) {
	f := New(4, 3)
	f.Set(3, 2, Cell{A: 0.25, B: 0.75})
	if got := f.At(3, 2); got.A != 0.25 || got.B != 0.75 {
		t.Fatalf("unexpected cell %+v", got)
	}
	if got := f.Cells()[f.Index(3, 2)]; got.B != 0.75 {
		t.Fatalf("Cells() not backed by the same storage, got %+v", got)
	}
	if got := f.At(2, 2); got != Quiescent {
		t.Fatalf("neighbouring cell changed: %+v", got)
	}
}

func TestSwapExchangesIdentity(t *testing.T) {
	a, b := New(3, 3), New(3, 3)
	x, y := Swap(a, b)
	if x != b || y != a {
		t.Fatal("Swap should exchange the two pointers")
	}
}

func TestLaplacianUniformIsZero(t *testing.T) {
	f := New(5, 5)
	f.Fill(Cell{A: 1, B: 1})
	for _, s := range []Substance{SubstanceA, SubstanceB} {
		if got := Laplacian(f, 2, 2, s); math.Abs(got) > 1e-12 {
			t.Errorf("substance %d: expected 0 on uniform field, got %g", s, got)
		}
	}
}

func TestLaplacianWeights(t *testing.T) {
	f := New(3, 3)
	f.Fill(Cell{})
	f.Set(1, 1, Cell{A: 1, B: 2})
	f.Set(1, 0, Cell{A: 1, B: 2}) // N
	f.Set(2, 2, Cell{A: 1, B: 2}) // SE

	wantA := -1.0 + 0.2 + 0.05
	if got := Laplacian(f, 1, 1, SubstanceA); math.Abs(got-wantA) > 1e-12 {
		t.Errorf("A: expected %g, got %g", wantA, got)
	}
	wantB := 2 * wantA
	if got := Laplacian(f, 1, 1, SubstanceB); math.Abs(got-wantB) > 1e-12 {
		t.Errorf("B: expected %g, got %g", wantB, got)
	}
}

func TestLaplacianIsLinear(t *testing.T) {
	f := New(3, 3)
	vals := []float64{0.1, 0.7, 0.3, 0.9, 0.4, 0.2, 0.6, 0.8, 0.5}
	for i, v := range vals {
		f.Cells()[i] = Cell{A: v, B: v / 2}
	}
	base := Laplacian(f, 1, 1, SubstanceA)

	const k = 3.5
	g := New(3, 3)
	for i, v := range vals {
		g.Cells()[i] = Cell{A: v * k, B: v / 2}
	}
	if got := Laplacian(g, 1, 1, SubstanceA); math.Abs(got-k*base) > 1e-12 {
		t.Fatalf("expected %g, got %g", k*base, got)
	}
	if a, b := Laplacian(f, 1, 1, SubstanceB), Laplacian(g, 1, 1, SubstanceB); a != b {
		t.Fatalf("B untouched but Laplacian changed: %g vs %g", a, b)
	}
}
