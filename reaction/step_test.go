package reaction

import (
	"math"
	"testing"

	"github.com/pthm-cable/grayscott/field"
)

func TestPresetByName(t *testing.T) {
	r, ok := PresetByName(Presets(), "mitosis")
	if !ok {
		t.Fatal("expected to find Mitosis case-insensitively")
	}
	if r.Feed != 0.0367 || r.Kill != 0.0649 {
		t.Fatalf("unexpected rates %+v", r)
	}
	if _, ok := PresetByName(Presets(), "nope"); ok {
		t.Fatal("unknown preset should not be found")
	}
}

func TestRatesAtInterpolatesDownTheGrid(t *testing.T) {
	p := Params{Low: Classic, High: Blobby, Blend: 0.5}

	feed, kill := p.RatesAt(0, 100)
	if feed != Classic.Feed || kill != Classic.Kill {
		t.Fatalf("top row should use low rates, got %g/%g", feed, kill)
	}

	feed, kill = p.RatesAt(50, 100)
	wantFeed := Classic.Feed + (Blobby.Feed-Classic.Feed)*0.25
	wantKill := Classic.Kill + (Blobby.Kill-Classic.Kill)*0.25
	if math.Abs(feed-wantFeed) > 1e-15 || math.Abs(kill-wantKill) > 1e-15 {
		t.Fatalf("expected %g/%g at mid grid, got %g/%g", wantFeed, wantKill, feed, kill)
	}
}

func TestStepQuiescentFieldStaysSteady(t *testing.T) {
	cur, next := field.New(16, 12), field.New(16, 12)
	Step(cur, next, DefaultParams())
	for y := 1; y < 11; y++ {
		for x := 1; x < 15; x++ {
			c := next.At(x, y)
			if math.Abs(c.A-1) > 1e-12 || math.Abs(c.B) > 1e-12 {
				t.Fatalf("cell (%d,%d) drifted to %+v", x, y, c)
			}
		}
	}
}

func TestStepLeavesBoundaryUntouched(t *testing.T) {
	cur, next := field.New(6, 6), field.New(6, 6)
	field.Inject(cur, 3, 3, 6)
	marker := field.Cell{A: -7, B: -7}
	next.Fill(marker)

	Step(cur, next, DefaultParams())

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			edge := x == 0 || y == 0 || x == 5 || y == 5
			if got := next.At(x, y) == marker; got != edge {
				t.Fatalf("cell (%d,%d): untouched=%v, edge=%v", x, y, got, edge)
			}
		}
	}
}

func TestStepScenarioCenterCell(t *testing.T) {
	cur, next := field.New(10, 10), field.New(10, 10)
	field.Inject(cur, 5, 5, 4)

	p := Uniform(1.0, 0.5, Rates{Feed: 0.055, Kill: 0.062})
	Step(cur, next, p)

	// Every neighbour of (5,5) lies inside the 4x4 square, so all are (0,1).
	lapB := -1*1.0 + 0.2*(1+1+1+1) + 0.05*(1+1+1+1)
	wantB := 1 + 0.5*lapB + 0*1*1 - (0.062+0.055)*1
	if got := next.At(5, 5).B; math.Abs(got-wantB) > 1e-9 {
		t.Fatalf("expected center b=%.12f, got %.12f", wantB, got)
	}
	if got := next.At(5, 5).B; got >= 1 {
		t.Fatalf("center b should decrease from 1, got %g", got)
	}
}

func TestInjectThenStepDiffusesOutward(t *testing.T) {
	cur, next := field.New(20, 20), field.New(20, 20)
	field.Inject(cur, 10, 10, 4) // square [8,12)

	Step(cur, next, DefaultParams())

	for _, pt := range [][2]int{{7, 10}, {12, 10}, {10, 7}, {10, 12}, {7, 7}} {
		if b := next.At(pt[0], pt[1]).B; b <= 0 {
			t.Errorf("cell %v adjacent to injection should gain b, got %g", pt, b)
		}
	}
	if b := next.At(3, 3).B; b != 0 {
		t.Errorf("distant cell should not gain b after one step, got %g", b)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	cur := field.New(24, 18)
	field.Inject(cur, 12, 9, 6)
	field.Inject(cur, 5, 5, 3)

	a, b := field.New(24, 18), field.New(24, 18)
	Step(cur, a, DefaultParams())
	Step(cur, b, DefaultParams())
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("cell %d differs between identical steps", i)
		}
	}
}

func TestStepOrderIndependent(t *testing.T) {
	cur := field.New(20, 16)
	field.Inject(cur, 10, 8, 5)
	field.Inject(cur, 4, 4, 2)
	p := DefaultParams()

	forward := field.New(20, 16)
	Step(cur, forward, p)

	// Update rows bottom-up, one at a time.
	backward := field.New(20, 16)
	for y := cur.H - 2; y >= 1; y-- {
		stepRows(cur, backward, p, y, y+1)
	}

	for i := range forward.Cells() {
		if forward.Cells()[i] != backward.Cells()[i] {
			t.Fatalf("cell %d differs between traversal orders", i)
		}
	}
}

func TestTimeStepScalesUpdate(t *testing.T) {
	cur := field.New(8, 8)
	field.Inject(cur, 4, 4, 2)

	full, half := field.New(8, 8), field.New(8, 8)
	p := DefaultParams()
	Step(cur, full, p)
	p.TimeStep = 0.5
	Step(cur, half, p)

	c0 := cur.At(4, 4)
	dFull := full.At(4, 4).B - c0.B
	dHalf := half.At(4, 4).B - c0.B
	if math.Abs(dHalf-dFull/2) > 1e-12 {
		t.Fatalf("expected half step delta %g, got %g", dFull/2, dHalf)
	}
}

func TestStepPanicsOnMismatchedBuffers(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched buffers")
		}
	}()
	Step(field.New(4, 4), field.New(5, 4), DefaultParams())
}
