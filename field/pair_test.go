package field

import "testing"

func TestPairSwapFlipsSlots(t *testing.T) {
	p := NewPair(4, 4)
	cur, next := p.Current(), p.Next()
	if cur == next {
		t.Fatal("current and next must be distinct buffers")
	}
	p.Swap()
	if p.Current() != next || p.Next() != cur {
		t.Fatal("Swap should exchange current and next")
	}
	p.Swap()
	if p.Current() != cur {
		t.Fatal("double swap should restore the original current buffer")
	}
}

func TestResizeGrowPreservesOverlap(t *testing.T) {
	cur, next := New(3, 2), New(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			cur.Set(x, y, Cell{A: float64(x), B: float64(y)})
			next.Set(x, y, Cell{A: float64(y), B: float64(x)})
		}
	}

	nc, nn := Resize(cur, next, 5, 4)
	if nc.W != 5 || nc.H != 4 || nn.W != 5 || nn.H != 4 {
		t.Fatalf("unexpected sizes %dx%d / %dx%d", nc.W, nc.H, nn.W, nn.H)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if x < 3 && y < 2 {
				if nc.At(x, y) != cur.At(x, y) || nn.At(x, y) != next.At(x, y) {
					t.Fatalf("cell (%d,%d) not preserved", x, y)
				}
				continue
			}
			if nc.At(x, y) != Quiescent || nn.At(x, y) != Quiescent {
				t.Fatalf("new cell (%d,%d) should be quiescent", x, y)
			}
		}
	}
}

func TestResizeShrinkKeepsTopLeft(t *testing.T) {
	cur, next := New(4, 4), New(4, 4)
	cur.Set(1, 1, Saturated)
	cur.Set(3, 3, Saturated)

	nc, _ := Resize(cur, next, 2, 2)
	if nc.At(1, 1) != Saturated {
		t.Fatal("expected (1,1) to survive shrinking")
	}
	if len(nc.Cells()) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(nc.Cells()))
	}
}

func TestResizeMismatchedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched pair")
		}
	}()
	Resize(New(2, 2), New(3, 2), 4, 4)
}

func TestPairResizeKeepsRolesAndBumpsGeneration(t *testing.T) {
	p := NewPair(4, 4)
	p.Swap()
	p.Current().Set(2, 2, Saturated)
	gen := p.Generation()

	p.Resize(8, 6)
	if w, h := p.Size(); w != 8 || h != 6 {
		t.Fatalf("expected 8x6, got %dx%d", w, h)
	}
	if p.Current().At(2, 2) != Saturated {
		t.Fatal("current state lost across resize")
	}
	if p.Next().At(2, 2) != Quiescent {
		t.Fatal("next buffer should carry its own state, not current's")
	}
	if p.Generation() != gen+1 {
		t.Fatalf("expected generation %d, got %d", gen+1, p.Generation())
	}
}

func TestPairSyncAndReset(t *testing.T) {
	p := NewPair(3, 3)
	p.Current().Set(0, 0, Saturated)
	p.Sync()
	if p.Next().At(0, 0) != Saturated {
		t.Fatal("Sync should copy current into next")
	}
	p.Reset()
	if p.Current().At(0, 0) != Quiescent || p.Next().At(0, 0) != Quiescent {
		t.Fatal("Reset should restore quiescent state in both buffers")
	}
}

func TestPairSyncEdgesCopiesOnlyBoundary(t *testing.T) {
	p := NewPair(5, 4)
	p.Current().Fill(Saturated)
	p.SyncEdges()

	next := p.Next()
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			edge := x == 0 || y == 0 || x == 4 || y == 3
			got := next.At(x, y)
			if edge && got != Saturated {
				t.Fatalf("edge (%d,%d) not synced: %+v", x, y, got)
			}
			if !edge && got != Quiescent {
				t.Fatalf("interior (%d,%d) should be untouched: %+v", x, y, got)
			}
		}
	}
}
