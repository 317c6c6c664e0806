package brush

import (
	"testing"
	"time"
)

func newTestBrush() *Brush {
	return New(16, 2, 64, 2, 0.6, time.Second)
}

func TestWheelClampsRadius(t *testing.T) {
	b := newTestBrush()
	b.Wheel(3)
	if b.Radius != 22 {
		t.Fatalf("expected radius 22, got %g", b.Radius)
	}
	b.Wheel(100)
	if b.Radius != 64 {
		t.Fatalf("expected radius clamped to 64, got %g", b.Radius)
	}
	b.Wheel(-100)
	if b.Radius != 2 {
		t.Fatalf("expected radius clamped to 2, got %g", b.Radius)
	}
}

func TestInjectSize(t *testing.T) {
	b := newTestBrush()
	if n := b.InjectSize(1); n != 9 {
		t.Fatalf("radius 16 * 0.6 at cell size 1: expected 9, got %d", n)
	}
	if n := b.InjectSize(4); n != 2 {
		t.Fatalf("expected 2 cells at cell size 4, got %d", n)
	}
	b.SetRadius(2)
	if n := b.InjectSize(8); n != 1 {
		t.Fatalf("inject size should never drop below 1, got %d", n)
	}
}

func TestCursorFade(t *testing.T) {
	b := newTestBrush()
	now := time.Unix(1000, 0)
	if b.Visible(now) {
		t.Fatal("untouched brush should be hidden")
	}

	b.Touch(now)
	if !b.Visible(now.Add(900 * time.Millisecond)) {
		t.Fatal("cursor should be visible inside the fade window")
	}
	if b.Visible(now.Add(time.Second)) {
		t.Fatal("cursor should be hidden once the fade window passes")
	}

	if a := b.Alpha(now.Add(200 * time.Millisecond)); a != 1 {
		t.Fatalf("expected full alpha early in the window, got %g", a)
	}
	if a := b.Alpha(now.Add(750 * time.Millisecond)); a < 0.49 || a > 0.51 {
		t.Fatalf("expected alpha near 0.5, got %g", a)
	}
}
