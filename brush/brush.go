// Package brush tracks the pointer brush: its radius, the injection size it
// maps to and whether its cursor should still be drawn.
package brush

import (
	"math"
	"time"
)

// Brush holds pointer painting state in screen pixels.
type Brush struct {
	Radius    float64
	MinRadius float64
	MaxRadius float64
	WheelStep float64 // pixels per wheel notch
	Factor    float64 // injected square side as a fraction of the radius
	Fade      time.Duration

	lastActive time.Time
}

// New returns a brush with the given radius limits.
func New(radius, minRadius, maxRadius, wheelStep, factor float64, fade time.Duration) *Brush {
	b := &Brush{
		MinRadius: minRadius,
		MaxRadius: maxRadius,
		WheelStep: wheelStep,
		Factor:    factor,
		Fade:      fade,
	}
	b.SetRadius(radius)
	return b
}

// SetRadius sets the radius, clamped to [MinRadius, MaxRadius].
func (b *Brush) SetRadius(r float64) {
	if b.MaxRadius > 0 && r > b.MaxRadius {
		r = b.MaxRadius
	}
	if r < b.MinRadius {
		r = b.MinRadius
	}
	b.Radius = r
}

// Wheel adjusts the radius by delta notches.
func (b *Brush) Wheel(delta float64) {
	if delta == 0 {
		return
	}
	b.SetRadius(b.Radius + delta*b.WheelStep)
}

// InjectSize converts the brush to the side of the injected square in grid
// cells. Always at least one cell.
func (b *Brush) InjectSize(cellSize float64) int {
	if cellSize <= 0 {
		cellSize = 1
	}
	n := int(math.Floor(b.Radius * b.Factor / cellSize))
	if n < 1 {
		n = 1
	}
	return n
}

// Touch records pointer activity at now.
func (b *Brush) Touch(now time.Time) {
	b.lastActive = now
}

// Visible reports whether the cursor should be drawn at now.
func (b *Brush) Visible(now time.Time) bool {
	if b.lastActive.IsZero() {
		return false
	}
	return now.Sub(b.lastActive) < b.Fade
}

// Alpha returns the cursor opacity in [0,1], fading linearly over the
// second half of the fade window.
func (b *Brush) Alpha(now time.Time) float64 {
	if !b.Visible(now) {
		return 0
	}
	half := b.Fade / 2
	idle := now.Sub(b.lastActive)
	if idle <= half || half <= 0 {
		return 1
	}
	return 1 - float64(idle-half)/float64(half)
}
