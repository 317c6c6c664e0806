// Package components defines ECS components for persistent chemical sources.
package components

// Position is a grid cell coordinate.
type Position struct {
	X, Y int
}

// Emitter injects chemical B around its position on a fixed cadence.
type Emitter struct {
	Size      int // side of the injected square, in cells
	Remaining int // ticks left before removal; negative means forever
	Every     int // inject once every N ticks (<= 1 means every tick)
	Age       int // ticks since creation
}

// Due reports whether the emitter fires on its current tick.
func (e *Emitter) Due() bool {
	return e.Every <= 1 || e.Age%e.Every == 0
}

// Expired reports whether the emitter has used up its lifetime.
func (e *Emitter) Expired() bool {
	return e.Remaining == 0
}
