package telemetry

import "github.com/pthm-cable/grayscott/field"

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     int32
	windowStartTick int32

	// Event counters for the current window
	injected int
	emitted  int
	reseeds  int
	resizes  int
}

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int32(windowTicks)}
}

// RecordInjection records cells painted by the pointer.
func (c *Collector) RecordInjection(cells int) {
	c.injected += cells
}

// RecordEmission records cells written by emitters.
func (c *Collector) RecordEmission(cells int) {
	c.emitted += cells
}

// RecordReseed records a reseed of the field.
func (c *Collector) RecordReseed() {
	c.reseeds++
}

// RecordResize records a grid resize.
func (c *Collector) RecordResize() {
	c.resizes++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Regime identifies the reaction settings active at flush time.
type Regime struct {
	Low, High string
	Blend     float64
	Emitters  int
}

// Flush summarizes f, produces a WindowStats and resets counters for the
// next window.
func (c *Collector) Flush(currentTick int32, generation uint64, f *field.Field, regime Regime) WindowStats {
	sum := SummarizeField(f)
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		Generation:      generation,
		GridW:           f.W,
		GridH:           f.H,

		LowPreset:  regime.Low,
		HighPreset: regime.High,
		Blend:      regime.Blend,

		InjectedCells: c.injected,
		EmittedCells:  c.emitted,
		Reseeds:       c.reseeds,
		Resizes:       c.resizes,
		Emitters:      regime.Emitters,

		MeanA:    sum.MeanA,
		StdA:     sum.StdA,
		MeanB:    sum.MeanB,
		StdB:     sum.StdB,
		MinB:     sum.MinB,
		MaxB:     sum.MaxB,
		P50B:     sum.P50B,
		P90B:     sum.P90B,
		Coverage: sum.Coverage,
	}

	c.windowStartTick = currentTick
	c.injected = 0
	c.emitted = 0
	c.reseeds = 0
	c.resizes = 0
	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowTicks
}
