package sim

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/grayscott/field"
	"github.com/pthm-cable/grayscott/noise"
)

// InjectAt queues a size×size square of chemical B centred on cell (x, y).
// It is written into the current buffer at the start of the next Tick,
// before the step that consumes it. Panics if (x, y) is outside the grid or
// size is negative.
func (s *Simulation) InjectAt(x, y, size int) {
	if !s.pair.Current().Contains(x, y) {
		w, h := s.pair.Size()
		panic(fmt.Sprintf("sim: inject at (%d,%d) outside %dx%d grid", x, y, w, h))
	}
	if size < 0 {
		panic(fmt.Sprintf("sim: negative inject size %d", size))
	}
	if size == 0 {
		return
	}
	// A held button while paused queues the same cell every frame; keep
	// only the latest size per cell.
	key := s.pair.Current().Index(x, y)
	if i, ok := s.queued[key]; ok {
		s.pending[i].size = size
		return
	}
	s.queued[key] = len(s.pending)
	s.pending = append(s.pending, injection{x: x, y: y, size: size})
}

// PendingInjections reports how many injections wait for the next tick.
func (s *Simulation) PendingInjections() int { return len(s.pending) }

func (s *Simulation) dropPending() {
	s.pending = s.pending[:0]
	clear(s.queued)
}

// AddEmitter places a persistent source at cell (x, y) using the
// configured size, lifetime and cadence. Returns false if it was rejected.
func (s *Simulation) AddEmitter(x, y int) bool {
	if !s.pair.Current().Contains(x, y) {
		return false
	}
	ec := s.cfg.Emitters
	return s.emitters.Add(x, y, ec.Size, ec.TTL, ec.Every)
}

// ClearEmitters removes every emitter.
func (s *Simulation) ClearEmitters() {
	s.emitters.Clear()
}

// Resize reallocates the buffer pair at w×h, keeping the overlapping
// pattern. The new boundary ring is copied from current into next so both
// buffers agree on the cells the stepper never writes. Queued injections
// are dropped since their coordinates belong to the old grid.
func (s *Simulation) Resize(w, h int) {
	if w < 3 || h < 3 {
		panic(fmt.Sprintf("sim: resize to %dx%d leaves no interior", w, h))
	}
	oldW, oldH := s.pair.Size()
	if w == oldW && h == oldH {
		return
	}
	s.pair.Resize(w, h)
	s.pair.SyncEdges()
	s.dropPending()
	s.collector.RecordResize()

	slog.Info("grid resized",
		"old_w", oldW, "old_h", oldH,
		"w", w, "h", h,
		"generation", s.pair.Generation(),
	)
}

// Reseed clears the field and seeds it again from the next noise seed.
func (s *Simulation) Reseed() {
	s.noiseSeed++
	src, err := noise.New(s.cfg.Seed.Noise, s.noiseSeed, s.cfg.Seed.Octaves, s.cfg.Seed.Falloff)
	if err != nil {
		// The kind was validated when the simulation was built.
		panic(fmt.Sprintf("sim: rebuilding noise: %v", err))
	}
	s.noise = src
	s.dropPending()
	s.collector.RecordReseed()
	s.bookmarkDetector.Reset()
	n := s.seedField()
	slog.Info("reseeded", "noise_seed", s.noiseSeed, "cells", n, "tick", s.tick)
}

// Clear returns the field to the quiescent state and removes all emitters.
func (s *Simulation) Clear() {
	s.pair.Reset()
	s.emitters.Clear()
	s.dropPending()
	s.bookmarkDetector.Reset()
}

// seedField resets both buffers and writes the noise-thresholded seed into
// the centred square.
func (s *Simulation) seedField() int {
	s.pair.Reset()
	cur := s.pair.Current()
	region := field.CenteredRegion(cur.W, cur.H, s.cfg.Seed.SizeFraction)
	n := field.Seed(cur, region, s.noise, s.cfg.Seed.Scale, s.cfg.Seed.Threshold)
	s.pair.Sync()
	return n
}

// Band selects which end of the rate gradient a preset change applies to.
type Band int

const (
	BandLow Band = iota
	BandHigh
)

func (b Band) String() string {
	if b == BandHigh {
		return "high"
	}
	return "low"
}

// SetPreset selects preset i (wrapped into range) for band.
func (s *Simulation) SetPreset(band Band, i int) {
	n := len(s.presets)
	i = ((i % n) + n) % n
	r := s.presets[i]
	if band == BandHigh {
		s.highIdx = i
		s.params.High = r
	} else {
		s.lowIdx = i
		s.params.Low = r
	}
	slog.Info("preset changed", "band", band.String(), "preset", r.Name, "feed", r.Feed, "kill", r.Kill)
}

// CyclePreset moves band's preset by delta positions.
func (s *Simulation) CyclePreset(band Band, delta int) {
	i := s.lowIdx
	if band == BandHigh {
		i = s.highIdx
	}
	s.SetPreset(band, i+delta)
}

// SetBlend sets the blend ratio, clamped to [0,1].
func (s *Simulation) SetBlend(v float64) {
	s.params.Blend = min(max(v, 0), 1)
}

// SetDiffusion sets the diffusion rates; negative values are clamped to 0.
func (s *Simulation) SetDiffusion(a, b float64) {
	s.params.DiffusionA = max(a, 0)
	s.params.DiffusionB = max(b, 0)
}
