// Package sim owns the simulation state: the buffer pair, the active
// reaction parameters, the worker pool and the emitters. Hosts (the window
// loop, headless runs, the tuner) drive it through Tick and the mutation
// methods; nothing here is global.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/grayscott/components"
	"github.com/pthm-cable/grayscott/config"
	"github.com/pthm-cable/grayscott/field"
	"github.com/pthm-cable/grayscott/frames"
	"github.com/pthm-cable/grayscott/noise"
	"github.com/pthm-cable/grayscott/reaction"
	"github.com/pthm-cable/grayscott/sources"
	"github.com/pthm-cable/grayscott/telemetry"
)

// Options holds run-level settings that are not part of the config file.
type Options struct {
	Seed           int64 // noise seed (0 = seed.noise_seed from config)
	LogStats       bool
	OutputDir      string // CSV telemetry and config snapshot (empty = disabled)
	SnapshotDir    string // PNG snapshots in headless mode (empty = disabled)
	SnapshotEvery  int    // ticks between snapshots
	RecordPath     string // AVI output in headless mode (empty = disabled)
	StepsPerUpdate int
	Width, Height  int // grid size override (0 = derived from config)
}

type injection struct {
	x, y, size int
}

// Simulation is the explicit simulation context.
type Simulation struct {
	cfg *config.Config

	pair     *field.Pair
	params   reaction.Params
	presets  []reaction.Rates
	lowIdx   int
	highIdx  int
	stepper  *reaction.Stepper
	emitters *sources.Emitters
	pending  []injection
	queued   map[int]int // cell index -> position in pending

	noise     field.Noise2D
	noiseSeed int64

	tick          int32
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	bookmarkDetector *telemetry.BookmarkDetector
	bookmarkCallback func(telemetry.Bookmark)

	// Headless output
	raster         *frames.Rasterizer
	recorder       *frames.Recorder
	snapshotDir    string
	snapshotEvery  int
	stepsPerUpdate int
}

// New builds a seeded simulation from cfg.
func New(cfg *config.Config, opts Options) (*Simulation, error) {
	w, h := cfg.Derived.GridW, cfg.Derived.GridH
	if opts.Width > 0 {
		w = opts.Width
	}
	if opts.Height > 0 {
		h = opts.Height
	}
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("grid %dx%d too small: need at least 3x3", w, h)
	}

	noiseSeed := cfg.Seed.NoiseSeed
	if opts.Seed != 0 {
		noiseSeed = opts.Seed
	}
	src, err := noise.New(cfg.Seed.Noise, noiseSeed, cfg.Seed.Octaves, cfg.Seed.Falloff)
	if err != nil {
		return nil, fmt.Errorf("building seed noise: %w", err)
	}

	s := &Simulation{
		cfg:              cfg,
		pair:             field.NewPair(w, h),
		params:           cfg.Params(),
		presets:          cfg.Derived.Presets,
		stepper:          reaction.NewStepper(cfg.Workers.Count, cfg.Workers.MinParallelRows),
		emitters:         sources.NewEmitters(cfg.Emitters.Max),
		queued:           make(map[int]int),
		noise:            src,
		noiseSeed:        noiseSeed,
		collector:        telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perf:             telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistory),
		logStats:         opts.LogStats,
		snapshotDir:      opts.SnapshotDir,
		snapshotEvery:    opts.SnapshotEvery,
		stepsPerUpdate:   max(opts.StepsPerUpdate, 1),
	}
	s.lowIdx = presetIndex(s.presets, s.params.Low)
	s.highIdx = presetIndex(s.presets, s.params.High)

	if opts.SnapshotDir != "" || opts.RecordPath != "" {
		raster, err := NewRasterizer(cfg, cfg.Render.SnapshotScale)
		if err != nil {
			s.stepper.Close()
			return nil, err
		}
		s.raster = raster
	}

	if opts.RecordPath != "" {
		scale := s.raster.Scale
		rec, err := frames.NewRecorder(opts.RecordPath, w*scale, h*scale, cfg.Render.VideoFPS, cfg.Render.VideoQuality)
		if err != nil {
			s.stepper.Close()
			return nil, err
		}
		s.recorder = rec
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		s.Close()
		return nil, err
	}

	s.seedField()
	return s, nil
}

func presetIndex(list []reaction.Rates, r reaction.Rates) int {
	for i, p := range list {
		if p == r {
			return i
		}
	}
	return 0
}

// Tick advances the simulation by one step: queued injections and emitters
// write into the current buffer, the stepper fills the next buffer, and the
// buffers swap.
func (s *Simulation) Tick() {
	s.perf.StartTick()
	s.advance()
	s.perf.EndTick()
}

// advance runs the phases of one tick inside an open perf sample.
func (s *Simulation) advance() {
	s.perf.StartPhase(telemetry.PhaseInject)
	cur := s.pair.Current()
	touched := false
	for _, in := range s.pending {
		n := field.Inject(cur, in.x, in.y, in.size)
		s.collector.RecordInjection(n)
		touched = true
	}
	s.dropPending()

	s.perf.StartPhase(telemetry.PhaseEmitters)
	if n := s.emitters.Apply(cur); n > 0 {
		s.collector.RecordEmission(n)
		touched = true
	}
	if touched {
		s.pair.SyncEdges()
	}

	s.perf.StartPhase(telemetry.PhaseStep)
	s.stepper.Step(cur, s.pair.Next(), s.params)

	s.perf.StartPhase(telemetry.PhaseSwap)
	s.pair.Swap()
	s.tick++

	s.perf.StartPhase(telemetry.PhaseTelemetry)
	s.flushTelemetry()
}

// Run advances the simulation by n ticks.
func (s *Simulation) Run(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// Current returns the latest completed field. It must be treated as
// read-only and not retained across Tick or Resize.
func (s *Simulation) Current() *field.Field { return s.pair.Current() }

// Size returns the grid dimensions.
func (s *Simulation) Size() (int, int) { return s.pair.Size() }

// Generation returns the buffer generation, bumped on every resize.
func (s *Simulation) Generation() uint64 { return s.pair.Generation() }

// TickCount returns the number of completed ticks.
func (s *Simulation) TickCount() int32 { return s.tick }

// Params returns a copy of the active reaction parameters.
func (s *Simulation) Params() reaction.Params { return s.params }

// Presets returns the selectable rate presets.
func (s *Simulation) Presets() []reaction.Rates { return s.presets }

// Emitters returns the number of live emitters.
func (s *Simulation) Emitters() int { return s.emitters.Count() }

// EmitterPositions lists the cells of live emitters.
func (s *Simulation) EmitterPositions() []components.Position { return s.emitters.Positions() }

// Config returns the configuration the simulation was built from.
func (s *Simulation) Config() *config.Config { return s.cfg }

// Perf exposes the phase timer so hosts can time their render phase.
func (s *Simulation) Perf() *telemetry.PerfCollector { return s.perf }

// SetStatsCallback registers fn to receive every flushed stats window.
func (s *Simulation) SetStatsCallback(fn func(telemetry.WindowStats)) {
	s.statsCallback = fn
}

// SetBookmarkCallback registers fn to receive every detected bookmark.
func (s *Simulation) SetBookmarkCallback(fn func(telemetry.Bookmark)) {
	s.bookmarkCallback = fn
}

// Close stops the worker pool and closes any output files.
func (s *Simulation) Close() error {
	s.stepper.Close()
	var firstErr error
	if s.recorder != nil {
		if err := s.recorder.Close(); err != nil {
			firstErr = err
		} else {
			slog.Info("video written", "path", s.recorder.Path(), "frames", s.recorder.Frames())
		}
		s.recorder = nil
	}
	if err := s.outputManager.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	s.outputManager = nil
	return firstErr
}
