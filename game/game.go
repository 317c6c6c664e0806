// Package game hosts the simulation in a raylib window: painting, emitters,
// the HUD and the parameter panel.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/grayscott/brush"
	"github.com/pthm-cable/grayscott/config"
	"github.com/pthm-cable/grayscott/renderer"
	"github.com/pthm-cable/grayscott/sim"
	"github.com/pthm-cable/grayscott/telemetry"
	"github.com/pthm-cable/grayscott/ui"
)

// Options configures a windowed run.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	SnapshotDir    string // where P writes PNGs
	StepsPerUpdate int    // 0 = reaction.steps_per_frame
}

// Game holds the windowed application state.
type Game struct {
	cfg   *config.Config
	sim   *sim.Simulation
	brush *brush.Brush

	fieldRenderer *renderer.FieldRenderer
	hud           *ui.HUD
	controls      *ui.ControlsPanel
	perfPanel     *ui.PerfPanel

	// State
	paused         bool
	stepOnce       bool
	showPerf       bool
	stepsPerUpdate int
	snapshotDir    string
	frame          uint64
	lastStats      telemetry.WindowStats
	lastBookmark   string

	// Window dimensions
	screenWidth, screenHeight float32
}

// NewGameWithOptions builds the simulation for the configured screen. The
// raylib window must already be open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	s, err := sim.New(cfg, sim.Options{
		Seed:      opts.Seed,
		LogStats:  opts.LogStats,
		OutputDir: opts.OutputDir,
	})
	if err != nil {
		return nil, err
	}
	raster, err := sim.NewRasterizer(cfg, 1)
	if err != nil {
		s.Close()
		return nil, err
	}

	steps := opts.StepsPerUpdate
	if steps <= 0 {
		steps = max(cfg.Reaction.StepsPerFrame, 1)
	}
	snapshotDir := opts.SnapshotDir
	if snapshotDir == "" {
		snapshotDir = "snapshots"
	}

	g := &Game{
		cfg: cfg,
		sim: s,
		brush: brush.New(
			cfg.Brush.Radius, cfg.Brush.MinRadius, cfg.Brush.MaxRadius,
			cfg.Brush.WheelStep, cfg.Brush.InjectFactor, cfg.Derived.BrushFade,
		),
		fieldRenderer:  renderer.NewFieldRenderer(raster),
		hud:            ui.NewHUD(),
		controls:       ui.NewControlsPanel(220, float32(cfg.Brush.MaxRadius)),
		perfPanel:      ui.NewPerfPanel(10, 172),
		stepsPerUpdate: steps,
		snapshotDir:    snapshotDir,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}
	s.SetStatsCallback(func(ws telemetry.WindowStats) {
		g.lastStats = ws
	})
	s.SetBookmarkCallback(func(bm telemetry.Bookmark) {
		g.lastBookmark = fmt.Sprintf("%s @ %d", bm.Type, bm.Tick)
	})
	return g, nil
}

// Update handles input and advances the simulation.
func (g *Game) Update() {
	g.sim.Perf().RecordFrame()
	g.handleInput()

	steps := g.stepsPerUpdate
	if g.paused {
		if !g.stepOnce {
			return
		}
		steps = 1
		g.stepOnce = false
	}
	for i := 0; i < steps; i++ {
		g.sim.Tick()
	}
}

// snapshot writes the current field as PNG.
func (g *Game) snapshot() {
	if _, err := g.sim.Snapshot(g.snapshotDir); err != nil {
		slog.Error("failed to save snapshot", "error", err)
	}
}

// Unload releases all resources.
func (g *Game) Unload() {
	g.fieldRenderer.Unload()
	if err := g.sim.Close(); err != nil {
		slog.Error("failed to close simulation", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.sim.TickCount()
}
