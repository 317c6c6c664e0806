package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grayscott/config"
	"github.com/pthm-cable/grayscott/game"
	"github.com/pthm-cable/grayscott/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for PNG snapshots")
	snapshotEvery := flag.Int("snapshot-every", 500, "Ticks between headless snapshots")
	record := flag.String("record", "", "Write a headless MJPEG/AVI recording to this path")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "Noise seed (0 = use config, -1 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 0, "Simulation ticks per update call (0 = use config)")
	width := flag.Int("width", 0, "Headless grid width (0 = derived from config)")
	height := flag.Int("height", 0, "Headless grid height (0 = derived from config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindow = *statsWindow
	}

	noiseSeed := *seed
	if noiseSeed < 0 {
		noiseSeed = time.Now().UnixNano()
	}

	steps := *stepsPerUpdate
	if steps <= 0 {
		steps = cfg.Reaction.StepsPerFrame
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		s, err := sim.New(cfg, sim.Options{
			Seed:           noiseSeed,
			LogStats:       *logStats,
			OutputDir:      *outputDir,
			SnapshotDir:    *snapshotDir,
			SnapshotEvery:  *snapshotEvery,
			RecordPath:     *record,
			StepsPerUpdate: steps,
			Width:          *width,
			Height:         *height,
		})
		if err != nil {
			slog.Error("failed to start simulation", "error", err)
			os.Exit(1)
		}
		defer s.Close()

		w, h := s.Size()
		slog.Info("starting headless simulation",
			"seed", noiseSeed,
			"grid_w", w,
			"grid_h", h,
			"stats_window", cfg.Telemetry.StatsWindow,
			"max_ticks", *maxTicks,
			"steps_per_update", steps,
		)

		for {
			s.UpdateHeadless()

			if *maxTicks > 0 && int(s.TickCount()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", s.TickCount())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(game.Options{
		Seed:           noiseSeed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		SnapshotDir:    *snapshotDir,
		StepsPerUpdate: steps,
	})
	if err != nil {
		slog.Error("failed to start simulation", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}
