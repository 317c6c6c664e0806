// Seed preview tool - interactive noise seeding with sliders.
//
// Usage: go run ./cmd/seedpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grayscott/config"
	"github.com/pthm-cable/grayscott/field"
	"github.com/pthm-cable/grayscott/noise"
	"github.com/pthm-cable/grayscott/reaction"
	"github.com/pthm-cable/grayscott/renderer"
	"github.com/pthm-cable/grayscott/sim"
	"github.com/pthm-cable/grayscott/telemetry"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	previewSize  = 512
	gridSize     = 200
	panelWidth   = windowWidth - previewSize - 30
)

// SeedParams holds the seeding parameters being edited.
type SeedParams struct {
	Simplex      bool
	Scale        float32
	Threshold    float32
	SizeFraction float32
	Octaves      int
	Falloff      float32
	Seed         int64
}

func fromConfig(cfg *config.Config) SeedParams {
	return SeedParams{
		Simplex:      cfg.Seed.Noise == noise.KindSimplex,
		Scale:        float32(cfg.Seed.Scale),
		Threshold:    float32(cfg.Seed.Threshold),
		SizeFraction: float32(cfg.Seed.SizeFraction),
		Octaves:      cfg.Seed.Octaves,
		Falloff:      float32(cfg.Seed.Falloff),
		Seed:         cfg.Seed.NoiseSeed,
	}
}

func (p SeedParams) kind() string {
	if p.Simplex {
		return noise.KindSimplex
	}
	return noise.KindPerlin
}

// reseed rebuilds both buffers from p and returns the number of seeded cells.
func reseed(pair *field.Pair, p SeedParams) int {
	src, err := noise.New(p.kind(), p.Seed, p.Octaves, float64(p.Falloff))
	if err != nil {
		log.Printf("noise: %v", err)
		return 0
	}
	pair.Reset()
	cur := pair.Current()
	region := field.CenteredRegion(cur.W, cur.H, float64(p.SizeFraction))
	n := field.Seed(cur, region, src, float64(p.Scale), float64(p.Threshold))
	pair.Sync()
	return n
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Seed Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	raster, err := sim.NewRasterizer(cfg, 1)
	if err != nil {
		log.Fatalf("failed to build palette: %v", err)
	}
	view := renderer.NewFieldRenderer(raster)
	defer view.Unload()

	params := fromConfig(cfg)
	rates := cfg.Params()
	pair := field.NewPair(gridSize, gridSize)
	seeded := reseed(pair, params)

	running := false
	var frame uint64
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			seeded = reseed(pair, params)
			frame = 0
			needsRegen = false
		}
		if running {
			for i := 0; i < 8; i++ {
				reaction.Step(pair.Current(), pair.Next(), rates)
				pair.Swap()
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		view.Update(pair.Current(), frame)
		frame++
		rl.DrawRectangle(10, 10, previewSize, previewSize, rl.Black)
		view.Draw(10, 10, previewSize, previewSize)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		summary := telemetry.SummarizeField(pair.Current())
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Seeded: %d cells  Coverage: %.3f  Mean B: %.3f", seeded, summary.Coverage, summary.MeanB), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Generation: %d", pair.Generation()), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Seed Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		slider := func(label, format string, value, lo, hi float32) float32 {
			rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				value, lo, hi,
			)
			rl.DrawText(fmt.Sprintf(format, value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			panelY += 35
			if v != value {
				needsRegen = true
			}
			return v
		}

		params.Scale = slider("Scale (noise frequency per cell)", "%.3f", params.Scale, 0.005, 0.2)
		params.Threshold = slider("Threshold (higher = sparser)", "%.2f", params.Threshold, 0, 1)
		params.SizeFraction = slider("Seed square (fraction of height)", "%.2f", params.SizeFraction, 0.05, 1)
		params.Octaves = int(slider("Octaves", "%.0f", float32(params.Octaves), 1, 8))
		params.Falloff = slider("Falloff (amplitude per octave)", "%.2f", params.Falloff, 0.1, 0.9)
		params.Seed = int64(slider("Seed", "%.0f", float32(params.Seed), 0, 99999))

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(running, "Stop", "Run")) {
			running = !running
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(params.Simplex, "Simplex", "Perlin")) {
			params.Simplex = !params.Simplex
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = fromConfig(cfg)
			needsRegen = true
		}
		panelY += 55

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlLines := []string{
			"seed:",
			fmt.Sprintf("  noise: %s", params.kind()),
			fmt.Sprintf("  scale: %.3f", params.Scale),
			fmt.Sprintf("  threshold: %.2f", params.Threshold),
			fmt.Sprintf("  size_fraction: %.2f", params.SizeFraction),
			fmt.Sprintf("  octaves: %d", params.Octaves),
			fmt.Sprintf("  falloff: %.2f", params.Falloff),
			fmt.Sprintf("  noise_seed: %d", params.Seed),
		}
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.EndDrawing()
	}
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
