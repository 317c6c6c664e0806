package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grayscott/renderer"
	"github.com/pthm-cable/grayscott/sim"
	"github.com/pthm-cable/grayscott/telemetry"
	"github.com/pthm-cable/grayscott/ui"
)

const controlsLegend = "[Space] pause  [N] step  [R] reseed  [C] clear  [E] drop emitters  " +
	"[ [ ] ] low  [ ; ' ] high  [P] snapshot  [H] panel  [Tab] perf  [</>] speed"

// Draw renders the field and overlays.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.fieldRenderer.Update(g.sim.Current(), g.frame)
	g.fieldRenderer.Draw(0, 0, g.screenWidth, g.screenHeight)
	g.frame++

	g.drawEmitters()

	now := time.Now()
	if g.brush.Visible(now) {
		mouse := rl.GetMousePosition()
		renderer.DrawBrushCursor(mouse.X, mouse.Y, float32(g.brush.Radius), float32(g.brush.Alpha(now)))
	}

	g.drawHUD()
	g.drawControls()

	rl.EndDrawing()
}

func (g *Game) drawEmitters() {
	w, h := g.sim.Size()
	sx := g.screenWidth / float32(w)
	sy := g.screenHeight / float32(h)
	size := float32(g.cfg.Emitters.Size) * sx
	for _, p := range g.sim.EmitterPositions() {
		renderer.DrawEmitter(float32(p.X)*sx, float32(p.Y)*sy, size)
	}
}

func (g *Game) drawHUD() {
	params := g.sim.Params()
	w, h := g.sim.Size()
	perf := g.sim.Perf().Stats()

	g.hud.Draw(ui.HUDData{
		Title:       g.cfg.Screen.Title,
		Tick:        g.sim.TickCount(),
		FPS:         rl.GetFPS(),
		TicksPerSec: perf.TicksPerSecond,
		GridW:       w,
		GridH:       h,
		Low:         params.Low.Name,
		High:        params.High.Name,
		Blend:       params.Blend,
		Coverage:    g.lastStats.Coverage,
		Takeover:    telemetry.TakeoverCoverage,
		Emitters:    g.sim.Emitters(),
		BrushRadius: g.brush.Radius,
		Bookmark:    g.lastBookmark,
		Paused:      g.paused,
	})

	if g.showPerf {
		g.perfPanel.Draw(ui.PerfPanelData{
			PhaseAvg: perf.PhaseAvg,
			Total:    perf.AvgTickDuration,
		}, telemetry.Phases)
	}

	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight),
		fmt.Sprintf("%s  x%d", controlsLegend, g.stepsPerUpdate))
}

// drawControls draws the parameter panel and applies whatever it changed.
func (g *Game) drawControls() {
	params := g.sim.Params()
	before := ui.ControlValues{
		Blend:         float32(params.Blend),
		DiffusionA:    float32(params.DiffusionA),
		DiffusionB:    float32(params.DiffusionB),
		BrushRadius:   float32(g.brush.Radius),
		StepsPerFrame: float32(g.stepsPerUpdate),
	}
	v := before
	act := g.controls.Draw(int32(g.screenWidth), int32(g.screenHeight), &v, params.Low.Name, params.High.Name)

	if v.Blend != before.Blend {
		g.sim.SetBlend(float64(v.Blend))
	}
	if v.DiffusionA != before.DiffusionA || v.DiffusionB != before.DiffusionB {
		g.sim.SetDiffusion(float64(v.DiffusionA), float64(v.DiffusionB))
	}
	if v.BrushRadius != before.BrushRadius {
		g.brush.SetRadius(float64(v.BrushRadius))
	}
	if v.StepsPerFrame != before.StepsPerFrame {
		g.stepsPerUpdate = max(int(v.StepsPerFrame), 1)
	}

	switch {
	case act.LowPrev:
		g.sim.CyclePreset(sim.BandLow, -1)
	case act.LowNext:
		g.sim.CyclePreset(sim.BandLow, 1)
	case act.HighPrev:
		g.sim.CyclePreset(sim.BandHigh, -1)
	case act.HighNext:
		g.sim.CyclePreset(sim.BandHigh, 1)
	}
	if act.Reseed {
		g.sim.Reseed()
	}
	if act.Clear {
		g.sim.Clear()
	}
	if act.ClearEmitters {
		g.sim.ClearEmitters()
	}
	if act.Snapshot {
		g.snapshot()
	}
}
