package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grayscott/sim"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyN) && g.paused {
		g.stepOnce = true
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 32 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.sim.Reseed()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.sim.Clear()
	}
	if rl.IsKeyPressed(rl.KeyE) {
		g.sim.ClearEmitters()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.snapshot()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showPerf = !g.showPerf
	}

	if rl.IsKeyPressed(rl.KeyLeftBracket) {
		g.sim.CyclePreset(sim.BandLow, -1)
	}
	if rl.IsKeyPressed(rl.KeyRightBracket) {
		g.sim.CyclePreset(sim.BandLow, 1)
	}
	if rl.IsKeyPressed(rl.KeySemicolon) {
		g.sim.CyclePreset(sim.BandHigh, -1)
	}
	if rl.IsKeyPressed(rl.KeyApostrophe) {
		g.sim.CyclePreset(sim.BandHigh, 1)
	}

	g.handleMouse()
}

// handleMouse paints with the brush, places emitters and resizes the brush.
func (g *Game) handleMouse() {
	now := time.Now()
	mouse := rl.GetMousePosition()

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		g.brush.Touch(now)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.brush.Wheel(float64(wheel))
		g.brush.Touch(now)
	}

	if g.controls.Contains(int32(g.screenWidth), mouse.X, mouse.Y) {
		return
	}
	cx, cy, ok := g.screenToCell(mouse.X, mouse.Y)
	if !ok {
		return
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		g.brush.Touch(now)
		g.sim.InjectAt(cx, cy, g.brush.InjectSize(g.cellScale()))
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.sim.AddEmitter(cx, cy)
	}
}

// cellScale is the on-screen width of one cell in pixels.
func (g *Game) cellScale() float64 {
	w, _ := g.sim.Size()
	return float64(g.screenWidth) / float64(w)
}

// screenToCell maps a screen point to the cell under it. Points outside the
// grid are rejected.
func (g *Game) screenToCell(x, y float32) (int, int, bool) {
	if x < 0 || y < 0 || x >= g.screenWidth || y >= g.screenHeight {
		return 0, 0, false
	}
	w, h := g.sim.Size()
	cx := int(x / g.screenWidth * float32(w))
	cy := int(y / g.screenHeight * float32(h))
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return 0, 0, false
	}
	return cx, cy, true
}

// handleResize checks for window resize and re-grids the simulation.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.sim.Resize(g.cfg.GridFor(int(w), int(h)))
}
