package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DrawBrushCursor outlines the brush at (x, y). alpha in [0,1] fades it out.
func DrawBrushCursor(x, y, radius, alpha float32) {
	if alpha <= 0 {
		return
	}
	a := uint8(alpha * 200)
	center := rl.Vector2{X: x, Y: y}
	rl.DrawCircleLinesV(center, radius, rl.Color{R: 255, G: 255, B: 255, A: a})
	rl.DrawCircleLinesV(center, radius+1, rl.Color{R: 0, G: 0, B: 0, A: a / 2})
}

// DrawEmitter marks a persistent source at (x, y).
func DrawEmitter(x, y, size float32) {
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: x - size/2, Y: y - size/2, Width: size, Height: size},
		1,
		rl.Color{R: 255, G: 220, B: 120, A: 180},
	)
}
