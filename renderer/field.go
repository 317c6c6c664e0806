// Package renderer draws the simulation with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grayscott/field"
	"github.com/pthm-cable/grayscott/frames"
)

// FieldRenderer uploads palette-mapped cells to a texture and stretches it
// over the screen.
type FieldRenderer struct {
	raster *frames.Rasterizer
	pixels []color.RGBA

	tex         rl.Texture2D
	texW, texH  int
	initialized bool
}

// NewFieldRenderer creates a renderer that colours cells with raster.
func NewFieldRenderer(raster *frames.Rasterizer) *FieldRenderer {
	return &FieldRenderer{raster: raster}
}

// init (re)creates the texture at w×h. Must be called after the raylib
// window exists.
func (r *FieldRenderer) init(w, h int) {
	if r.initialized {
		rl.UnloadTexture(r.tex)
	}
	img := rl.GenImageColor(w, h, rl.Black)
	r.tex = rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(r.tex, rl.FilterPoint)
	rl.UnloadImage(img)

	r.texW, r.texH = w, h
	r.initialized = true
}

// Update colours f and uploads it. The texture follows the field size, so
// a resized grid is picked up on the next frame.
func (r *FieldRenderer) Update(f *field.Field, frame uint64) {
	if !r.initialized || f.W != r.texW || f.H != r.texH {
		r.init(f.W, f.H)
	}
	r.pixels = r.raster.Colors(f, frame, r.pixels)
	rl.UpdateTexture(r.tex, r.pixels)
}

// Draw stretches the field over the w×h screen area at (x, y).
func (r *FieldRenderer) Draw(x, y, w, h float32) {
	if !r.initialized {
		return
	}
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(r.texW), Height: float32(r.texH)}
	dst := rl.Rectangle{X: x, Y: y, Width: w, Height: h}
	rl.DrawTexturePro(r.tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees GPU resources.
func (r *FieldRenderer) Unload() {
	if !r.initialized {
		return
	}
	rl.UnloadTexture(r.tex)
	r.initialized = false
}
