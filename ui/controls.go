package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlValues are the parameters the panel edits in place.
type ControlValues struct {
	Blend         float32
	DiffusionA    float32
	DiffusionB    float32
	BrushRadius   float32
	StepsPerFrame float32
}

// ControlActions reports which buttons were pressed this frame.
type ControlActions struct {
	Reseed        bool
	Clear         bool
	ClearEmitters bool
	LowPrev       bool
	LowNext       bool
	HighPrev      bool
	HighNext      bool
	Snapshot      bool
}

// ControlsPanel renders the right-side parameter panel.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
	visible  bool

	MaxBrushRadius float32
}

// NewControlsPanel creates a hidden panel of the given width.
func NewControlsPanel(width int32, maxBrushRadius float32) *ControlsPanel {
	return &ControlsPanel{
		renderer:       NewRenderer(),
		width:          width,
		MaxBrushRadius: maxBrushRadius,
	}
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether a screen point lies over the panel, so clicks
// there do not paint the field.
func (c *ControlsPanel) Contains(screenW int32, x, y float32) bool {
	return c.visible && x >= float32(screenW-c.width)
}

// Draw renders the panel and applies slider edits to v.
func (c *ControlsPanel) Draw(screenW, screenH int32, v *ControlValues, low, high string) ControlActions {
	var act ControlActions
	if !c.visible {
		return act
	}

	r := c.renderer
	pad := float32(r.Theme.Pad)
	x0 := screenW - c.width
	r.Panel(x0, 0, c.width, screenH)

	x := float32(x0) + pad
	y := pad
	sliderW := float32(c.width) - 2*pad - 60

	rl.DrawText("Parameters", int32(x), int32(y), 16, rl.White)
	y += 26

	slider := func(label, format string, value *float32, lo, hi float32) {
		rl.DrawText(label, int32(x), int32(y), r.Theme.TextSize, r.Theme.Label)
		y += 14
		*value = gui.SliderBar(
			rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 16},
			"", "",
			*value, lo, hi,
		)
		rl.DrawText(fmt.Sprintf(format, *value), int32(x+sliderW+8), int32(y+2), r.Theme.TextSize, r.Theme.Value)
		y += 26
	}

	slider("Blend", "%.2f", &v.Blend, 0, 1)
	slider("Diffusion A", "%.2f", &v.DiffusionA, 0, 1.5)
	slider("Diffusion B", "%.2f", &v.DiffusionB, 0, 1.5)
	slider("Brush radius", "%.0f", &v.BrushRadius, 1, c.MaxBrushRadius)
	slider("Steps/frame", "%.0f", &v.StepsPerFrame, 1, 32)

	y += 6
	half := (float32(c.width) - 3*pad) / 2

	y = float32(r.Heading(int32(x), int32(y), "Low: "+low))
	act.LowPrev = gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, "<")
	act.LowNext = gui.Button(rl.Rectangle{X: x + half + pad, Y: y, Width: half, Height: 24}, ">")
	y += 32

	y = float32(r.Heading(int32(x), int32(y), "High: "+high))
	act.HighPrev = gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, "<")
	act.HighNext = gui.Button(rl.Rectangle{X: x + half + pad, Y: y, Width: half, Height: 24}, ">")
	y += 40

	act.Reseed = gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 28}, "Reseed")
	act.Clear = gui.Button(rl.Rectangle{X: x + half + pad, Y: y, Width: half, Height: 28}, "Clear")
	y += 36
	act.ClearEmitters = gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 28}, "Drop emitters")
	act.Snapshot = gui.Button(rl.Rectangle{X: x + half + pad, Y: y, Width: half, Height: 28}, "Snapshot")

	return act
}
