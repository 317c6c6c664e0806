package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the overlay widgets with one Theme.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// Panel fills a translucent box behind a group of widgets.
func (r *Renderer) Panel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.Panel)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.Border)
}

// Heading draws a section title and returns the next line's Y.
func (r *Renderer) Heading(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeadingSize, r.Theme.Heading)
	return y + r.Theme.Line
}

// Row draws "label: value" with the value in a fixed column.
func (r *Renderer) Row(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.TextSize, r.Theme.Label)
	rl.DrawText(value, x+r.Theme.LabelW, y, r.Theme.TextSize, r.Theme.Value)
	return y + r.Theme.Line
}

// Gauge draws a fraction in [0,1] as a bar followed by a percentage. A mark
// in (0,1) adds a tick at that fraction.
func (r *Renderer) Gauge(x, y int32, label string, value, mark float64, width int32) int32 {
	value = max(0, min(1, value))
	gx := x + r.Theme.LabelW
	gw := width - r.Theme.LabelW - 50

	rl.DrawText(label+":", x, y, r.Theme.TextSize, r.Theme.Label)
	rl.DrawRectangle(gx, y+2, gw, r.Theme.GaugeH, r.Theme.Track)
	rl.DrawRectangle(gx, y+2, int32(float64(gw)*value), r.Theme.GaugeH, r.Theme.Fill)
	if mark > 0 && mark < 1 {
		mx := gx + int32(float64(gw)*mark)
		rl.DrawLine(mx, y, mx, y+r.Theme.GaugeH+4, r.Theme.Marker)
	}
	rl.DrawText(fmt.Sprintf("%.1f%%", value*100), gx+gw+5, y, r.Theme.TextSize, r.Theme.Value)

	return y + r.Theme.Line + 2
}

// Notice draws a single highlighted line.
func (r *Renderer) Notice(x, y int32, text string) int32 {
	rl.DrawText(text, x, y, r.Theme.TextSize+2, r.Theme.Alert)
	return y + r.Theme.Line + 2
}
