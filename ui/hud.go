package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title       string
	Tick        int32
	FPS         int32
	TicksPerSec float64
	GridW       int
	GridH       int
	Low, High   string
	Blend       float64
	Coverage    float64 // share of cells above the coverage threshold
	Takeover    float64 // coverage at which a takeover bookmark fires
	Emitters    int
	BrushRadius float64
	Bookmark    string // most recent bookmark, empty if none
	Paused      bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	r.Panel(5, 5, 260, 156)

	rl.DrawText(data.Title, 12, 10, 20, rl.White)
	y := int32(34)
	y = r.Row(12, y, "Tick", fmt.Sprintf("%d (%.0f/s, %d fps)", data.Tick, data.TicksPerSec, data.FPS))
	y = r.Row(12, y, "Grid", fmt.Sprintf("%dx%d", data.GridW, data.GridH))
	y = r.Row(12, y, "Presets", fmt.Sprintf("%s -> %s @ %.2f", data.Low, data.High, data.Blend))
	y = r.Gauge(12, y, "Coverage", data.Coverage, data.Takeover, 250)
	y = r.Row(12, y, "Brush", fmt.Sprintf("r=%.0f  emitters=%d", data.BrushRadius, data.Emitters))

	y += 2
	if data.Bookmark != "" {
		y = r.Notice(12, y, data.Bookmark)
	}
	if data.Paused {
		r.Notice(12, y, "PAUSED")
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	PhaseAvg map[string]time.Duration
	Total    time.Duration
}

// PerfPanel renders the per-phase timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the phases in the given order.
func (p *PerfPanel) Draw(data PerfPanelData, phases []string) {
	x := p.x
	y := p.y

	rl.DrawText("Tick Phases", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Total: %s", data.Total.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, name := range phases {
		avg := data.PhaseAvg[name]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", name, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
