// Package ui draws the HUD and the parameter panel over the field.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme collects the colours and metrics shared by the overlay widgets.
type Theme struct {
	Panel   rl.Color
	Border  rl.Color
	Heading rl.Color
	Label   rl.Color
	Value   rl.Color
	Alert   rl.Color // bookmarks and the pause notice
	Track   rl.Color
	Fill    rl.Color
	Marker  rl.Color

	Pad         int32
	Line        int32
	LabelW      int32
	GaugeH      int32
	TextSize    int32
	HeadingSize int32
}

// DefaultTheme sits over the dark end of the default cosine palette.
func DefaultTheme() Theme {
	return Theme{
		Panel:       rl.Color{R: 10, G: 14, B: 22, A: 210},
		Border:      rl.Color{R: 70, G: 90, B: 110, A: 255},
		Heading:     rl.Color{R: 120, G: 200, B: 230, A: 255},
		Label:       rl.LightGray,
		Value:       rl.RayWhite,
		Alert:       rl.Orange,
		Track:       rl.Color{R: 30, G: 34, B: 40, A: 255},
		Fill:        rl.Color{R: 90, G: 190, B: 170, A: 255},
		Marker:      rl.Red,
		Pad:         10,
		Line:        16,
		LabelW:      80,
		GaugeH:      10,
		TextSize:    12,
		HeadingSize: 14,
	}
}
