// Package palette builds colour lookup tables and maps concentrations onto
// them.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/crazy3lf/colorconv"
	"github.com/mazznoer/colorgrad"
)

// ErrUnknownPalette is returned by New for an unsupported palette name.
var ErrUnknownPalette = errors.New("unknown palette")

// LUT is a cyclic colour lookup table.
type LUT []color.RGBA

// Cosine describes a palette of the form offset + amplitude*cos(2π(frequency*t + phase))
// per RGB channel.
type Cosine struct {
	Offset    [3]float64 `yaml:"offset"`
	Amplitude [3]float64 `yaml:"amplitude"`
	Frequency [3]float64 `yaml:"frequency"`
	Phase     [3]float64 `yaml:"phase"`
}

// DefaultCosine is the muted rose/teal palette used by default.
var DefaultCosine = Cosine{
	Offset:    [3]float64{0.458, 0.288, 0.288},
	Amplitude: [3]float64{0.328, 0.208, 0.268},
	Frequency: [3]float64{1.8, 1.8, 1.8},
	Phase:     [3]float64{1.468, 0.788, 0.958},
}

// Build samples the cosine palette at size evenly spaced points.
func (c Cosine) Build(size int) LUT {
	lut := make(LUT, size)
	for i := range lut {
		t := 0.0
		if size > 1 {
			t = float64(i) / float64(size-1)
		}
		var ch [3]uint8
		for k := 0; k < 3; k++ {
			v := c.Offset[k] + c.Amplitude[k]*math.Cos(2*math.Pi*(c.Frequency[k]*t+c.Phase[k]))
			ch[k] = toByte(v)
		}
		lut[i] = color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
	}
	return lut
}

// Gradient samples a named colorgrad preset.
func Gradient(name string, size int) (LUT, error) {
	if size < 2 {
		return nil, fmt.Errorf("palette size %d: must be at least 2", size)
	}
	var grad colorgrad.Gradient
	switch strings.ToLower(name) {
	case "viridis":
		grad = colorgrad.Viridis()
	case "inferno":
		grad = colorgrad.Inferno()
	case "magma":
		grad = colorgrad.Magma()
	case "plasma":
		grad = colorgrad.Plasma()
	case "turbo":
		grad = colorgrad.Turbo()
	case "cividis":
		grad = colorgrad.Cividis()
	default:
		return nil, fmt.Errorf("gradient %q: %w", name, ErrUnknownPalette)
	}

	lut := make(LUT, size)
	for i := range lut {
		t := float64(i) / float64(size-1)
		lut[i] = color.RGBAModel.Convert(grad.At(t)).(color.RGBA)
		lut[i].A = 255
	}
	return lut, nil
}

// Hue builds a full-saturation hue wheel.
func Hue(size int) LUT {
	lut := make(LUT, size)
	for i := range lut {
		hue := 360 * float64(i) / float64(size)
		r, g, b, _ := colorconv.HSVToRGB(hue, 1, 1)
		lut[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return lut
}

// New builds the palette called name with size entries. "cosine" uses cos,
// "hue" the hue wheel, anything else a colorgrad preset.
func New(name string, size int, cos Cosine) (LUT, error) {
	if size < 2 {
		return nil, fmt.Errorf("palette size %d: must be at least 2", size)
	}
	switch strings.ToLower(name) {
	case "", "cosine":
		return cos.Build(size), nil
	case "hue":
		return Hue(size), nil
	default:
		return Gradient(name, size)
	}
}

// Lookup maps t onto the table, shifted by frame*cycle entries so the
// colours drift over time. The index wraps in both directions.
func (l LUT) Lookup(t float64, frame uint64, cycle float64) color.RGBA {
	n := len(l)
	pos := float64(n-1)*t + float64(frame)*cycle
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return l[0]
	}
	i := int(math.Floor(pos)) % n
	if i < 0 {
		i += n
	}
	return l[i]
}

// Shade is the value fed to Lookup for a cell: its B concentration plus a
// vertical tint that grows towards the bottom of the grid.
func Shade(b float64, y, h int, tint float64) float64 {
	return b + float64(y)/float64(h)*tint
}

func toByte(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
