// Package frames renders the field to images for snapshots and video
// without a window.
package frames

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pthm-cable/grayscott/field"
	"github.com/pthm-cable/grayscott/palette"
)

// Rasterizer maps field cells to palette colours.
type Rasterizer struct {
	LUT   palette.LUT
	Tint  float64 // vertical tint added to B before lookup
	Cycle float64 // palette entries shifted per frame
	Scale int     // output pixels per cell
}

// Colors writes one colour per cell into dst (resized as needed) and
// returns it.
func (r *Rasterizer) Colors(f *field.Field, frame uint64, dst []color.RGBA) []color.RGBA {
	n := f.W * f.H
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]

	cells := f.Cells()
	for y := 0; y < f.H; y++ {
		row := y * f.W
		for x := 0; x < f.W; x++ {
			t := palette.Shade(cells[row+x].B, y, f.H, r.Tint)
			dst[row+x] = r.LUT.Lookup(t, frame, r.Cycle)
		}
	}
	return dst
}

// Render rasterizes f into a new pixmap at the configured scale.
func (r *Rasterizer) Render(f *field.Field, frame uint64) *gg.Pixmap {
	scale := r.Scale
	if scale < 1 {
		scale = 1
	}
	cols := r.Colors(f, frame, nil)

	pm := gg.NewPixmap(f.W*scale, f.H*scale)
	data := pm.Data()
	stride := f.W * scale * 4
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := cols[y*f.W+x]
			for sy := 0; sy < scale; sy++ {
				i := (y*scale+sy)*stride + x*scale*4
				for sx := 0; sx < scale; sx++ {
					data[i] = c.R
					data[i+1] = c.G
					data[i+2] = c.B
					data[i+3] = 255
					i += 4
				}
			}
		}
	}
	return pm
}

// view exposes the pixmap's buffer as an image without copying.
func view(pm *gg.Pixmap) *image.RGBA {
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

// Stamp draws label in the top-left corner of pm over a dark box.
func Stamp(pm *gg.Pixmap, label string) {
	if label == "" {
		return
	}
	img := view(pm)
	face := basicfont.Face7x13
	w := len(label)*7 + 8
	h := 13 + 8
	bg := color.RGBA{A: 255}
	for y := 0; y < h && y < pm.Height(); y++ {
		for x := 0; x < w && x < pm.Width(); x++ {
			img.SetRGBA(x, y, bg)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(4), Y: fixed.I(4 + 11)},
	}
	d.DrawString(label)
}
