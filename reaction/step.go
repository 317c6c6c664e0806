package reaction

import (
	"fmt"

	"github.com/pthm-cable/grayscott/field"
)

// Params holds everything the stepper needs besides the two buffers.
type Params struct {
	DiffusionA float64
	DiffusionB float64

	// Low applies at the top row, High is approached towards the bottom.
	Low, High Rates
	// Blend scales how far down the grid moves from Low towards High.
	Blend float64

	// TimeStep multiplies the whole update. Zero means 1.
	TimeStep float64
}

// DefaultParams returns the Classic→Blobby gradient used by the interactive app.
func DefaultParams() Params {
	return Params{
		DiffusionA: 1.0,
		DiffusionB: 0.5,
		Low:        Classic,
		High:       Blobby,
		Blend:      0.55,
		TimeStep:   1.0,
	}
}

// Uniform returns params with a single regime everywhere.
func Uniform(dA, dB float64, r Rates) Params {
	return Params{DiffusionA: dA, DiffusionB: dB, Low: r, High: r, TimeStep: 1.0}
}

// RatesAt returns the feed and kill rates for row y of an h-row grid.
func (p Params) RatesAt(y, h int) (feed, kill float64) {
	t := float64(y) / float64(h) * p.Blend
	return Lerp(p.Low.Feed, p.High.Feed, t), Lerp(p.Low.Kill, p.High.Kill, t)
}

func (p Params) dt() float64 {
	if p.TimeStep == 0 {
		return 1
	}
	return p.TimeStep
}

// Step writes one forward-Euler update of every interior cell of current
// into next. Boundary cells of next are left untouched.
func Step(current, next *field.Field, p Params) {
	checkPair(current, next)
	stepRows(current, next, p, 1, current.H-1)
}

func checkPair(current, next *field.Field) {
	if !current.SameSize(next) {
		panic(fmt.Sprintf("reaction: step between %dx%d and %dx%d", current.W, current.H, next.W, next.H))
	}
	if current == next {
		panic("reaction: current and next must be distinct buffers")
	}
}

// stepRows updates interior cells of rows [y0, y1). Each cell reads only
// from current and writes only its own cell of next, so any partition of
// rows produces the same result.
func stepRows(current, next *field.Field, p Params, y0, y1 int) {
	w, h := current.W, current.H
	dt := p.dt()
	src := current.Cells()
	dst := next.Cells()
	for y := y0; y < y1; y++ {
		feed, kill := p.RatesAt(y, h)
		row := y * w
		for x := 1; x < w-1; x++ {
			c := src[row+x]
			a, b := c.A, c.B
			abb := a * b * b
			lapA := field.Laplacian(current, x, y, field.SubstanceA)
			lapB := field.Laplacian(current, x, y, field.SubstanceB)
			dst[row+x] = field.Cell{
				A: a + dt*(p.DiffusionA*lapA-abb+feed*(1-a)),
				B: b + dt*(p.DiffusionB*lapB+abb-(kill+feed)*b),
			}
		}
	}
}
