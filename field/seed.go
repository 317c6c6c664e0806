package field

import "fmt"

// Region is a half-open rectangle [X0,X1) × [Y0,Y1) of grid cells.
type Region struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether r contains no cells.
func (r Region) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Area returns the number of cells in r.
func (r Region) Area() int {
	if r.Empty() {
		return 0
	}
	return (r.X1 - r.X0) * (r.Y1 - r.Y0)
}

// Clip intersects r with a w×h grid.
func (r Region) Clip(w, h int) Region {
	r.X0 = max(r.X0, 0)
	r.Y0 = max(r.Y0, 0)
	r.X1 = min(r.X1, w)
	r.Y1 = min(r.Y1, h)
	return r
}

// Square returns the size×size region centred on (cx, cy). Integer halving
// matches the brush: even sizes straddle the centre exactly.
func Square(cx, cy, size int) Region {
	half := size / 2
	return Region{X0: cx - half, Y0: cy - half, X1: cx - half + size, Y1: cy - half + size}
}

// CenteredRegion returns the default seed square for a w×h grid: side
// floor(h*fraction), centred on the grid and clipped to it.
func CenteredRegion(w, h int, fraction float64) Region {
	side := int(float64(h) * fraction)
	return Square(w/2, h/2, side).Clip(w, h)
}

// Noise2D is a deterministic, continuous 2D noise function returning values
// roughly in [0,1].
type Noise2D interface {
	Noise2D(x, y float64) float64
}

// NoiseFunc adapts a plain function to Noise2D.
type NoiseFunc func(x, y float64) float64

// Noise2D calls fn(x, y).
func (fn NoiseFunc) Noise2D(x, y float64) float64 { return fn(x, y) }

// Seed saturates every cell in region whose noise value at
// (x*scale, y*scale) exceeds threshold. Other cells keep their state.
// It returns the number of cells written.
func Seed(f *Field, region Region, noise Noise2D, scale, threshold float64) int {
	r := region.Clip(f.W, f.H)
	seeded := 0
	for y := r.Y0; y < r.Y1; y++ {
		row := y * f.W
		for x := r.X0; x < r.X1; x++ {
			if noise.Noise2D(float64(x)*scale, float64(y)*scale) > threshold {
				f.cells[row+x] = Saturated
				seeded++
			}
		}
	}
	return seeded
}

// Inject saturates the size×size square centred on (cx, cy), overwriting
// whatever was there. The square is clipped to the grid; the centre itself
// must lie inside it and size must not be negative. It returns the number of
// cells written.
func Inject(f *Field, cx, cy, size int) int {
	if !f.Contains(cx, cy) {
		panic(fmt.Sprintf("field: inject centre (%d,%d) outside %dx%d grid", cx, cy, f.W, f.H))
	}
	if size < 0 {
		panic(fmt.Sprintf("field: negative inject size %d", size))
	}
	if size == 0 {
		return 0
	}
	r := Square(cx, cy, size).Clip(f.W, f.H)
	for y := r.Y0; y < r.Y1; y++ {
		row := f.cells[y*f.W+r.X0 : y*f.W+r.X1]
		for i := range row {
			row[i] = Saturated
		}
	}
	return r.Area()
}
