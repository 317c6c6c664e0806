// Package field holds the two-substance chemical grid used by the Gray-Scott
// simulation, together with the stencil, seeding and buffer lifecycle helpers.
package field

import "fmt"

// Substance selects one of the two chemicals stored per cell.
type Substance uint8

const (
	SubstanceA Substance = iota // Replenished by feed
	SubstanceB                  // Consumed by kill
)

// Cell is the pair of concentrations at one grid position.
// Values are nominally in [0,1] but are never clamped.
type Cell struct {
	A, B float64
}

// Quiescent is the background state: all A, no B.
var Quiescent = Cell{A: 1, B: 0}

// Saturated is the state written by seeding and injection.
var Saturated = Cell{A: 0, B: 1}

// Of returns the concentration of substance s.
func (c Cell) Of(s Substance) float64 {
	if s == SubstanceB {
		return c.B
	}
	return c.A
}

// Field is a dense W×H grid of cells stored in row-major order.
type Field struct {
	W, H  int
	cells []Cell
}

// New allocates a field with every cell set to Quiescent.
// Non-positive dimensions are a programming error.
func New(w, h int) *Field {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("field: invalid dimensions %dx%d", w, h))
	}
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Quiescent
	}
	return &Field{W: w, H: h, cells: cells}
}

// Index returns the slice index for (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// At returns the cell at (x, y). Indices are not validated.
func (f *Field) At(x, y int) Cell { return f.cells[y*f.W+x] }

// Set stores c at (x, y). Indices are not validated.
func (f *Field) Set(x, y int, c Cell) { f.cells[y*f.W+x] = c }

// Cells exposes the backing slice for bulk readers such as renderers.
func (f *Field) Cells() []Cell { return f.cells }

// Size returns the grid dimensions.
func (f *Field) Size() (int, int) { return f.W, f.H }

// SameSize reports whether f and o have identical dimensions.
func (f *Field) SameSize(o *Field) bool { return f.W == o.W && f.H == o.H }

// Contains reports whether (x, y) addresses a cell of f.
func (f *Field) Contains(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

// Fill overwrites every cell with c.
func (f *Field) Fill(c Cell) {
	for i := range f.cells {
		f.cells[i] = c
	}
}

// CopyFrom copies the cells of src into f. Both must have the same size.
func (f *Field) CopyFrom(src *Field) {
	if !f.SameSize(src) {
		panic(fmt.Sprintf("field: copy between %dx%d and %dx%d", src.W, src.H, f.W, f.H))
	}
	copy(f.cells, src.cells)
}

// Swap exchanges the roles of two buffers without copying storage.
func Swap(current, next *Field) (*Field, *Field) {
	return next, current
}
