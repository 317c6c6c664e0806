package field

import "fmt"

// Pair owns the current/next buffers. The two slots never move; Swap only
// flips which one is current.
type Pair struct {
	slots [2]*Field
	cur   int
	gen   uint64
}

// NewPair allocates two quiescent buffers of the given size.
func NewPair(w, h int) *Pair {
	return &Pair{slots: [2]*Field{New(w, h), New(w, h)}}
}

// Current returns the buffer holding the latest completed state.
func (p *Pair) Current() *Field { return p.slots[p.cur] }

// Next returns the buffer the stepper writes into.
func (p *Pair) Next() *Field { return p.slots[1-p.cur] }

// Swap makes Next the new Current.
func (p *Pair) Swap() { p.cur = 1 - p.cur }

// Size returns the shared dimensions of both buffers.
func (p *Pair) Size() (int, int) { return p.slots[0].Size() }

// Generation counts reallocations. Holders of a buffer can compare it with
// the value seen at acquisition to detect that a resize replaced the pair.
func (p *Pair) Generation() uint64 { return p.gen }

// Reset returns both buffers to the quiescent state.
func (p *Pair) Reset() {
	p.slots[0].Fill(Quiescent)
	p.slots[1].Fill(Quiescent)
}

// Sync copies Current into Next so that boundary cells, which the stepper
// never writes, agree in both buffers.
func (p *Pair) Sync() { p.Next().CopyFrom(p.Current()) }

// SyncEdges copies only the boundary ring of Current into Next. Cheaper
// than Sync after a mutation that may have touched an edge.
func (p *Pair) SyncEdges() {
	cur, next := p.Current(), p.Next()
	w, h := cur.W, cur.H
	copy(next.cells[:w], cur.cells[:w])
	copy(next.cells[(h-1)*w:], cur.cells[(h-1)*w:])
	for y := 1; y < h-1; y++ {
		i := y * w
		next.cells[i] = cur.cells[i]
		next.cells[i+w-1] = cur.cells[i+w-1]
	}
}

// Resize replaces both buffers with new ones of size w×h, preserving the
// overlapping region. The current slot index is kept.
func (p *Pair) Resize(w, h int) {
	cur, next := Resize(p.Current(), p.Next(), w, h)
	p.slots[p.cur] = cur
	p.slots[1-p.cur] = next
	p.gen++
}

// Resize allocates a fresh quiescent pair of size w×h and copies the cells of
// the overlapping rectangle from the old pair. Both inputs must share a size.
func Resize(current, next *Field, w, h int) (*Field, *Field) {
	if !current.SameSize(next) {
		panic(fmt.Sprintf("field: resize of mismatched pair %dx%d / %dx%d", current.W, current.H, next.W, next.H))
	}
	nc, nn := New(w, h), New(w, h)
	copyOverlap(nc, current)
	copyOverlap(nn, next)
	return nc, nn
}

func copyOverlap(dst, src *Field) {
	cw := min(dst.W, src.W)
	ch := min(dst.H, src.H)
	for y := 0; y < ch; y++ {
		copy(dst.cells[y*dst.W:y*dst.W+cw], src.cells[y*src.W:y*src.W+cw])
	}
}
