// Package sources keeps persistent chemical emitters in an ECS world and
// applies them to the field once per tick.
package sources

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/grayscott/components"
	"github.com/pthm-cable/grayscott/field"
)

// Emitters is the registry of live chemical sources.
type Emitters struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Position, components.Emitter]
	filter *ecs.Filter2[components.Position, components.Emitter]
	count  int

	// MaxCount caps the number of live emitters (0 = unlimited).
	MaxCount int
}

// NewEmitters creates an empty registry.
func NewEmitters(maxCount int) *Emitters {
	world := ecs.NewWorld()
	return &Emitters{
		world:    world,
		mapper:   ecs.NewMap2[components.Position, components.Emitter](world),
		filter:   ecs.NewFilter2[components.Position, components.Emitter](world),
		MaxCount: maxCount,
	}
}

// Add registers an emitter at cell (x, y). ttl < 0 keeps it alive until
// cleared. Returns false when the registry is full or the emitter would
// never write anything.
func (e *Emitters) Add(x, y, size, ttl, every int) bool {
	if size <= 0 || ttl == 0 {
		return false
	}
	if e.MaxCount > 0 && e.count >= e.MaxCount {
		return false
	}
	pos := components.Position{X: x, Y: y}
	em := components.Emitter{Size: size, Remaining: ttl, Every: every}
	e.mapper.NewEntity(&pos, &em)
	e.count++
	return true
}

// Count returns the number of live emitters.
func (e *Emitters) Count() int {
	return e.count
}

// Apply fires every due emitter into f, ages all of them and removes the
// expired ones along with any left outside the grid by a resize. Returns
// the number of cells written.
func (e *Emitters) Apply(f *field.Field) int {
	if e.count == 0 {
		return 0
	}

	// First pass: fire and age (no structural changes during the query).
	var toRemove []ecs.Entity
	written := 0

	query := e.filter.Query()
	for query.Next() {
		pos, em := query.Get()
		if !f.Contains(pos.X, pos.Y) {
			toRemove = append(toRemove, query.Entity())
			continue
		}
		if em.Due() {
			written += field.Inject(f, pos.X, pos.Y, em.Size)
		}
		em.Age++
		if em.Remaining > 0 {
			em.Remaining--
		}
		if em.Expired() {
			toRemove = append(toRemove, query.Entity())
		}
	}

	// Second pass: remove.
	for _, ent := range toRemove {
		e.mapper.Remove(ent)
		e.count--
	}
	return written
}

// Clear removes every emitter.
func (e *Emitters) Clear() {
	var all []ecs.Entity
	query := e.filter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, ent := range all {
		e.mapper.Remove(ent)
	}
	e.count = 0
}

// Positions returns the cell positions of all live emitters.
func (e *Emitters) Positions() []components.Position {
	out := make([]components.Position, 0, e.count)
	query := e.filter.Query()
	for query.Next() {
		pos, _ := query.Get()
		out = append(out, *pos)
	}
	return out
}
