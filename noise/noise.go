package noise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/grayscott/field"
)

// ErrUnknownKind is returned by New for an unsupported noise name.
var ErrUnknownKind = errors.New("unknown noise kind")

// Kind names accepted by New.
const (
	KindPerlin  = "perlin"
	KindSimplex = "simplex"
)

// Simplex wraps OpenSimplex noise, already normalized to [0,1).
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates a seeded simplex source.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.NewNormalized(seed)}
}

// Noise2D evaluates the noise at (x, y).
func (s *Simplex) Noise2D(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

// New builds a noise source by name.
func New(kind string, seed int64, octaves int, falloff float64) (field.Noise2D, error) {
	switch strings.ToLower(kind) {
	case "", KindPerlin:
		return NewPerlin(seed, octaves, falloff), nil
	case KindSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("noise %q: %w", kind, ErrUnknownKind)
	}
}
