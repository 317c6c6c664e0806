// Package noise provides coherent 2D noise sources for seeding the field.
package noise

import (
	"math"
	"math/rand"
)

// Perlin generates gradient noise summed over octaves and normalized to [0,1].
type Perlin struct {
	perm [512]int

	Octaves int     // number of summed octaves (>= 1)
	Falloff float64 // amplitude multiplier per octave
}

// NewPerlin creates a Perlin generator with a seeded permutation table.
func NewPerlin(seed int64, octaves int, falloff float64) *Perlin {
	if octaves < 1 {
		octaves = 1
	}
	if falloff <= 0 {
		falloff = 0.5
	}
	p := &Perlin{Octaves: octaves, Falloff: falloff}
	rng := rand.New(rand.NewSource(seed))

	var perm [256]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}
	return p
}

// Noise2D returns the octave sum at (x, y) mapped into [0,1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	var sum, norm float64
	amp := 1.0
	for o := 0; o < p.Octaves; o++ {
		sum += amp * p.raw(x, y)
		norm += amp
		amp *= p.Falloff
		x *= 2
		y *= 2
	}
	v := 0.5 + 0.5*sum/norm
	return math.Max(0, math.Min(1, v))
}

// raw evaluates a single octave of classic gradient noise in roughly [-1,1].
func (p *Perlin) raw(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	X := int(fx) & 255
	Y := int(fy) & 255

	x -= fx
	y -= fy

	u := fade(x)
	v := fade(y)

	A := p.perm[X] + Y
	B := p.perm[X+1] + Y

	return lerp(v,
		lerp(u, grad2D(p.perm[A], x, y), grad2D(p.perm[B], x-1, y)),
		lerp(u, grad2D(p.perm[A+1], x, y-1), grad2D(p.perm[B+1], x-1, y-1)))
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad2D picks one of eight gradient directions from the hash.
func grad2D(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}
