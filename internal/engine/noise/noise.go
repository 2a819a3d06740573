// Package noise provides the fractional Brownian motion generator that
// drives asteroid surface deformation. The underlying primitive is a 2D
// field; 3D samples are synthesized by averaging axis-pair evaluations.
package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source2D is a deterministic 2D noise field with values in [0, 1]. It must
// not carry hidden mutable state: the same coordinates always yield the
// same value.
type Source2D interface {
	Eval2(x, y float64) float64
}

// NewSource returns a seeded Source2D backed by normalized OpenSimplex
// noise.
func NewSource(seed int64) Source2D {
	return opensimplex.NewNormalized(seed)
}

// FBM accumulates octaves of synthesized 3D noise. Persistence scales the
// amplitude and lacunarity scales the frequency per octave.
type FBM struct {
	Source      Source2D
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// Sample3 returns the FBM value at (x, y, z), normalized by the total
// amplitude so the result stays in roughly [-1, 1]. Zero octaves or a
// collapsed amplitude sum yield 0.
func (f FBM) Sample3(x, y, z float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	var sum, amplitudeSum float64

	for o := 0; o < f.Octaves; o++ {
		sum += f.sample3(x*frequency, y*frequency, z*frequency) * amplitude
		amplitudeSum += amplitude
		amplitude *= f.Persistence
		frequency *= f.Lacunarity
	}

	if amplitudeSum == 0 {
		return 0
	}
	return sum / amplitudeSum
}

// sample3 synthesizes one 3D sample from the 2D source: the three axis
// pairs and their swapped converses are averaged, then the [0,1] range is
// mapped to [-1,1].
func (f FBM) sample3(x, y, z float64) float64 {
	s := f.Source
	avg := (s.Eval2(x, y) + s.Eval2(y, z) + s.Eval2(x, z) +
		s.Eval2(y, x) + s.Eval2(z, y) + s.Eval2(z, x)) / 6
	return avg*2 - 1
}
