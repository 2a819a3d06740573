// Package asteroid turns icospheres into irregular flat-shaded rocks and
// spawns them in deterministic batches.
package asteroid

import (
	"github.com/Faultbox/voidharvest/internal/engine/geometry"
	"github.com/Faultbox/voidharvest/internal/engine/noise"
	"github.com/Faultbox/voidharvest/pkg/math"
)

// deformEpsilon is the strength below which the noise pass is skipped
// entirely.
const deformEpsilon = 0.001

// Params are the shape inputs for one asteroid.
type Params struct {
	Radius         float32
	Subdivisions   int
	Irregularity   float32 // 0 = perfect sphere, 1 = full random scale
	DeformStrength float32
	NoiseOffset    math.Vec3
	NoiseScale     float32

	// Anisotropic scale bounds drawn per axis.
	MinScale float32
	MaxScale float32

	// FBM shape.
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// DefaultParams returns the tuning used by the asteroid field.
func DefaultParams() Params {
	return Params{
		Radius:         2,
		Subdivisions:   2,
		Irregularity:   0.6,
		DeformStrength: 0.35,
		NoiseScale:     0.8,
		MinScale:       0.6,
		MaxScale:       1.4,
		Octaves:        4,
		Persistence:    0.5,
		Lacunarity:     2.0,
	}
}

// RandSource is the slice of *rand.Rand the builder consumes. The caller
// owns the stream and seeds it per instance, so a batch is reproducible
// from its base seed alone.
type RandSource interface {
	Float32() float32
}

// Build generates one rock. The pipeline order is fixed: icosphere,
// anisotropic scale, noise deformation, flat shading.
func Build(p Params, src noise.Source2D, rng RandSource) *geometry.Mesh {
	vertices, indices := geometry.Icosphere(p.Radius, p.Subdivisions)

	// Three independent axis factors, pulled toward 1 as irregularity
	// drops. Drawn before the deform test so the random stream advances
	// identically regardless of strength.
	scale := math.Vec3{
		X: lerp(1, randRange(rng, p.MinScale, p.MaxScale), p.Irregularity),
		Y: lerp(1, randRange(rng, p.MinScale, p.MaxScale), p.Irregularity),
		Z: lerp(1, randRange(rng, p.MinScale, p.MaxScale), p.Irregularity),
	}
	for i := range vertices {
		vertices[i] = vertices[i].Mul(scale)
	}

	if p.DeformStrength >= deformEpsilon {
		fbm := noise.FBM{
			Source:      src,
			Octaves:     p.Octaves,
			Persistence: p.Persistence,
			Lacunarity:  p.Lacunarity,
		}
		for i, v := range vertices {
			dir := v.Normalize()
			if dir.Length() < 0.5 {
				dir = math.Vec3{Y: 1}
			}
			s := v.Add(p.NoiseOffset).Scale(p.NoiseScale)
			displacement := float32(fbm.Sample3(float64(s.X), float64(s.Y), float64(s.Z))) *
				p.DeformStrength * p.Radius
			vertices[i] = v.Add(dir.Scale(displacement))
		}
	}

	return geometry.FlatShadeIndexed(vertices, indices)
}

// ColliderRadius approximates the bounding sphere of a scaled, deformed
// rock. The formula is a heuristic, not a guaranteed bound: high
// irregularity or deform strength can push vertices slightly outside it.
func ColliderRadius(p Params) float32 {
	return p.Radius * (1 + p.Irregularity*(p.MaxScale-1)/2) * 0.9
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func randRange(rng RandSource, min, max float32) float32 {
	return min + rng.Float32()*(max-min)
}
