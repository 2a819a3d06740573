// Package geometry builds the procedural meshes used for ship parts,
// asteroids, and pickups. Everything is synthesized at startup from shape
// parameters; no mesh assets are loaded from disk.
package geometry

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/voidharvest/pkg/math"
)

// Mesh holds generated geometry ready for GPU upload. Positions, Normals,
// and UVs are parallel slices; Indices reference them in CCW order, so
// front faces point outward. A mesh is built once and never mutated after
// generation.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks the structural invariants: parallel attribute slices,
// index count divisible by three, and every index in range.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n {
		return fmt.Errorf("normals length %d != positions length %d", len(m.Normals), n)
	}
	if len(m.UVs) != n {
		return fmt.Errorf("uvs length %d != positions length %d", len(m.UVs), n)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// BoundingRadius returns the distance from the origin to the farthest vertex.
func (m *Mesh) BoundingRadius() float32 {
	var r float32
	for _, p := range m.Positions {
		if l := p.Length(); l > r {
			r = l
		}
	}
	return r
}

// FaceNormal computes the geometric normal of triangle t from its vertex
// positions. Degenerate triangles fall back to the normalized centroid
// direction, then to +Y.
func (m *Mesh) FaceNormal(t int) math.Vec3 {
	i1 := m.Indices[t*3]
	i2 := m.Indices[t*3+1]
	i3 := m.Indices[t*3+2]
	return faceNormal(m.Positions[i1], m.Positions[i2], m.Positions[i3])
}

func faceNormal(p1, p2, p3 math.Vec3) math.Vec3 {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	l := n.Length()
	if l > 1e-6 && !isNaN(n) {
		return n.Scale(1 / l)
	}
	// Zero-area triangle: point away from the origin through the centroid.
	centroid := p1.Add(p2).Add(p3).Scale(1.0 / 3.0)
	if c := centroid.Normalize(); c.Length() > 0.5 {
		return c
	}
	return math.Vec3{Y: 1}
}

func isNaN(v math.Vec3) bool {
	return gomath.IsNaN(float64(v.X)) || gomath.IsNaN(float64(v.Y)) || gomath.IsNaN(float64(v.Z))
}

// FlatShade rebuilds the mesh with three unique vertices per triangle, each
// carrying the triangle's geometric face normal. Sharing vertices across a
// deformed surface would smooth-shade it; duplication is what makes rock
// facets read as hard edges.
func FlatShade(m *Mesh) *Mesh {
	triCount := m.TriangleCount()
	out := &Mesh{
		Positions: make([]math.Vec3, 0, triCount*3),
		Normals:   make([]math.Vec3, 0, triCount*3),
		UVs:       make([]math.Vec2, 0, triCount*3),
		Indices:   make([]uint32, 0, triCount*3),
	}
	for t := 0; t < triCount; t++ {
		n := m.FaceNormal(t)
		for k := 0; k < 3; k++ {
			idx := m.Indices[t*3+k]
			out.Indices = append(out.Indices, uint32(len(out.Positions)))
			out.Positions = append(out.Positions, m.Positions[idx])
			out.Normals = append(out.Normals, n)
			out.UVs = append(out.UVs, m.UVs[idx])
		}
	}
	return out
}

// FlatShadeIndexed flat-shades raw indexed positions that carry no
// attributes yet. UVs are derived from the spherical direction of each
// vertex, which is what deformed icosphere surfaces want.
func FlatShadeIndexed(positions []math.Vec3, indices []uint32) *Mesh {
	src := &Mesh{
		Positions: positions,
		Normals:   make([]math.Vec3, len(positions)),
		UVs:       make([]math.Vec2, len(positions)),
		Indices:   indices,
	}
	for i, p := range positions {
		src.UVs[i] = sphericalUV(p)
	}
	return FlatShade(src)
}

func sphericalUV(p math.Vec3) math.Vec2 {
	d := p.Normalize()
	if d.Length() < 0.5 {
		return math.Vec2{X: 0.5, Y: 0.5}
	}
	u := float32(gomath.Atan2(float64(d.Z), float64(d.X))/(2*gomath.Pi)) + 0.5
	v := float32(gomath.Asin(float64(clamp(d.Y, -1, 1)))/gomath.Pi) + 0.5
	return math.Vec2{X: u, Y: v}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
