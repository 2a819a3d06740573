package geometry

import (
	"github.com/Faultbox/voidharvest/pkg/math"
)

// icoT is the golden ratio, the defining constant of the icosahedron.
var icoT = float32(1.6180339887498949)

// Icosahedron returns the canonical 12-vertex, 20-triangle icosahedron with
// every vertex projected onto a sphere of the given radius.
func Icosahedron(radius float32) ([]math.Vec3, []uint32) {
	t := icoT
	raw := []math.Vec3{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	vertices := make([]math.Vec3, len(raw))
	for i, v := range raw {
		vertices[i] = v.Normalize().Scale(radius)
	}
	indices := []uint32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return vertices, indices
}

// Icosphere builds an icosahedron at the given radius and subdivides it the
// requested number of times. Vertex count after k passes is 10*4^k + 2.
func Icosphere(radius float32, subdivisions int) ([]math.Vec3, []uint32) {
	vertices, indices := Icosahedron(radius)
	for i := 0; i < subdivisions; i++ {
		vertices, indices = Subdivide(radius, vertices, indices)
	}
	return vertices, indices
}

// Subdivide performs one subdivision pass: each triangle is split into four
// using edge midpoints re-projected onto the sphere. Midpoints are cached
// per edge so neighbors share them; the cache lives for a single pass
// because indices shift between passes.
func Subdivide(radius float32, vertices []math.Vec3, indices []uint32) ([]math.Vec3, []uint32) {
	midpoints := make(map[uint64]uint32, len(indices))
	out := make([]uint32, 0, len(indices)*4)

	midpoint := func(i, j uint32) uint32 {
		key := edgeKey(i, j)
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		mid := vertices[i].Add(vertices[j]).Scale(0.5)
		dir := mid.Normalize()
		if dir.Length() < 0.5 {
			// Antipodal edge through the origin; fall back to one endpoint's
			// direction, then to a fixed axis.
			dir = vertices[i].Normalize()
			if dir.Length() < 0.5 {
				dir = math.Vec3{Y: 1}
			}
		}
		idx := uint32(len(vertices))
		vertices = append(vertices, dir.Scale(radius))
		midpoints[key] = idx
		return idx
	}

	for t := 0; t < len(indices); t += 3 {
		v1, v2, v3 := indices[t], indices[t+1], indices[t+2]
		a := midpoint(v1, v2)
		b := midpoint(v2, v3)
		c := midpoint(v3, v1)
		out = append(out,
			v1, a, c,
			v2, b, a,
			v3, c, b,
			a, b, c,
		)
	}
	return vertices, out
}

// edgeKey packs an undirected edge into one map key.
func edgeKey(i, j uint32) uint64 {
	if i > j {
		i, j = j, i
	}
	return uint64(i)<<32 | uint64(j)
}
