package geometry

import (
	gomath "math"

	"github.com/Faultbox/voidharvest/pkg/math"
)

// minDimension replaces non-positive shape parameters. Bad input degrades
// the visuals instead of halting generation.
const minDimension = 0.001

// Face normal constants for box-style meshes, in face order.
var (
	FaceFront  = math.Vec3{Z: -1}
	FaceBack   = math.Vec3{Z: 1}
	FaceTop    = math.Vec3{Y: 1}
	FaceBottom = math.Vec3{Y: -1}
	FaceRight  = math.Vec3{X: 1}
	FaceLeft   = math.Vec3{X: -1}
)

// Cube builds an axis-aligned box centered at the origin. Each of the six
// faces gets four unique vertices and one flat normal, so edges stay hard.
func Cube(width, height, depth float32) *Mesh {
	return Frustum(width, height, width, height, depth)
}

// Frustum builds a tapered box: the front face (-Z) uses frontWidth and
// frontHeight, the back face (+Z) uses backWidth and backHeight, and the
// four side faces reuse those corners verbatim to form the taper. A frustum
// with equal front and back dimensions is a cube.
func Frustum(frontWidth, frontHeight, backWidth, backHeight, depth float32) *Mesh {
	fw := positive(frontWidth) / 2
	fh := positive(frontHeight) / 2
	bw := positive(backWidth) / 2
	bh := positive(backHeight) / 2
	fz := -positive(depth) / 2
	bz := positive(depth) / 2

	// Front corners (z = fz) and back corners (z = bz), both CCW from
	// bottom-left when viewed from the front.
	f0 := math.Vec3{X: -fw, Y: -fh, Z: fz}
	f1 := math.Vec3{X: fw, Y: -fh, Z: fz}
	f2 := math.Vec3{X: fw, Y: fh, Z: fz}
	f3 := math.Vec3{X: -fw, Y: fh, Z: fz}
	b0 := math.Vec3{X: -bw, Y: -bh, Z: bz}
	b1 := math.Vec3{X: bw, Y: -bh, Z: bz}
	b2 := math.Vec3{X: bw, Y: bh, Z: bz}
	b3 := math.Vec3{X: -bw, Y: bh, Z: bz}

	m := &Mesh{}
	// Fixed face order: front, back, top, bottom, right, left.
	addQuad(m, f0, f3, f2, f1, FaceFront)
	addQuad(m, b0, b1, b2, b3, FaceBack)
	addQuad(m, f2, f3, b3, b2, FaceTop)
	addQuad(m, f0, f1, b1, b0, FaceBottom)
	addQuad(m, f1, f2, b2, b1, FaceRight)
	addQuad(m, f3, f0, b0, b3, FaceLeft)
	return m
}

// addQuad appends four unique vertices sharing one flat normal, wound
// a-b-c-d so that (b-a)x(c-a) points along the normal.
func addQuad(m *Mesh, a, b, c, d, normal math.Vec3) {
	base := uint32(len(m.Positions))
	m.Positions = append(m.Positions, a, b, c, d)
	m.Normals = append(m.Normals, normal, normal, normal, normal)
	m.UVs = append(m.UVs,
		math.Vec2{X: 0, Y: 0},
		math.Vec2{X: 0, Y: 1},
		math.Vec2{X: 1, Y: 1},
		math.Vec2{X: 1, Y: 0},
	)
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// Cylinder builds a Y-axis cylinder centered at the origin. The side wall
// is segment-count independent quads whose normals are shared per edge, so
// the wall shades smooth while both caps stay flat. segments below 3 are
// clamped; non-positive radius or height degrade to a sliver instead of
// failing.
func Cylinder(radius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	r := positive(radius)
	h := positive(height)
	y0 := -h / 2
	y1 := h / 2

	m := &Mesh{}

	// Side wall: one quad per segment, 4 unique vertices each. The two
	// radial normals of a quad are shared with the adjacent quads, giving
	// smooth interpolation around the barrel.
	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * gomath.Pi
		a1 := float64(i+1) / float64(segments) * 2 * gomath.Pi
		n0 := math.Vec3{X: float32(gomath.Cos(a0)), Z: float32(gomath.Sin(a0))}
		n1 := math.Vec3{X: float32(gomath.Cos(a1)), Z: float32(gomath.Sin(a1))}
		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)

		base := uint32(len(m.Positions))
		m.Positions = append(m.Positions,
			n0.Scale(r).Add(math.Vec3{Y: y0}),
			n0.Scale(r).Add(math.Vec3{Y: y1}),
			n1.Scale(r).Add(math.Vec3{Y: y1}),
			n1.Scale(r).Add(math.Vec3{Y: y0}),
		)
		m.Normals = append(m.Normals, n0, n0, n1, n1)
		m.UVs = append(m.UVs,
			math.Vec2{X: u0, Y: 0},
			math.Vec2{X: u0, Y: 1},
			math.Vec2{X: u1, Y: 1},
			math.Vec2{X: u1, Y: 0},
		)
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	addCap(m, r, y1, segments, true)
	addCap(m, r, y0, segments, false)
	return m
}

// addCap appends a triangle fan around a duplicated center vertex. The top
// and bottom fans wind in opposite directions so both face outward.
func addCap(m *Mesh, radius, y float32, segments int, top bool) {
	normal := math.Vec3{Y: -1}
	if top {
		normal = math.Vec3{Y: 1}
	}

	center := uint32(len(m.Positions))
	m.Positions = append(m.Positions, math.Vec3{Y: y})
	m.Normals = append(m.Normals, normal)
	m.UVs = append(m.UVs, math.Vec2{X: 0.5, Y: 0.5})

	rim := uint32(len(m.Positions))
	for i := 0; i <= segments; i++ {
		a := float64(i%segments) / float64(segments) * 2 * gomath.Pi
		x := radius * float32(gomath.Cos(a))
		z := radius * float32(gomath.Sin(a))
		m.Positions = append(m.Positions, math.Vec3{X: x, Y: y, Z: z})
		m.Normals = append(m.Normals, normal)
		// Circular projection onto the cap plane.
		m.UVs = append(m.UVs, math.Vec2{
			X: x/(2*radius) + 0.5,
			Y: z/(2*radius) + 0.5,
		})
	}

	for i := 0; i < segments; i++ {
		if top {
			m.Indices = append(m.Indices, center, rim+uint32(i)+1, rim+uint32(i))
		} else {
			m.Indices = append(m.Indices, center, rim+uint32(i), rim+uint32(i)+1)
		}
	}
}

func positive(v float32) float32 {
	if v <= 0 {
		return minDimension
	}
	return v
}
