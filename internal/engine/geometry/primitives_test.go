package geometry

import (
	"testing"

	"github.com/Faultbox/voidharvest/pkg/math"
)

const eps = 1e-5

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestCubeCounts(t *testing.T) {
	m := Cube(1, 1, 1)
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := m.VertexCount(); got != 24 {
		t.Errorf("VertexCount = %d, want 24", got)
	}
	if got := len(m.Indices); got != 36 {
		t.Errorf("len(Indices) = %d, want 36", got)
	}
	if got := m.TriangleCount(); got != 12 {
		t.Errorf("TriangleCount = %d, want 12", got)
	}
}

func TestCubeNormalsAreUnitAxes(t *testing.T) {
	m := Cube(2, 3, 4)
	axes := []math.Vec3{FaceFront, FaceBack, FaceTop, FaceBottom, FaceRight, FaceLeft}

	for face := 0; face < 6; face++ {
		want := axes[face]
		for k := 0; k < 4; k++ {
			n := m.Normals[face*4+k]
			if !near(n.Length(), 1) {
				t.Errorf("face %d vertex %d: normal length %v, want 1", face, k, n.Length())
			}
			if !nearVec(n, want) {
				t.Errorf("face %d vertex %d: normal %v, want %v", face, k, n, want)
			}
		}
	}
}

// Geometric winding must agree with the stored flat normals, otherwise
// back-face culling eats the surface.
func TestCubeWindingMatchesNormals(t *testing.T) {
	m := Cube(2, 1, 3)
	for tri := 0; tri < m.TriangleCount(); tri++ {
		geom := m.FaceNormal(tri)
		stored := m.Normals[m.Indices[tri*3]]
		if geom.Dot(stored) < 0.999 {
			t.Errorf("triangle %d: geometric normal %v disagrees with stored %v", tri, geom, stored)
		}
	}
}

func TestCubeDimensions(t *testing.T) {
	m := Cube(2, 4, 6)
	var maxX, maxY, maxZ float32
	for _, p := range m.Positions {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}
	if !near(maxX, 1) || !near(maxY, 2) || !near(maxZ, 3) {
		t.Errorf("half extents = (%v, %v, %v), want (1, 2, 3)", maxX, maxY, maxZ)
	}
}

func TestFrustumTaper(t *testing.T) {
	m := Frustum(1, 1, 3, 3, 2)
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := m.VertexCount(); got != 24 {
		t.Errorf("VertexCount = %d, want 24", got)
	}

	// Front face vertices sit at z=-1 with the small half extent, back
	// face at z=+1 with the large one.
	for _, p := range m.Positions {
		switch {
		case near(p.Z, -1):
			if !near(abs32(p.X), 0.5) || !near(abs32(p.Y), 0.5) {
				t.Errorf("front vertex %v outside 0.5 half extent", p)
			}
		case near(p.Z, 1):
			if !near(abs32(p.X), 1.5) || !near(abs32(p.Y), 1.5) {
				t.Errorf("back vertex %v outside 1.5 half extent", p)
			}
		default:
			t.Errorf("vertex %v at unexpected depth", p)
		}
	}
}

func TestFrustumWindingMatchesNormals(t *testing.T) {
	m := Frustum(1, 2, 3, 1.5, 2.5)
	for tri := 0; tri < m.TriangleCount(); tri++ {
		geom := m.FaceNormal(tri)
		stored := m.Normals[m.Indices[tri*3]]
		// Side faces of a tapered box have slanted geometric normals while
		// the stored ones are axis-aligned; they must still agree in sign.
		if geom.Dot(stored) <= 0 {
			t.Errorf("triangle %d: geometric normal %v opposes stored %v", tri, geom, stored)
		}
	}
}

func TestCylinderCounts(t *testing.T) {
	tests := []struct {
		segments  int
		wantVerts int
		wantTris  int
	}{
		{3, 22, 12},
		{8, 52, 32},
		{12, 76, 48},
	}
	for _, tt := range tests {
		m := Cylinder(1, 2, tt.segments)
		if err := m.Validate(); err != nil {
			t.Fatalf("segments=%d Validate: %v", tt.segments, err)
		}
		if got := m.VertexCount(); got != tt.wantVerts {
			t.Errorf("segments=%d VertexCount = %d, want %d", tt.segments, got, tt.wantVerts)
		}
		if got := m.TriangleCount(); got != tt.wantTris {
			t.Errorf("segments=%d TriangleCount = %d, want %d", tt.segments, got, tt.wantTris)
		}
	}
}

func TestCylinderSegmentsClamped(t *testing.T) {
	low := Cylinder(1, 1, 1)
	three := Cylinder(1, 1, 3)
	if low.VertexCount() != three.VertexCount() {
		t.Errorf("segments=1 VertexCount = %d, want %d (clamped to 3)",
			low.VertexCount(), three.VertexCount())
	}
}

func TestCylinderWindingMatchesNormals(t *testing.T) {
	m := Cylinder(0.5, 2, 8)
	for tri := 0; tri < m.TriangleCount(); tri++ {
		geom := m.FaceNormal(tri)
		stored := m.Normals[m.Indices[tri*3]]
		if geom.Dot(stored) <= 0 {
			t.Errorf("triangle %d: geometric normal %v opposes stored %v", tri, geom, stored)
		}
	}
}

func TestCylinderSideNormalsHorizontal(t *testing.T) {
	m := Cylinder(1, 2, 8)
	// First 4*segments vertices are the side wall.
	for i := 0; i < 32; i++ {
		n := m.Normals[i]
		if !near(n.Y, 0) {
			t.Errorf("side normal %d has Y component %v", i, n.Y)
		}
		if !near(n.Length(), 1) {
			t.Errorf("side normal %d has length %v", i, n.Length())
		}
	}
}

func TestDegenerateDimensionsCoerced(t *testing.T) {
	meshes := []*Mesh{
		Cube(0, 0, 0),
		Cube(-1, 1, 1),
		Frustum(0, -2, 1, 1, 0),
		Cylinder(0, -1, 8),
	}
	for i, m := range meshes {
		if err := m.Validate(); err != nil {
			t.Errorf("mesh %d: Validate: %v", i, err)
		}
		if m.VertexCount() == 0 {
			t.Errorf("mesh %d: no vertices", i)
		}
		for j, p := range m.Positions {
			if isNaN(p) {
				t.Errorf("mesh %d: vertex %d is NaN", i, j)
			}
		}
		for j, n := range m.Normals {
			if isNaN(n) {
				t.Errorf("mesh %d: normal %d is NaN", i, j)
			}
			if !near(n.Length(), 1) {
				t.Errorf("mesh %d: normal %d has length %v", i, j, n.Length())
			}
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
