package geometry

import (
	"testing"

	"github.com/Faultbox/voidharvest/pkg/math"
)

func TestValidateCatchesBadMeshes(t *testing.T) {
	good := Cube(1, 1, 1)
	if err := good.Validate(); err != nil {
		t.Fatalf("valid mesh rejected: %v", err)
	}

	short := Cube(1, 1, 1)
	short.Normals = short.Normals[:10]
	if err := short.Validate(); err == nil {
		t.Error("mismatched normals accepted")
	}

	ragged := Cube(1, 1, 1)
	ragged.Indices = ragged.Indices[:35]
	if err := ragged.Validate(); err == nil {
		t.Error("index count not divisible by 3 accepted")
	}

	oob := Cube(1, 1, 1)
	oob.Indices[0] = 999
	if err := oob.Validate(); err == nil {
		t.Error("out-of-range index accepted")
	}
}

func TestBoundingRadius(t *testing.T) {
	m := &Mesh{Positions: []math.Vec3{
		{X: 1},
		{Y: -3},
		{Z: 2},
	}}
	if got := m.BoundingRadius(); !near(got, 3) {
		t.Errorf("BoundingRadius = %v, want 3", got)
	}

	empty := &Mesh{}
	if got := empty.BoundingRadius(); got != 0 {
		t.Errorf("empty BoundingRadius = %v, want 0", got)
	}
}

func TestFaceNormalDegenerateFallbacks(t *testing.T) {
	// Zero-area triangle away from the origin: centroid direction.
	m := &Mesh{
		Positions: []math.Vec3{{X: 5}, {X: 5}, {X: 5}},
		Indices:   []uint32{0, 1, 2},
	}
	if got := m.FaceNormal(0); !nearVec(got, math.Vec3{X: 1}) {
		t.Errorf("FaceNormal = %v, want +X centroid direction", got)
	}

	// Zero-area triangle at the origin: +Y fallback.
	m = &Mesh{
		Positions: []math.Vec3{{}, {}, {}},
		Indices:   []uint32{0, 1, 2},
	}
	if got := m.FaceNormal(0); !nearVec(got, math.Vec3{Y: 1}) {
		t.Errorf("FaceNormal = %v, want +Y fallback", got)
	}
}

func TestFlatShadeDuplicatesVertices(t *testing.T) {
	positions, indices := Icosphere(1, 1)
	m := FlatShadeIndexed(positions, indices)

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	wantVerts := len(indices)
	if got := m.VertexCount(); got != wantVerts {
		t.Errorf("VertexCount = %d, want %d (three per triangle)", got, wantVerts)
	}
	if got := m.TriangleCount(); got != len(indices)/3 {
		t.Errorf("TriangleCount = %d, want %d", got, len(indices)/3)
	}

	// Every triangle's three vertices carry its geometric face normal.
	for tri := 0; tri < m.TriangleCount(); tri++ {
		want := m.FaceNormal(tri)
		for k := 0; k < 3; k++ {
			got := m.Normals[m.Indices[tri*3+k]]
			if !nearVec(got, want) {
				t.Fatalf("triangle %d vertex %d: normal %v, want %v", tri, k, got, want)
			}
		}
	}
}

func TestFlatShadePreservesGeometry(t *testing.T) {
	src := Cube(2, 2, 2)
	m := FlatShade(src)

	if got := m.TriangleCount(); got != src.TriangleCount() {
		t.Errorf("TriangleCount = %d, want %d", got, src.TriangleCount())
	}
	if got := m.BoundingRadius(); !near(got, src.BoundingRadius()) {
		t.Errorf("BoundingRadius = %v, want %v", got, src.BoundingRadius())
	}
}
