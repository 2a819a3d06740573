package asteroid

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/voidharvest/internal/engine/geometry"
	"github.com/Faultbox/voidharvest/internal/engine/noise"
)

func buildOnce(seed int64, p Params) *geometry.Mesh {
	src := noise.NewSource(seed)
	rng := rand.New(rand.NewSource(seed))
	return Build(p, src, rng)
}

func TestBuildDeterministic(t *testing.T) {
	p := DefaultParams()
	a := buildOnce(1234, p)
	b := buildOnce(1234, p)

	if len(a.Positions) != len(b.Positions) || len(a.Indices) != len(b.Indices) {
		t.Fatal("repeated builds produced different sizes")
	}
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("vertex %d differs between identically seeded builds", i)
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index %d differs between identically seeded builds", i)
		}
	}
}

func TestBuildSeedsDiffer(t *testing.T) {
	p := DefaultParams()
	a := buildOnce(1, p)
	b := buildOnce(2, p)

	same := true
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical asteroids")
	}
}

// With irregularity and deform strength both zero the pipeline reduces to
// a flat-shaded icosahedron: 20 triangles, 60 duplicated vertices, every
// one at the requested radius.
func TestBuildUndeformedSphere(t *testing.T) {
	p := DefaultParams()
	p.Subdivisions = 0
	p.Irregularity = 0
	p.DeformStrength = 0
	p.Radius = 2

	src := noise.NewSource(5)
	rng := rand.New(rand.NewSource(5))
	m := Build(p, src, rng)

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := m.VertexCount(); got != 60 {
		t.Errorf("VertexCount = %d, want 60", got)
	}
	if got := m.TriangleCount(); got != 20 {
		t.Errorf("TriangleCount = %d, want 20", got)
	}
	for i, v := range m.Positions {
		l := v.Length()
		if l < 1.999 || l > 2.001 {
			t.Errorf("vertex %d at distance %v, want 2", i, l)
		}
	}
}

func TestBuildDeformedStaysFinite(t *testing.T) {
	p := DefaultParams()
	p.Irregularity = 1
	p.DeformStrength = 1

	src := noise.NewSource(9)
	rng := rand.New(rand.NewSource(9))
	m := Build(p, src, rng)

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for i, v := range m.Positions {
		l := v.Length()
		if l != l { // NaN
			t.Fatalf("vertex %d is NaN", i)
		}
		if l > p.Radius*4 {
			t.Errorf("vertex %d at distance %v, implausibly far for radius %v", i, l, p.Radius)
		}
	}
}

func TestColliderRadius(t *testing.T) {
	p := DefaultParams()
	p.Radius = 2
	p.Irregularity = 0
	// No irregularity: 90% of the base radius.
	if got := ColliderRadius(p); got < 1.799 || got > 1.801 {
		t.Errorf("ColliderRadius = %v, want 1.8", got)
	}

	p.Irregularity = 1
	p.MaxScale = 1.4
	// Full irregularity: radius * (1 + 0.2) * 0.9.
	if got := ColliderRadius(p); got < 2.159 || got > 2.161 {
		t.Errorf("ColliderRadius = %v, want 2.16", got)
	}
}
