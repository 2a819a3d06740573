package game

import (
	"testing"

	"github.com/Faultbox/voidharvest/internal/engine/geometry"
	"github.com/Faultbox/voidharvest/internal/engine/scene"
	"github.com/Faultbox/voidharvest/pkg/math"
)

func TestReleaseSubtreeCoversShip(t *testing.T) {
	p := NewPlayer()

	// Collect every distinct mesh reachable in the ship tree.
	want := make(map[*geometry.Mesh]bool)
	p.Node.Walk(math.Identity(), func(n *scene.Node, _ math.Mat4) {
		if n.Mesh != nil {
			want[n.Mesh] = true
		}
	})
	if len(want) == 0 {
		t.Fatal("ship has no meshes")
	}

	released := make(map[*geometry.Mesh]int)
	releaseSubtree(p.Node, func(m *geometry.Mesh) { released[m]++ })

	if len(released) != len(want) {
		t.Errorf("released %d distinct meshes, want %d", len(released), len(want))
	}
	for m, n := range released {
		if !want[m] {
			t.Error("released a mesh not present in the tree")
		}
		if n != 1 {
			t.Errorf("mesh released %d times, want 1", n)
		}
	}
}

func TestReleaseSubtreeSharedMeshOnce(t *testing.T) {
	shared := geometry.Cube(1, 1, 1)
	root := scene.NewNode("root")
	for i := 0; i < 3; i++ {
		child := scene.NewNode("child")
		child.Mesh = shared
		root.AddChild(child)
	}

	released := make(map[*geometry.Mesh]int)
	releaseSubtree(root, func(m *geometry.Mesh) { released[m]++ })

	if released[shared] != 1 {
		t.Errorf("shared mesh released %d times, want 1", released[shared])
	}
}

func TestReleaseSubtreeNilSafe(t *testing.T) {
	releaseSubtree(nil, func(*geometry.Mesh) { t.Error("release called for nil root") })
	releaseSubtree(scene.NewNode("root"), nil)
}
