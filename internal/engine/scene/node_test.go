package scene

import (
	"testing"

	"github.com/Faultbox/voidharvest/pkg/math"
)

func TestFindAndDetach(t *testing.T) {
	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	deep := NewNode("deep")
	a.AddChild(deep)
	root.AddChild(a, b)

	if got := root.Find("deep"); got != deep {
		t.Error("Find failed to locate a nested node")
	}
	if got := root.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}

	if !root.Detach(b) {
		t.Error("Detach of a direct child failed")
	}
	if root.Detach(b) {
		t.Error("second Detach succeeded")
	}
	if root.Detach(deep) {
		t.Error("Detach of a non-direct descendant succeeded")
	}
	if len(root.Children) != 1 {
		t.Errorf("children = %d, want 1", len(root.Children))
	}
}

func TestWalkAccumulatesTransforms(t *testing.T) {
	root := NewNode("root")
	root.Position = math.Vec3{X: 10}
	child := NewNode("child")
	child.Position = math.Vec3{Y: 5}
	root.AddChild(child)

	var got math.Vec3
	root.Walk(math.Identity(), func(n *Node, world math.Mat4) {
		if n == child {
			got = world.TransformVec3(math.Vec3{})
		}
	})

	want := math.Vec3{X: 10, Y: 5}
	if got.Distance(want) > 1e-5 {
		t.Errorf("child world position = %v, want %v", got, want)
	}
}

func TestOrientationOverridesRotation(t *testing.T) {
	n := NewNode("n")
	n.Rotation = math.Vec3{Y: 1.2} // must be ignored
	q := math.QuatIdentity()
	n.Orientation = &q

	p := n.LocalMatrix().TransformVec3(math.Vec3{X: 1})
	if p.Distance(math.Vec3{X: 1}) > 1e-5 {
		t.Errorf("identity orientation moved point to %v", p)
	}
}

func TestWalkAppliesScale(t *testing.T) {
	root := NewNode("root")
	root.Scale = math.Vec3{X: 2, Y: 2, Z: 2}
	child := NewNode("child")
	child.Position = math.Vec3{X: 1}
	root.AddChild(child)

	var got math.Vec3
	root.Walk(math.Identity(), func(n *Node, world math.Mat4) {
		if n == child {
			got = world.TransformVec3(math.Vec3{})
		}
	})
	if got.Distance(math.Vec3{X: 2}) > 1e-5 {
		t.Errorf("scaled child at %v, want (2,0,0)", got)
	}
}
