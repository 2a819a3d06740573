// Package scene provides the node tree that generated meshes and materials
// attach to. Nodes carry local transforms, category tags for collision
// dispatch, and collider hints sized from the same parameters as the
// visual geometry.
package scene

import (
	"github.com/Faultbox/voidharvest/internal/engine/geometry"
	"github.com/Faultbox/voidharvest/internal/engine/material"
	"github.com/Faultbox/voidharvest/pkg/math"
)

// Tag is a category label used by the collision-response layer.
type Tag string

const (
	TagNone     Tag = ""
	TagAsteroid Tag = "Asteroid"
	TagFuelCell Tag = "FuelCell"
)

// ColliderKind selects the physical shape hint attached to a node.
type ColliderKind int

const (
	ColliderNone ColliderKind = iota
	ColliderSphere
	ColliderCapsule
)

// Collider is a physical shape hint for the physics layer. It is sized
// from generation parameters, not recomputed from the mesh.
type Collider struct {
	Kind    ColliderKind
	Radius  float32
	Height  float32 // capsule only
	Trigger bool
}

// Node is one element of the scene tree. Mesh and Material may be nil for
// pure grouping nodes. Children inherit the parent's world transform.
type Node struct {
	Name        string
	Position    math.Vec3
	Rotation    math.Vec3  // Euler angles in radians, applied X then Y then Z
	Orientation *math.Quat // overrides Rotation when set
	Scale       math.Vec3
	Mesh        *geometry.Mesh
	Material    *material.Material
	Tag         Tag
	Collider    Collider
	Children    []*Node
}

// NewNode returns an empty node with identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Scale: math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// AddChild appends children to the node and returns the node.
func (n *Node) AddChild(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// LocalMatrix returns the node's local TRS matrix.
func (n *Node) LocalMatrix() math.Mat4 {
	t := math.Translate(n.Position.X, n.Position.Y, n.Position.Z)
	var r math.Mat4
	if n.Orientation != nil {
		r = n.Orientation.ToMat4()
	} else {
		r = math.RotateZ(n.Rotation.Z).
			Mul(math.RotateY(n.Rotation.Y)).
			Mul(math.RotateX(n.Rotation.X))
	}
	s := math.Scale(n.Scale.X, n.Scale.Y, n.Scale.Z)
	return t.Mul(r).Mul(s)
}

// Walk visits the node and all descendants depth-first, passing each
// node's world matrix.
func (n *Node) Walk(parent math.Mat4, fn func(node *Node, world math.Mat4)) {
	world := parent.Mul(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.Children {
		c.Walk(world, fn)
	}
}

// Find returns the first node with the given name in the subtree, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Detach removes a direct child by pointer. It reports whether the child
// was present.
func (n *Node) Detach(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}
