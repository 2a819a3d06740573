// Package ship assembles the player ship from generated primitives: a
// hierarchical, named part tree with per-part materials and emissive glow
// accents. No colliders are assigned here; that belongs to the physics
// layer.
package ship

import (
	"github.com/Faultbox/voidharvest/internal/engine/geometry"
	"github.com/Faultbox/voidharvest/internal/engine/material"
	"github.com/Faultbox/voidharvest/internal/engine/scene"
	"github.com/Faultbox/voidharvest/pkg/math"
)

// Shape selects which primitive builder a part uses.
type Shape int

const (
	ShapeFrustum Shape = iota
	ShapeCube
	ShapeCylinder
)

// PartSpec is the static configuration of one named part. Frustum parts
// use the front/back dimensions; cylinder parts use radius, height, and
// segments. Parts with the same MaterialKey share one material instance.
type PartSpec struct {
	Name        string
	Shape       Shape
	MaterialKey string

	FrontW, FrontH float32
	BackW, BackH   float32
	Depth          float32

	Radius, Height float32
	Segments       int

	Position math.Vec3
	Rotation math.Vec3
	Color    material.Color

	Glow *GlowSpec
}

// GlowSpec is an emissive disk attached as a child of its owning part.
// The disk is a thin cylinder along Y in the owning part's local frame;
// Rotation reorients it.
type GlowSpec struct {
	Radius    float32
	Thickness float32
	Offset    math.Vec3
	Rotation  math.Vec3
	Color     material.Color
	Intensity float32
}

// Config is the full assembly description.
type Config struct {
	Parts []PartSpec

	// WingGlow is built once and mirrored onto both wings: the two glow
	// nodes share a single mesh and material instance.
	WingGlow        GlowSpec
	WingGlowOffsets [2]math.Vec3
}

// Build assembles the part tree under one root node. Each part owns its
// mesh; materials are shared between parts carrying the same MaterialKey.
func Build(cfg Config) *scene.Node {
	root := scene.NewNode("ship")
	materials := make(map[string]*material.Material)

	var wings []*scene.Node
	for _, spec := range cfg.Parts {
		part := buildPart(spec, materials)
		root.AddChild(part)
		if spec.Name == "wingL" || spec.Name == "wingR" {
			wings = append(wings, part)
		}
	}

	attachWingGlows(cfg, wings)
	return root
}

func buildPart(spec PartSpec, materials map[string]*material.Material) *scene.Node {
	node := scene.NewNode(spec.Name)
	node.Position = spec.Position
	node.Rotation = spec.Rotation
	node.Mesh = buildPartMesh(spec)

	key := spec.MaterialKey
	if key == "" {
		key = spec.Name
	}
	mat, ok := materials[key]
	if !ok {
		mat = material.New(key+"Material", spec.Color)
		materials[key] = mat
	}
	node.Material = mat

	if spec.Glow != nil {
		node.AddChild(buildGlow(spec.Name+"Glow", *spec.Glow))
	}
	return node
}

func buildPartMesh(spec PartSpec) *geometry.Mesh {
	switch spec.Shape {
	case ShapeCube:
		return geometry.Cube(spec.FrontW, spec.FrontH, spec.Depth)
	case ShapeCylinder:
		return geometry.Cylinder(spec.Radius, spec.Height, spec.Segments)
	default:
		return geometry.Frustum(spec.FrontW, spec.FrontH, spec.BackW, spec.BackH, spec.Depth)
	}
}

// buildGlow creates a thin emissive disk.
func buildGlow(name string, g GlowSpec) *scene.Node {
	node := scene.NewNode(name)
	node.Position = g.Offset
	node.Rotation = g.Rotation
	node.Mesh = geometry.Cylinder(g.Radius, g.Thickness, glowSegments)
	node.Material = material.NewEmissive(name+"Material", g.Color, g.Color, g.Intensity)
	return node
}

// attachWingGlows mirrors one shared glow mesh and material onto each
// wing. The nodes are distinct but deliberately reference the same
// instances; their lifetime is tied to the ship root.
func attachWingGlows(cfg Config, wings []*scene.Node) {
	if len(wings) == 0 || cfg.WingGlow.Radius <= 0 {
		return
	}
	g := cfg.WingGlow
	sharedMesh := geometry.Cylinder(g.Radius, g.Thickness, glowSegments)
	sharedMat := material.NewEmissive("wingGlowMaterial", g.Color, g.Color, g.Intensity)

	for i, wing := range wings {
		node := scene.NewNode(wing.Name + "TipGlow")
		if i < len(cfg.WingGlowOffsets) {
			node.Position = cfg.WingGlowOffsets[i]
		}
		node.Rotation = g.Rotation
		node.Mesh = sharedMesh
		node.Material = sharedMat
		wing.AddChild(node)
	}
}

const (
	halfPi       = float32(1.5707963267948966)
	glowSegments = 16
)
