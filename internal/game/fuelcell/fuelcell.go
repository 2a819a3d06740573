// Package fuelcell builds the emissive pickup cylinders and spawns them as
// a collectible batch with win-condition tracking.
package fuelcell

import (
	"github.com/Faultbox/voidharvest/internal/engine/geometry"
	"github.com/Faultbox/voidharvest/internal/engine/material"
	"github.com/Faultbox/voidharvest/internal/engine/scene"
)

// Spec holds the shape and gameplay parameters of a fuel cell. The capsule
// collider hint is sized from the same radius and height as the visual
// cylinder.
type Spec struct {
	Radius   float32
	Height   float32
	Segments int

	Score  int
	Energy float32

	Color     material.Color
	Intensity float32
}

// DefaultSpec returns the standard fuel cell.
func DefaultSpec() Spec {
	return Spec{
		Radius:    0.35,
		Height:    0.9,
		Segments:  12,
		Score:     100,
		Energy:    25,
		Color:     material.RGB(0.25, 1.0, 0.5),
		Intensity: 2.0,
	}
}

// BuildMesh generates the cell cylinder.
func BuildMesh(s Spec) *geometry.Mesh {
	return geometry.Cylinder(s.Radius, s.Height, s.Segments)
}

// BuildMaterial generates the emissive cell material.
func BuildMaterial(s Spec) *material.Material {
	return material.NewEmissive("fuelCellMaterial", s.Color, s.Color, s.Intensity)
}

// NewCollider returns the trigger capsule matched to the cylinder.
func NewCollider(s Spec) scene.Collider {
	return scene.Collider{
		Kind:    scene.ColliderCapsule,
		Radius:  s.Radius,
		Height:  s.Height,
		Trigger: true,
	}
}
