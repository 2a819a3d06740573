package ship

import (
	"github.com/Faultbox/voidharvest/internal/engine/material"
	"github.com/Faultbox/voidharvest/pkg/math"
)

// Part and material names used by DefaultConfig.
const (
	PartNose    = "nose"
	PartHull    = "hull"
	PartCockpit = "cockpit"
	PartWingL   = "wingL"
	PartWingR   = "wingR"
	PartTail    = "tail"
	PartEngine  = "engine"
	PartGun     = "gun" // gun0..gun3

	gunMaterialKey = "gun"
)

// DefaultConfig returns the canonical fighter layout. The ship points down
// -Z: nose in front, engine behind, two swept wings, four wingtip guns.
func DefaultConfig() Config {
	hullColor := material.RGB(0.55, 0.58, 0.64)
	wingColor := material.RGB(0.42, 0.45, 0.52)
	glassColor := material.Color{R: 0.35, G: 0.75, B: 0.9, A: 0.6}
	gunColor := material.RGB(0.25, 0.26, 0.3)
	accent := material.RGB(0.2, 0.9, 1.0)
	exhaust := material.RGB(1.0, 0.55, 0.15)

	parts := []PartSpec{
		{
			Name: PartNose, Shape: ShapeFrustum,
			FrontW: 0.12, FrontH: 0.1, BackW: 0.7, BackH: 0.45, Depth: 1.1,
			Position: math.Vec3{Z: -1.45},
			Color:    hullColor,
		},
		{
			Name: PartHull, Shape: ShapeFrustum,
			FrontW: 0.7, FrontH: 0.45, BackW: 0.85, BackH: 0.55, Depth: 1.8,
			Position: math.Vec3{Z: 0},
			Color:    hullColor,
		},
		{
			Name: PartCockpit, Shape: ShapeFrustum,
			FrontW: 0.3, FrontH: 0.16, BackW: 0.5, BackH: 0.3, Depth: 0.7,
			Position: math.Vec3{Y: 0.38, Z: -0.45},
			Color:    glassColor,
		},
		{
			Name: PartWingL, Shape: ShapeFrustum,
			FrontW: 1.6, FrontH: 0.06, BackW: 0.9, BackH: 0.1, Depth: 0.8,
			Position: math.Vec3{X: -1.15, Z: 0.3},
			Rotation: math.Vec3{Z: 0.08},
			Color:    wingColor,
		},
		{
			Name: PartWingR, Shape: ShapeFrustum,
			FrontW: 1.6, FrontH: 0.06, BackW: 0.9, BackH: 0.1, Depth: 0.8,
			Position: math.Vec3{X: 1.15, Z: 0.3},
			Rotation: math.Vec3{Z: -0.08},
			Color:    wingColor,
		},
		{
			Name: PartTail, Shape: ShapeFrustum,
			FrontW: 0.08, FrontH: 0.55, BackW: 0.12, BackH: 0.25, Depth: 0.6,
			Position: math.Vec3{Y: 0.45, Z: 0.85},
			Color:    wingColor,
		},
		{
			Name: PartEngine, Shape: ShapeFrustum,
			FrontW: 0.85, FrontH: 0.55, BackW: 0.55, BackH: 0.4, Depth: 0.5,
			Position: math.Vec3{Z: 1.15},
			Color:    hullColor,
			// Exhaust disk just behind the trailing face.
			Glow: &GlowSpec{
				Radius: 0.24, Thickness: 0.04,
				Offset:    math.Vec3{Z: 0.28},
				Rotation:  math.Vec3{X: halfPi},
				Color:     exhaust,
				Intensity: 2.5,
			},
		},
	}

	// Four guns, two per wing, all sharing one material.
	gunOffsets := []math.Vec3{
		{X: -1.7, Y: -0.02, Z: -0.1},
		{X: -0.75, Y: -0.06, Z: -0.35},
		{X: 0.75, Y: -0.06, Z: -0.35},
		{X: 1.7, Y: -0.02, Z: -0.1},
	}
	for i, off := range gunOffsets {
		parts = append(parts, PartSpec{
			Name:        PartGun + string(rune('0'+i)),
			Shape:       ShapeCylinder,
			MaterialKey: gunMaterialKey,
			Radius:      0.05, Height: 0.7, Segments: 8,
			Position: off,
			// Barrels are built along Y; this pitches them forward to -Z.
			Rotation: math.Vec3{X: -halfPi},
			Color:    gunColor,
			// Tip glow sits just past the muzzle on the barrel axis.
			Glow: &GlowSpec{
				Radius: 0.06, Thickness: 0.02,
				Offset:    math.Vec3{Y: 0.37},
				Color:     accent,
				Intensity: 1.8,
			},
		})
	}

	return Config{
		Parts:    parts,
		WingGlow: GlowSpec{Radius: 0.1, Thickness: 0.03, Color: accent, Intensity: 2.0},
		WingGlowOffsets: [2]math.Vec3{
			{X: -0.85, Z: 0.15},
			{X: 0.85, Z: 0.15},
		},
	}
}
