package lighting

import (
	"github.com/Faultbox/voidharvest/internal/engine/material"
	"github.com/Faultbox/voidharvest/internal/engine/scene"
	"github.com/Faultbox/voidharvest/pkg/math"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 8

// PointLight represents a point light source for GPU upload.
type PointLight struct {
	Position  math.Vec3      // World position
	Color     material.Color // RGB color (0-1 range)
	Range     float32        // Light radius/falloff distance
	Intensity float32        // Light intensity multiplier
}

// Buffer holds lights for GPU upload.
type Buffer struct {
	Lights []PointLight
	Count  int
}

// NewBuffer creates an empty point light buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// GatherEmissive walks the scene and collects a point light for every node
// whose material glows. Light reach scales with emission intensity so
// bright cells cast further than dim engine exhaust.
func GatherEmissive(root *scene.Node, baseRange float32) []PointLight {
	if root == nil {
		return nil
	}

	var lights []PointLight
	root.Walk(math.Identity(), func(n *scene.Node, world math.Mat4) {
		if n.Material == nil || !n.Material.Emissive() {
			return
		}
		em := n.Material.Emission
		lights = append(lights, PointLight{
			Position:  world.TransformVec3(math.Vec3{}),
			Color:     em.Color,
			Range:     baseRange * em.Intensity,
			Intensity: em.Intensity,
		})
	})
	return lights
}

// Clear removes all lights from the buffer.
func (b *Buffer) Clear() {
	b.Lights = b.Lights[:0]
	b.Count = 0
}

// Add adds a point light to the buffer.
// Returns false if buffer is full.
func (b *Buffer) Add(light PointLight) bool {
	if b.Count >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	b.Count++
	return true
}

// Set replaces all lights in the buffer.
// Truncates to MaxPointLights if necessary.
func (b *Buffer) Set(lights []PointLight) {
	b.Clear()
	count := len(lights)
	if count > MaxPointLights {
		count = MaxPointLights
	}
	b.Lights = append(b.Lights, lights[:count]...)
	b.Count = count
}

// Positions returns positions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *Buffer) Positions() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Position.X
		result[i*3+1] = light.Position.Y
		result[i*3+2] = light.Position.Z
	}
	return result
}

// Colors returns intensity-scaled colors as a flat float32 slice for GPU
// upload. Format: [r0, g0, b0, r1, g1, b1, ...]
func (b *Buffer) Colors() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		result[i*3+0] = light.Color.R * light.Intensity
		result[i*3+1] = light.Color.G * light.Intensity
		result[i*3+2] = light.Color.B * light.Intensity
	}
	return result
}

// Ranges returns ranges as a flat float32 slice for GPU upload.
func (b *Buffer) Ranges() []float32 {
	result := make([]float32, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Range
	}
	return result
}
