// Package material defines the shading parameter sets attached to
// generated meshes. A material is created once per part or batch instance
// and treated as immutable by the renderer.
package material

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Gray returns an opaque grayscale color.
func Gray(v float32) Color {
	return Color{R: v, G: v, B: v, A: 1}
}

// Scale returns the color with RGB scaled by s. Alpha is untouched.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Emission describes self-illumination. It only exists on materials that
// glow; a nil Emission means no emissive contribution regardless of any
// stored color.
type Emission struct {
	Color     Color
	Intensity float32
}

// Material is a named shading parameter set.
type Material struct {
	Name     string
	Base     Color
	Emission *Emission
}

// New returns a non-emissive material.
func New(name string, base Color) *Material {
	return &Material{Name: name, Base: base}
}

// NewEmissive returns a material with emission enabled at construction.
func NewEmissive(name string, base, glow Color, intensity float32) *Material {
	return &Material{
		Name:     name,
		Base:     base,
		Emission: &Emission{Color: glow, Intensity: intensity},
	}
}

// Emissive reports whether the material glows.
func (m *Material) Emissive() bool {
	return m.Emission != nil
}

// EmissiveColor returns the emission color scaled by intensity, or black
// when emission is disabled.
func (m *Material) EmissiveColor() Color {
	if m.Emission == nil {
		return Color{A: 1}
	}
	return m.Emission.Color.Scale(m.Emission.Intensity)
}
