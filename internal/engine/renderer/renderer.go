// Package renderer provides OpenGL rendering for generated meshes. Meshes
// are uploaded lazily on first draw and cached by identity, so shared
// meshes (wing glows, fuel cells) occupy one buffer set.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/voidharvest/internal/engine/geometry"
	"github.com/Faultbox/voidharvest/internal/engine/lighting"
	"github.com/Faultbox/voidharvest/internal/engine/scene"
	"github.com/Faultbox/voidharvest/internal/engine/shader"
	"github.com/Faultbox/voidharvest/internal/logger"
	"github.com/Faultbox/voidharvest/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program uint32

	locMVP       int32
	locModel     int32
	locBaseColor int32
	locEmissive  int32
	locLightDir  int32
	locAmbient   int32
	locPLPos     int32
	locPLColor   int32
	locPLRange   int32
	locPLCount   int32

	view math.Mat4
	proj math.Mat4

	lightDir math.Vec3
	ambient  float32

	pointLights *lighting.Buffer

	cache map[*geometry.Mesh]*glMesh
}

// New creates a new renderer. It must be called after the OpenGL context
// exists. A missing or broken shading backend is fatal: we abort instead
// of drawing unlit geometry.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:      cfg,
		ambient:     0.25,
		lightDir:    math.Vec3{X: 0.4, Y: 0.8, Z: 0.45}.Normalize(),
		cache:       make(map[*geometry.Mesh]*glMesh),
		pointLights: lighting.NewBuffer(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	renderderName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", renderderName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.02, 0.02, 0.05, 1.0) // deep space

	program, err := shader.CompileProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	r.program = program

	r.locMVP = shader.GetUniform(program, "uMVP")
	r.locModel = shader.GetUniform(program, "uModel")
	r.locBaseColor = shader.GetUniform(program, "uBaseColor")
	r.locEmissive = shader.GetUniform(program, "uEmissive")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locAmbient = shader.GetUniform(program, "uAmbient")
	r.locPLPos = shader.GetUniform(program, "uPointLightPositions")
	r.locPLColor = shader.GetUniform(program, "uPointLightColors")
	r.locPLRange = shader.GetUniform(program, "uPointLightRanges")
	r.locPLCount = shader.GetUniform(program, "uPointLightCount")

	return r, nil
}

// Close releases the shader program and every cached mesh buffer.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, gm := range r.cache {
		gm.delete()
	}
	r.cache = nil
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Aspect returns the current width/height ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// SetCamera sets the view and projection matrices for the frame.
func (r *Renderer) SetCamera(view, proj math.Mat4) {
	r.view = view
	r.proj = proj
}

// SetLight sets the directional light for the frame.
func (r *Renderer) SetLight(dir math.Vec3, ambient float32) {
	r.lightDir = dir.Normalize()
	r.ambient = ambient
}

// SetPointLights replaces the frame's point lights; excess lights are
// dropped.
func (r *Renderer) SetPointLights(lights []lighting.PointLight) {
	r.pointLights.Set(lights)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
}

// DrawScene walks the node tree and draws every node carrying a mesh and
// material.
func (r *Renderer) DrawScene(root *scene.Node) {
	gl.UseProgram(r.program)
	r.uploadFrameUniforms()

	vp := r.proj.Mul(r.view)
	root.Walk(math.Identity(), func(n *scene.Node, world math.Mat4) {
		if n.Mesh == nil || n.Material == nil {
			return
		}
		gm := r.lookup(n.Mesh)
		if gm == nil {
			return
		}
		mvp := vp.Mul(world)
		gl.UniformMatrix4fv(r.locMVP, 1, false, mvp.Ptr())
		gl.UniformMatrix4fv(r.locModel, 1, false, world.Ptr())

		base := n.Material.Base
		gl.Uniform4f(r.locBaseColor, base.R, base.G, base.B, base.A)
		em := n.Material.EmissiveColor()
		gl.Uniform3f(r.locEmissive, em.R, em.G, em.B)

		gm.draw()
	})
	gl.BindVertexArray(0)
}

func (r *Renderer) uploadFrameUniforms() {
	gl.Uniform3f(r.locLightDir, r.lightDir.X, r.lightDir.Y, r.lightDir.Z)
	gl.Uniform1f(r.locAmbient, r.ambient)

	pos := r.pointLights.Positions()
	col := r.pointLights.Colors()
	rng := r.pointLights.Ranges()
	gl.Uniform3fv(r.locPLPos, lighting.MaxPointLights, &pos[0])
	gl.Uniform3fv(r.locPLColor, lighting.MaxPointLights, &col[0])
	gl.Uniform1fv(r.locPLRange, lighting.MaxPointLights, &rng[0])
	gl.Uniform1i(r.locPLCount, int32(r.pointLights.Count))
}
