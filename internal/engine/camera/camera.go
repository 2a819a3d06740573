// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/voidharvest/pkg/math"
)

// OrbitCamera orbits around a center point. Used for the pause/overview
// view of the asteroid field.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        40.0,
		RotationX:       0.5,
		RotationY:       0.0,
		MinDistance:     5.0,
		MaxDistance:     400.0,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))
	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{Y: 1}
	return math.LookAt(c.Position(), c.Center, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// ChaseCamera follows the ship from behind, smoothed toward an anchor
// point in the ship's local frame.
type ChaseCamera struct {
	// Offset from the target in the target's local frame: behind and
	// above the hull.
	Offset math.Vec3

	// LookAhead shifts the look target forward so the nose sits low in
	// frame.
	LookAhead float32

	// Stiffness controls position smoothing; higher snaps faster.
	Stiffness float32

	position math.Vec3
	valid    bool
}

// NewChaseCamera creates a chase camera with arcade-feel defaults.
func NewChaseCamera() *ChaseCamera {
	return &ChaseCamera{
		Offset:    math.Vec3{Y: 2.2, Z: 7.5},
		LookAhead: 6.0,
		Stiffness: 5.0,
	}
}

// Update moves the camera toward its anchor behind the target. dt is the
// frame delta in seconds.
func (c *ChaseCamera) Update(targetPos math.Vec3, orientation math.Quat, dt float32) {
	anchor := targetPos.Add(orientation.RotateVec3(c.Offset))
	if !c.valid {
		c.position = anchor
		c.valid = true
		return
	}
	t := c.Stiffness * dt
	if t > 1 {
		t = 1
	}
	c.position = c.position.Lerp(anchor, t)
}

// Position returns the current camera position.
func (c *ChaseCamera) Position() math.Vec3 {
	return c.position
}

// ViewMatrix returns the view matrix looking past the target.
func (c *ChaseCamera) ViewMatrix(targetPos math.Vec3, orientation math.Quat) math.Mat4 {
	forward := orientation.RotateVec3(math.Vec3{Z: -1})
	lookAt := targetPos.Add(forward.Scale(c.LookAhead))
	up := orientation.RotateVec3(math.Vec3{Y: 1})
	return math.LookAt(c.position, lookAt, up)
}

// Snap teleports the camera to its anchor, for spawn and respawn.
func (c *ChaseCamera) Snap(targetPos math.Vec3, orientation math.Quat) {
	c.position = targetPos.Add(orientation.RotateVec3(c.Offset))
	c.valid = true
}
