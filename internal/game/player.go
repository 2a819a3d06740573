package game

import (
	"github.com/Faultbox/voidharvest/internal/engine/scene"
	"github.com/Faultbox/voidharvest/internal/game/ship"
	"github.com/Faultbox/voidharvest/pkg/math"
)

// Flight tuning. The ship drifts unless counter-thrusted, which is most
// of the game's feel.
const (
	thrustAccel  = 14.0
	linearDrag   = 0.6 // fraction of velocity lost per second
	pitchSpeed   = 1.8 // radians per second at full stick
	yawSpeed     = 1.4
	rollSpeed    = 2.2
	playerRadius = 1.1 // collision sphere around the hull
)

// Controls is the per-frame flight input, each axis in [-1, 1].
type Controls struct {
	Pitch  float32
	Yaw    float32
	Roll   float32
	Thrust float32 // [0, 1]
	Brake  bool
}

// Player is the flyable ship: generated hull plus simple Newtonian
// movement.
type Player struct {
	Node *scene.Node

	Position    math.Vec3
	Orientation math.Quat
	Velocity    math.Vec3
}

// NewPlayer builds the ship and places it at the origin.
func NewPlayer() *Player {
	return &Player{
		Node:        ship.Build(ship.DefaultConfig()),
		Orientation: math.QuatIdentity(),
	}
}

// Forward returns the ship's nose direction in world space.
func (p *Player) Forward() math.Vec3 {
	return p.Orientation.RotateVec3(math.Vec3{Z: -1})
}

// Update integrates one frame of flight.
func (p *Player) Update(dt float32, c Controls) {
	if c.Pitch != 0 {
		p.Orientation = p.Orientation.Mul(math.QuatFromAxisAngle(math.Vec3{X: 1}, c.Pitch*pitchSpeed*dt))
	}
	if c.Yaw != 0 {
		p.Orientation = p.Orientation.Mul(math.QuatFromAxisAngle(math.Vec3{Y: 1}, c.Yaw*yawSpeed*dt))
	}
	if c.Roll != 0 {
		p.Orientation = p.Orientation.Mul(math.QuatFromAxisAngle(math.Vec3{Z: 1}, c.Roll*rollSpeed*dt))
	}
	p.Orientation = p.Orientation.Normalize()

	if c.Thrust > 0 {
		p.Velocity = p.Velocity.Add(p.Forward().Scale(c.Thrust * thrustAccel * dt))
	}

	drag := linearDrag
	if c.Brake {
		drag = linearDrag * 5
	}
	p.Velocity = p.Velocity.Scale(1 - float32(drag)*dt)

	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.syncNode()
}

// Bounce reflects velocity off a collision normal and pushes the ship out
// of the overlap.
func (p *Player) Bounce(normal math.Vec3, depth float32) {
	n := normal.Normalize()
	vn := p.Velocity.Dot(n)
	if vn < 0 {
		p.Velocity = p.Velocity.Sub(n.Scale(2 * vn)).Scale(0.5)
	}
	p.Position = p.Position.Add(n.Scale(depth))
	p.syncNode()
}

// Radius returns the collision sphere radius.
func (p *Player) Radius() float32 {
	return playerRadius
}

func (p *Player) syncNode() {
	p.Node.Position = p.Position
	q := p.Orientation
	p.Node.Orientation = &q
}
