package asteroid

import (
	gomath "math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/voidharvest/internal/engine/geometry"
	"github.com/Faultbox/voidharvest/internal/engine/material"
	"github.com/Faultbox/voidharvest/internal/engine/noise"
	"github.com/Faultbox/voidharvest/internal/engine/scene"
	"github.com/Faultbox/voidharvest/internal/game/spawn"
	"github.com/Faultbox/voidharvest/internal/logger"
	"github.com/Faultbox/voidharvest/pkg/math"
)

// seedStride separates per-instance random streams. Instance i of a batch
// seeded with S uses S + i*seedStride, so the whole field reproduces from
// the base seed.
const seedStride = 7919

// Instance is one placed asteroid.
type Instance struct {
	ID             int
	Node           *scene.Node
	Params         Params
	ColliderRadius float32
}

// FieldConfig configures a batch of asteroids.
type FieldConfig struct {
	Count         int
	Seed          int64
	Area          spawn.Area
	MinSeparation float32

	// Base shape parameters; radius is jittered per instance within
	// [RadiusMin, RadiusMax] when both are positive.
	Params    Params
	RadiusMin float32
	RadiusMax float32

	// RandomGray enables per-instance grayscale rock materials. When off
	// every instance shares the default rock color.
	RandomGray bool

	// Obstructed rejects candidate spawn points, typically around the
	// player start.
	Obstructed spawn.ObstacleFunc

	// OnRelease is invoked for every owned mesh during Clear, letting the
	// renderer drop GPU buffers.
	OnRelease func(*geometry.Mesh)
}

// Field owns a generated asteroid batch: every mesh and material it
// allocates is tracked so teardown releases them as one set.
type Field struct {
	cfg       FieldConfig
	root      *scene.Node
	instances []*Instance
	meshes    []*geometry.Mesh
	materials []*material.Material
}

// defaultRockColor is the base gray used when material randomization is
// off.
var defaultRockColor = material.Gray(0.45)

// NewField generates and places a full batch. Placement failures reduce
// the effective count; they never fail the batch.
func NewField(cfg FieldConfig) *Field {
	f := &Field{
		cfg:  cfg,
		root: scene.NewNode("asteroidField"),
	}

	solver := &spawn.Solver{
		Area:          cfg.Area,
		MinSeparation: cfg.MinSeparation,
		Obstructed:    cfg.Obstructed,
	}
	placeRng := rand.New(rand.NewSource(cfg.Seed))
	positions := solver.PlaceAll(placeRng, cfg.Count)

	for i, pos := range positions {
		inst := f.generate(i, pos)
		f.instances = append(f.instances, inst)
		f.root.AddChild(inst.Node)
	}

	logger.Info("asteroid field generated",
		zap.Int("count", len(f.instances)),
		zap.Int64("seed", cfg.Seed),
	)
	return f
}

// generate builds one instance from its per-index deterministic stream.
func (f *Field) generate(index int, pos math.Vec3) *Instance {
	seed := f.cfg.Seed + int64(index)*seedStride
	rng := rand.New(rand.NewSource(seed))

	p := f.cfg.Params
	if f.cfg.RadiusMax > f.cfg.RadiusMin && f.cfg.RadiusMin > 0 {
		p.Radius = f.cfg.RadiusMin + rng.Float32()*(f.cfg.RadiusMax-f.cfg.RadiusMin)
	}
	// A large offset decorrelates instances sampling the same noise field.
	p.NoiseOffset = math.Vec3{
		X: rng.Float32() * 1000,
		Y: rng.Float32() * 1000,
		Z: rng.Float32() * 1000,
	}

	mesh := Build(p, noise.NewSource(seed), rng)
	f.meshes = append(f.meshes, mesh)

	mat := material.New("rock", defaultRockColor)
	if f.cfg.RandomGray {
		mat = material.New("rock", material.Gray(0.3+rng.Float32()*0.4))
	}
	f.materials = append(f.materials, mat)

	node := scene.NewNode("asteroid")
	node.Position = pos
	node.Rotation = math.Vec3{
		X: rng.Float32() * 2 * gomath.Pi,
		Y: rng.Float32() * 2 * gomath.Pi,
		Z: rng.Float32() * 2 * gomath.Pi,
	}
	node.Mesh = mesh
	node.Material = mat
	node.Tag = scene.TagAsteroid
	node.Collider = scene.Collider{
		Kind:   scene.ColliderSphere,
		Radius: ColliderRadius(p),
	}

	return &Instance{
		ID:             index,
		Node:           node,
		Params:         p,
		ColliderRadius: ColliderRadius(p),
	}
}

// Root returns the scene node holding every asteroid.
func (f *Field) Root() *scene.Node {
	return f.root
}

// Instances returns the placed asteroids.
func (f *Field) Instances() []*Instance {
	return f.instances
}

// Owned returns the tracked allocations, mostly for tests.
func (f *Field) Owned() (meshes []*geometry.Mesh, materials []*material.Material) {
	return f.meshes, f.materials
}

// Clear releases the whole batch as one set: every tracked mesh gets the
// release hook, all nodes detach, and the tracking lists empty. There is
// no partial teardown path.
func (f *Field) Clear() {
	if f.cfg.OnRelease != nil {
		for _, m := range f.meshes {
			f.cfg.OnRelease(m)
		}
	}
	f.root.Children = nil
	f.instances = nil
	f.meshes = nil
	f.materials = nil
	logger.Debug("asteroid field cleared")
}
