package fuelcell

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/voidharvest/internal/engine/geometry"
	"github.com/Faultbox/voidharvest/internal/engine/material"
	"github.com/Faultbox/voidharvest/internal/engine/scene"
	"github.com/Faultbox/voidharvest/internal/game/spawn"
	"github.com/Faultbox/voidharvest/internal/logger"
)

// Instance is one placed, uncollected fuel cell.
type Instance struct {
	ID   int
	Node *scene.Node
	Spec Spec
}

// SpawnerConfig configures a fuel cell batch.
type SpawnerConfig struct {
	Count         int
	Seed          int64
	Area          spawn.Area
	MinSeparation float32
	// MinY keeps cells above the play floor.
	MinY float32

	Spec Spec

	// Obstructed rejects candidate points inside asteroids.
	Obstructed spawn.ObstacleFunc

	// OnCleared fires exactly once when the live count reaches zero; it
	// fires immediately for a zero-count batch.
	OnCleared func()
}

// Spawner owns a fuel cell batch. Cells within a batch share one mesh and
// one material; collection removes the node and updates the live count.
type Spawner struct {
	cfg       SpawnerConfig
	root      *scene.Node
	batch     *spawn.Batch
	instances map[int]*Instance
	mesh      *geometry.Mesh
	material  *material.Material
}

// NewSpawner generates and places the batch. Placement exhaustion reduces
// the batch, and the cleared condition follows the effective count.
func NewSpawner(cfg SpawnerConfig) *Spawner {
	s := &Spawner{
		cfg:       cfg,
		root:      scene.NewNode("fuelCells"),
		instances: make(map[int]*Instance, cfg.Count),
	}

	solver := &spawn.Solver{
		Area:          cfg.Area,
		MinSeparation: cfg.MinSeparation,
		MinY:          cfg.MinY,
		FloorClamp:    true,
		Obstructed:    cfg.Obstructed,
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	positions := solver.PlaceAll(rng, cfg.Count)

	s.mesh = BuildMesh(cfg.Spec)
	s.material = BuildMaterial(cfg.Spec)

	for i, pos := range positions {
		node := scene.NewNode("fuelCell")
		node.Position = pos
		node.Mesh = s.mesh
		node.Material = s.material
		node.Tag = scene.TagFuelCell
		node.Collider = NewCollider(cfg.Spec)
		s.root.AddChild(node)
		s.instances[i] = &Instance{ID: i, Node: node, Spec: cfg.Spec}
	}

	s.batch = spawn.NewBatch(len(positions), cfg.OnCleared)

	logger.Info("fuel cells spawned",
		zap.Int("requested", cfg.Count),
		zap.Int("placed", len(positions)),
		zap.Int64("seed", cfg.Seed),
	)
	return s
}

// Root returns the scene node holding every uncollected cell.
func (s *Spawner) Root() *scene.Node {
	return s.root
}

// Instances returns the live cells.
func (s *Spawner) Instances() []*Instance {
	out := make([]*Instance, 0, len(s.instances))
	for _, inst := range s.instances {
		out = append(out, inst)
	}
	return out
}

// Collect removes a cell and reports its score and energy values. The
// cleared callback fires from inside this call when the last cell goes.
func (s *Spawner) Collect(id int) (score int, energy float32, ok bool) {
	inst, exists := s.instances[id]
	if !exists || !s.batch.ReportCollected(id) {
		return 0, 0, false
	}
	delete(s.instances, id)
	s.root.Detach(inst.Node)
	return inst.Spec.Score, inst.Spec.Energy, true
}

// Clear tears the batch down as one set: the shared mesh goes through the
// release hook once, every remaining node detaches, and the tracking
// state empties. Safe to call on an already-cleared spawner.
func (s *Spawner) Clear(release func(*geometry.Mesh)) {
	if release != nil && s.mesh != nil {
		release(s.mesh)
	}
	s.root.Children = nil
	s.instances = nil
	s.mesh = nil
	s.material = nil
	logger.Debug("fuel cell batch cleared")
}

// Cleared reports whether every cell has been collected.
func (s *Spawner) Cleared() bool {
	return s.batch.Cleared()
}

// Live returns the uncollected count.
func (s *Spawner) Live() int {
	return s.batch.Live()
}

// Initial returns the effective batch size after placement.
func (s *Spawner) Initial() int {
	return s.batch.Initial()
}
