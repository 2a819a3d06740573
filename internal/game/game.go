// Package game implements the main loop: one procedurally generated run
// of flying the ship through the asteroid field collecting fuel cells.
package game

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/voidharvest/internal/config"
	"github.com/Faultbox/voidharvest/internal/engine/audio"
	"github.com/Faultbox/voidharvest/internal/engine/camera"
	"github.com/Faultbox/voidharvest/internal/engine/geometry"
	"github.com/Faultbox/voidharvest/internal/engine/input"
	"github.com/Faultbox/voidharvest/internal/engine/lighting"
	"github.com/Faultbox/voidharvest/internal/engine/renderer"
	"github.com/Faultbox/voidharvest/internal/engine/scene"
	"github.com/Faultbox/voidharvest/internal/engine/window"
	"github.com/Faultbox/voidharvest/internal/game/asteroid"
	"github.com/Faultbox/voidharvest/internal/game/fuelcell"
	"github.com/Faultbox/voidharvest/internal/game/spawn"
	"github.com/Faultbox/voidharvest/internal/logger"
	"github.com/Faultbox/voidharvest/pkg/math"
)

const (
	fovY          = gomath.Pi / 3
	nearPlane     = 0.1
	farPlane      = 500.0
	lightRange    = 6.0 // base point light reach, scaled by emission
	spawnClearing = 12.0
)

// Game is the main game instance.
type Game struct {
	cfg *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager
	camera   *camera.ChaseCamera
	orbit    *camera.OrbitCamera
	dragging bool

	root    *scene.Node
	player  *Player
	field   *asteroid.Field
	cells   *fuelcell.Spawner
	session *Session

	seed    int64
	running bool
	paused  bool
}

// New creates a new game instance. The window must come first since the
// renderer needs a live OpenGL context.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int64("seed", cfg.Generation.Seed),
	)

	g := &Game{
		cfg:    cfg,
		camera: camera.NewChaseCamera(),
		orbit:  camera.NewOrbitCamera(),
		audio:  audio.New(),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Void Harvest",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	// Audio is best-effort: a machine without a sound device still plays.
	if err := g.audio.Init(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
	} else {
		g.audio.SetMasterVolume(float64(cfg.Audio.MasterVolume))
		g.audio.SetSFXVolume(float64(cfg.Audio.SFXVolume))
		g.audio.SetMuted(cfg.Audio.Muted)
	}

	g.seed = cfg.Generation.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.buildWorld(g.seed)

	logger.Info("game initialized")
	return g, nil
}

// buildWorld generates one run's content: the ship, the asteroid field and
// the fuel cell batch. A clearing around the origin keeps the spawn safe.
func (g *Game) buildWorld(seed int64) {
	start := time.Now()

	g.root = scene.NewNode("world")
	g.player = NewPlayer()
	g.session = NewSession(g.cfg.Game)
	g.root.AddChild(g.player.Node)

	gen := g.cfg.Generation
	half := gen.Asteroids.AreaSize / 2
	area := spawn.Area{Size: math.Vec3{X: half * 2, Y: half, Z: half * 2}}

	params := asteroid.DefaultParams()
	params.Subdivisions = gen.Asteroids.Subdivisions
	params.Irregularity = gen.Asteroids.Irregularity
	params.DeformStrength = gen.Asteroids.DeformStrength
	params.NoiseScale = gen.Asteroids.NoiseScale
	params.Octaves = gen.Asteroids.Octaves
	params.Persistence = gen.Asteroids.Persistence
	params.Lacunarity = gen.Asteroids.Lacunarity

	g.field = asteroid.NewField(asteroid.FieldConfig{
		Count:         gen.Asteroids.Count,
		Seed:          seed,
		Area:          area,
		MinSeparation: gen.Asteroids.MinSeparation,
		Params:        params,
		RadiusMin:     gen.Asteroids.RadiusMin,
		RadiusMax:     gen.Asteroids.RadiusMax,
		RandomGray:    gen.Asteroids.RandomGray,
		Obstructed: func(p math.Vec3) bool {
			return p.Length() < spawnClearing
		},
		OnRelease: g.renderer.Release,
	})
	g.root.AddChild(g.field.Root())

	g.cells = fuelcell.NewSpawner(fuelcell.SpawnerConfig{
		Count:         gen.FuelCells.Count,
		Seed:          seed + 1,
		Area:          area,
		MinSeparation: gen.FuelCells.MinSeparation,
		MinY:          gen.FuelCells.MinHeight,
		Spec:          g.cellSpec(),
		Obstructed:    g.nearAsteroid,
		OnCleared: func() {
			g.session.Win()
			g.audio.PlayWin()
		},
	})
	g.root.AddChild(g.cells.Root())

	g.camera.Snap(g.player.Position, g.player.Orientation)

	logger.Info("world generated",
		zap.Int64("seed", seed),
		zap.Int("asteroids", len(g.field.Instances())),
		zap.Int("fuelCells", g.cells.Initial()),
		zap.Duration("took", time.Since(start)),
	)
}

func (g *Game) cellSpec() fuelcell.Spec {
	fc := g.cfg.Generation.FuelCells
	spec := fuelcell.DefaultSpec()
	if fc.Radius > 0 {
		spec.Radius = fc.Radius
	}
	if fc.Height > 0 {
		spec.Height = fc.Height
	}
	if fc.Segments > 0 {
		spec.Segments = fc.Segments
	}
	if fc.Score > 0 {
		spec.Score = fc.Score
	}
	if fc.Energy > 0 {
		spec.Energy = fc.Energy
	}
	return spec
}

// nearAsteroid reports whether a point sits inside an asteroid's collider
// plus a margin. Fuel cells must stay reachable.
func (g *Game) nearAsteroid(p math.Vec3) bool {
	for _, inst := range g.field.Instances() {
		if p.Distance(inst.Node.Position) < inst.ColliderRadius+2 {
			return true
		}
	}
	return false
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		if dt > 0.1 {
			dt = 0.1 // clamp hitches so physics stays sane
		}

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		if !g.paused {
			g.update(dt)
		}
		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if g.cfg.Game.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("Void Harvest - %d fps", frameCount))
			}
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if d := frameDelay(time.Since(now), g.cfg.Graphics.FPSLimit); d > 0 {
			sdl.Delay(uint32(d.Milliseconds()))
		}
	}

	logger.Info("run ended",
		zap.String("outcome", g.session.Outcome().String()),
		zap.Int("score", g.session.Score),
		zap.Duration("elapsed", g.session.Elapsed),
	)
	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.renderer.Resize(event.Width, event.Height)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_P:
				if !g.session.Over() {
					g.paused = !g.paused
					if g.paused {
						g.orbit.Center = g.player.Position
					}
				}
			case sdl.SCANCODE_R:
				g.restart()
			}
		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				g.dragging = true
			}
		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				g.dragging = false
			}
		case input.EventMouseMove:
			if g.paused && g.dragging {
				sens := g.cfg.Game.MouseSensitivity
				g.orbit.HandleDrag(float32(event.DeltaX)*sens, float32(event.DeltaY)*sens)
			}
		case input.EventMouseWheel:
			if g.paused {
				g.orbit.HandleZoom(event.Wheel)
			}
		}
	}
}

// restart tears the current run down and generates a new one with the
// next seed, keeping the renderer's mesh cache free of stale buffers.
func (g *Game) restart() {
	logger.Info("restarting run")
	g.audio.SetThrusting(false)
	g.field.Clear()
	g.cells.Clear(g.renderer.Release)
	releaseSubtree(g.player.Node, g.renderer.Release)
	g.seed++
	g.paused = false
	g.buildWorld(g.seed)
}

// frameDelay returns how long the loop should sleep so a frame takes at
// least the period implied by limit. A limit of zero or less disables the
// cap, leaving pacing to vsync.
func frameDelay(elapsed time.Duration, limit int) time.Duration {
	if limit <= 0 {
		return 0
	}
	period := time.Second / time.Duration(limit)
	if elapsed >= period {
		return 0
	}
	return period - elapsed
}

// releaseSubtree passes every distinct mesh under root to release once.
// Ship parts share glow meshes across nodes, so repeats are filtered here
// rather than leaning on the release hook to tolerate them.
func releaseSubtree(root *scene.Node, release func(*geometry.Mesh)) {
	if root == nil || release == nil {
		return
	}
	seen := make(map[*geometry.Mesh]bool)
	root.Walk(math.Identity(), func(n *scene.Node, _ math.Mat4) {
		if n.Mesh != nil && !seen[n.Mesh] {
			seen[n.Mesh] = true
			release(n.Mesh)
		}
	})
}

func (g *Game) controls() Controls {
	c := Controls{
		Pitch: g.input.Axis(sdl.SCANCODE_DOWN, sdl.SCANCODE_UP),
		Yaw:   g.input.Axis(sdl.SCANCODE_RIGHT, sdl.SCANCODE_LEFT),
		Roll:  g.input.Axis(sdl.SCANCODE_Q, sdl.SCANCODE_E),
		Brake: g.input.Held(sdl.SCANCODE_S),
	}
	if g.input.Held(sdl.SCANCODE_W) {
		c.Thrust = 1
	}
	if g.cfg.Game.InvertPitch {
		c.Pitch = -c.Pitch
	}
	return c
}

func (g *Game) update(dt float64) {
	c := g.controls()
	if g.session.Over() {
		c = Controls{}
	}
	if g.session.Energy <= 0 {
		c.Thrust = 0
	}

	thrusting := c.Thrust > 0
	g.audio.SetThrusting(thrusting && !g.session.Over())

	wasPlaying := !g.session.Over()
	g.session.Update(dt, thrusting)
	g.player.Update(float32(dt), c)
	g.resolveCollisions()
	g.camera.Update(g.player.Position, g.player.Orientation, float32(dt))

	if wasPlaying && g.session.Over() && g.session.Outcome() != OutcomeWon {
		g.audio.PlayLose()
		logger.Info("run lost", zap.String("reason", g.session.Outcome().String()))
	}
}

// resolveCollisions runs sphere tests between the ship and everything
// tagged in the scene. Asteroids hurt, fuel cells collect.
func (g *Game) resolveCollisions() {
	pos := g.player.Position
	pr := g.player.Radius()

	for _, inst := range g.field.Instances() {
		d := pos.Distance(inst.Node.Position)
		overlap := inst.ColliderRadius + pr - d
		if overlap <= 0 {
			continue
		}
		normal := pos.Sub(inst.Node.Position)
		g.player.Bounce(normal, overlap)
		g.session.Impact()
		g.audio.PlayImpact()
	}

	for _, cell := range g.cells.Instances() {
		if pos.Distance(cell.Node.Position) > pr+cell.Node.Collider.Radius {
			continue
		}
		score, energy, ok := g.cells.Collect(cell.ID)
		if !ok {
			continue
		}
		g.session.Collect(score, energy)
		g.audio.PlayCollect()
	}
}

func (g *Game) render() {
	proj := math.Perspective(fovY, g.renderer.Aspect(), nearPlane, farPlane)
	// Paused runs get the orbiting overview of the field instead of the
	// chase view.
	view := g.camera.ViewMatrix(g.player.Position, g.player.Orientation)
	if g.paused {
		view = g.orbit.ViewMatrix()
	}
	g.renderer.SetCamera(view, proj)
	g.renderer.SetPointLights(lighting.GatherEmissive(g.root, lightRange))

	g.renderer.Begin()
	g.renderer.DrawScene(g.root)
	g.renderer.End()
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	g.audio.Close()
	if g.field != nil {
		g.field.Clear()
	}
	if g.cells != nil && g.renderer != nil {
		g.cells.Clear(g.renderer.Release)
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
