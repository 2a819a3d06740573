// Package spawn places batches of generated objects inside the play area
// and tracks their collection lifecycle.
package spawn

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/voidharvest/internal/logger"
	"github.com/Faultbox/voidharvest/pkg/math"
)

// maxPlaceAttempts is the hard ceiling on placement retries per instance.
// An instance that cannot be placed within the cap is skipped, not an
// error.
const maxPlaceAttempts = 50

// ObstacleFunc reports whether a candidate point is physically obstructed.
type ObstacleFunc func(p math.Vec3) bool

// Area is an axis-aligned spawn volume.
type Area struct {
	Center math.Vec3
	Size   math.Vec3
}

// Contains reports whether the point lies inside the area box.
func (a Area) Contains(p math.Vec3) bool {
	d := p.Sub(a.Center)
	return abs(d.X) <= a.Size.X/2 && abs(d.Y) <= a.Size.Y/2 && abs(d.Z) <= a.Size.Z/2
}

// Solver samples collision-safe positions inside an area.
type Solver struct {
	Area          Area
	MinSeparation float32
	// MinY clamps the sampled Y upward when FloorClamp is set; fuel cells
	// use it to stay above the play floor.
	MinY       float32
	FloorClamp bool
	Obstructed ObstacleFunc
}

// Place samples a position at least MinSeparation away from every point in
// placed and not obstructed. It reports ok=false after the retry cap is
// exhausted.
func (s *Solver) Place(rng *rand.Rand, placed []math.Vec3) (math.Vec3, bool) {
	for attempt := 0; attempt < maxPlaceAttempts; attempt++ {
		p := s.sample(rng)
		if s.Obstructed != nil && s.Obstructed(p) {
			continue
		}
		if s.tooClose(p, placed) {
			continue
		}
		return p, true
	}
	return math.Vec3{}, false
}

// PlaceAll places up to count positions. Instances that exhaust the retry
// budget are dropped and logged; the batch continues with the rest.
func (s *Solver) PlaceAll(rng *rand.Rand, count int) []math.Vec3 {
	placed := make([]math.Vec3, 0, count)
	skipped := 0
	for i := 0; i < count; i++ {
		p, ok := s.Place(rng, placed)
		if !ok {
			skipped++
			continue
		}
		placed = append(placed, p)
	}
	if skipped > 0 {
		logger.Warn("spawn placement exhausted, batch reduced",
			zap.Int("requested", count),
			zap.Int("placed", len(placed)),
			zap.Int("skipped", skipped),
		)
	}
	return placed
}

func (s *Solver) sample(rng *rand.Rand) math.Vec3 {
	p := math.Vec3{
		X: s.Area.Center.X + (rng.Float32()-0.5)*s.Area.Size.X,
		Y: s.Area.Center.Y + (rng.Float32()-0.5)*s.Area.Size.Y,
		Z: s.Area.Center.Z + (rng.Float32()-0.5)*s.Area.Size.Z,
	}
	if s.FloorClamp && p.Y < s.MinY {
		p.Y = s.MinY
	}
	return p
}

func (s *Solver) tooClose(p math.Vec3, placed []math.Vec3) bool {
	for _, q := range placed {
		if p.Distance(q) < s.MinSeparation {
			return true
		}
	}
	return false
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
