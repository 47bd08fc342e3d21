package sim

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/glide/config"
)

// spawnAttempts bounds the rejection sampling per spawn cycle. With a
// crowded field every candidate may be rejected; the cycle is then skipped
// silently rather than retried forever, keeping runs reproducible under a
// fixed seed.
const spawnAttempts = 10

// ObstacleField owns a stream of obstacles: it advances and retires them
// each tick and spawns new ones at a fixed cadence, subject to a live-count
// cap and an axis-wise minimum separation enforced at spawn time only.
// Obstacles drifting at different speeds may later end up closer; that is
// not re-checked.
type ObstacleField struct {
	obstacles []*Obstacle
	nextID    uint64

	maxLive        int
	cadence        uint64
	minSeparation  float64
	baseSpeed      float64
	obstacleW      float64
	obstacleH      float64
	collisionScale float64

	spawnX     float64 // candidate center x, just off the right edge
	bandTop    float64 // vertical spawn band for the center, inset by
	bandBottom float64 // half-height from the boundary strips
}

// NewObstacleField creates a field sized from the config. maxLive overrides
// the configured concurrency cap when positive (the arcade mode runs a
// larger cap than training).
func NewObstacleField(cfg *config.Config, maxLive int) *ObstacleField {
	if maxLive <= 0 {
		maxLive = cfg.Obstacles.MaxConcurrent
	}
	halfH := cfg.Obstacles.Height / 2
	return &ObstacleField{
		maxLive:        maxLive,
		cadence:        uint64(cfg.Obstacles.SpawnCadence),
		minSeparation:  cfg.Obstacles.MinSeparation,
		baseSpeed:      cfg.Obstacles.BaseSpeed,
		obstacleW:      cfg.Obstacles.Width,
		obstacleH:      cfg.Obstacles.Height,
		collisionScale: cfg.Obstacles.CollisionScale,
		spawnX:         float64(cfg.Screen.Width) + cfg.Obstacles.Width/2,
		bandTop:        cfg.Boundary.CeilingHeight + halfH,
		bandBottom:     float64(cfg.Screen.Height) - cfg.Boundary.GroundHeight - halfH,
	}
}

// Update advances and retires live obstacles, then attempts a spawn if the
// tick lands on the cadence and the field is below its cap.
func (fld *ObstacleField) Update(t *TickContext) {
	live := fld.obstacles[:0]
	for _, o := range fld.obstacles {
		o.Update(t)
		if !o.offScreen() {
			live = append(live, o)
		}
	}
	fld.obstacles = live

	if t.Tick%fld.cadence == 0 && len(fld.obstacles) < fld.maxLive {
		fld.trySpawn(t.Rng)
	}
}

// trySpawn places one obstacle by rejection sampling: draw a vertical
// center uniformly from the spawn band and accept it only if it keeps the
// minimum separation to every live obstacle. Gives up after spawnAttempts.
func (fld *ObstacleField) trySpawn(rng *rand.Rand) {
	for i := 0; i < spawnAttempts; i++ {
		cy := fld.bandTop + rng.Float64()*(fld.bandBottom-fld.bandTop)
		if !fld.separated(fld.spawnX, cy) {
			continue
		}
		fld.nextID++
		fld.obstacles = append(fld.obstacles, &Obstacle{
			ID: fld.nextID,
			Box: Rect{
				X: fld.spawnX - fld.obstacleW/2,
				Y: cy - fld.obstacleH/2,
				W: fld.obstacleW,
				H: fld.obstacleH,
			},
			jitter:         float64(1 + rng.Intn(2)),
			baseSpeed:      fld.baseSpeed,
			collisionScale: fld.collisionScale,
		})
		return
	}
}

// separated checks the candidate center against every live obstacle.
// Both axis distances must individually meet the minimum; this is not a
// Euclidean test.
func (fld *ObstacleField) separated(cx, cy float64) bool {
	for _, o := range fld.obstacles {
		dx := math.Abs(cx - o.Box.CenterX())
		dy := math.Abs(cy - o.Box.CenterY())
		if dx < fld.minSeparation || dy < fld.minSeparation {
			return false
		}
	}
	return true
}

// Obstacles returns the live obstacles in spawn order. Callers must not
// mutate the slice.
func (fld *ObstacleField) Obstacles() []*Obstacle {
	return fld.obstacles
}

// MaxLive returns the concurrency cap.
func (fld *ObstacleField) MaxLive() int {
	return fld.maxLive
}

// Reset drops all live obstacles. Obstacle IDs keep increasing across
// resets so passed-sets never alias between sessions.
func (fld *ObstacleField) Reset() {
	fld.obstacles = nil
}
