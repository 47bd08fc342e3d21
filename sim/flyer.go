package sim

import (
	"math"

	"github.com/pthm-cable/glide/config"
)

// Flyer is a single agent: a box subject to gravity and jump impulses,
// with a running score and a record of which obstacles it has passed.
type Flyer struct {
	ID       int
	Box      Rect
	Velocity float64
	Score    int

	// LastJumpY is the y position recorded by the most recent Jump.
	// Callers use it to detect no-op jumps; the simulation itself never
	// reads it.
	LastJumpY float64

	gravity    float64
	impulse    float64
	scoreDelta int
	passed     map[uint64]struct{}
}

// NewFlyer creates a flyer at the configured spawn point.
func NewFlyer(id int, cfg *config.Config) *Flyer {
	return &Flyer{
		ID: id,
		Box: Rect{
			X: cfg.Derived.SpawnX - cfg.Flyer.Width/2,
			Y: cfg.Derived.SpawnY - cfg.Flyer.Height/2,
			W: cfg.Flyer.Width,
			H: cfg.Flyer.Height,
		},
		LastJumpY: math.Inf(-1),
		gravity:   cfg.Physics.Gravity,
		impulse:   cfg.Physics.JumpImpulse,
		passed:    make(map[uint64]struct{}),
	}
}

// Update applies one physics step: gravity always acts on velocity first,
// then velocity moves the box. There is no terminal velocity and no
// clamping; leaving the playfield is a collision, not a clamp.
func (f *Flyer) Update(t *TickContext) {
	f.Velocity += f.gravity
	f.Box.Y += f.Velocity
}

// Jump overwrites the velocity with the upward impulse and records the
// current y for no-op jump detection.
func (f *Flyer) Jump() {
	f.Velocity = -f.impulse
	f.LastJumpY = f.Box.Y
}

// ScoreDelta returns the score change computed by the most recent
// Simulation.ScoreDelta call.
func (f *Flyer) ScoreDelta() int {
	return f.scoreDelta
}

// markPassed records the obstacle as passed by this flyer.
// Returns false if it was already recorded.
func (f *Flyer) markPassed(id uint64) bool {
	if _, ok := f.passed[id]; ok {
		return false
	}
	f.passed[id] = struct{}{}
	return true
}
