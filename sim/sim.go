// Package sim implements the side-scrolling obstacle-avoidance simulation:
// flyer physics, the procedural obstacle spawner, boundary strips, collision
// and pass detection, and the per-tick orchestrator that advances them all.
//
// The package performs no rendering and makes no decisions; controllers call
// Flyer.Jump between ticks and renderers read Snapshot after them.
package sim

import (
	"math/rand"

	"github.com/pthm-cable/glide/config"
)

// TickContext carries the per-tick state shared by all updatables.
// It is immutable for the duration of one tick.
type TickContext struct {
	Tick uint64
	Rng  *rand.Rand
}

// Updatable is anything the simulation advances once per tick.
type Updatable interface {
	Update(t *TickContext)
}

// Simulation orchestrates the world: the boundary, any number of obstacle
// fields, and the currently attached flyers. Update order is fixed:
// boundary, then fields, then flyers, so every agent perceives the same
// post-spawn world within a tick.
type Simulation struct {
	cfg *config.Config
	rng *rand.Rand

	tick     uint64
	boundary *Boundary
	fields   []*ObstacleField
	flyers   []*Flyer
}

// New creates a simulation with the boundary in place and no fields or
// flyers attached. The seed fixes the obstacle placement sequence.
func New(cfg *config.Config, seed int64) *Simulation {
	return &Simulation{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		boundary: NewBoundary(cfg),
	}
}

// Reseed replaces the RNG so a run can be reproduced from a known seed.
func (s *Simulation) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// AddField registers an obstacle field for per-tick update.
func (s *Simulation) AddField(f *ObstacleField) {
	s.fields = append(s.fields, f)
}

// Attach registers a flyer for per-tick update.
func (s *Simulation) Attach(f *Flyer) {
	s.flyers = append(s.flyers, f)
}

// Detach removes a flyer from the update registry. Detached flyers keep
// their final state but are no longer advanced.
func (s *Simulation) Detach(f *Flyer) {
	for i, fl := range s.flyers {
		if fl == f {
			s.flyers = append(s.flyers[:i], s.flyers[i+1:]...)
			return
		}
	}
}

// Tick advances the world by one step: increments the tick counter, scrolls
// the boundary, advances/retires/spawns obstacles in every field, then
// applies physics to every attached flyer.
func (s *Simulation) Tick() {
	s.tick++
	t := &TickContext{Tick: s.tick, Rng: s.rng}

	s.boundary.Update(t)
	for _, f := range s.fields {
		f.Update(t)
	}
	for _, f := range s.flyers {
		f.Update(t)
	}
}

// CurrentTick returns the tick counter.
func (s *Simulation) CurrentTick() uint64 {
	return s.tick
}

// Boundary returns the floor/ceiling pair.
func (s *Simulation) Boundary() *Boundary {
	return s.boundary
}

// Fields returns the registered obstacle fields.
func (s *Simulation) Fields() []*ObstacleField {
	return s.fields
}

// ScoreDelta counts the obstacles the flyer has newly passed this tick,
// across all fields, and folds the delta into its running score. Each
// obstacle is credited to each flyer at most once.
func (s *Simulation) ScoreDelta(f *Flyer) int {
	delta := 0
	for _, fld := range s.fields {
		for _, o := range fld.Obstacles() {
			if o.CheckPassed(f) {
				delta++
			}
		}
	}
	f.Score += delta
	f.scoreDelta = delta
	return delta
}

// Collides reports whether the flyer's box intersects any live obstacle in
// any field, or either boundary strip. This is the sole termination
// condition for a flyer.
func (s *Simulation) Collides(f *Flyer) bool {
	if s.boundary.Collides(f.Box) {
		return true
	}
	for _, fld := range s.fields {
		for _, o := range fld.Obstacles() {
			if f.Box.Overlaps(o.CollisionBox()) {
				return true
			}
		}
	}
	return false
}

// ResetFields clears all obstacle fields for the next session or
// generation. The boundary and tick counter are kept.
func (s *Simulation) ResetFields() {
	for _, f := range s.fields {
		f.Reset()
	}
}
