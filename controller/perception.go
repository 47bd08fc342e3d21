package controller

import (
	"math"

	"github.com/pthm-cable/glide/config"
	"github.com/pthm-cable/glide/sim"
)

// SlotSentinel fills obstacle slots beyond the live count so the encoding
// stays fixed-size regardless of how many obstacles are alive.
const SlotSentinel = -1.0

// Encoder builds the fixed-length perception vector fed to policy deciders:
//
//	[y from bottom, y from top, velocity, score,
//	 slot 0 x, slot 0 y, slot 0 distance, slot 1 x, ...]
//
// Positions are normalized to [0,1] over the playfield (x over the spawn
// edge, which sits just past the right screen edge). Slots are ordered by
// spawn order, not proximity, so a given obstacle keeps its slot for life.
type Encoder struct {
	width      float64
	height     float64
	spawnRight float64
	slots      int
}

// NewEncoder creates an encoder sized from the config. The vector length is
// fixed at 4 + 3*slots, matching cfg.Derived.NumInputs.
func NewEncoder(cfg *config.Config) *Encoder {
	return &Encoder{
		width:      float64(cfg.Screen.Width),
		height:     float64(cfg.Screen.Height),
		spawnRight: float64(cfg.Screen.Width) + cfg.Obstacles.Width/2,
		slots:      cfg.Obstacles.MaxConcurrent,
	}
}

// Len returns the perception vector length.
func (e *Encoder) Len() int {
	return 4 + 3*e.slots
}

// Encode builds the perception vector for one flyer against the given
// obstacle fields.
func (e *Encoder) Encode(f *sim.Flyer, fields []*sim.ObstacleField) []float64 {
	fy := f.Box.CenterY() / e.height
	fx := f.Box.CenterX() / e.width

	inputs := make([]float64, 0, e.Len())
	inputs = append(inputs,
		1-fy, // normalized distance from the bottom
		fy,   // normalized distance from the top
		f.Velocity,
		float64(f.Score),
	)

	filled := 0
	for _, fld := range fields {
		for _, o := range fld.Obstacles() {
			if filled >= e.slots {
				break
			}
			ox := o.Box.CenterX() / e.spawnRight
			oy := o.Box.CenterY() / e.height
			inputs = append(inputs, ox, oy, math.Hypot(fx-ox, fy-oy))
			filled++
		}
	}
	for ; filled < e.slots; filled++ {
		inputs = append(inputs, SlotSentinel, SlotSentinel, SlotSentinel)
	}
	return inputs
}
