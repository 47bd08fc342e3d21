package sim

import "github.com/pthm-cable/glide/config"

// Boundary is the scrolling floor/ceiling pair. Its collision geometry is a
// fixed horizontal band at the top and bottom of the playfield; the scroll
// offset exists only so a renderer can draw continuous motion.
type Boundary struct {
	Ground  Rect
	Ceiling Rect

	scroll float64
	speed  float64
	width  float64
}

// NewBoundary creates the floor and ceiling strips spanning the playfield.
func NewBoundary(cfg *config.Config) *Boundary {
	w := float64(cfg.Screen.Width)
	h := float64(cfg.Screen.Height)
	return &Boundary{
		Ground:  Rect{X: 0, Y: h - cfg.Boundary.GroundHeight, W: w, H: cfg.Boundary.GroundHeight},
		Ceiling: Rect{X: 0, Y: 0, W: w, H: cfg.Boundary.CeilingHeight},
		speed:   cfg.Obstacles.BaseSpeed,
		width:   w,
	}
}

// Update advances the visual scroll offset and wraps it. Collision
// geometry is unaffected.
func (b *Boundary) Update(t *TickContext) {
	b.scroll -= b.speed
	if b.scroll <= -b.width {
		b.scroll += b.width
	}
}

// Scroll returns the current visual scroll offset in [-width, 0].
func (b *Boundary) Scroll() float64 {
	return b.scroll
}

// Collides reports whether the box intersects either strip.
func (b *Boundary) Collides(box Rect) bool {
	return box.Overlaps(b.Ground) || box.Overlaps(b.Ceiling)
}
