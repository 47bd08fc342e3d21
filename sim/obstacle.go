package sim

// Obstacle is a single drifting barrier. Its drift speed is the field's
// base speed plus a jitter of 1 or 2 drawn once at creation; fast
// obstacles (jitter 2) are flagged for the renderer.
type Obstacle struct {
	ID  uint64
	Box Rect

	jitter         float64
	baseSpeed      float64
	collisionScale float64
}

// Update drifts the obstacle left by its effective speed.
func (o *Obstacle) Update(t *TickContext) {
	o.Box.X -= o.baseSpeed + o.jitter
}

// Speed returns the effective leftward drift per tick.
func (o *Obstacle) Speed() float64 {
	return o.baseSpeed + o.jitter
}

// Fast reports whether this obstacle drew the larger jitter.
func (o *Obstacle) Fast() bool {
	return o.jitter > 1
}

// CollisionBox returns the visual box shrunk about its center, giving a
// slightly forgiving hitbox.
func (o *Obstacle) CollisionBox() Rect {
	return o.Box.Scaled(o.collisionScale)
}

// offScreen reports whether the trailing edge has crossed the left
// simulation boundary.
func (o *Obstacle) offScreen() bool {
	return o.Box.Right() < 0
}

// CheckPassed reports whether the flyer passes this obstacle on this tick:
// true exactly once per (flyer, obstacle) pair, the first time the
// obstacle's trailing edge is strictly left of the flyer's leading edge.
func (o *Obstacle) CheckPassed(f *Flyer) bool {
	if o.Box.Right() >= f.Box.Left() {
		return false
	}
	return f.markPassed(o.ID)
}
