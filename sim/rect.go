package sim

// Rect is an axis-aligned box in playfield coordinates.
// Origin is top-left, y grows downward.
type Rect struct {
	X, Y float64 // top-left corner
	W, H float64
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x coordinate of the center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y coordinate of the center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether two boxes intersect on both axes.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Scaled returns the box shrunk (or grown) about its center by factor.
func (r Rect) Scaled(factor float64) Rect {
	w := r.W * factor
	h := r.H * factor
	return Rect{
		X: r.CenterX() - w/2,
		Y: r.CenterY() - h/2,
		W: w,
		H: h,
	}
}
