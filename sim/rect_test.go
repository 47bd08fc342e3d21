package sim

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"partial overlap", Rect{X: 25, Y: 25, W: 20, H: 20}, true},
		{"contained", Rect{X: 15, Y: 15, W: 5, H: 5}, true},
		{"touching edges", Rect{X: 30, Y: 10, W: 20, H: 20}, false},
		{"x overlap only", Rect{X: 15, Y: 100, W: 20, H: 20}, false},
		{"y overlap only", Rect{X: 100, Y: 15, W: 20, H: 20}, false},
		{"fully apart", Rect{X: 100, Y: 100, W: 20, H: 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectScaled(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 50}
	s := r.Scaled(0.9)

	if math.Abs(s.W-90) > 1e-9 || math.Abs(s.H-45) > 1e-9 {
		t.Errorf("scaled size = %vx%v, want 90x45", s.W, s.H)
	}
	if math.Abs(s.CenterX()-r.CenterX()) > 1e-9 || math.Abs(s.CenterY()-r.CenterY()) > 1e-9 {
		t.Errorf("scaling moved the center: (%v,%v) -> (%v,%v)",
			r.CenterX(), r.CenterY(), s.CenterX(), s.CenterY())
	}
}
