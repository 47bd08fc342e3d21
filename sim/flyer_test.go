package sim

import (
	"math"
	"testing"

	"github.com/pthm-cable/glide/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading default config: %v", err)
	}
	return cfg
}

// TestFlyerGravity verifies gravity accumulates on velocity before the box
// moves, with no terminal velocity.
func TestFlyerGravity(t *testing.T) {
	cfg := testConfig(t)
	f := NewFlyer(1, cfg)
	y0 := f.Box.Y
	g := cfg.Physics.Gravity

	tc := &TickContext{Tick: 1}

	f.Update(tc)
	if math.Abs(f.Velocity-g) > 1e-9 {
		t.Errorf("velocity after 1 tick = %v, want %v", f.Velocity, g)
	}
	if math.Abs(f.Box.Y-(y0+g)) > 1e-9 {
		t.Errorf("y after 1 tick = %v, want %v", f.Box.Y, y0+g)
	}

	f.Update(tc)
	f.Update(tc)
	if math.Abs(f.Velocity-3*g) > 1e-9 {
		t.Errorf("velocity after 3 ticks = %v, want %v", f.Velocity, 3*g)
	}
	// y advances by g, then 2g, then 3g.
	if math.Abs(f.Box.Y-(y0+6*g)) > 1e-9 {
		t.Errorf("y after 3 ticks = %v, want %v", f.Box.Y, y0+6*g)
	}
}

// TestFlyerJump verifies a jump overwrites velocity rather than adding to
// it, regardless of the current fall speed.
func TestFlyerJump(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name     string
		velocity float64
	}{
		{"at rest", 0},
		{"falling fast", 30},
		{"already rising", -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFlyer(1, cfg)
			f.Velocity = tc.velocity
			f.Jump()
			if f.Velocity != -cfg.Physics.JumpImpulse {
				t.Errorf("velocity after jump = %v, want %v", f.Velocity, -cfg.Physics.JumpImpulse)
			}
		})
	}
}

// TestFlyerNoopJumpCondition verifies the bookkeeping the no-op jump
// penalty relies on: LastJumpY equals the current y immediately after a
// jump and diverges as soon as physics moves the flyer.
func TestFlyerNoopJumpCondition(t *testing.T) {
	cfg := testConfig(t)
	f := NewFlyer(1, cfg)

	if !math.IsInf(f.LastJumpY, -1) {
		t.Fatalf("initial LastJumpY = %v, want -Inf", f.LastJumpY)
	}
	if f.LastJumpY == f.Box.Y {
		t.Fatal("fresh flyer must not look like a no-op jumper")
	}

	f.Jump()
	if f.LastJumpY != f.Box.Y {
		t.Errorf("after jump LastJumpY = %v, y = %v; want equal", f.LastJumpY, f.Box.Y)
	}

	f.Update(&TickContext{Tick: 1})
	if f.LastJumpY == f.Box.Y {
		t.Error("after physics step LastJumpY still equals y")
	}
}

// TestFlyerSpawnPoint verifies the spawn box is centered on the configured
// spawn fractions.
func TestFlyerSpawnPoint(t *testing.T) {
	cfg := testConfig(t)
	f := NewFlyer(1, cfg)

	wantX := float64(cfg.Screen.Width) * cfg.Flyer.SpawnXFrac
	wantY := float64(cfg.Screen.Height) * cfg.Flyer.SpawnYFrac
	if math.Abs(f.Box.CenterX()-wantX) > 1e-9 {
		t.Errorf("spawn center x = %v, want %v", f.Box.CenterX(), wantX)
	}
	if math.Abs(f.Box.CenterY()-wantY) > 1e-9 {
		t.Errorf("spawn center y = %v, want %v", f.Box.CenterY(), wantY)
	}
}
