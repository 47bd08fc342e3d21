package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}

	if cfg.Screen.Width != 600 || cfg.Screen.Height != 700 {
		t.Errorf("screen = %dx%d, want 600x700", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Physics.Gravity != 0.85 {
		t.Errorf("gravity = %v, want 0.85", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.MaxConcurrent != 5 || cfg.Obstacles.ArcadeMax != 10 {
		t.Errorf("obstacle caps = %d/%d, want 5/10", cfg.Obstacles.MaxConcurrent, cfg.Obstacles.ArcadeMax)
	}
}

func TestLoadDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}

	if want := 4 + 3*cfg.Obstacles.MaxConcurrent; cfg.Derived.NumInputs != want {
		t.Errorf("NumInputs = %d, want %d", cfg.Derived.NumInputs, want)
	}
	if want := float64(cfg.Screen.Width) * cfg.Flyer.SpawnXFrac; math.Abs(cfg.Derived.SpawnX-want) > 1e-9 {
		t.Errorf("SpawnX = %v, want %v", cfg.Derived.SpawnX, want)
	}
	if want := float64(cfg.Screen.Height) * cfg.Flyer.SpawnYFrac; math.Abs(cfg.Derived.SpawnY-want) > 1e-9 {
		t.Errorf("SpawnY = %v, want %v", cfg.Derived.SpawnY, want)
	}
}

// TestLoadOverlay verifies a partial user file overrides only the fields it
// names and derived values follow the overrides.
func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := "physics:\n  gravity: 1.5\nobstacles:\n  max_concurrent: 3\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) = %v", path, err)
	}

	if cfg.Physics.Gravity != 1.5 {
		t.Errorf("overridden gravity = %v, want 1.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != 11.0 {
		t.Errorf("untouched jump_impulse = %v, want default 11", cfg.Physics.JumpImpulse)
	}
	if want := 4 + 3*3; cfg.Derived.NumInputs != want {
		t.Errorf("NumInputs after override = %d, want %d", cfg.Derived.NumInputs, want)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
	}{
		{"zero screen", "screen:\n  width: 0\n"},
		{"negative cadence", "obstacles:\n  spawn_cadence: -1\n"},
		{"zero max concurrent", "obstacles:\n  max_concurrent: 0\n"},
		{"zero impulse", "physics:\n  jump_impulse: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.overlay), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing config file accepted")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML = %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if back.Physics.Gravity != cfg.Physics.Gravity ||
		back.Obstacles.MinSeparation != cfg.Obstacles.MinSeparation ||
		back.NEAT.PopSize != cfg.NEAT.PopSize {
		t.Errorf("round trip changed values: %+v vs %+v", back, cfg)
	}
}
