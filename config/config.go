// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation and training configuration parameters.
// A Config is immutable after Load; components receive it explicitly
// at construction and never read ambient global state.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Flyer      FlyerConfig      `yaml:"flyer"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Boundary   BoundaryConfig   `yaml:"boundary"`
	Fitness    FitnessConfig    `yaml:"fitness"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	NEAT       NEATConfig       `yaml:"neat"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display and playfield dimensions.
// The playfield shares the screen coordinate system: origin top-left,
// y grows downward.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds the flyer physics constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Velocity gain per tick, always applied
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity is overwritten with -this on jump
}

// FlyerConfig holds flyer geometry and spawn placement.
type FlyerConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SpawnXFrac float64 `yaml:"spawn_x_frac"` // Spawn x as fraction of playfield width
	SpawnYFrac float64 `yaml:"spawn_y_frac"` // Spawn y as fraction of playfield height
}

// ObstaclesConfig holds obstacle field parameters.
type ObstaclesConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`      // Leftward drift per tick before jitter
	SpawnCadence   int     `yaml:"spawn_cadence"`   // Spawn attempt every N ticks
	MaxConcurrent  int     `yaml:"max_concurrent"`  // Live obstacle cap per field
	MinSeparation  float64 `yaml:"min_separation"`  // Axis-wise center distance enforced at spawn
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	CollisionScale float64 `yaml:"collision_scale"` // Collision box shrink factor (forgiving hitbox)
	ArcadeMax      int     `yaml:"arcade_max"`      // Live obstacle cap in arcade (play) mode
}

// BoundaryConfig holds the floor/ceiling strip heights.
type BoundaryConfig struct {
	GroundHeight  float64 `yaml:"ground_height"`
	CeilingHeight float64 `yaml:"ceiling_height"`
}

// FitnessConfig holds the per-tick reward shaping used during evaluation.
type FitnessConfig struct {
	SurvivalBonus    float64 `yaml:"survival_bonus"`    // Per tick alive
	PassBonus        float64 `yaml:"pass_bonus"`        // When the tick's score delta > 0
	NoopJumpPenalty  float64 `yaml:"noop_jump_penalty"` // Jump requested while y unchanged since last jump
	CollisionPenalty float64 `yaml:"collision_penalty"` // Applied once, on elimination
}

// EvaluationConfig holds per-generation evaluation limits.
type EvaluationConfig struct {
	MaxTicks int   `yaml:"max_ticks"` // Tick budget per generation (0 = unlimited)
	Seed     int64 `yaml:"seed"`      // Base RNG seed (0 = time-based)
}

// NEATConfig holds the subset of optimizer settings we expose via YAML.
// The full option set is assembled in the neural package.
type NEATConfig struct {
	PopSize               int     `yaml:"pop_size"`
	NumGenerations        int     `yaml:"num_generations"`
	CompatThreshold       float64 `yaml:"compat_threshold"`
	InitialConnectionProb float64 `yaml:"initial_connection_prob"`
	CheckpointEvery       int     `yaml:"checkpoint_every"` // Dump best genome every N generations (0 = off)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SpawnX    float64 // Flyer spawn x in playfield units
	SpawnY    float64 // Flyer spawn y in playfield units
	NumInputs int     // Perception vector length: 4 + 3*MaxConcurrent
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the simulation cannot run with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Obstacles.SpawnCadence <= 0 {
		return fmt.Errorf("config: obstacles.spawn_cadence must be positive, got %d", c.Obstacles.SpawnCadence)
	}
	if c.Obstacles.MaxConcurrent <= 0 {
		return fmt.Errorf("config: obstacles.max_concurrent must be positive, got %d", c.Obstacles.MaxConcurrent)
	}
	if c.Physics.JumpImpulse <= 0 {
		return fmt.Errorf("config: physics.jump_impulse must be positive, got %v", c.Physics.JumpImpulse)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.SpawnX = float64(c.Screen.Width) * c.Flyer.SpawnXFrac
	c.Derived.SpawnY = float64(c.Screen.Height) * c.Flyer.SpawnYFrac
	c.Derived.NumInputs = 4 + 3*c.Obstacles.MaxConcurrent
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
