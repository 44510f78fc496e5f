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

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Abilities AbilitiesConfig `yaml:"abilities"`
	Magnet    MagnetConfig    `yaml:"magnet"`
	Levels    LevelsConfig    `yaml:"levels"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds simulation arena dimensions.
// The arena defaults to the screen size; levels are laid out inside it.
type ArenaConfig struct {
	Width  int `yaml:"width"`  // Arena width in world units (0 = use screen width)
	Height int `yaml:"height"` // Arena height in world units (0 = use screen height)
}

// PhysicsConfig holds the fixed-timestep parameters.
type PhysicsConfig struct {
	DT         float64 `yaml:"dt"`          // Seconds per simulation tick
	MaxElapsed float64 `yaml:"max_elapsed"` // Cap on a single wall-clock sample (catch-up guard)
}

// PlayerConfig holds player entity parameters.
type PlayerConfig struct {
	Radius            float64 `yaml:"radius"`
	MaxHealth         float64 `yaml:"max_health"`
	InvincibilityTime float64 `yaml:"invincibility_time"` // Seconds of post-damage immunity
	DashSpeed         float64 `yaml:"dash_speed"`         // Units per second while dashing
}

// AbilitiesConfig holds the base (unlayered) ability scalars.
type AbilitiesConfig struct {
	Speed           float64 `yaml:"speed"`            // Units per second
	AbsorptionRange float64 `yaml:"absorption_range"` // Units
	Mitigation      float64 `yaml:"mitigation"`       // Percent damage reduction, 0-90
	ScoreMultiplier float64 `yaml:"score_multiplier"`
	MagnetStrength  float64 `yaml:"magnet_strength"` // Pull speed in units per second
}

// MagnetConfig holds magnet pull parameters.
type MagnetConfig struct {
	PullRadius float64 `yaml:"pull_radius"` // Essences closer than this are pulled
}

// LevelsConfig holds level generation parameters.
type LevelsConfig struct {
	Difficulty int   `yaml:"difficulty"` // 1-3, scales essence/hazard counts
	Seed       int64 `yaml:"seed"`       // Layout RNG seed (0 = time-based)
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Window size in simulation seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32           float32 // Physics.DT as float32
	ArenaW         float64 // Effective arena width
	ArenaH         float64 // Effective arena height
	ScreenW        float32
	ScreenH        float32
	TicksPerWindow int // Telemetry window length in ticks
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
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

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW = float32(c.Screen.Width)
	c.Derived.ScreenH = float32(c.Screen.Height)

	// Arena dimensions default to screen size if not specified
	arenaW := c.Arena.Width
	if arenaW == 0 {
		arenaW = c.Screen.Width
	}
	arenaH := c.Arena.Height
	if arenaH == 0 {
		arenaH = c.Screen.Height
	}
	c.Derived.ArenaW = float64(arenaW)
	c.Derived.ArenaH = float64(arenaH)

	if c.Levels.Difficulty < 1 {
		c.Levels.Difficulty = 1
	}
	if c.Levels.Difficulty > 3 {
		c.Levels.Difficulty = 3
	}

	ticks := int(c.Telemetry.StatsWindow / c.Physics.DT)
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.TicksPerWindow = ticks
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
