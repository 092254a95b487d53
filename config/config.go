// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Wander modes for objects outside the steering threshold.
const (
	WanderCompound = "compound" // velocity *= wander speed every frame
	WanderCruise   = "cruise"   // velocity rescaled to wander speed
)

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Player    PlayerConfig    `yaml:"player"`
	Objects   ObjectsConfig   `yaml:"objects"`
	Steering  SteeringConfig  `yaml:"steering"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. Width and Height are logical units;
// the window may be resized, the play field never is.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Title      string `yaml:"title"`
	Background RGB    `yaml:"background"`
}

// PlayerConfig holds the player's initial state and movement.
type PlayerConfig struct {
	Radius            float64 `yaml:"radius"`
	Speed             float64 `yaml:"speed"`       // units per frame per axis
	GrowthRate        float64 `yaml:"growth_rate"` // radius units per frame
	Color             RGB     `yaml:"color"`
	NormalizeDiagonal bool    `yaml:"normalize_diagonal"`
}

// ObjectsConfig holds object spawn parameters.
type ObjectsConfig struct {
	Count     int     `yaml:"count"`
	MinRadius int     `yaml:"min_radius"` // inclusive
	MaxRadius int     `yaml:"max_radius"` // inclusive
	MinWander float64 `yaml:"min_wander"` // inclusive
	MaxWander float64 `yaml:"max_wander"` // exclusive
}

// SteeringConfig holds the chase/escape parameters.
type SteeringConfig struct {
	Threshold   float64 `yaml:"threshold"` // distance below which objects react to the player
	ChaseSpeed  float64 `yaml:"chase_speed"`
	EscapeSpeed float64 `yaml:"escape_speed"`
	WanderMode  string  `yaml:"wander_mode"`
}

// AudioConfig holds sound effect parameters.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow int `yaml:"perf_window"` // frames averaged per perf record
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	DT32      float32 // fixed step used in headless mode: 1 / TargetFPS
}

// RGB is an opaque colour written as a three-element YAML sequence.
type RGB []int

// RGBA converts to an opaque color.RGBA. Missing channels are zero.
func (c RGB) RGBA() color.RGBA {
	var ch [3]uint8
	for i := 0; i < len(c) && i < 3; i++ {
		ch[i] = uint8(c[i])
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
}

func (c RGB) validate(name string) error {
	if len(c) != 3 {
		return fmt.Errorf("%s: want 3 channels, got %d", name, len(c))
	}
	for _, v := range c {
		if v < 0 || v > 255 {
			return fmt.Errorf("%s: channel %d out of range [0, 255]", name, v)
		}
	}
	return nil
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

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

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

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c *Config) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen: size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen: target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	if err := c.Screen.Background.validate("screen.background"); err != nil {
		errs = append(errs, err)
	}

	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player: radius must be positive, got %v", c.Player.Radius))
	}
	if c.Player.GrowthRate <= 0 {
		errs = append(errs, fmt.Errorf("player: growth_rate must be positive, got %v", c.Player.GrowthRate))
	}
	if err := c.Player.Color.validate("player.color"); err != nil {
		errs = append(errs, err)
	}

	o := c.Objects
	if o.Count <= 0 {
		errs = append(errs, fmt.Errorf("objects: count must be positive, got %d", o.Count))
	}
	if o.MinRadius <= 0 || o.MinRadius > o.MaxRadius {
		errs = append(errs, fmt.Errorf("objects: radius range [%d, %d] is invalid", o.MinRadius, o.MaxRadius))
	}
	if 2*o.MaxRadius > c.Screen.Width || 2*o.MaxRadius > c.Screen.Height {
		errs = append(errs, fmt.Errorf("objects: max_radius %d does not fit on a %dx%d screen", o.MaxRadius, c.Screen.Width, c.Screen.Height))
	}
	if o.MinWander < 0 || o.MinWander >= o.MaxWander {
		errs = append(errs, fmt.Errorf("objects: wander range [%v, %v) is invalid", o.MinWander, o.MaxWander))
	}

	switch c.Steering.WanderMode {
	case WanderCompound, WanderCruise:
	default:
		errs = append(errs, fmt.Errorf("steering: unknown wander_mode %q", c.Steering.WanderMode))
	}
	if c.Steering.Threshold < 0 {
		errs = append(errs, fmt.Errorf("steering: threshold must not be negative, got %v", c.Steering.Threshold))
	}

	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio: sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.DT32 = 1 / float32(c.Screen.TargetFPS)
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
