// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	Tick      TickConfig      `yaml:"tick"`
	Player    PlayerConfig    `yaml:"player"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Growth    GrowthConfig    `yaml:"growth"`
	Cull      CullConfig      `yaml:"cull"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`
	Terminal  TerminalConfig  `yaml:"terminal"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings for the desktop frontend.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CanvasConfig controls how the play area is sized.
// In windowed mode the canvas follows the window: width = min(MaxWidth, window-Margin).
type CanvasConfig struct {
	MaxWidth       int     `yaml:"max_width"`
	Margin         int     `yaml:"margin"`
	Aspect         float64 `yaml:"aspect"`
	HeadlessWidth  int     `yaml:"headless_width"`
	HeadlessHeight int     `yaml:"headless_height"`
}

// TickConfig holds fixed-timestep scheduler settings.
type TickConfig struct {
	Rate       int `yaml:"rate"`
	MaxCatchUp int `yaml:"max_catch_up"`
}

// PlayerConfig holds the player fish's starting values.
type PlayerConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	Color string  `yaml:"color"`
}

// SpawnConfig holds non-player fish spawning parameters.
type SpawnConfig struct {
	Chance       float64  `yaml:"chance"`     // per-tick spawn probability
	MinSize      float64  `yaml:"min_size"`   // smallest spawned size
	SizeRange    float64  `yaml:"size_range"` // size = min_size + rand*size_range
	MinSpeed     float64  `yaml:"min_speed"`  // speed floor
	BaseSpeed    float64  `yaml:"base_speed"` // speed = base_speed - size/speed_divisor
	SpeedDivisor float64  `yaml:"speed_divisor"`
	MaxFish      int      `yaml:"max_fish"` // concurrent fish cap (0 = unlimited)
	Palette      []string `yaml:"palette"`  // hex colors
}

// GrowthConfig holds eating rewards.
type GrowthConfig struct {
	Increment    float64 `yaml:"increment"`     // player size gained per fish eaten
	LevelDivisor float64 `yaml:"level_divisor"` // size-level = floor(size / level_divisor)
}

// CullConfig holds off-screen removal parameters.
type CullConfig struct {
	MarginFactor float64 `yaml:"margin_factor"` // removed beyond margin_factor*size outside the canvas
}

// AutopilotConfig holds the headless steering parameters.
type AutopilotConfig struct {
	DangerRadius float64 `yaml:"danger_radius"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// AudioConfig holds sound cue settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// TerminalConfig holds terminal frontend settings.
type TerminalConfig struct {
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32         float32       // seconds per tick
	TickInterval time.Duration // wall time per tick
	HeadlessW32  float32       // Canvas.HeadlessWidth as float32
	HeadlessH32  float32       // Canvas.HeadlessHeight as float32
	PlayerColor  color.RGBA
	Palette      []color.RGBA
	KeyHold      time.Duration
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

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
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

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	if c.Tick.Rate <= 0 {
		return fmt.Errorf("tick.rate must be positive, got %d", c.Tick.Rate)
	}
	if c.Tick.MaxCatchUp < 1 {
		c.Tick.MaxCatchUp = 1
	}
	if len(c.Spawn.Palette) == 0 {
		return fmt.Errorf("spawn.palette must not be empty")
	}

	c.Derived.DT32 = 1 / float32(c.Tick.Rate)
	c.Derived.TickInterval = time.Second / time.Duration(c.Tick.Rate)
	c.Derived.HeadlessW32 = float32(c.Canvas.HeadlessWidth)
	c.Derived.HeadlessH32 = float32(c.Canvas.HeadlessHeight)
	c.Derived.KeyHold = time.Duration(c.Terminal.KeyHoldMS) * time.Millisecond

	pc, err := ParseHexColor(c.Player.Color)
	if err != nil {
		return fmt.Errorf("player.color: %w", err)
	}
	c.Derived.PlayerColor = pc

	c.Derived.Palette = make([]color.RGBA, len(c.Spawn.Palette))
	for i, hex := range c.Spawn.Palette {
		col, err := ParseHexColor(hex)
		if err != nil {
			return fmt.Errorf("spawn.palette[%d]: %w", i, err)
		}
		c.Derived.Palette[i] = col
	}
	return nil
}

// ParseHexColor parses "#RRGGBB" (leading '#' optional) into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
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
