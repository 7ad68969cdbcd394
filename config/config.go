// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Teams     TeamsConfig     `yaml:"teams"`
	Cell      CellConfig      `yaml:"cell"`
	Wander    WanderConfig    `yaml:"wander"`
	Food      FoodConfig      `yaml:"food"`
	Rules     RulesConfig     `yaml:"rules"`
	Clock     ClockConfig     `yaml:"clock"`
	Palette   PaletteConfig   `yaml:"palette"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ArenaConfig holds the playfield dimensions.
// The scoreboard sits to the right of the arena in graphical frontends.
type ArenaConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	ScoreboardWidth int     `yaml:"scoreboard_width"`
}

// TeamsConfig holds starting population layout.
type TeamsConfig struct {
	Count          int `yaml:"count"`
	PlayersPerTeam int `yaml:"players_per_team"`
}

// CellConfig holds the mass -> radius/speed growth parameters.
// radius = floor(radius_factor * sqrt(mass))
// speed  = speed_multiplier * max(min_speed, speed_base - speed_slope*radius)
type CellConfig struct {
	StartMass       float64 `yaml:"start_mass"`
	RadiusFactor    float64 `yaml:"radius_factor"`
	SpeedBase       float64 `yaml:"speed_base"`
	SpeedSlope      float64 `yaml:"speed_slope"`
	MinSpeed        float64 `yaml:"min_speed"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// WanderConfig holds the random-walk direction change interval, in ticks.
type WanderConfig struct {
	MinTicks int `yaml:"min_ticks"`
	MaxTicks int `yaml:"max_ticks"`
}

// FoodConfig holds food pellet parameters.
type FoodConfig struct {
	Mass      float64 `yaml:"mass"`
	Radius    float64 `yaml:"radius"`
	Max       int     `yaml:"max"`
	SpawnRate float64 `yaml:"spawn_rate"` // chance per tick of spawning one pellet
	ColorMin  uint8   `yaml:"color_min"`
	ColorMax  uint8   `yaml:"color_max"`
}

// RulesConfig holds consumption rules.
type RulesConfig struct {
	EatThreshold   float64 `yaml:"eat_threshold"`    // eater mass must exceed victim mass * this
	SameTeamEating bool    `yaml:"same_team_eating"` // false protects teammates from each other
}

// ClockConfig holds frame pacing and time scaling defaults.
type ClockConfig struct {
	TargetFPS    int     `yaml:"target_fps"`
	DefaultSpeed float64 `yaml:"default_speed"`
}

// PaletteConfig holds LCh parameters for team colors.
type PaletteConfig struct {
	Chroma    float64 `yaml:"chroma"`
	LightEven float64 `yaml:"light_even"`
	LightOdd  float64 `yaml:"light_odd"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds of simulated time per stats window
	PerfWindow  int     `yaml:"perf_window"`  // ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TickDT      float64 // seconds per tick at target FPS
	TotalWidth  int     // arena width + scoreboard width
	TotalHeight int
	Population  int // teams * players per team
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
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must have positive size, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if c.Teams.Count < 1 {
		errs = append(errs, fmt.Errorf("teams.count must be at least 1, got %d", c.Teams.Count))
	}
	if c.Teams.PlayersPerTeam < 0 {
		errs = append(errs, fmt.Errorf("teams.players_per_team must not be negative, got %d", c.Teams.PlayersPerTeam))
	}
	if c.Cell.StartMass <= 0 {
		errs = append(errs, fmt.Errorf("cell.start_mass must be positive, got %g", c.Cell.StartMass))
	}
	if c.Rules.EatThreshold <= 1 {
		errs = append(errs, fmt.Errorf("rules.eat_threshold must be greater than 1, got %g", c.Rules.EatThreshold))
	}
	if c.Wander.MinTicks < 1 || c.Wander.MaxTicks < c.Wander.MinTicks {
		errs = append(errs, fmt.Errorf("wander ticks must satisfy 1 <= min <= max, got [%d,%d]", c.Wander.MinTicks, c.Wander.MaxTicks))
	}
	if c.Food.ColorMax < c.Food.ColorMin {
		errs = append(errs, fmt.Errorf("food.color_max %d below color_min %d", c.Food.ColorMax, c.Food.ColorMin))
	}
	if s := c.Clock.DefaultSpeed; s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		errs = append(errs, fmt.Errorf("clock.default_speed must be a finite non-negative number, got %g", s))
	}
	if c.Clock.TargetFPS < 1 {
		errs = append(errs, fmt.Errorf("clock.target_fps must be at least 1, got %d", c.Clock.TargetFPS))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TickDT = 1.0 / float64(c.Clock.TargetFPS)
	c.Derived.TotalWidth = int(c.Arena.Width) + c.Arena.ScoreboardWidth
	c.Derived.TotalHeight = int(c.Arena.Height)
	c.Derived.Population = c.Teams.Count * c.Teams.PlayersPerTeam
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
