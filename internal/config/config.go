// Package config loads the player-facing settings of the tetra frontends
// from a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/plus3/tetra/tetris"
)

type Config struct {
	StartLevel   int    `yaml:"start_level"`
	Seed         uint64 `yaml:"seed"`
	Player       string `yaml:"player"`
	ScoresDB     string `yaml:"scores_db"`
	DebugOverlay bool   `yaml:"debug_overlay"`

	Window Window `yaml:"window"`
	Input  Input  `yaml:"input"`
}

type Window struct {
	Scale int `yaml:"scale"`
}

// Input holds key repeat timings, in simulation frames.
type Input struct {
	// DASFrames is the delay before a held shift key starts repeating.
	DASFrames int `yaml:"das_frames"`
	// ARRFrames is the interval between repeated shifts once DAS expires.
	ARRFrames      int `yaml:"arr_frames"`
	SoftDropFrames int `yaml:"soft_drop_frames"`
}

const (
	MinScale = 1
	MaxScale = 6
)

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("tetra.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("tetra.yaml: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := defaults()
	cfg.Normalize()
	return cfg
}

func defaults() Config {
	return Config{
		StartLevel: tetris.DefaultLevel,
		Player:     "player",
		ScoresDB:   "tetra.db",
		Window:     Window{Scale: 2},
		Input: Input{
			DASFrames:      10,
			ARRFrames:      2,
			SoftDropFrames: 2,
		},
	}
}

func (c *Config) Normalize() {
	if c == nil {
		return
	}
	c.Player = strings.TrimSpace(c.Player)
	if c.Player == "" {
		c.Player = "player"
	}
	c.ScoresDB = strings.TrimSpace(c.ScoresDB)
	if c.Window.Scale == 0 {
		c.Window.Scale = 2
	}
	if c.Input.ARRFrames == 0 {
		c.Input.ARRFrames = 1
	}
	if c.Input.SoftDropFrames == 0 {
		c.Input.SoftDropFrames = 1
	}
}

func (c Config) Validate() error {
	if c.StartLevel < 0 || c.StartLevel > tetris.MaxLevel {
		return fmt.Errorf("start_level must be in [0, %d], got %d", tetris.MaxLevel, c.StartLevel)
	}
	if c.Window.Scale < MinScale || c.Window.Scale > MaxScale {
		return fmt.Errorf("window.scale must be in [%d, %d], got %d", MinScale, MaxScale, c.Window.Scale)
	}
	if c.Input.DASFrames < 0 {
		return fmt.Errorf("input.das_frames must be >= 0")
	}
	if c.Input.ARRFrames < 0 {
		return fmt.Errorf("input.arr_frames must be >= 0")
	}
	if c.Input.SoftDropFrames < 0 {
		return fmt.Errorf("input.soft_drop_frames must be >= 0")
	}
	return nil
}

// SessionOptions translates the game settings into session options.
func (c Config) SessionOptions() []tetris.Option {
	opts := []tetris.Option{tetris.WithLevel(c.StartLevel)}
	if c.Seed != 0 {
		opts = append(opts, tetris.WithSeed(c.Seed))
	}
	return opts
}
