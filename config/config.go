// Package config loads pillchase settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pillchase/cluster"
	"github.com/katalvlaran/pillchase/pursuit"
)

var (
	// ErrInvalidAlpha indicates a non-positive score weight.
	ErrInvalidAlpha = errors.New("config: alpha must be positive")
	// ErrInvalidSeparation indicates a non-positive adjacency bound.
	ErrInvalidSeparation = errors.New("config: max_separation must be positive")
	// ErrInvalidTicks indicates a non-positive tick limit.
	ErrInvalidTicks = errors.New("config: max_ticks must be positive")
)

// Config holds pursuit, simulation and logging settings.
type Config struct {
	Alpha         float64   `yaml:"alpha"`
	MaxSeparation int       `yaml:"max_separation"`
	DebugDraw     bool      `yaml:"debug_draw"`
	MaxTicks      int       `yaml:"max_ticks"`
	Layouts       []string  `yaml:"layouts"` // layout files, one per level; empty = built-in
	Log           LogConfig `yaml:"log"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Alpha:         pursuit.Alpha,
		MaxSeparation: cluster.MaxSeparation,
		MaxTicks:      10000,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Alpha <= 0:
		return ErrInvalidAlpha
	case c.MaxSeparation <= 0:
		return ErrInvalidSeparation
	case c.MaxTicks <= 0:
		return ErrInvalidTicks
	}

	return nil
}

// SelectorOptions converts the pursuit settings to selector options.
func (c *Config) SelectorOptions() []pursuit.Option {
	return []pursuit.Option{
		pursuit.WithAlpha(c.Alpha),
		pursuit.WithMaxSeparation(c.MaxSeparation),
		pursuit.WithDebugDraw(c.DebugDraw),
	}
}
