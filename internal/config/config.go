// Package config handles radar configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/partradar/internal/engine/settings"
)

// Config holds all radar settings.
type Config struct {
	Viewer  settings.Base `yaml:"viewer" toml:"viewer"`
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Demo    DemoConfig    `yaml:"demo" toml:"demo"`
}

// WindowConfig holds display settings for the interactive host.
type WindowConfig struct {
	Title    string `yaml:"title" toml:"title"`
	Width    int    `yaml:"width" toml:"width"`
	Height   int    `yaml:"height" toml:"height"`
	VSync    bool   `yaml:"vsync" toml:"vsync"`
	FPSLimit int    `yaml:"fps_limit" toml:"fps_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// DemoConfig shapes the procedural vessel flown by the demo host.
type DemoConfig struct {
	Stages   int `yaml:"stages" toml:"stages"`
	Boosters int `yaml:"boosters" toml:"boosters"` // radial boosters on the first stage
	// ThrottlePeriod is the length of one throttle ramp, in seconds.
	ThrottlePeriod float64 `yaml:"throttle_period" toml:"throttle_period"`
	Altitude       float64 `yaml:"altitude" toml:"altitude"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: settings.DefaultBase(),
		Window: WindowConfig{
			Title:    "Part Radar",
			Width:    512,
			Height:   512,
			VSync:    true,
			FPSLimit: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Demo: DemoConfig{
			Stages:         3,
			Boosters:       2,
			ThrottlePeriod: 4,
			Altitude:       40,
		},
	}
}

// Validate reports settings that cannot drive a radar.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Viewer.Scale < 0 {
		return fmt.Errorf("viewer scale %v must not be negative", c.Viewer.Scale)
	}
	if c.Demo.Stages < 1 {
		return fmt.Errorf("demo needs at least one stage, got %d", c.Demo.Stages)
	}
	if c.Demo.Boosters < 0 {
		return fmt.Errorf("demo boosters %d must not be negative", c.Demo.Boosters)
	}
	if c.Demo.ThrottlePeriod <= 0 {
		return fmt.Errorf("demo throttle period %v must be positive", c.Demo.ThrottlePeriod)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
