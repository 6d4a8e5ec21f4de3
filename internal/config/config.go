// Package config provides YAML-based configuration loading for the
// runtime settings that are not fixed at build time.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce/internal/core"
)

// Config contains all runtime configuration.
type Config struct {
	Backend  string         `yaml:"backend"`
	Seed     int64          `yaml:"seed"`
	Log      LogConfig      `yaml:"log"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// AudioConfig toggles the audio subsystem.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// TerminalConfig tunes the terminal backend.
type TerminalConfig struct {
	KeyHold time.Duration `yaml:"key_hold"`
}

// Backend IDs accepted in configuration.
const (
	BackendSDL = "sdl"
	BackendTUI = "tui"
)

// Validate checks every field and names the first bad one.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSDL, BackendTUI:
	default:
		return fmt.Errorf("config: backend: unknown backend %q (expected %q or %q)", c.Backend, BackendSDL, BackendTUI)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Terminal.KeyHold <= 0 {
		return fmt.Errorf("config: terminal.key_hold: must be positive, got %v", c.Terminal.KeyHold)
	}
	return nil
}

// LogLevel returns the parsed log level, info if it does not parse.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Runtime converts the configuration into session settings. Window size,
// speeds and the frame delay stay at their fixed values.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = c.Seed
	rc.Audio = c.Audio.Enabled
	return rc
}
