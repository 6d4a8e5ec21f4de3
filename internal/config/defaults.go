package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bounce.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Backend: BackendSDL,
		Seed:    0,
		Log: LogConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Terminal: TerminalConfig{
			KeyHold: 150 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultYAML
}
