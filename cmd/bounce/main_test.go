package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/lifecycle"
	"github.com/vovakirdan/bounce/internal/platform/tui"
	"github.com/vovakirdan/bounce/internal/registry"
)

// parseFlags binds the global flag variables to a fresh flag set and parses
// args, restoring the variables when the test ends.
func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	saved := []any{flagConfig, flagBackend, flagSeed, flagLogLevel, flagNoAudio}
	t.Cleanup(func() {
		flagConfig = saved[0].(string)
		flagBackend = saved[1].(string)
		flagSeed = saved[2].(int64)
		flagLogLevel = saved[3].(string)
		flagNoAudio = saved[4].(bool)
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVar(&flagConfig, "config", "", "")
	fs.StringVar(&flagBackend, "backend", "", "")
	fs.Int64Var(&flagSeed, "seed", 0, "")
	fs.StringVar(&flagLogLevel, "log-level", "", "")
	fs.BoolVar(&flagNoAudio, "no-audio", false, "")
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bounce.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	path := writeConfig(t, "backend: sdl\nseed: 7\nlog:\n  level: warn\n")

	tests := []struct {
		name     string
		args     []string
		expected config.Config
	}{
		{
			name: "file only",
			args: []string{"--config", path},
			expected: func() config.Config {
				c := config.DefaultConfig()
				c.Seed = 7
				c.Log.Level = "warn"
				return c
			}(),
		},
		{
			name: "flags win",
			args: []string{"--config", path, "--backend", "tui", "--seed", "0", "--log-level", "debug", "--no-audio"},
			expected: func() config.Config {
				c := config.DefaultConfig()
				c.Backend = "tui"
				c.Log.Level = "debug"
				c.Audio.Enabled = false
				return c
			}(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := loadConfig(parseFlags(t, tc.args...))
			if err != nil {
				t.Fatalf("loadConfig() failed: %v", err)
			}
			if cfg != tc.expected {
				t.Errorf("loadConfig() = %+v, expected %+v", cfg, tc.expected)
			}
		})
	}
}

func TestLoadConfigBadFlag(t *testing.T) {
	path := writeConfig(t, "backend: sdl\n")
	_, err := loadConfig(parseFlags(t, "--config", path, "--backend", "opengl"))
	if err == nil || !strings.Contains(err.Error(), "backend") {
		t.Errorf("loadConfig() error = %v, expected a backend error", err)
	}
}

func TestLogPath(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		file     string
		expected string
	}{
		{"sdl to stderr", config.BackendSDL, "", ""},
		{"tui to temp file", config.BackendTUI, "", filepath.Join(os.TempDir(), "bounce.log")},
		{"configured file", config.BackendTUI, "/var/log/bounce.log", "/var/log/bounce.log"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Backend = tc.backend
			cfg.Log.File = tc.file
			if got := logPath(cfg); got != tc.expected {
				t.Errorf("logPath() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var stderr bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Log.Level = "warn"

	logger, closeLog, err := newLogger(cfg, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()

	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("GetLevel() = %v, expected %v", logger.GetLevel(), log.WarnLevel)
	}
	logger.Info("hidden")
	logger.Warn("shown", "frame", 3)
	out := stderr.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") || !strings.Contains(out, "bounce") {
		t.Errorf("log output = %q", out)
	}

	cfg.Log.File = filepath.Join(t.TempDir(), "bounce.log")
	fileLogger, closeFile, err := newLogger(cfg, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	fileLogger.Error("to file")
	closeFile()
	data, err := os.ReadFile(cfg.Log.File)
	if err != nil || !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q, %v", data, err)
	}
}

func TestLogRunErrorOnlyToFile(t *testing.T) {
	runErr := errors.New("init display: no video device")

	var stderr bytes.Buffer
	cfg := config.DefaultConfig()
	logger, closeLog, err := newLogger(cfg, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	logRunError(logger, cfg, runErr)
	closeLog()
	if stderr.Len() != 0 {
		t.Errorf("stderr log = %q, expected nothing (main prints the error)", stderr.String())
	}

	cfg.Log.File = filepath.Join(t.TempDir(), "bounce.log")
	logger, closeLog, err = newLogger(cfg, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	logRunError(logger, cfg, runErr)
	closeLog()
	data, err := os.ReadFile(cfg.Log.File)
	if err != nil || !strings.Contains(string(data), "no video device") {
		t.Errorf("log file = %q, %v, expected the run error", data, err)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr log = %q, expected nothing", stderr.String())
	}
}

func TestBackendsRegistered(t *testing.T) {
	for _, id := range []string{config.BackendSDL, config.BackendTUI} {
		if !registry.Exists(id) {
			t.Errorf("backend %q not registered", id)
		}
	}
}

func TestAssetTable(t *testing.T) {
	table := assetTable(tui.MonochromeTheme(), func(path string) bool {
		return path != lifecycle.MusicPath
	})

	for _, a := range lifecycle.Manifest {
		if !strings.Contains(table, a.Path) {
			t.Errorf("table is missing %s", a.Path)
		}
	}
	if !strings.Contains(table, "missing") {
		t.Error("table does not flag the missing music file")
	}
	if !strings.Contains(table, "1 of 6 files missing") {
		t.Errorf("table = %q, expected the missing count", table)
	}
}

func TestControlsHelp(t *testing.T) {
	out := controlsHelp()
	for _, want := range []string{"space", "esc", "ctrl+c", "↑/w", "→/d"} {
		if !strings.Contains(out, want) {
			t.Errorf("controlsHelp() = %q, expected it to mention %q", out, want)
		}
	}
}
