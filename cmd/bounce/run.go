package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/game"
	"github.com/vovakirdan/bounce/internal/media"
	"github.com/vovakirdan/bounce/internal/registry"
)

var flagFrames int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the program",
	Long: `Open the window and run the frame loop until the window is closed,
Escape or Ctrl+C is pressed, or the frame limit is reached.

Controls:
  Arrows/WASD  - Move the sprite
  Space        - New background color and sound
  Esc/Ctrl+C   - Quit

Examples:
  bounce run
  bounce run --frames 300
  bounce run --backend tui --no-audio`,
	Args: cobra.NoArgs,
	RunE: runBounce,
}

func init() {
	runCmd.Flags().IntVar(&flagFrames, "frames", 0, "Stop after this many frames (0 = run until quit)")
}

func runBounce(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if !registry.Exists(cfg.Backend) {
		return fmt.Errorf("backend %q is not available (run 'bounce backends')", cfg.Backend)
	}
	backend, err := registry.Create(cfg.Backend, media.Options{KeyHold: cfg.Terminal.KeyHold})
	if err != nil {
		return err
	}

	rc := cfg.Runtime()
	rc.MaxFrames = flagFrames

	logger.Info("starting", "backend", backend.ID(), "seed", rc.Seed, "audio", rc.Audio)
	if err := game.Play(backend, rc, logger); err != nil {
		logRunError(logger, cfg, err)
		return err
	}
	return nil
}

// loadConfig loads the configuration file and applies the global flags the
// user set on top of it.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("no-audio") {
		cfg.Audio.Enabled = !flagNoAudio
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// logPath returns the file logs go to, or "" for stderr. The terminal
// backend owns the screen, so its logs go to a file by default.
func logPath(cfg config.Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	if cfg.Backend == config.BackendTUI {
		return filepath.Join(os.TempDir(), "bounce.log")
	}
	return ""
}

// logRunError records a failed run in the log file. main already prints the
// error to stderr, so stderr logging skips it.
func logRunError(logger *log.Logger, cfg config.Config, err error) {
	if logPath(cfg) == "" {
		return
	}
	logger.Error("run failed", "err", err)
}

// newLogger creates the program logger. The returned func closes the log
// file, if any.
func newLogger(cfg config.Config, stderr io.Writer) (*log.Logger, func(), error) {
	out := stderr
	closeLog := func() {}

	if path := logPath(cfg); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "bounce",
		Level:           cfg.LogLevel(),
	})
	return logger, closeLog, nil
}
