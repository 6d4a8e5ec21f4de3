// bounce opens an 800x600 window, bounces the text "SDL" around it, moves a
// sprite with the arrow keys or WASD and plays sound effects over looping
// music.
//
// Usage:
//
//	bounce                 - Run with the configured backend
//	bounce run             - Same, with an optional frame limit
//	bounce backends        - List available media backends
//	bounce assets          - Show the asset files and whether they exist
//	bounce controls        - Show the key bindings
//
// Global flags:
//
//	--config <path>     - Path to a config YAML
//	--backend <id>      - Media backend: sdl or tui
//	--seed <value>      - Seed for the clear color (0 = time based)
//	--log-level <lvl>   - debug, info, warn or error
//	--no-audio          - Skip the audio device and all sounds
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/bounce/internal/platform/sdl"
	_ "github.com/vovakirdan/bounce/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagBackend  string
	flagSeed     int64
	flagLogLevel string
	flagNoAudio  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Sound Effects and Music - bouncing text, a sprite and audio",
	Long: `bounce opens a window titled "Sound Effects and Music" and runs a fixed
16ms frame loop: the text "SDL" bounces off the window edges, the sprite
follows the arrow keys or WASD, SPACE picks a new background color.

Available commands:
  run       - Run the program (default)
  backends  - List media backends
  assets    - Show asset files
  controls  - Show key bindings

Examples:
  bounce
  bounce --backend tui
  bounce run --frames 600 --seed 42
  bounce --config ./bounce.yaml --log-level debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBounce,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Media backend (sdl, tui)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Color RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable audio")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(controlsCmd)
}
