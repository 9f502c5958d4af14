// flappy is a Flappy Bird arcade for the terminal and the desktop.
//
// Usage:
//
//	flappy list              - List available builds
//	flappy play [game]       - Play a build (default: flappy)
//	flappy menu              - Pick a build interactively
//	flappy scores <game>     - Show high scores for a build
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flappy/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Arcade - Flap through pipes in your terminal or a window",
	Long: `Flappy Arcade is a Flappy Bird clone with an optional enemy fly
you can shoot down. It runs in the terminal or in a desktop window.

Available commands:
  list     - Show all available builds
  play     - Play a build directly
  menu     - Interactive build picker menu
  scores   - View high scores

Examples:
  flappy list
  flappy play
  flappy play flappy_fly --window
  flappy menu
  flappy scores flappy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
