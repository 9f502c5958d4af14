package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/platform/window"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
	flagScale      float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a build",
	Long: `Start playing the specified build. Without an argument the classic
pipes-only build starts.

Builds:
  flappy      - Pipes only
  flappy_fly  - Pipes plus an enemy fly you can shoot

Controls:
  Space/Up/W  - Flap (also starts and restarts the round)
  F/LCtrl     - Fire (flappy_fly only; LCtrl in the window)
  P/Esc       - Pause
  R           - Restart (after the round ends)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, classic constants (default)

Examples:
  flappy play
  flappy play flappy_fly
  flappy play --window --scale 1.5
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of the terminal")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale (with --window)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := flappy.IDClassic
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog := mustLogger(!flagWindow)
	defer closeLog()

	if err := configureFlappy(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store := openStore(logger)

	var runErr error
	if flagWindow {
		runErr = window.Run(game, store, logger, cfg, window.Options{Scale: flagScale})
	} else {
		runErr = tui.Run(game, store, logger, cfg)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// configureFlappy validates the config flags and hands them to the game
// package before any instance is created.
func configureFlappy(logger *log.Logger) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", preset, "enemies", cfg.Enemy.Enabled)

	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(string(preset))
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. A failure is logged and the game runs
// without scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
