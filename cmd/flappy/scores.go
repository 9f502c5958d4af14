package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagAllScores   bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a build",
	Long: `Display the top 10 high scores for the specified build.

Examples:
  flappy scores flappy
  flappy scores flappy_fly --all
  flappy scores flappy --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every recorded round instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded rounds for the build")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		err = clearScores(os.Stdout, store, gameID, game.Title())
	} else {
		err = printScores(os.Stdout, store, gameID, game.Title(), flagAllScores, flagFPS)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// clearScores deletes a build's rounds and reports how many went.
func clearScores(w io.Writer, store *storage.Store, gameID, title string) error {
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d rounds for %s.\n", stats.GamesCount, title)
	return nil
}

// printScores writes the score table for a build: the top 10, or every round
// when all is set.
func printScores(w io.Writer, store *storage.Store, gameID, title string, all bool, tickRate int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'flappy play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-10s  %-8s  %s\n", "Rank", "Score", "Ended", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-10s  %-8s  %s\n",
			i+1,
			entry.Score,
			endReasonLabel(entry.EndReason),
			roundDuration(entry.Frames, tickRate),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Rounds: %d  Crashes: %d\n", stats.HighScore, stats.GamesCount, stats.Collisions)
	}
	return nil
}

// endReasonLabel turns a stored end reason into a column value.
func endReasonLabel(reason string) string {
	if reason == "" {
		return "-"
	}
	return reason
}

// roundDuration converts a frame count into seconds at the given tick rate.
func roundDuration(frames, tickRate int) string {
	if frames <= 0 || tickRate <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", float64(frames)/float64(tickRate))
}
