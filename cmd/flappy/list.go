package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available builds",
	Long: `Shows a list of all game builds registered in the arcade, with
the rounds played and the best score of each.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	// Stats are optional; the list still prints without a database
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, err = store.GetAllGamesStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read stats: %v\n", err)
		}
		store.Close()
	}

	printGameList(os.Stdout, registry.List(), stats)
}

// printGameList writes the build table. stats may be nil or miss builds that
// were never played.
func printGameList(w io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %-6s  %-4s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rounds", "Best", "Last played")
	fmt.Fprintf(w, "  %-*s  %-*s  %-6s  %-4s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------", "----", "-----------")

	for _, g := range games {
		rounds, best, last := 0, 0, "-"
		if gs, ok := stats[g.ID]; ok {
			rounds, best = gs.GamesCount, gs.HighScore
			if !gs.LastPlayed.IsZero() {
				last = gs.LastPlayed.Format("2006-01-02 15:04")
			}
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %-6d  %-4d  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, rounds, best, last)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'flappy play <id>' to play a game.")
}
