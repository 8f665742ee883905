package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivors/internal/registry"
	"github.com/vovakirdan/tui-survivors/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show run history for a mode",
	Long: `Display the top 10 runs for the specified mode.

Examples:
  survivors scores survivors
  survivors scores survivors_blitz`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'survivors list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run History - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'survivors play %s' to record the first run!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-9s  %-8s  %s\n", "Rank", "Score", "Level", "Survived", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-9s  %-8s  %s\n", "----", "-----", "-----", "--------", "------", "----")

	for i, r := range runs {
		survived := fmt.Sprintf("%02d:%02d", int(r.SurvivedSecs)/60, int(r.SurvivedSecs)%60)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-9s  %-8s  %s\n", i+1, r.Score, r.Level, survived, r.Cause, dateStr)
	}

	fmt.Println()
	if best, err := store.BestRun(gameID); err == nil && best != nil {
		fmt.Printf("Best: %d (level %d)\n", best.Score, best.Level)
	}
}
