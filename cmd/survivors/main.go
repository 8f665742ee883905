// survivors is a terminal survival-combat game: auto-firing weapons,
// converging hordes, xp pickups and level-up choices, all at a fixed tick.
//
// Usage:
//
//	survivors list              - List available run modes
//	survivors play <mode>       - Start a run
//	survivors menu              - Start menu to pick a mode interactively
//	survivors serve             - Start SSH server for remote play
//	survivors scores <mode>     - Show run history for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.survivors/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its run modes
	_ "github.com/vovakirdan/tui-survivors/internal/survivors"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survivors",
	Short: "Survivors - horde survival in your terminal",
	Long: `Survivors is a terminal survival game. Your weapons fire on their own;
you steer, collect xp, and choose upgrades while the horde closes in.

Available commands:
  list     - Show all available run modes
  play     - Start a run directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View run history

Examples:
  survivors list
  survivors play survivors
  survivors play survivors_blitz --difficulty hard
  survivors menu
  survivors serve --ssh :2222
  survivors scores survivors`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.survivors/runs.db", "Path to run history database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
