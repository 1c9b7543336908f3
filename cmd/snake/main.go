// snake is a terminal snake game with persistent run history.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snake/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal game. Steer the snake onto food to grow;
running into a wall or into yourself ends the run. Finished runs are
recorded so you can track your progress.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the run history

Examples:
  snake play
  snake play --difficulty hard --grid 24
  snake play --broadcast :8080
  snake serve --ssh :2222
  snake scores --limit 20
  snake scores --tui`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/runs.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
