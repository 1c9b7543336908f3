package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
	flagTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display recorded runs, best scores first.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --recent       # Newest runs instead of best
  snake scores --tui          # Interactive history browser
  snake scores --clear        # Delete all recorded runs`,
	Args: cobra.NoArgs,
	Run:  runScoresCmd,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Order by date instead of score")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse the history interactively")
}

func runScoresCmd(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagRecent {
		fmt.Println("Recent Runs")
	} else {
		fmt.Println("Best Runs")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "Rank", "Score", "Length", "End", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "----", "-----", "------", "---", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-6s  %s\n", i+1, r.Score, r.Length, endReasonLabel(r.EndReason), dateStr)
	}

	// Aggregate stats
	stats, err := store.GetStats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Avg: %.1f\n", stats.BestScore, stats.RunsCount, stats.AvgScore)
	}
}

// endReasonLabel shortens an end reason for the table.
func endReasonLabel(reason string) string {
	switch reason {
	case "wall-collision":
		return "wall"
	case "self-collision":
		return "self"
	}
	return reason
}
