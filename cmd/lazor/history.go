package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lazor/internal/platform/tui"
	"github.com/vovakirdan/lazor/internal/storage"
)

var (
	flagHistoryLimit       int
	flagHistoryInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history [puzzle]",
	Short: "Show recorded solve runs",
	Long: `Display recent solve runs, optionally filtered to one puzzle.

With a puzzle ID, aggregated statistics for that puzzle are shown
beneath the run list.

Examples:
  lazor history
  lazor history mad_1
  lazor history --limit 50
  lazor history --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryInteractive, "interactive", false, "Browse runs in a scrollable table")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryInteractive {
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		if _, runErr := tui.RunHistory(store, width, height); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	var recs []storage.SolveRecord
	if len(args) == 1 {
		recs, err = store.ByPuzzle(args[0], flagHistoryLimit)
	} else {
		recs, err = store.Recent(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	if len(recs) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'lazor solve <puzzle>' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-7s  %-10s  %-10s  %s\n", "Puzzle", "Result", "Attempts", "Time", "Date")
	fmt.Printf("  %-16s  %-7s  %-10s  %-10s  %s\n", "------", "------", "--------", "----", "----")

	for _, rec := range recs {
		result := "solved"
		if !rec.Solved {
			result = "failed"
		}
		fmt.Printf("  %-16s  %-7s  %-10d  %-10s  %s\n",
			rec.PuzzleID, result, rec.Attempts, rec.Duration,
			rec.CreatedAt.Format("2006-01-02 15:04"))
	}

	if len(args) == 1 {
		stats, statsErr := store.Stats(args[0])
		if statsErr == nil && stats.Runs > 0 {
			fmt.Println()
			fmt.Printf("Runs: %d (%d solved)  Best: %s  Avg attempts: %.0f\n",
				stats.Runs, stats.SolvedRuns, stats.BestDuration, stats.AvgAttempts)
		}
	}
}
