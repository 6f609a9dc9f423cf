package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lazor/internal/puzzles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long:  `Shows a list of all puzzle files found in the puzzle directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loader := puzzles.NewLoader(cfg.Puzzles.Dir)
	all, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading puzzles: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Printf("No puzzles found in %s.\n", cfg.Puzzles.Dir)
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range all {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %-7s  %s\n", maxIDLen, "ID", "Grid", "Blocks", "Targets")
	fmt.Printf("  %-*s  %-6s  %-7s  %s\n", maxIDLen, "--", "----", "------", "-------")

	for _, p := range all {
		rows := len(p.Grid)
		cols := 0
		if rows > 0 {
			cols = len(p.Grid[0])
		}
		fmt.Printf("  %-*s  %dx%-4d  %-7d  %d\n",
			maxIDLen, p.ID, cols, rows, p.Counts.Total(), len(p.Targets))
	}

	fmt.Println()
	fmt.Println("Run 'lazor solve <id>' to solve a puzzle.")
}
