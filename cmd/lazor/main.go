// lazor is a brute-force solver for Lazor-style optical puzzles.
//
// Usage:
//
//	lazor list               - List available puzzles
//	lazor show <id>          - Show a puzzle's grid and beams
//	lazor solve <puzzle>     - Solve a puzzle file or ID
//	lazor batch <files...>   - Solve several puzzle files and report timing
//	lazor browse             - Interactive puzzle browser
//	lazor history            - Show recorded solve runs
//	lazor serve              - Start SSH server for remote solving
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.lazor/config.yaml)
//	--puzzles <dir>  - Puzzle directory (default: ./puzzles)
//	--db <path>      - Solve history database (default: ~/.lazor/history.db)
//	--workers <n>    - Parallel search workers
//	--max-rounds <n> - Cap on tracer rounds per arrangement
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lazor/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagPuzzlesDir string
	flagDBPath     string
	flagWorkers    int
	flagMaxRounds  int
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "lazor",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lazor",
	Short: "Lazor - Solve optical block puzzles in your terminal",
	Long: `Lazor is a brute-force solver for Lazor-style optical puzzles:
place reflect, opaque and refract blocks on a grid so that every
laser beam passes through every target point.

Available commands:
  list     - Show all available puzzles
  show     - Print a puzzle's grid, lasers and targets
  solve    - Solve a puzzle and render the solution
  batch    - Solve several puzzle files and report timing
  browse   - Interactive puzzle browser
  history  - View recorded solve runs
  serve    - Start SSH server for remote solving

Examples:
  lazor list
  lazor solve tiny_5
  lazor solve puzzles/examples/mad_1.bff --out mad_1.png
  lazor batch puzzles/examples/*.bff
  lazor serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPuzzlesDir, "puzzles", "", "Puzzle directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solve history database (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Parallel search workers (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagMaxRounds, "max-rounds", 0, "Cap on tracer rounds per arrangement (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPuzzlesDir != "" {
		cfg.Puzzles.Dir = flagPuzzlesDir
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagWorkers > 0 {
		cfg.Solver.Workers = flagWorkers
	}
	if flagMaxRounds > 0 {
		cfg.Solver.MaxRounds = flagMaxRounds
	}
	return cfg, nil
}
