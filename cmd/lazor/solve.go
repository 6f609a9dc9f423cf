package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lazor/internal/config"
	"github.com/vovakirdan/lazor/internal/platform/tui"
	"github.com/vovakirdan/lazor/internal/puzzles"
	"github.com/vovakirdan/lazor/internal/render"
	"github.com/vovakirdan/lazor/internal/solver"
	"github.com/vovakirdan/lazor/internal/storage"
)

var (
	flagOut    string
	flagWatch  bool
	flagNoSave bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle>",
	Short: "Solve a puzzle",
	Long: `Solve a puzzle given as a file path or a puzzle ID from the
puzzle directory.

The solver tries every distinct arrangement of the movable blocks until
one routes every laser through every target. The solved grid is printed
to the terminal and can be rendered to a PNG image with --out.

Examples:
  lazor solve tiny_5
  lazor solve puzzles/examples/mad_1.bff
  lazor solve mad_1 --out mad_1.png
  lazor solve yarn_5 --workers 8
  lazor solve dark_1 --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagOut, "out", "", "Write the solution as a PNG image to this path")
	solveCmd.Flags().BoolVar(&flagWatch, "watch", false, "Show live progress while solving")
	solveCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the history database")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p, err := findPuzzle(cfg, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := p.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid puzzle %s: %v\n", p.ID, err)
		os.Exit(1)
	}

	logger.Debug("loaded puzzle", "id", p.ID, "file", p.FilePath,
		"blocks", p.Counts.Total(), "lasers", len(p.Lasers), "targets", len(p.Targets))

	s := solver.New()
	s.MaxRounds = cfg.Solver.MaxRounds
	s.Workers = cfg.Solver.Workers
	s.Progress = func(n uint64) {
		logger.Debug("searching", "attempts", n)
	}

	var (
		sol      *solver.Solution
		solveErr error
	)
	if flagWatch {
		sol, solveErr = tui.RunSolve(p, s)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		sol, solveErr = s.Solve(ctx, p)
		stop()
	}

	recordRun(cfg, p, sol)

	switch {
	case errors.Is(solveErr, solver.ErrNoSolution):
		fmt.Fprintf(os.Stderr, "No solution exists for %s.\n", p.ID)
		os.Exit(1)
	case errors.Is(solveErr, context.Canceled):
		fmt.Fprintln(os.Stderr, "Cancelled.")
		os.Exit(1)
	case solveErr != nil:
		fmt.Fprintf(os.Stderr, "Error solving %s: %v\n", p.ID, solveErr)
		os.Exit(1)
	}

	if !flagWatch {
		fmt.Printf("Solved %s in %d attempts (%s)\n\n",
			p.ID, sol.Attempts, sol.Duration.Round(time.Millisecond))
		fmt.Println(tui.StyledGrid(sol.Grid))
	}

	if flagOut != "" {
		out, renderErr := render.WritePNG(flagOut, sol, cfg.Render.BlockSize)
		if renderErr != nil {
			fmt.Fprintf(os.Stderr, "Error writing image: %v\n", renderErr)
			os.Exit(1)
		}
		fmt.Printf("\nSolution image saved as %s\n", out)
	}
}

// findPuzzle resolves the argument as a file path first, then as a puzzle
// ID within the configured puzzle directory.
func findPuzzle(cfg config.Config, arg string) (*puzzles.Puzzle, error) {
	loader := puzzles.NewLoader(cfg.Puzzles.Dir)

	if _, statErr := os.Stat(arg); statErr == nil {
		p, err := loader.LoadFile(arg)
		if err != nil {
			return nil, err
		}
		return &p, nil
	}

	p, err := loader.LoadByID(arg)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'lazor list' to see available puzzles)", err)
	}
	return &p, nil
}

// recordRun saves the solve outcome to the history database, best effort.
func recordRun(cfg config.Config, p *puzzles.Puzzle, sol *solver.Solution) {
	if flagNoSave {
		return
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()

	rec := storage.SolveRecord{
		PuzzleID: p.ID,
		File:     p.FilePath,
	}
	if sol != nil {
		rec.Solved = true
		rec.Attempts = sol.Attempts
		rec.Duration = sol.Duration
	}
	//nolint:errcheck // Best-effort save
	store.SaveSolve(rec)
}
