package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lazor/internal/puzzles"
	"github.com/vovakirdan/lazor/internal/render"
	"github.com/vovakirdan/lazor/internal/solver"
	"github.com/vovakirdan/lazor/internal/storage"
)

var flagBatchImages bool

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Solve several puzzle files and report timing",
	Long: `Solve each given puzzle file in order and report the time taken
per puzzle and in total. Unsolvable or invalid puzzles are reported and
skipped.

Examples:
  lazor batch puzzles/examples/*.bff
  lazor batch dark_1.bff mad_1.bff tiny_5.bff --images`,
	Args: cobra.MinimumNArgs(1),
	Run:  runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&flagBatchImages, "images", false, "Write a PNG next to each solved puzzle file")
}

func runBatch(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, storeErr := storage.Open(cfg.Storage.DBPath)
	if storeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", storeErr)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := puzzles.NewLoader(cfg.Puzzles.Dir)

	s := solver.New()
	s.MaxRounds = cfg.Solver.MaxRounds
	s.Workers = cfg.Solver.Workers

	solved, failed := 0, 0
	totalStart := time.Now()

	for _, path := range args {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			break
		}

		p, loadErr := loader.LoadFile(path)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, loadErr)
			failed++
			continue
		}
		if validErr := p.Validate(); validErr != nil {
			fmt.Fprintf(os.Stderr, "%s: invalid puzzle: %v\n", path, validErr)
			failed++
			continue
		}
		logger.Debug("loaded puzzle", "id", p.ID, "file", path, "blocks", p.Counts.Total())

		start := time.Now()
		sol, solveErr := s.Solve(ctx, &p)
		elapsed := time.Since(start)

		if store != nil {
			rec := storage.SolveRecord{PuzzleID: p.ID, File: path}
			if sol != nil {
				rec.Solved = true
				rec.Attempts = sol.Attempts
				rec.Duration = sol.Duration
			}
			//nolint:errcheck // Best-effort save
			store.SaveSolve(rec)
		}

		switch {
		case errors.Is(solveErr, solver.ErrNoSolution):
			fmt.Printf("%s: no solution (%.2f seconds)\n", path, elapsed.Seconds())
			failed++
			continue
		case solveErr != nil:
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, solveErr)
			failed++
			continue
		}

		fmt.Printf("%s solved in %.2f seconds (%d attempts)\n",
			path, elapsed.Seconds(), sol.Attempts)
		solved++

		if flagBatchImages {
			out := strings.TrimSuffix(path, filepath.Ext(path)) + "_solved.png"
			if written, imgErr := render.WritePNG(out, sol, cfg.Render.BlockSize); imgErr != nil {
				fmt.Fprintf(os.Stderr, "%s: could not write image: %v\n", path, imgErr)
			} else {
				fmt.Printf("  image saved as %s\n", written)
			}
		}
	}

	fmt.Printf("Total time taken: %.2f seconds (%d solved, %d failed)\n",
		time.Since(totalStart).Seconds(), solved, failed)

	if failed > 0 {
		os.Exit(1)
	}
}
