package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lazor/internal/core"
	"github.com/vovakirdan/lazor/internal/platform/tui"
	"github.com/vovakirdan/lazor/internal/solver"
)

var (
	flagShowBoard bool
	flagShowSolve bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a puzzle's grid, lasers and targets",
	Long: `Display a puzzle without solving it.

The grid uses the classic block letters:
  o - open cell
  x - blocked cell
  A - fixed reflect block
  B - fixed opaque block
  C - fixed refract block

Laser and target positions are in doubled coordinates: cell centers sit
at odd/odd pairs, beams travel along even edges.

Examples:
  lazor show tiny_5
  lazor show mad_1`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowBoard, "board", false, "Also print the expanded doubled-coordinate board")
	showCmd.Flags().BoolVar(&flagShowSolve, "solve", false, "Solve the puzzle and print the solved grid")
}

func runShow(cmd *cobra.Command, args []string) {
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

	width := 0
	if w, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width = w
	}

	fmt.Printf("%s (%s)\n\n", p.Name, p.ID)
	fmt.Println(tui.Center(tui.StyledGrid(p.Grid), width))
	fmt.Println()

	fmt.Printf("Blocks: %d reflect, %d opaque, %d refract\n",
		p.Counts.Reflect, p.Counts.Opaque, p.Counts.Refract)

	for _, l := range p.Lasers {
		fmt.Printf("Laser:  (%d,%d) direction (%d,%d)\n", l.X, l.Y, l.DX, l.DY)
	}
	for _, t := range p.Targets {
		fmt.Printf("Target: (%d,%d)\n", t.X, t.Y)
	}

	if board, boardErr := p.Board(); boardErr == nil {
		slots := len(board.EmptyCenters(p.FixedCenters()))
		fmt.Printf("\nSearch space: %d arrangements (%d blocks over %d open cells)\n",
			solver.Permutations(p.Counts, slots), p.Counts.Total(), slots)

		if flagShowBoard {
			fmt.Println()
			fmt.Print(core.RenderBoard(board))
		}
	}

	if err := p.Validate(); err != nil {
		fmt.Printf("\nWarning: puzzle does not validate: %v\n", err)
		return
	}

	if flagShowSolve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := solver.New()
		s.MaxRounds = cfg.Solver.MaxRounds
		s.Workers = cfg.Solver.Workers

		sol, solveErr := s.Solve(ctx, p)
		switch {
		case errors.Is(solveErr, solver.ErrNoSolution):
			fmt.Println("\nNo solution exists for this puzzle.")
			return
		case solveErr != nil:
			fmt.Fprintf(os.Stderr, "Error: %v\n", solveErr)
			os.Exit(1)
		}

		fmt.Printf("\nSolved in %d attempts (%.2f seconds):\n\n", sol.Attempts, sol.Duration.Seconds())
		fmt.Println(tui.Center(tui.StyledGrid(sol.Grid), width))
	}
}
