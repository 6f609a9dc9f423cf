package solver

import (
	"time"

	"github.com/vovakirdan/lazor/internal/core"
	"github.com/vovakirdan/lazor/internal/puzzles"
)

// Solution packages everything a renderer needs: the solved symbol grid,
// the winning board and placement, and every traced beam path.
type Solution struct {
	Puzzle    *puzzles.Puzzle
	Grid      [][]core.Block // raw grid with the winning placement poured in
	Board     *core.Board    // doubled board of the winning arrangement
	Placement []core.Block
	Paths     []core.Path
	Attempts  uint64
	Duration  time.Duration
}

// newSolution assembles the final grid by pouring the winning placement
// back into the original grid's open cells in row-major order, mirroring
// the fill order used during board instantiation. Fixed cells stay as they
// were.
func newSolution(p *puzzles.Puzzle, board *core.Board, placement []core.Block, paths []core.Path, attempts uint64, dur time.Duration) *Solution {
	grid := make([][]core.Block, len(p.Grid))
	next := 0
	for y, row := range p.Grid {
		grid[y] = make([]core.Block, len(row))
		copy(grid[y], row)
		for x, bl := range row {
			if bl == core.BlockEmpty && next < len(placement) {
				grid[y][x] = placement[next]
				next++
			}
		}
	}

	return &Solution{
		Puzzle:    p,
		Grid:      grid,
		Board:     board,
		Placement: placement,
		Paths:     paths,
		Attempts:  attempts,
		Duration:  dur,
	}
}
