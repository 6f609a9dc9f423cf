package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/lazor/internal/core"
	"github.com/vovakirdan/lazor/internal/puzzles"
)

func openGrid(t *testing.T, rows, cols int) [][]core.Block {
	t.Helper()
	grid := make([][]core.Block, rows)
	for y := range grid {
		grid[y] = make([]core.Block, cols)
	}
	return grid
}

// reflectPuzzle has exactly one winning cell for its single reflect block:
// the beam from (3,0) going down-left only reaches the target (0,1) after
// bouncing off a block in the bottom-left cell's upper face.
func reflectPuzzle(t *testing.T) *puzzles.Puzzle {
	return &puzzles.Puzzle{
		ID:      "reflect_unique",
		Grid:    openGrid(t, 3, 3),
		Counts:  core.Counts{Reflect: 1},
		Lasers:  []core.Laser{{X: 3, Y: 0, DX: -1, DY: 1}},
		Targets: []core.Coord{core.C(0, 1)},
	}
}

func TestSolveFindsUniqueReflectPlacement(t *testing.T) {
	p := reflectPuzzle(t)

	sol, err := New().Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}

	if sol.Grid[1][0] != core.BlockReflect {
		t.Errorf("expected the reflect block in cell (0,1), got grid %v", sol.Grid)
	}
	for y, row := range sol.Grid {
		for x, bl := range row {
			if (y == 1 && x == 0) || bl == core.BlockEmpty {
				continue
			}
			t.Errorf("unexpected block %v at cell (%d,%d)", bl, x, y)
		}
	}

	hit := false
	for _, path := range sol.Paths {
		if path.Visits(core.C(0, 1)) {
			hit = true
		}
	}
	if !hit {
		t.Error("no returned path passes through the target")
	}
}

func TestSolveDeterministicAttempts(t *testing.T) {
	a, err := New().Solve(context.Background(), reflectPuzzle(t))
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	b, err := New().Solve(context.Background(), reflectPuzzle(t))
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if a.Attempts != b.Attempts {
		t.Errorf("sequential solves diverged: %d vs %d attempts", a.Attempts, b.Attempts)
	}
	if a.Attempts == 0 || a.Attempts > 9 {
		t.Errorf("attempts %d outside the 9-placement space", a.Attempts)
	}
}

func TestSolveRefractBranchesCoverSplitTargets(t *testing.T) {
	// Both targets are reachable only when the beam splits mid-board:
	// the reflected branch climbs to (1,0), the transmitted one exits
	// through (0,5).
	p := &puzzles.Puzzle{
		ID:      "refract_split",
		Grid:    openGrid(t, 3, 3),
		Counts:  core.Counts{Refract: 1},
		Lasers:  []core.Laser{{X: 3, Y: 2, DX: -1, DY: 1}},
		Targets: []core.Coord{core.C(1, 0), core.C(0, 5)},
	}

	sol, err := New().Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if sol.Grid[1][1] != core.BlockRefract {
		t.Errorf("expected the refract block in the center cell, got grid %v", sol.Grid)
	}
	if len(sol.Paths) != 2 {
		t.Errorf("expected 2 beam paths after the split, got %d", len(sol.Paths))
	}
}

func TestSolveSinglePlacementSpace(t *testing.T) {
	// One open cell and one block: the space has exactly one placement.
	p := &puzzles.Puzzle{
		ID:      "tiny",
		Grid:    openGrid(t, 1, 1),
		Counts:  core.Counts{Opaque: 1},
		Lasers:  []core.Laser{{X: 1, Y: 0, DX: 1, DY: 1}},
		Targets: []core.Coord{core.C(1, 0)},
	}

	sol, err := New().Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if sol.Attempts != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", sol.Attempts)
	}
}

func TestSolveNoSolution(t *testing.T) {
	// An opaque block can never bend the beam toward (0,1).
	p := &puzzles.Puzzle{
		ID:      "impossible",
		Grid:    openGrid(t, 3, 3),
		Counts:  core.Counts{Opaque: 1},
		Lasers:  []core.Laser{{X: 3, Y: 0, DX: -1, DY: 1}},
		Targets: []core.Coord{core.C(0, 1)},
	}

	_, err := New().Solve(context.Background(), p)
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("expected ErrNoSolution, got %v", err)
	}
}

func TestSolveRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Solve(ctx, reflectPuzzle(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSolveParallelFindsSameArrangement(t *testing.T) {
	s := New()
	s.Workers = 4

	sol, err := s.Solve(context.Background(), reflectPuzzle(t))
	if err != nil {
		t.Fatalf("parallel Solve() failed: %v", err)
	}
	if sol.Grid[1][0] != core.BlockReflect {
		t.Errorf("parallel solve found wrong arrangement: %v", sol.Grid)
	}
}

func TestSolveParallelNoSolution(t *testing.T) {
	s := New()
	s.Workers = 3

	p := &puzzles.Puzzle{
		ID:      "impossible",
		Grid:    openGrid(t, 2, 2),
		Counts:  core.Counts{Opaque: 1},
		Lasers:  []core.Laser{{X: 1, Y: 0, DX: 1, DY: 1}},
		Targets: []core.Coord{core.C(0, 3)},
	}
	_, err := s.Solve(context.Background(), p)
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("expected ErrNoSolution, got %v", err)
	}
}
