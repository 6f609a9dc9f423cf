package solver

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/lazor/internal/core"
	"github.com/vovakirdan/lazor/internal/puzzles"
)

// ErrNoSolution reports that the placement space was exhausted without any
// arrangement satisfying every target. This is a normal negative outcome,
// not a fault: strictly checked puzzles can be unsolvable.
var ErrNoSolution = errors.New("no solution exists for this puzzle")

// progressEvery controls how often the Progress hook fires, in attempts.
const progressEvery = 512

// Solver searches the placement space of a puzzle. The zero value is not
// usable; construct with New.
type Solver struct {
	MaxRounds int // trace round budget per attempt; core.DefaultMaxRounds when <= 0
	Workers   int // concurrent placement evaluators; sequential when <= 1

	// Progress, when set, is invoked periodically with the number of
	// placements evaluated so far.
	Progress func(attempts uint64)
}

// New returns a solver with the default round budget, running sequentially.
func New() *Solver {
	return &Solver{MaxRounds: core.DefaultMaxRounds, Workers: 1}
}

// Solve enumerates every distinct placement of the puzzle's movable blocks
// and traces each candidate board until one satisfies all targets. The
// first success wins; enumeration order is deterministic, so repeated
// sequential runs evaluate the same number of placements. Returns
// ErrNoSolution when the space is exhausted, or the context error if the
// caller cancels.
func (s *Solver) Solve(ctx context.Context, p *puzzles.Puzzle) (*Solution, error) {
	start := time.Now()

	base, err := p.Board()
	if err != nil {
		return nil, err
	}
	fixed := p.FixedCenters()
	slots := len(base.EmptyCenters(fixed))
	perm := NewPermuter(p.Counts, slots)

	if s.Workers > 1 {
		return s.solveParallel(ctx, p, base, fixed, perm, start)
	}

	var attempts uint64
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		placement, ok := perm.Next()
		if !ok {
			break
		}
		board, err := base.Instantiate(placement, fixed)
		if err != nil {
			return nil, err
		}

		attempts++
		if s.Progress != nil && attempts%progressEvery == 0 {
			s.Progress(attempts)
		}

		res := core.Trace(board, p.Lasers, p.Targets, s.MaxRounds)
		if res.Solved() {
			return newSolution(p, board, placement, res.Paths, attempts, time.Since(start)), nil
		}
	}
	return nil, ErrNoSolution
}

// solveParallel fans placements out to Workers goroutines. Placements are
// independent and each worker instantiates its own board copy, so the only
// shared state is the read-only base board and fixed set. The first success
// cancels the in-flight rest.
func (s *Solver) solveParallel(parent context.Context, p *puzzles.Puzzle, base *core.Board, fixed map[core.Coord]bool, perm *Permuter, start time.Time) (*Solution, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jobs := make(chan []core.Block, s.Workers)
	results := make(chan *Solution, s.Workers)
	errc := make(chan error, 1)
	var attempts atomic.Uint64

	go func() {
		defer close(jobs)
		for {
			placement, ok := perm.Next()
			if !ok {
				return
			}
			select {
			case jobs <- placement:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < s.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for placement := range jobs {
				board, err := base.Instantiate(placement, fixed)
				if err != nil {
					select {
					case errc <- err:
					default:
					}
					cancel()
					return
				}

				n := attempts.Add(1)
				if s.Progress != nil && n%progressEvery == 0 {
					s.Progress(n)
				}

				res := core.Trace(board, p.Lasers, p.Targets, s.MaxRounds)
				if res.Solved() {
					select {
					case results <- newSolution(p, board, placement, res.Paths, n, time.Since(start)):
					default:
					}
					cancel()
					return
				}

				select {
				case <-ctx.Done():
					return
				default:
				}
			}
		}()
	}

	wg.Wait()
	close(results)

	if sol, ok := <-results; ok {
		return sol, nil
	}
	select {
	case err := <-errc:
		return nil, err
	default:
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return nil, ErrNoSolution
}
