package core

// DefaultMaxRounds bounds the tracing loop. Every well-formed puzzle
// terminates well inside this budget; the cap only guards pathological
// configurations that would bounce forever.
const DefaultMaxRounds = 50

// TraceResult holds the outcome of tracing all lasers over one board.
type TraceResult struct {
	Paths   []Path         // All traced beams, branch paths included
	Hits    map[Coord]bool // Distinct targets touched by some beam
	Targets int            // Number of distinct targets requested
	Rounds  int            // Rounds actually executed
	Capped  bool           // True if the round budget ran out with beams still active
}

// Solved reports whether every target was touched.
func (r *TraceResult) Solved() bool {
	return len(r.Hits) == r.Targets
}

// Trace simulates every laser over the board until each beam terminates
// (absorbed or out of bounds) or maxRounds is exhausted. Each round advances
// every active path by exactly one step; refraction branches join the same
// round. Trace is a pure function of its arguments: the board is never
// mutated and no state survives the call.
//
// A maxRounds of zero or less selects DefaultMaxRounds.
func Trace(b *Board, lasers []Laser, targets []Coord, maxRounds int) *TraceResult {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	targetSet := make(map[Coord]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	res := &TraceResult{
		Paths:   make([]Path, 0, len(lasers)),
		Hits:    make(map[Coord]bool),
		Targets: len(targetSet),
	}
	for _, l := range lasers {
		res.Paths = append(res.Paths, Path{States: []Laser{l}, Active: true})
	}

	mark := func(c Coord) {
		if targetSet[c] {
			res.Hits[c] = true
		}
	}

	for round := 0; round < maxRounds; round++ {
		advanced := false
		// Branch paths appended mid-round are picked up by the same loop.
		for i := 0; i < len(res.Paths); i++ {
			if !res.Paths[i].Active {
				continue
			}
			advanced = true

			cur := res.Paths[i].Last()
			mark(cur.Pos())

			// Terminate before the beam would leave the board; the board
			// is never indexed outside its bounds.
			if !b.InBounds(cur.Pos()) || !b.InBounds(cur.Pos().Add(cur.DX, cur.DY)) {
				res.Paths[i].States = append(res.Paths[i].States, Laser{X: cur.X, Y: cur.Y})
				res.Paths[i].Active = false
				continue
			}

			switch act := interact(b.At(interactionCell(cur)), cur); act.kind {
			case interactAbsorb:
				res.Paths[i].States = append(res.Paths[i].States, Laser{X: cur.X, Y: cur.Y})
				res.Paths[i].Active = false

			case interactContinue:
				next := Laser{X: cur.X + act.dx, Y: cur.Y + act.dy, DX: act.dx, DY: act.dy}
				res.Paths[i].States = append(res.Paths[i].States, next)
				mark(next.Pos())

			case interactSplit:
				// The reflected beam continues in this path from the current
				// position; the transmitted beam becomes a new path one step
				// ahead.
				refl := Laser{X: cur.X, Y: cur.Y, DX: act.rdx, DY: act.rdy}
				res.Paths[i].States = append(res.Paths[i].States, refl)

				trans := Laser{X: cur.X + act.dx, Y: cur.Y + act.dy, DX: act.dx, DY: act.dy}
				res.Paths = append(res.Paths, Path{States: []Laser{trans}, Active: true})
				mark(trans.Pos())
			}
		}

		res.Rounds = round + 1
		if !advanced {
			break
		}
	}

	for _, p := range res.Paths {
		if p.Active {
			res.Capped = true
			break
		}
	}
	return res
}
