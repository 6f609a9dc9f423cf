package core

import "fmt"

// Laser is one beam state in doubled coordinates: a position plus a unit
// direction with DX, DY in {-1, 1}. A zero direction marks a terminated beam.
type Laser struct {
	X, Y   int
	DX, DY int
}

// String returns a string representation of the laser state.
func (l Laser) String() string {
	return fmt.Sprintf("(%d,%d %+d%+d)", l.X, l.Y, l.DX, l.DY)
}

// Pos returns the laser's position.
func (l Laser) Pos() Coord {
	return C(l.X, l.Y)
}

// Terminal reports whether the state marks a stopped beam.
func (l Laser) Terminal() bool {
	return l.DX == 0 && l.DY == 0
}

// Path is one contiguous traced beam, from an emitter or branch point to a
// terminal state. Refraction branches are stored as separate paths from the
// branch point onward.
type Path struct {
	States []Laser
	Active bool
}

// Last returns the most recent state of the path.
func (p *Path) Last() Laser {
	return p.States[len(p.States)-1]
}

// Visits reports whether any state of the path sits on the coordinate.
func (p *Path) Visits(c Coord) bool {
	for _, s := range p.States {
		if s.Pos() == c {
			return true
		}
	}
	return false
}

// interaction is the outcome of a laser meeting a block face.
type interaction struct {
	kind     interactionKind
	dx, dy   int // continue direction, or transmitted direction for a split
	rdx, rdy int // reflected direction for a split
}

type interactionKind uint8

const (
	interactContinue interactionKind = iota
	interactAbsorb
	interactSplit
)

// interact dispatches on the block type at the laser's interaction cell.
//
// Face orientation comes from coordinate parity: an odd X means the laser
// sits on a horizontal edge between vertically adjacent cells, so a
// reflection flips DY; an even X means a vertical edge, flipping DX.
func interact(bl Block, l Laser) interaction {
	switch bl {
	case BlockOpaque:
		return interaction{kind: interactAbsorb}
	case BlockReflect:
		if l.X%2 == 0 {
			return interaction{kind: interactContinue, dx: -l.DX, dy: l.DY}
		}
		return interaction{kind: interactContinue, dx: l.DX, dy: -l.DY}
	case BlockRefract:
		if l.X%2 == 0 {
			return interaction{kind: interactSplit, dx: l.DX, dy: l.DY, rdx: -l.DX, rdy: l.DY}
		}
		return interaction{kind: interactSplit, dx: l.DX, dy: l.DY, rdx: l.DX, rdy: -l.DY}
	default:
		// Empty and boundary cells let the beam pass straight through.
		return interaction{kind: interactContinue, dx: l.DX, dy: l.DY}
	}
}

// interactionCell returns the cell whose block governs the next step.
// The parity alternation mirrors interact: odd X looks at the vertical
// neighbor, even X at the horizontal one.
func interactionCell(l Laser) Coord {
	if l.X%2 == 1 {
		return C(l.X, l.Y+l.DY)
	}
	return C(l.X+l.DX, l.Y)
}
