package core

import "fmt"

// Validate performs the upfront checks a puzzle must pass before the search
// begins: at least one laser and target, a sane block budget, and every
// coordinate inside the doubled grid. The solver itself assumes validated
// input and does not repeat these checks.
func Validate(raw [][]Block, counts Counts, lasers []Laser, targets []Coord) error {
	b, err := Expand(raw)
	if err != nil {
		return err
	}
	rows, cols := b.Rows(), b.Cols()

	if len(lasers) == 0 {
		return ValidationError{Code: CodeNoLasers, Message: "no laser detected"}
	}
	if len(targets) == 0 {
		return ValidationError{Code: CodeNoTargets, Message: "no target points"}
	}
	if counts.Total() == 0 {
		return ValidationError{Code: CodeNoBlocks, Message: "no blocks available"}
	}
	if counts.Total() >= rows*cols {
		return ValidationError{
			Code:    CodeTooManyBlocks,
			Message: fmt.Sprintf("%d blocks for a %dx%d grid", counts.Total(), rows, cols),
		}
	}
	open := len(b.EmptyCenters(nil))
	if counts.Total() > open {
		return ValidationError{
			Code:    CodeTooManyBlocks,
			Message: fmt.Sprintf("%d blocks but only %d open cells", counts.Total(), open),
		}
	}

	for i, t := range targets {
		if t.X < 0 || t.X > cols*2 || t.Y < 0 || t.Y > rows*2 {
			return ValidationError{
				Code:    CodeTargetOutOfGrid,
				Message: fmt.Sprintf("target %d at %s is outside the grid", i, t),
			}
		}
	}
	for i, l := range lasers {
		if l.X < 0 || l.X > cols*2 || l.Y < 0 || l.Y > rows*2 {
			return ValidationError{
				Code:    CodeLaserOutOfGrid,
				Message: fmt.Sprintf("laser %d at %s is outside the grid", i, l.Pos()),
			}
		}
		if (l.DX != -1 && l.DX != 1) || (l.DY != -1 && l.DY != 1) {
			return ValidationError{
				Code:    CodeBadDirection,
				Message: fmt.Sprintf("laser %d direction (%d,%d) is not a diagonal unit", i, l.DX, l.DY),
			}
		}
	}
	return nil
}
