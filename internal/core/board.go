package core

import "fmt"

// Board is the doubled-coordinate representation of a puzzle grid.
// An R x C cell grid expands to (2C+1) x (2R+1): original cells land on
// odd/odd centers and every other coordinate is a boundary marker. The
// surrounding boundary ring guarantees that a traced laser always leaves
// the board through an out-of-bounds check instead of indexing past it.
// Cells are stored in row-major order: index = y*W + x.
type Board struct {
	W     int     // Width of the doubled board (2C+1)
	H     int     // Height of the doubled board (2R+1)
	Cells []Block // Flat array of cells, length W*H
}

// Expand builds a doubled board from a raw R x C symbol grid.
// The raw grid must be non-empty, rectangular, and contain only legal
// block symbols; otherwise a ValidationError is returned.
func Expand(raw [][]Block) (*Board, error) {
	if len(raw) == 0 || len(raw[0]) == 0 {
		return nil, ValidationError{Code: CodeEmptyGrid, Message: "grid has no cells"}
	}

	rows, cols := len(raw), len(raw[0])
	for y, row := range raw {
		if len(row) != cols {
			return nil, ValidationError{
				Code:    CodeRaggedGrid,
				Message: fmt.Sprintf("row %d has %d cells, want %d", y, len(row), cols),
			}
		}
		for x, bl := range row {
			if bl > BlockBoundary {
				return nil, ValidationError{
					Code:    CodeInvalidSymbol,
					Message: fmt.Sprintf("unknown block at (%d,%d)", x, y),
				}
			}
		}
	}

	b := &Board{
		W:     2*cols + 1,
		H:     2*rows + 1,
		Cells: make([]Block, (2*cols+1)*(2*rows+1)),
	}
	for i := range b.Cells {
		b.Cells[i] = BlockBoundary
	}
	for y, row := range raw {
		for x, bl := range row {
			b.Cells[b.index(C(2*x+1, 2*y+1))] = bl
		}
	}
	return b, nil
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Y*b.W + c.X
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// At returns the block at the given coordinate.
// Returns BlockBoundary if out of bounds.
func (b *Board) At(c Coord) Block {
	if !b.InBounds(c) {
		return BlockBoundary
	}
	return b.Cells[b.index(c)]
}

// Set sets the block at the given coordinate.
func (b *Board) Set(c Coord, bl Block) {
	if b.InBounds(c) {
		b.Cells[b.index(c)] = bl
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Block, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{W: b.W, H: b.H, Cells: cells}
}

// Rows returns the number of cell rows in the original grid.
func (b *Board) Rows() int { return (b.H - 1) / 2 }

// Cols returns the number of cell columns in the original grid.
func (b *Board) Cols() int { return (b.W - 1) / 2 }

// EmptyCenters returns the open cell centers in row-major order,
// excluding the given fixed positions. These are the slots the placement
// enumerator fills.
func (b *Board) EmptyCenters(fixed map[Coord]bool) []Coord {
	centers := make([]Coord, 0)
	for y := 1; y < b.H; y += 2 {
		for x := 1; x < b.W; x += 2 {
			c := C(x, y)
			if !fixed[c] && b.At(c) == BlockEmpty {
				centers = append(centers, c)
			}
		}
	}
	return centers
}

// Instantiate returns a new board where the open centers are filled, in
// row-major order, with successive symbols from placement. The receiver is
// untouched. Pre-placed (fixed) centers are never overwritten. A placement
// with fewer symbols than open centers is a ValidationError; extra symbols
// beyond the available centers are ignored.
func (b *Board) Instantiate(placement []Block, fixed map[Coord]bool) (*Board, error) {
	out := b.Clone()
	next := 0
	for y := 1; y < out.H; y += 2 {
		for x := 1; x < out.W; x += 2 {
			c := C(x, y)
			if fixed[c] || out.At(c) != BlockEmpty {
				continue
			}
			if next >= len(placement) {
				return nil, ValidationError{
					Code:    CodePlacementShort,
					Message: fmt.Sprintf("placement has %d symbols, open centers need more", len(placement)),
				}
			}
			out.Set(c, placement[next])
			next++
		}
	}
	return out, nil
}

// FixedCenters returns the doubled-coordinate centers of every pre-placed
// block in the raw grid. The enumerator must never pour a movable block
// into these positions.
func FixedCenters(raw [][]Block) map[Coord]bool {
	fixed := make(map[Coord]bool)
	for y, row := range raw {
		for x, bl := range row {
			if bl.Movable() {
				fixed[C(2*x+1, 2*y+1)] = true
			}
		}
	}
	return fixed
}
