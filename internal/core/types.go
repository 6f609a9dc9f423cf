// Package core provides the core logic for Lazor optical puzzles:
// the doubled-coordinate board and the laser ray tracer.
// This package is UI-agnostic and deterministic.
package core

// Block represents the content of one grid cell.
type Block uint8

const (
	BlockEmpty    Block = iota // Open slot, lasers pass through
	BlockReflect               // Bounces the laser off the struck face
	BlockOpaque                // Absorbs the laser
	BlockRefract               // Splits the laser into two beams
	BlockBoundary              // Outside the playable area, lasers pass through
)

// String returns the string representation of a block.
func (b Block) String() string {
	switch b {
	case BlockEmpty:
		return "empty"
	case BlockReflect:
		return "reflect"
	case BlockOpaque:
		return "opaque"
	case BlockRefract:
		return "refract"
	case BlockBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Char returns the single character used for this block in puzzle files
// and ASCII rendering.
func (b Block) Char() byte {
	switch b {
	case BlockEmpty:
		return 'o'
	case BlockReflect:
		return 'A'
	case BlockOpaque:
		return 'B'
	case BlockRefract:
		return 'C'
	case BlockBoundary:
		return 'x'
	default:
		return '?'
	}
}

// Movable reports whether the block is a placeable piece (A, B or C).
func (b Block) Movable() bool {
	return b == BlockReflect || b == BlockOpaque || b == BlockRefract
}

// ParseBlock converts a puzzle file character to a Block.
// Returns BlockEmpty and false if the character is not recognized.
func ParseBlock(ch byte) (Block, bool) {
	switch ch {
	case 'o':
		return BlockEmpty, true
	case 'A':
		return BlockReflect, true
	case 'B':
		return BlockOpaque, true
	case 'C':
		return BlockRefract, true
	case 'x':
		return BlockBoundary, true
	default:
		return BlockEmpty, false
	}
}

// Counts holds the quantity of each movable block type available to place.
type Counts struct {
	Reflect int
	Opaque  int
	Refract int
}

// Total returns the total number of movable blocks.
func (c Counts) Total() int {
	return c.Reflect + c.Opaque + c.Refract
}
