package core

import (
	"fmt"
	"strings"
)

// RenderGrid creates an ASCII representation of a raw symbol grid.
// Used for debugging, golden test output, and the show command.
func RenderGrid(raw [][]Block) string {
	var sb strings.Builder
	for _, row := range raw {
		for x, bl := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(bl.Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderBoard creates an ASCII representation of a doubled board,
// boundary ring included.
func RenderBoard(b *Board) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Board %dx%d (%d x %d cells)\n", b.W, b.H, b.Cols(), b.Rows()))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			sb.WriteByte(b.At(C(x, y)).Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
