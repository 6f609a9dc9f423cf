package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lazor/internal/core"
)

// Block cell styles. Reflect blocks render bright, opaque dim, refract red,
// matching the PNG renderer's palette.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	styleSubtle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	styleCursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	styleError = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	styleSolved = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	styleReflect = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	styleOpaque = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleRefract = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	styleEmpty = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	styleFixed = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

func blockStyle(bl core.Block) lipgloss.Style {
	switch bl {
	case core.BlockReflect:
		return styleReflect
	case core.BlockOpaque:
		return styleOpaque
	case core.BlockRefract:
		return styleRefract
	case core.BlockBoundary:
		return styleFixed
	default:
		return styleEmpty
	}
}

// StyledGrid renders a raw grid as colored block characters, one cell per
// column, rows separated by newlines.
func StyledGrid(grid [][]core.Block) string {
	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, bl := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(blockStyle(bl).Render(string(bl.Char())))
		}
	}
	return b.String()
}

// Center centers each line of text within the given width, accounting for
// ANSI styling. Lines wider than the width are left untouched; a width of
// zero disables centering.
func Center(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = strings.Repeat(" ", (width-w)/2) + line
		}
	}
	return strings.Join(lines, "\n")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
