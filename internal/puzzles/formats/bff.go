// Package formats provides pluggable puzzle file format parsers.
package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/lazor/internal/core"
)

// Puzzle represents a parsed puzzle ready for use.
type Puzzle struct {
	ID       string
	Name     string
	Grid     [][]core.Block
	Counts   core.Counts
	Lasers   []core.Laser
	Targets  []core.Coord
	Metadata map[string]string
}

// ParseBFF parses the classic .bff puzzle format:
//
//	# comment
//	GRID START
//	o o x
//	o A o
//	GRID STOP
//	A 2        block counts (A reflect, B opaque, C refract)
//	L 3 0 -1 1 laser: x y dx dy in doubled coordinates
//	P 0 3      target point: x y in doubled coordinates
//
// Unknown directives are skipped, matching the tolerance of the original
// game files.
func ParseBFF(data []byte) (Puzzle, error) {
	var p Puzzle
	inGrid := false

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case line == "GRID START":
			inGrid = true
		case line == "GRID STOP":
			inGrid = false
		case inGrid:
			row, err := parseGridRow(line)
			if err != nil {
				return Puzzle{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p.Grid = append(p.Grid, row)
		default:
			if err := parseDirective(&p, line); err != nil {
				return Puzzle{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Puzzle{}, fmt.Errorf("reading puzzle: %w", err)
	}
	if inGrid {
		return Puzzle{}, fmt.Errorf("GRID START without GRID STOP")
	}
	if len(p.Grid) == 0 {
		return Puzzle{}, fmt.Errorf("no grid layout found")
	}
	return p, nil
}

// parseGridRow converts one grid line into blocks, ignoring spaces.
func parseGridRow(line string) ([]core.Block, error) {
	row := make([]core.Block, 0, len(line))
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if ch == ' ' || ch == '\t' {
			continue
		}
		bl, ok := core.ParseBlock(ch)
		if !ok {
			return nil, fmt.Errorf("invalid grid character %q", ch)
		}
		row = append(row, bl)
	}
	return row, nil
}

// parseDirective handles the count, laser and target lines.
func parseDirective(p *Puzzle, line string) error {
	fields := strings.Fields(line)

	switch fields[0] {
	case "A", "B", "C":
		if len(fields) != 2 {
			return fmt.Errorf("block count needs one number: %q", line)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("block count %q: %w", fields[1], err)
		}
		switch fields[0] {
		case "A":
			p.Counts.Reflect = n
		case "B":
			p.Counts.Opaque = n
		case "C":
			p.Counts.Refract = n
		}

	case "L":
		nums, err := parseInts(fields[1:], 4)
		if err != nil {
			return fmt.Errorf("laser %q: %w", line, err)
		}
		p.Lasers = append(p.Lasers, core.Laser{X: nums[0], Y: nums[1], DX: nums[2], DY: nums[3]})

	case "P":
		nums, err := parseInts(fields[1:], 2)
		if err != nil {
			return fmt.Errorf("target %q: %w", line, err)
		}
		p.Targets = append(p.Targets, core.C(nums[0], nums[1]))
	}
	return nil
}

func parseInts(fields []string, want int) ([]int, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("want %d numbers, got %d", want, len(fields))
	}
	nums := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".bff", ".yaml", ".yml"}
}
