// Package puzzles provides puzzle definitions and directory loading.
// This package depends on core but core does not depend on puzzles.
package puzzles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/lazor/internal/core"
	"github.com/vovakirdan/lazor/internal/puzzles/formats"
)

// Puzzle represents a complete puzzle definition.
type Puzzle struct {
	ID       string
	Name     string
	Grid     [][]core.Block
	Counts   core.Counts
	Lasers   []core.Laser
	Targets  []core.Coord
	Metadata map[string]string
	FilePath string
}

// Validate runs the upfront puzzle checks.
func (p *Puzzle) Validate() error {
	return core.Validate(p.Grid, p.Counts, p.Lasers, p.Targets)
}

// Board expands the puzzle grid into its doubled board.
func (p *Puzzle) Board() (*core.Board, error) {
	return core.Expand(p.Grid)
}

// FixedCenters returns the doubled centers of the puzzle's pre-placed blocks.
func (p *Puzzle) FixedCenters() map[core.Coord]bool {
	return core.FixedCenters(p.Grid)
}

// Loader handles loading puzzles from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new puzzle loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all puzzle files.
// Returns puzzles sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Puzzle, error) {
	var out []Puzzle

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		p, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads a single puzzle file.
func (l *Loader) LoadFile(path string) (Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Puzzle{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	p := Puzzle{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Grid:     parsed.Grid,
		Counts:   parsed.Counts,
		Lasers:   parsed.Lasers,
		Targets:  parsed.Targets,
		Metadata: parsed.Metadata,
		FilePath: path,
	}
	if p.ID == "" {
		p.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	return p, nil
}

// LoadByID loads a specific puzzle by ID.
func (l *Loader) LoadByID(id string) (Puzzle, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Puzzle{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("puzzle not found: %s", id)
}

// ListIDs returns all puzzle IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Puzzle, error) {
	switch ext {
	case ".bff":
		return formats.ParseBFF(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Puzzle{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
