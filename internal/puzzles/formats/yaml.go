package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lazor/internal/core"
)

// YAMLPuzzle represents the YAML structure for a puzzle file.
type YAMLPuzzle struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Grid     []string          `yaml:"grid"`
	Blocks   YAMLBlocks        `yaml:"blocks"`
	Lasers   []YAMLLaser       `yaml:"lasers"`
	Targets  []YAMLPoint       `yaml:"targets"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLBlocks represents the movable block quantities.
type YAMLBlocks struct {
	Reflect int `yaml:"reflect"`
	Opaque  int `yaml:"opaque"`
	Refract int `yaml:"refract"`
}

// YAMLLaser represents an emitter in doubled coordinates.
type YAMLLaser struct {
	X  int `yaml:"x"`
	Y  int `yaml:"y"`
	DX int `yaml:"dx"`
	DY int `yaml:"dy"`
}

// YAMLPoint represents a target point in doubled coordinates.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a YAML puzzle file.
func ParseYAML(data []byte) (Puzzle, error) {
	var yp YAMLPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Puzzle{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yp.Grid) == 0 {
		return Puzzle{}, fmt.Errorf("no grid layout found")
	}

	p := Puzzle{
		ID:   yp.ID,
		Name: yp.Name,
		Counts: core.Counts{
			Reflect: yp.Blocks.Reflect,
			Opaque:  yp.Blocks.Opaque,
			Refract: yp.Blocks.Refract,
		},
		Metadata: yp.Metadata,
	}
	for i, line := range yp.Grid {
		row, err := parseGridRow(line)
		if err != nil {
			return Puzzle{}, fmt.Errorf("grid row %d: %w", i, err)
		}
		p.Grid = append(p.Grid, row)
	}
	for _, l := range yp.Lasers {
		p.Lasers = append(p.Lasers, core.Laser{X: l.X, Y: l.Y, DX: l.DX, DY: l.DY})
	}
	for _, pt := range yp.Targets {
		p.Targets = append(p.Targets, core.C(pt.X, pt.Y))
	}
	return p, nil
}
