package config

import (
	_ "embed"

	"github.com/vovakirdan/lazor/internal/core"
	"github.com/vovakirdan/lazor/internal/render"
)

//go:embed defaults/lazor.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			MaxRounds: core.DefaultMaxRounds,
			Workers:   1,
		},
		Render: RenderConfig{
			BlockSize: render.DefaultBlockSize,
		},
		Storage: StorageConfig{
			DBPath: "~/.lazor/history.db",
		},
		Puzzles: PuzzlesConfig{
			Dir: "puzzles",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
