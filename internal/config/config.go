// Package config provides YAML-based configuration loading for the
// solver, renderer and solve history storage.
package config

// Config is the root configuration document.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Render  RenderConfig  `yaml:"render"`
	Storage StorageConfig `yaml:"storage"`
	Puzzles PuzzlesConfig `yaml:"puzzles"`
}

// SolverConfig controls the brute-force search.
type SolverConfig struct {
	MaxRounds int `yaml:"max_rounds"` // Cap on tracer rounds per arrangement
	Workers   int `yaml:"workers"`    // 0 or 1 means sequential search
}

// RenderConfig controls PNG output of solved puzzles.
type RenderConfig struct {
	BlockSize int `yaml:"block_size"` // Pixels per grid cell
}

// StorageConfig controls the solve history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // Supports a leading ~ for the home directory
}

// PuzzlesConfig controls puzzle discovery.
type PuzzlesConfig struct {
	Dir string `yaml:"dir"` // Directory scanned for .bff and .yaml files
}
