package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.lazor/config.yaml -> ./configs/lazor.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return normalize(cfg), nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile("configs/lazor.yaml"); err == nil {
		return normalize(cfg), nil
	}

	// Use embedded default YAML
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

func loadFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// normalize fills zero values with hardcoded defaults so a partial
// config file stays usable.
func normalize(cfg Config) Config {
	def := Default()
	if cfg.Solver.MaxRounds <= 0 {
		cfg.Solver.MaxRounds = def.Solver.MaxRounds
	}
	if cfg.Solver.Workers <= 0 {
		cfg.Solver.Workers = def.Solver.Workers
	}
	if cfg.Render.BlockSize <= 0 {
		cfg.Render.BlockSize = def.Render.BlockSize
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = def.Storage.DBPath
	}
	if cfg.Puzzles.Dir == "" {
		cfg.Puzzles.Dir = def.Puzzles.Dir
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lazor", filename)
}
