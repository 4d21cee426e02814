package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default.
// Files found on the search path that fail to parse or validate are skipped;
// a bad customPath is an error.
func LoadMaze(customPath string) (MazeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseMaze(data)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("maze.yaml"), filepath.Join("configs", "maze.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseMaze(data); err == nil {
				return cfg, nil
			}
		}
	}

	if cfg, err := parseMaze(defaultMazeYAML); err == nil {
		return cfg, nil
	}
	return DefaultMazeConfig(), nil
}

// parseMaze decodes YAML over the built-in defaults, so a file only needs
// the keys it changes.
func parseMaze(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}
