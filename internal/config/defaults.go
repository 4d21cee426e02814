package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in configuration used when no YAML
// file can be read. It matches defaults/maze.yaml.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Board: BoardConfig{
			Width:       10,
			Height:      10,
			WeightBound: 1000,
		},
		Solver: SolverConfig{
			DefaultMode: "bfs",
			StepTicks:   2,
		},
		Scoring: ScoringConfig{
			BasePoints:     10,
			MovePenalty:    2,
			HintPenalty:    25,
			TimeBonusTicks: 1800, // one minute at 30 ticks per second
		},
		Endless: EndlessConfig{
			Growth:    2,
			MaxWidth:  40,
			MaxHeight: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
