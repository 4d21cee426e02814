// Package config loads the YAML maze configuration and maps difficulty
// presets onto board sizes.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Solver  SolverConfig  `yaml:"solver"`
	Scoring ScoringConfig `yaml:"scoring"`
	Endless EndlessConfig `yaml:"endless"`
}

// BoardConfig defines the generated board.
type BoardConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	WeightBound int `yaml:"weight_bound"` // exclusive upper bound of edge weights
}

// SolverConfig defines the animated search.
type SolverConfig struct {
	DefaultMode string `yaml:"default_mode"` // "dfs" or "bfs"
	StepTicks   int    `yaml:"step_ticks"`   // ticks between revealed cells
}

// ScoringConfig defines how a finished run is scored.
type ScoringConfig struct {
	BasePoints     int `yaml:"base_points"`      // points per cell of the board
	MovePenalty    int `yaml:"move_penalty"`     // per move beyond the shortest path
	HintPenalty    int `yaml:"hint_penalty"`     // per hint used
	TimeBonusTicks int `yaml:"time_bonus_ticks"` // ticks under which a time bonus is paid
}

// EndlessConfig defines board growth in endless mode.
type EndlessConfig struct {
	Growth    int `yaml:"growth"` // cells added per side after each solved maze
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid maze config")

// Validate reports the first inconsistent setting.
func (c MazeConfig) Validate() error {
	switch {
	case c.Board.Width < 1 || c.Board.Height < 1:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Board.WeightBound < 1:
		return fmt.Errorf("%w: weight_bound %d", ErrInvalidConfig, c.Board.WeightBound)
	case c.Solver.StepTicks < 1:
		return fmt.Errorf("%w: step_ticks %d", ErrInvalidConfig, c.Solver.StepTicks)
	case c.Scoring.BasePoints < 0 || c.Scoring.MovePenalty < 0 || c.Scoring.HintPenalty < 0 || c.Scoring.TimeBonusTicks < 0:
		return fmt.Errorf("%w: negative scoring value", ErrInvalidConfig)
	case c.Endless.Growth < 0:
		return fmt.Errorf("%w: endless growth %d", ErrInvalidConfig, c.Endless.Growth)
	case c.Endless.MaxWidth < c.Board.Width || c.Endless.MaxHeight < c.Board.Height:
		return fmt.Errorf("%w: endless max %dx%d below board size", ErrInvalidConfig, c.Endless.MaxWidth, c.Endless.MaxHeight)
	}
	if _, err := maze.ParseMode(c.Solver.DefaultMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Mode returns the configured default search mode, falling back to
// breadth-first when the setting does not parse.
func (c MazeConfig) Mode() maze.Mode {
	m, err := maze.ParseMode(c.Solver.DefaultMode)
	if err != nil {
		return maze.BreadthFirst
	}
	return m
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables endless growth.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
