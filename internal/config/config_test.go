package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseMaze(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMazeConfig()) {
		t.Errorf("embedded defaults %+v differ from DefaultMazeConfig %+v", cfg, DefaultMazeConfig())
	}
}

func TestLoadMazeFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadMaze("")
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMazeConfig()) {
		t.Errorf("got %+v, expected defaults", cfg)
	}
}

func TestLoadMazeCustomPathPartial(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "maze.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 15\n  height: 7\nsolver:\n  default_mode: dfs\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	if cfg.Board.Width != 15 || cfg.Board.Height != 7 {
		t.Errorf("board = %dx%d, expected 15x7", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Board.WeightBound != 1000 {
		t.Errorf("unset keys should keep defaults, weight_bound = %d", cfg.Board.WeightBound)
	}
	if cfg.Mode() != maze.DepthFirst {
		t.Errorf("Mode() = %v, expected dfs", cfg.Mode())
	}
}

func TestLoadMazeLocalDirectory(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "maze.yaml"), []byte("board:\n  width: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze("")
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("width = %d, expected 12 from ./configs", cfg.Board.Width)
	}
}

func TestLoadMazeErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadMaze(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMaze(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMaze(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero width: got %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeConfig)
	}{
		{"zero height", func(c *MazeConfig) { c.Board.Height = 0 }},
		{"zero weight bound", func(c *MazeConfig) { c.Board.WeightBound = 0 }},
		{"zero step ticks", func(c *MazeConfig) { c.Solver.StepTicks = 0 }},
		{"negative penalty", func(c *MazeConfig) { c.Scoring.MovePenalty = -1 }},
		{"unknown mode", func(c *MazeConfig) { c.Solver.DefaultMode = "astar" }},
		{"max below board", func(c *MazeConfig) { c.Endless.MaxWidth = 3 }},
	}

	if err := DefaultMazeConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, tc := range tests {
		cfg := DefaultMazeConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: got %v, expected ErrInvalidConfig", tc.name, err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("hard preset = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyMazePreset(t *testing.T) {
	cfg := DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyEasy)
	if cfg.Board.Width != 6 || cfg.Board.Height != 6 {
		t.Errorf("easy board = %dx%d", cfg.Board.Width, cfg.Board.Height)
	}

	cfg = DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyHard)
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	cfg = DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyFixed)
	if cfg.Endless.Growth != 0 || !IsFixedPreset(DifficultyFixed) {
		t.Error("fixed preset should disable growth")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultMazeConfig() // 10x10, growth 2, max 40x20
	d := NewDifficultyManager(cfg)

	if w, h := d.BoardSize(0); w != 10 || h != 10 {
		t.Errorf("BoardSize(0) = %dx%d", w, h)
	}
	if w, h := d.BoardSize(3); w != 16 || h != 16 {
		t.Errorf("BoardSize(3) = %dx%d", w, h)
	}
	if w, h := d.BoardSize(100); w != 40 || h != 20 {
		t.Errorf("BoardSize(100) = %dx%d, expected the maximum", w, h)
	}

	if d.Level(0) != 0 {
		t.Errorf("Level(0) = %f", d.Level(0))
	}
	if d.Level(100) != 1 {
		t.Errorf("Level(100) = %f", d.Level(100))
	}

	ApplyMazePreset(&cfg, DifficultyFixed)
	fixed := NewDifficultyManager(cfg)
	if w, h := fixed.BoardSize(50); w != 10 || h != 10 {
		t.Errorf("fixed BoardSize(50) = %dx%d", w, h)
	}
}
