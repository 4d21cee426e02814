package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// corridorGame is a classic game on a 2x1 board: one step right solves it.
func corridorGame() *mazerun.Game {
	cfg := config.DefaultMazeConfig()
	cfg.Board.Width, cfg.Board.Height = 2, 1
	return mazerun.NewWithConfig(mazerun.ModeClassic, cfg)
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 99}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelSavesResultsOnce(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(corridorGame(), store, testRuntime())
	m.Init()

	m, _ = press(t, m, runeKey('l'))
	m = tick(t, m)
	if !m.gameState.GameOver {
		t.Fatal("stepping onto the goal should end a classic game")
	}

	// Further ticks must not store the run again.
	m = tick(t, m)
	m = tick(t, m)

	best, err := store.HighScore("maze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != m.gameState.Score || best <= 0 {
		t.Errorf("HighScore = %d, want game score %d", best, m.gameState.Score)
	}

	runs, err := store.RecentRuns("maze", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	run := runs[0]
	if !run.Solved || run.Moves != 1 || run.Optimal != 1 || run.Width != 2 || run.Height != 1 {
		t.Errorf("unexpected run %+v", run)
	}
	if run.RunID == "" {
		t.Error("run should have an ID")
	}
}

func TestModelStoresWeightBound(t *testing.T) {
	store := openTestStore(t)
	cfg := config.DefaultMazeConfig()
	cfg.Board.Width, cfg.Board.Height = 2, 1
	cfg.Board.WeightBound = 10
	m := NewModel(mazerun.NewWithConfig(mazerun.ModeClassic, cfg), store, testRuntime())
	m.Init()

	m, _ = press(t, m, runeKey('l'))
	tick(t, m)

	runs, err := store.RecentRuns("maze", 1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].WeightBound != 10 {
		t.Fatalf("runs = %+v, want one run with weight bound 10", runs)
	}
}

func TestModelRestartSavesNewRun(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(corridorGame(), store, testRuntime())
	m.Init()

	m, _ = press(t, m, runeKey('l'))
	m = tick(t, m)

	m, _ = press(t, m, runeKey('r'))
	m = tick(t, m)
	if m.gameState.GameOver {
		t.Fatal("restart should start a new run")
	}

	m, _ = press(t, m, runeKey('l'))
	m = tick(t, m)

	runs, err := store.RecentRuns("maze", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, want 2", len(runs))
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := NewModel(corridorGame(), nil, testRuntime())
	m.Init()

	m, _ = press(t, m, runeKey('l'))
	m = tick(t, m)
	if !m.gameState.GameOver {
		t.Error("game should be over")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(corridorGame(), nil, testRuntime())
	m.Init()

	m, cmd := press(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelBackOnlyWhenOverOrPaused(t *testing.T) {
	m := newGameModel(corridorGame(), nil, testRuntime())
	m.Init()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc during play should not leave the game")
	}

	m, _ = press(t, m, runeKey('p'))
	m = tick(t, m)
	if !m.gameState.Paused {
		t.Fatal("game should be paused")
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc while paused should go back to the menu")
	}
	if cmd != nil {
		t.Error("an embedded game should not quit the program")
	}
}

func TestModelStandaloneBackQuits(t *testing.T) {
	m := NewModel(corridorGame(), nil, testRuntime())
	m.Init()

	m, _ = press(t, m, runeKey('l'))
	m = tick(t, m)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || cmd == nil {
		t.Error("esc after game over should quit a standalone game")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := corridorGame()
	m := NewModel(game, nil, testRuntime())
	m.Init()

	seed := game.Snapshot().Seed
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if got := game.Snapshot().Seed; got != seed {
		t.Errorf("resize regenerated the maze: seed %d -> %d", seed, got)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen is %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(corridorGame(), nil, testRuntime())
	m.Init()

	view := m.View()
	if !strings.Contains(view, "@") {
		t.Error("view should show the player")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
}
