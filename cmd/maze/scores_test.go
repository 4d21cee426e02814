package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

func sameWalls(a, b *maze.Grid) bool {
	if len(a.Edges) != len(b.Edges) {
		return false
	}
	for i := range a.Edges {
		if a.Edges[i].Blocked != b.Edges[i].Blocked {
			return false
		}
	}
	return true
}

func TestReplayMazeUsesStoredBound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	played, err := mazerun.NewMaze(12, 8, 42, 10)
	if err != nil {
		t.Fatalf("NewMaze() failed: %v", err)
	}
	other, err := mazerun.NewMaze(12, 8, 42, maze.DefaultWeightBound)
	if err != nil {
		t.Fatalf("NewMaze() failed: %v", err)
	}
	if sameWalls(played, other) {
		t.Fatal("different weight bounds should give different mazes for this seed")
	}

	id, err := store.SaveRun(storage.MazeRun{GameID: "maze", Seed: 42, Width: 12, Height: 8, WeightBound: 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}

	grid, err := replayMaze(*run)
	if err != nil {
		t.Fatalf("replayMaze() failed: %v", err)
	}
	if !sameWalls(grid, played) {
		t.Error("replayed maze differs from the one that was played")
	}
	if !grid.Cells[grid.Start()].OnPath || !grid.Cells[grid.Goal()].OnPath {
		t.Error("replayed maze should mark the shortest path")
	}
}

func TestReplayBoundFallsBackToDefault(t *testing.T) {
	if got := replayBound(storage.MazeRun{}); got != maze.DefaultWeightBound {
		t.Errorf("replayBound(old run) = %d, want %d", got, maze.DefaultWeightBound)
	}
	if got := replayBound(storage.MazeRun{WeightBound: 7}); got != 7 {
		t.Errorf("replayBound() = %d, want 7", got)
	}
}
