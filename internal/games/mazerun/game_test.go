package mazerun

import (
	"testing"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

func testConfig(w, h int) config.MazeConfig {
	cfg := config.DefaultMazeConfig()
	cfg.Board.Width = w
	cfg.Board.Height = h
	cfg.Solver.StepTicks = 1
	cfg.Endless.MaxWidth = max(cfg.Endless.MaxWidth, w)
	cfg.Endless.MaxHeight = max(cfg.Endless.MaxHeight, h)
	return cfg
}

func newGame(mode Mode, w, h int, seed int64) *Game {
	g := NewWithConfig(mode, testConfig(w, h))
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

var moveActions = map[maze.Direction]core.Action{
	maze.Up:    core.ActionUp,
	maze.Down:  core.ActionDown,
	maze.Left:  core.ActionLeft,
	maze.Right: core.ActionRight,
}

func directionTo(t *testing.T, grid *maze.Grid, from, to maze.CellID) maze.Direction {
	t.Helper()
	for _, d := range maze.Directions {
		if n, ok := grid.Neighbor(from, d); ok && n == to {
			return d
		}
	}
	t.Fatalf("cells %d and %d are not neighbors", from, to)
	return maze.Up
}

// walkToGoal follows the shortest path from the player to the goal.
func walkToGoal(t *testing.T, g *Game) {
	t.Helper()
	res, err := maze.Traverse(g.grid, g.player, g.grid.Goal(), maze.BreadthFirst)
	if err != nil || !res.Found {
		t.Fatalf("no path to goal: %v", err)
	}
	for i := 1; i < len(res.Path); i++ {
		d := directionTo(t, g.grid, res.Path[i-1], res.Path[i])
		g.Step(core.FrameOf(moveActions[d]))
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(ModeClassic, 12, 8, 12345)
	g2 := newGame(ModeClassic, 12, 8, 12345)

	script := []core.Action{core.ActionRight, core.ActionDown, core.ActionDown, core.ActionRight, core.ActionLeft, core.ActionUp}
	for i := 0; i < 120; i++ {
		input := core.NewInputFrame()
		input.Set(script[i%len(script)])
		if i == 50 {
			input.Set(core.ActionSolveDFS)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestResetGeneratesPerfectMaze(t *testing.T) {
	g := newGame(ModeClassic, 10, 7, 7)
	snap := g.Snapshot()

	if snap.Width != 10 || snap.Height != 7 {
		t.Fatalf("board = %dx%d, expected 10x7", snap.Width, snap.Height)
	}
	if snap.OpenEdges != 10*7-1 {
		t.Errorf("open edges = %d, expected %d", snap.OpenEdges, 10*7-1)
	}
	if snap.Player != 0 || snap.State != StatePlaying {
		t.Errorf("unexpected start state %+v", snap)
	}
	if snap.Optimal < 10-1+7-1 {
		t.Errorf("shortest path %d is shorter than the Manhattan distance", snap.Optimal)
	}
}

func TestNewMazeReproducible(t *testing.T) {
	a, err := NewMaze(9, 9, 77, 1000)
	if err != nil {
		t.Fatalf("NewMaze: %v", err)
	}
	b, err := NewMaze(9, 9, 77, 1000)
	if err != nil {
		t.Fatalf("NewMaze: %v", err)
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			t.Fatalf("edge %d differs: %+v vs %+v", i, a.Edges[i], b.Edges[i])
		}
	}

	if _, err := NewMaze(0, 3, 1, 1000); err == nil {
		t.Error("NewMaze should reject a zero width")
	}
}

func TestWallsBlockMovement(t *testing.T) {
	g := newGame(ModeClassic, 6, 6, 3)

	for _, d := range maze.Directions {
		if g.grid.Passable(g.player, d) {
			continue
		}
		g.Step(core.FrameOf(moveActions[d]))
		if g.player != 0 || g.moves != 0 {
			t.Errorf("moving %s through a wall changed player=%d moves=%d", d, g.player, g.moves)
		}
	}

	for _, d := range maze.Directions {
		if !g.grid.Passable(g.player, d) {
			continue
		}
		want, _ := g.grid.Neighbor(g.player, d)
		g.Step(core.FrameOf(moveActions[d]))
		if g.player != want || g.moves != 1 {
			t.Errorf("moving %s: player=%d moves=%d, expected %d and 1", d, g.player, g.moves, want)
		}
		break
	}
}

func TestWalkToGoal(t *testing.T) {
	g := newGame(ModeClassic, 8, 8, 21)
	walkToGoal(t, g)

	if !g.State().GameOver {
		t.Fatal("reaching the goal should end a classic game")
	}
	if g.moves != g.optimal {
		t.Errorf("moves = %d, expected the optimal %d", g.moves, g.optimal)
	}

	want := Score(g.cfg.Scoring, 64, g.optimal, g.optimal, 0, g.mazeTicks, false)
	if g.State().Score != want {
		t.Errorf("score = %d, expected %d", g.State().Score, want)
	}

	reports := g.Reports()
	if len(reports) != 1 || !reports[0].Solved || reports[0].Assisted {
		t.Fatalf("reports = %+v", reports)
	}
	if reports[0].Seed != g.seed || reports[0].Width != 8 || reports[0].Optimal != g.optimal {
		t.Errorf("report = %+v", reports[0])
	}
	if g.Snapshot().State != StateSolved {
		t.Errorf("state = %s", g.Snapshot().State)
	}
}

func TestSearchAnimation(t *testing.T) {
	g := newGame(ModeClassic, 7, 5, 11)

	g.Step(core.FrameOf(core.ActionSolveBFS))
	if g.search == nil || g.search.Mode != maze.BreadthFirst {
		t.Fatal("search should have started")
	}
	if g.Snapshot().State != StateSearching {
		t.Errorf("state = %s", g.Snapshot().State)
	}

	visited := len(g.search.Visited)
	for i := 0; i < visited+5 && !g.pathShown; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.pathShown {
		t.Fatal("path should be shown after every visited cell was revealed")
	}
	if g.revealed != visited {
		t.Errorf("revealed = %d, expected %d", g.revealed, visited)
	}

	marked := 0
	for _, c := range g.grid.Cells {
		if c.OnPath {
			marked++
		}
	}
	if marked != len(g.search.Path) || marked != g.optimal+1 {
		t.Errorf("marked %d cells, path %d, optimal %d", marked, len(g.search.Path), g.optimal)
	}

	// Watching the search halves the score.
	walkToGoal(t, g)
	want := Score(g.cfg.Scoring, 35, g.moves, g.optimal, 0, g.mazeTicks, true)
	if g.State().Score != want {
		t.Errorf("assisted score = %d, expected %d", g.State().Score, want)
	}
	if !g.Reports()[0].Assisted {
		t.Error("report should be marked assisted")
	}
}

func TestMovingClearsShownPath(t *testing.T) {
	g := newGame(ModeClassic, 6, 6, 5)
	g.Step(core.FrameOf(core.ActionSolveDFS))
	for i := 0; i < 100 && !g.pathShown; i++ {
		g.Step(core.NewInputFrame())
	}

	for _, d := range maze.Directions {
		if g.grid.Passable(g.player, d) {
			g.Step(core.FrameOf(moveActions[d]))
			break
		}
	}
	if g.search != nil {
		t.Error("moving should discard a finished search")
	}
	for i, c := range g.grid.Cells {
		if c.OnPath {
			t.Fatalf("cell %d still marked after moving", i)
		}
	}
}

func TestMovingCancelsRunningSearch(t *testing.T) {
	for _, mode := range []Mode{ModeClassic, ModeEndless} {
		t.Run(string(mode), func(t *testing.T) {
			g := newGame(mode, 8, 8, 3)
			g.Step(core.FrameOf(core.ActionSolveBFS))
			if g.search == nil || g.pathShown {
				t.Fatal("search should be animating")
			}
			visited := len(g.search.Visited)

			for _, d := range maze.Directions {
				if g.grid.Passable(g.player, d) {
					g.Step(core.FrameOf(moveActions[d]))
					break
				}
			}
			if g.player == g.grid.Start() {
				t.Fatal("player should have moved")
			}

			for i := 0; i < visited+5; i++ {
				g.Step(core.NewInputFrame())
			}
			if g.search != nil || g.pathShown {
				t.Error("moving should discard a search that is still animating")
			}
			for i, c := range g.grid.Cells {
				if c.OnPath {
					t.Fatalf("cell %d marked by a search from the old position", i)
				}
			}
			if g.gameOver {
				t.Error("a discarded search should not end the run")
			}
		})
	}
}

func TestHint(t *testing.T) {
	g := newGame(ModeClassic, 6, 6, 9)

	g.Step(core.FrameOf(core.ActionHint))
	if g.hints != 1 || g.hint == noCell {
		t.Fatalf("hints=%d hint=%d", g.hints, g.hint)
	}
	if !g.grid.Adjacent(g.player, g.hint) {
		t.Errorf("hint %d is not reachable in one step from %d", g.hint, g.player)
	}

	g.Step(core.FrameOf(core.ActionHint))
	if g.hints != 1 {
		t.Errorf("repeating a hint on the same cell should not be charged, hints=%d", g.hints)
	}

	d := directionTo(t, g.grid, g.player, g.hint)
	g.Step(core.FrameOf(moveActions[d]))
	if g.hint != noCell {
		t.Error("moving should clear the hint")
	}
}

func TestPauseFreezesGame(t *testing.T) {
	g := newGame(ModeClassic, 6, 6, 2)
	g.Step(core.FrameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	ticks := g.mazeTicks
	for _, d := range maze.Directions {
		g.Step(core.FrameOf(moveActions[d]))
	}
	if g.moves != 0 || g.mazeTicks != ticks {
		t.Errorf("paused game changed: moves=%d ticks=%d", g.moves, g.mazeTicks)
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRestartDrawsNewMaze(t *testing.T) {
	g := newGame(ModeClassic, 6, 6, 4)
	first := g.seed

	g.Step(core.FrameOf(core.ActionRestart))
	if g.seed == first {
		t.Error("restart should generate a maze from a new seed")
	}
	if g.player != 0 || g.moves != 0 {
		t.Error("restart should put the player back at the start")
	}

	walkToGoal(t, g)
	g.Step(core.FrameOf(core.ActionRestart))
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("restart after game over should begin a new run, state %+v", g.State())
	}
}

func TestEndlessGrows(t *testing.T) {
	g := newGame(ModeEndless, 5, 4, 8)
	growth := g.cfg.Endless.Growth

	walkToGoal(t, g)
	if g.State().GameOver {
		t.Fatal("endless mode should continue after a solved maze")
	}
	if g.Snapshot().State != StateCleared {
		t.Errorf("state = %s", g.Snapshot().State)
	}

	for i := 0; i < clearDelayTicks; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.grid.Width != 5+growth || g.grid.Height != 4+growth {
		t.Errorf("second maze = %dx%d, expected %dx%d", g.grid.Width, g.grid.Height, 5+growth, 4+growth)
	}
	if g.grid.OpenCount() != g.grid.Size()-1 {
		t.Error("second maze is not a spanning tree")
	}
}

func TestEndlessGiveUp(t *testing.T) {
	g := newGame(ModeEndless, 5, 5, 6)
	walkToGoal(t, g)
	for i := 0; i < clearDelayTicks; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Step(core.FrameOf(core.ActionSolveDFS))
	for i := 0; i < 1000 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver || g.Snapshot().State != StateGaveUp {
		t.Fatalf("showing the solution should end an endless run, state %s", g.Snapshot().State)
	}

	reports := g.Reports()
	if len(reports) != 2 || !reports[0].Solved || reports[1].Solved {
		t.Errorf("reports = %+v", reports)
	}
}

func TestSingleCellBoard(t *testing.T) {
	g := newGame(ModeClassic, 1, 1, 1)
	if !g.State().GameOver {
		t.Error("a 1x1 maze is solved on arrival")
	}
	if g.optimal != 0 || g.State().Score < 1 {
		t.Errorf("optimal=%d score=%d", g.optimal, g.State().Score)
	}
}

func TestScore(t *testing.T) {
	s := config.ScoringConfig{BasePoints: 10, MovePenalty: 2, HintPenalty: 25, TimeBonusTicks: 100}

	tests := []struct {
		name                               string
		cells, moves, optimal, hints, ticks int
		assisted                           bool
		expected                           int
	}{
		{"perfect and fast", 16, 6, 6, 0, 0, false, 160 + 10},
		{"detour", 16, 10, 6, 0, 100, false, 160 - 8},
		{"hint", 16, 6, 6, 2, 200, false, 160 - 50},
		{"assisted", 16, 6, 6, 0, 100, true, 80},
		{"floor", 4, 100, 2, 5, 500, false, 1},
	}

	for _, tc := range tests {
		got := Score(s, tc.cells, tc.moves, tc.optimal, tc.hints, tc.ticks, tc.assisted)
		if got != tc.expected {
			t.Errorf("%s: Score = %d, expected %d", tc.name, got, tc.expected)
		}
	}
}
