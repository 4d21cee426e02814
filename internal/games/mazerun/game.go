// Package mazerun is the playable maze: walk from the top-left cell to the
// bottom-right one, or watch a depth-first or breadth-first search find the way.
package mazerun

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

const (
	clearDelayTicks = 60 // pause between mazes in endless mode
	noCell          = maze.CellID(-1)
)

var (
	defaultsMu sync.RWMutex
	defaults   = config.DefaultMazeConfig()
)

// SetDefaults sets the configuration used by games created through the registry.
func SetDefaults(cfg config.MazeConfig) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = cfg
}

// Defaults returns the configuration used by games created through the registry.
func Defaults() config.MazeConfig {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// Game implements the maze game.
type Game struct {
	mode       Mode
	cfg        config.MazeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64

	// Current maze
	grid      *maze.Grid
	seed      int64
	player    maze.CellID
	optimal   int
	moves     int
	hints     int
	hint      maze.CellID
	mazeTicks int
	assisted  bool

	// Search animation
	search       *maze.Search
	revealed     int
	searchTicker int
	pathShown    bool

	// Run totals
	solved  int
	score   int
	reports []core.RunReport

	clearTicks int
	gameOver   bool
	gaveUp     bool
	paused     bool
	err        error
}

// New creates a classic game: one maze, solved once.
func New() *Game {
	return NewWithConfig(ModeClassic, Defaults())
}

// NewEndless creates an endless game: every solved maze is followed by a
// larger one until the player asks for the solution.
func NewEndless() *Game {
	return NewWithConfig(ModeEndless, Defaults())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(mode Mode, cfg config.MazeConfig) *Game {
	return &Game{mode: mode, cfg: cfg, hint: noCell}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
	registry.Register("maze_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "maze_endless"
	}
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Maze (Endless)"
	}
	return "Maze"
}

// Reset starts a new run. The seed of every maze in the run is drawn from
// cfg.Seed, so equal seeds replay equal mazes.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg)
	g.tick = 0
	g.solved = 0
	g.score = 0
	g.reports = nil
	g.clearTicks = 0
	g.gameOver = false
	g.gaveUp = false
	g.paused = false
	g.err = nil

	g.newMaze()
}

// NewMaze builds a width x height board with weights drawn from seed and
// turns it into a perfect maze. The same arguments always give the same maze.
func NewMaze(width, height int, seed int64, weightBound int) (*maze.Grid, error) {
	grid, err := maze.Build(width, height, maze.WithSeed(seed), maze.WithWeightBound(weightBound))
	if err != nil {
		return nil, err
	}
	return maze.Generate(grid)
}

// newMaze generates the next maze of the run.
func (g *Game) newMaze() {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	if g.mode == ModeEndless {
		w, h = g.difficulty.BoardSize(g.solved)
	}

	g.seed = g.rng.Int63()
	grid, err := NewMaze(w, h, g.seed, g.cfg.Board.WeightBound)
	if err != nil {
		g.err = err
		g.gameOver = true
		return
	}
	g.grid = grid

	g.player = grid.Start()
	g.moves = 0
	g.hints = 0
	g.hint = noCell
	g.mazeTicks = 0
	g.assisted = false
	g.clearSearch()

	g.optimal = 0
	if res, err := maze.Traverse(grid, grid.Start(), grid.Goal(), maze.BreadthFirst); err == nil && res.Found {
		g.optimal = len(res.Path) - 1
	}

	// A single-cell board is solved on arrival.
	if g.player == grid.Goal() {
		g.finishMaze()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		if g.gameOver {
			g.Reset(core.RuntimeConfig{Seed: g.rng.Int63()})
		} else if g.clearTicks == 0 {
			g.newMaze()
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.clearTicks > 0 {
		g.clearTicks--
		if g.clearTicks == 0 {
			g.newMaze()
		}
		return core.StepResult{State: g.State()}
	}

	g.mazeTicks++

	switch {
	case input.Has(core.ActionSolveDFS):
		g.startSearch(maze.DepthFirst)
	case input.Has(core.ActionSolveBFS):
		g.startSearch(maze.BreadthFirst)
	case input.Has(core.ActionHint):
		g.useHint()
	}

	if g.search != nil {
		g.advanceSearch()
		if g.gameOver {
			return core.StepResult{State: g.State()}
		}
	}

	switch {
	case input.Has(core.ActionUp):
		g.move(maze.Up)
	case input.Has(core.ActionDown):
		g.move(maze.Down)
	case input.Has(core.ActionLeft):
		g.move(maze.Left)
	case input.Has(core.ActionRight):
		g.move(maze.Right)
	}

	return core.StepResult{State: g.State()}
}

// move steps the player through an open edge. Walls and the boundary block.
func (g *Game) move(d maze.Direction) {
	if !g.grid.Passable(g.player, d) {
		return
	}
	next, _ := g.grid.Neighbor(g.player, d)
	g.player = next
	g.moves++
	g.hint = noCell

	// Any search started from the old cell is stale now, animating or not.
	if g.search != nil {
		g.clearSearch()
	}
	if g.player == g.grid.Goal() {
		g.finishMaze()
	}
}

// startSearch begins an animated search from the player to the goal.
func (g *Game) startSearch(mode maze.Mode) {
	res, err := maze.Traverse(g.grid, g.player, g.grid.Goal(), mode)
	if err != nil {
		return
	}
	g.clearSearch()
	g.search = &res
	g.assisted = true
}

// advanceSearch reveals one visited cell every StepTicks ticks, then marks
// the path on the grid.
func (g *Game) advanceSearch() {
	if g.pathShown {
		return
	}
	g.searchTicker++
	if g.searchTicker < g.cfg.Solver.StepTicks {
		return
	}
	g.searchTicker = 0

	if g.revealed < len(g.search.Visited) {
		g.revealed++
		return
	}

	g.pathShown = true
	if _, err := maze.Solve(g.grid, g.search.Start, g.search.Goal, g.search.Mode); err != nil {
		return
	}
	if g.mode == ModeEndless {
		g.giveUp()
	}
}

func (g *Game) clearSearch() {
	g.search = nil
	g.revealed = 0
	g.searchTicker = 0
	g.pathShown = false
	if g.grid != nil {
		g.grid.ClearPath()
	}
}

// useHint marks the next cell on the shortest way to the goal.
// A hint is only charged once per position.
func (g *Game) useHint() {
	if g.hint != noCell {
		return
	}
	res, err := maze.Traverse(g.grid, g.player, g.grid.Goal(), maze.BreadthFirst)
	if err != nil || !res.Found || len(res.Path) < 2 {
		return
	}
	g.hint = res.Path[1]
	g.hints++
}

func (g *Game) finishMaze() {
	g.score += Score(g.cfg.Scoring, g.grid.Size(), g.moves, g.optimal, g.hints, g.mazeTicks, g.assisted)
	g.solved++
	g.reports = append(g.reports, g.report(true))

	if g.mode == ModeClassic {
		g.gameOver = true
		return
	}
	g.clearTicks = clearDelayTicks
}

// giveUp ends an endless run after the solution was shown.
func (g *Game) giveUp() {
	g.reports = append(g.reports, g.report(false))
	g.gaveUp = true
	g.gameOver = true
}

func (g *Game) report(solved bool) core.RunReport {
	return core.RunReport{
		Seed:     g.seed,
		Width:    g.grid.Width,
		Height:   g.grid.Height,
		Bound:    g.cfg.Board.WeightBound,
		Moves:    g.moves,
		Optimal:  g.optimal,
		Hints:    g.hints,
		Solved:   solved,
		Ticks:    g.mazeTicks,
		Assisted: g.assisted,
	}
}

// Reports returns one report per finished maze of the run.
func (g *Game) Reports() []core.RunReport {
	return append([]core.RunReport(nil), g.reports...)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Grid returns the current maze.
func (g *Game) Grid() *maze.Grid {
	return g.grid
}
