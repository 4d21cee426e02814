package mazerun

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying   GameStateType = "playing"
	StateSearching GameStateType = "searching"
	StateCleared   GameStateType = "maze_cleared"
	StateSolved    GameStateType = "solved"
	StateGaveUp    GameStateType = "gave_up"
	StateError     GameStateType = "error"
)

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Seed      int64 // seed of the current maze
	Width     int
	Height    int
	OpenEdges int
	Player    int
	Moves     int
	Optimal   int
	Hints     int
	Revealed  int
	PathShown bool
	Solved    int
	Score     int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.err != nil:
		state = StateError
	case g.gaveUp:
		state = StateGaveUp
	case g.gameOver:
		state = StateSolved
	case g.clearTicks > 0:
		state = StateCleared
	case g.search != nil:
		state = StateSearching
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Seed:      g.seed,
		Player:    int(g.player),
		Moves:     g.moves,
		Optimal:   g.optimal,
		Hints:     g.hints,
		Revealed:  g.revealed,
		PathShown: g.pathShown,
		Solved:    g.solved,
		Score:     g.score,
		State:     state,
	}
	if g.grid != nil {
		snap.Width = g.grid.Width
		snap.Height = g.grid.Height
		snap.OpenEdges = g.grid.OpenCount()
	}
	return snap
}
