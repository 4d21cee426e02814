package core

// RuntimeConfig is passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// RunReport summarizes one finished maze run for storage.
type RunReport struct {
	Seed     int64
	Width    int
	Height   int
	Bound    int // exclusive upper bound of the edge weights
	Moves    int
	Optimal  int
	Hints    int
	Solved   bool
	Ticks    int
	Assisted bool // an automatic search was shown before the goal was reached
}
