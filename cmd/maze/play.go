package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a maze",
	Long: `Start playing a maze. Without a game ID, or with "maze", a menu
asks for the mode and the board size first.

Controls:
  Arrows/hjkl  - Move
  D            - Show a depth-first search from your position
  B            - Show a breadth-first search from your position
  ?            - Hint: mark the next step
  P            - Pause
  R            - New maze (new run after game over)
  Esc          - Leave (after game over or while paused)
  Q/Ctrl+C     - Quit

Showing a search marks the maze as assisted and halves its score.
In endless mode it ends the run.

Difficulty options:
  easy   - 6x6 boards
  normal - board size from the config file
  hard   - 24x14 boards
  fixed  - endless boards do not grow

Examples:
  maze play
  maze play maze_endless --difficulty easy
  maze play --config ./my-maze.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "maze"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'maze list' to see available games.")
		os.Exit(1)
	}

	base, preset := loadSettings()
	cfg := runtimeConfig()

	var game registry.Game
	if gameID == "maze" {
		selection, err := tui.RunMazeModeSelector(cfg, base, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User pressed back or quit
		if selection == nil {
			return
		}
		game = selection.NewGame(base)
	} else {
		created, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		game = created
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Debug("starting game", "game", game.ID(), "seed", cfg.Seed)
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
