// maze generates, solves and plays grid mazes in the terminal.
//
// Usage:
//
//	maze list                - List available games
//	maze play [game]         - Play a maze
//	maze menu                - Start menu to pick games interactively
//	maze serve               - Start SSH server for remote play
//	maze scores [game]       - Show high scores and recent runs
//	maze generate            - Print a generated maze
//	maze solve               - Print a maze with its solution
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible mazes
//	--db <path>            - Set database path (default: ~/.maze/scores.db)
//	--config <path>        - Load a custom maze.yaml
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--verbose              - Log debug output to stderr
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "maze"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Generate, solve and play mazes in your terminal",
	Long: `maze builds perfect mazes on a rectangular grid with Kruskal's
algorithm and finds the way through them with depth-first or
breadth-first search.

Available commands:
  list      - Show all available games
  play      - Play a maze directly
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  generate  - Print a maze
  solve     - Print a maze with its solution

Examples:
  maze play
  maze play --difficulty hard
  maze generate --width 20 --height 10 --seed 42
  maze solve --mode dfs --seed 42
  maze serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger = newLogger(flagVerbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
}

// newLogger returns the stderr logger of the CLI.
func newLogger(verbose bool) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "maze",
		ReportTimestamp: verbose,
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// loadSettings loads the maze configuration and the difficulty preset from
// the global flags, and makes them the defaults of registered games.
// The returned config is the loaded file before the preset is applied.
func loadSettings() (config.MazeConfig, config.DifficultyPreset) {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"solver", cfg.Solver.DefaultMode,
		"difficulty", preset,
	)

	withPreset := cfg
	config.ApplyMazePreset(&withPreset, preset)
	mazerun.SetDefaults(withPreset)
	return cfg, preset
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// seedOrNow returns the --seed flag, or a clock-based seed if it is unset.
func seedOrNow() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
