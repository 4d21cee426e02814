package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

var flagMode string

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print a maze with its solution",
	Long: `Generate a maze like 'generate' does, search it from the top-left
cell to the bottom-right one and print the path.

Search modes:
  dfs - depth-first, follows one passage as far as it goes
  bfs - breadth-first, widens evenly; the default in the shipped config

Examples:
  maze solve
  maze solve --mode dfs --seed 42
  maze solve --width 40 --height 15 --mode bfs`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagMode, "mode", "", "Search mode: dfs or bfs (default from config)")
}

func runSolve(_ *cobra.Command, _ []string) {
	grid, seed := buildMaze()

	mode := mazerun.Defaults().Mode()
	if flagMode != "" {
		parsed, err := maze.ParseMode(flagMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mode = parsed
	}

	res, err := maze.Traverse(grid, grid.Start(), grid.Goal(), mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	path, err := maze.Solve(grid, grid.Start(), grid.Goal(), mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(renderGrid(grid))
	fmt.Printf("%dx%d  seed %d  %s\n", grid.Width, grid.Height, seed, mode)
	fmt.Printf("path: %d cells, %d moves\n", len(path), len(path)-1)
	fmt.Printf("visited: %d of %d cells\n", len(res.Visited), grid.Size())
}
