package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagRuns  int
	flagRunID string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores, the run statistics and the most
recent mazes of a game. With --run, print one stored run and the maze it
was played on.

Examples:
  maze scores
  maze scores maze_endless --runs 20
  maze scores --run 3f1c2a9e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "maze"
	if len(args) == 1 {
		gameID = args[0]
	}

	if flagRunID == "" && !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'maze list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunID != "" {
		if err := printRun(store, flagRunID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, gameID); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'maze play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)

	if stats.Runs == 0 {
		return nil
	}
	fmt.Printf("Mazes: %d  Solved: %d  Avg moves: %.1f  Longest path: %d\n",
		stats.Runs, stats.SolvedRuns, stats.AvgMoves, stats.BestOptimal)

	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent mazes:")
	fmt.Printf("  %-36s  %-7s  %-5s  %-7s  %s\n", "Run", "Size", "Moves", "Optimal", "Result")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-7s  %-5d  %-7d  %s\n",
			r.RunID, fmt.Sprintf("%dx%d", r.Width, r.Height), r.Moves, r.Optimal, runResult(r))
	}
	return nil
}

func printRun(store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if errors.Is(err, storage.ErrRunNotFound) {
		return fmt.Errorf("no run with ID %s", runID)
	}
	if err != nil {
		return err
	}

	grid, err := replayMaze(*run)
	if err != nil {
		return err
	}

	fmt.Println(renderGrid(grid))
	fmt.Printf("%s  %s\n", registry.Title(run.GameID), run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("%dx%d  seed %d  weights <%d\n", run.Width, run.Height, run.Seed, replayBound(*run))
	fmt.Printf("moves %d (optimal %d)  hints %d  %s\n", run.Moves, run.Optimal, run.Hints, runResult(*run))
	return nil
}

// replayMaze regenerates the maze a run was played on and marks its
// shortest path.
func replayMaze(run storage.MazeRun) (*maze.Grid, error) {
	grid, err := mazerun.NewMaze(run.Width, run.Height, run.Seed, replayBound(run))
	if err != nil {
		return nil, err
	}
	if _, err := maze.Solve(grid, grid.Start(), grid.Goal(), maze.BreadthFirst); err != nil {
		return nil, err
	}
	return grid, nil
}

// replayBound is the weight bound of a run. Runs stored before the bound
// was recorded were generated with the default.
func replayBound(run storage.MazeRun) int {
	if run.WeightBound <= 0 {
		return maze.DefaultWeightBound
	}
	return run.WeightBound
}

func runResult(r storage.MazeRun) string {
	switch {
	case r.Solved && r.Assisted:
		return "solved (assisted)"
	case r.Solved:
		return "solved"
	default:
		return "gave up"
	}
}
