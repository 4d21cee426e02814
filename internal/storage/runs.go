package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned by RunByID for an unknown run ID.
var ErrRunNotFound = errors.New("storage: run not found")

// MazeRun holds the statistics of one played maze. The maze itself is not
// stored; Seed, Width, Height and WeightBound regenerate it.
type MazeRun struct {
	ID          int64
	RunID       string // UUID
	GameID      string
	Seed        int64
	Width       int
	Height      int
	WeightBound int
	Moves       int
	Optimal     int // moves on the shortest path
	Hints       int
	Solved      bool
	Assisted    bool
	Ticks       int
	CreatedAt   time.Time
}

// SaveRun records a run. An empty RunID is filled with a new UUID.
// Returns the stored run ID.
func (s *Store) SaveRun(run MazeRun) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	} else if _, err := uuid.Parse(run.RunID); err != nil {
		return "", fmt.Errorf("storage: invalid run ID %q: %w", run.RunID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO maze_runs
		 (run_id, game_id, seed, width, height, weight_bound, moves, optimal, hints, solved, assisted, duration_ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.GameID,
		run.Seed,
		run.Width,
		run.Height,
		run.WeightBound,
		run.Moves,
		run.Optimal,
		run.Hints,
		run.Solved,
		run.Assisted,
		run.Ticks,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.RunID, nil
}

const runColumns = `id, run_id, game_id, seed, width, height, weight_bound, moves, optimal,
	hints, solved, assisted, duration_ticks, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (MazeRun, error) {
	var r MazeRun
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.RunID,
		&r.GameID,
		&r.Seed,
		&r.Width,
		&r.Height,
		&r.WeightBound,
		&r.Moves,
		&r.Optimal,
		&r.Hints,
		&r.Solved,
		&r.Assisted,
		&r.Ticks,
		&createdAt,
	)
	r.CreatedAt = parseTime(createdAt)
	return r, err
}

// RunByID retrieves a run by its UUID.
func (s *Store) RunByID(runID string) (*MazeRun, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM maze_runs WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the latest runs of a game, newest first.
// An empty gameID selects every game; a non-positive limit means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]MazeRun, error) {
	if limit <= 0 {
		limit = 20
	}

	var (
		rows *sql.Rows
		err  error
	)
	if gameID == "" {
		rows, err = s.db.Query(`SELECT `+runColumns+` FROM maze_runs ORDER BY id DESC LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(`SELECT `+runColumns+` FROM maze_runs WHERE game_id = ? ORDER BY id DESC LIMIT ?`, gameID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []MazeRun
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
