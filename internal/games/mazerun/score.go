package mazerun

import "github.com/vovakirdan/tui-maze/internal/config"

// Score returns the points for one solved maze:
// BasePoints per cell, minus MovePenalty per move beyond the shortest path,
// minus HintPenalty per hint, plus one point per 10 ticks left under
// TimeBonusTicks. Watching a search halves the result. The minimum is 1.
func Score(s config.ScoringConfig, cells, moves, optimal, hints, ticks int, assisted bool) int {
	points := s.BasePoints * cells
	points -= s.MovePenalty * max(0, moves-optimal)
	points -= s.HintPenalty * hints
	points += max(0, s.TimeBonusTicks-ticks) / 10
	if assisted {
		points /= 2
	}
	return max(1, points)
}
