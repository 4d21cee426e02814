package main

import (
	"strings"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// renderGrid draws grid as plain text with S on the start cell and G on the
// goal. Cells on the solution path are joined by a trail.
func renderGrid(grid *maze.Grid) string {
	w, h := mazerun.BoardSize(grid)
	screen := core.NewScreen(w, h)
	mazerun.Draw(screen, grid, 0, 0)

	x, y := mazerun.CellCenter(grid, 0, 0, grid.Start())
	screen.Set(x, y, 'S')
	x, y = mazerun.CellCenter(grid, 0, 0, grid.Goal())
	screen.Set(x, y, 'G')

	lines := strings.Split(screen.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
