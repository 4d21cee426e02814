package mazerun

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Each cell takes CellWidth columns and CellHeight rows including one wall
// line; a board needs one extra column and row for the closing walls.
const (
	CellWidth  = 4
	CellHeight = 2

	hudHeight    = 2
	footerHeight = 1
	minScreenW   = 24
	minScreenH   = hudHeight + footerHeight + 3
)

// BoardSize returns the screen size of a drawn grid.
func BoardSize(grid *maze.Grid) (w, h int) {
	return grid.Width*CellWidth + 1, grid.Height*CellHeight + 1
}

// CellCenter returns the screen position of the middle of a cell for a board
// drawn at (ox, oy).
func CellCenter(grid *maze.Grid, ox, oy int, id maze.CellID) (x, y int) {
	c := grid.Cells[id]
	return ox + c.Col*CellWidth + CellWidth/2, oy + c.Row*CellHeight + CellHeight/2
}

// junctions indexed by up|down<<1|left<<2|right<<3.
var junctions = [16]rune{
	' ', '│', '│', '│',
	'─', '┘', '┐', '┤',
	'─', '└', '┌', '├',
	'─', '┴', '┬', '┼',
}

// Draw renders the walls of grid with its top-left corner at (ox, oy) and
// the cells marked OnPath joined by a trail.
func Draw(dst *core.Screen, grid *maze.Grid, ox, oy int) {
	w, h := grid.Width, grid.Height

	// vWall reports a wall on vertical line i beside row r.
	vWall := func(i, r int) bool {
		if i == 0 || i == w {
			return true
		}
		id, _ := grid.Index(i-1, r)
		return grid.HasWall(id, maze.Right)
	}
	// hWall reports a wall on horizontal line j above column c.
	hWall := func(c, j int) bool {
		if j == 0 || j == h {
			return true
		}
		id, _ := grid.Index(c, j-1)
		return grid.HasWall(id, maze.Down)
	}

	for j := 0; j <= h; j++ {
		for i := 0; i <= w; i++ {
			mask := 0
			if j > 0 && vWall(i, j-1) {
				mask |= 1
			}
			if j < h && vWall(i, j) {
				mask |= 2
			}
			if i > 0 && hWall(i-1, j) {
				mask |= 4
			}
			if i < w && hWall(i, j) {
				mask |= 8
			}
			x, y := ox+i*CellWidth, oy+j*CellHeight
			dst.SetWithColor(x, y, junctions[mask], core.ColorWall)

			if i < w && hWall(i, j) {
				for dx := 1; dx < CellWidth; dx++ {
					dst.SetWithColor(x+dx, y, '─', core.ColorWall)
				}
			}
			if j < h && vWall(i, j) {
				for dy := 1; dy < CellHeight; dy++ {
					dst.SetWithColor(x, y+dy, '│', core.ColorWall)
				}
			}
		}
	}

	for id := range grid.Cells {
		cell := maze.CellID(id)
		if !grid.Cells[cell].OnPath {
			continue
		}
		x, y := CellCenter(grid, ox, oy, cell)
		dst.SetWithColor(x, y, '•', core.ColorTrail)

		// In a perfect maze two adjacent path cells joined by an open edge
		// are consecutive on the path.
		if next, ok := grid.Neighbor(cell, maze.Right); ok && grid.Cells[next].OnPath && grid.Passable(cell, maze.Right) {
			for dx := 1; dx < CellWidth; dx++ {
				dst.SetWithColor(x+dx, y, '·', core.ColorTrail)
			}
		}
		if next, ok := grid.Neighbor(cell, maze.Down); ok && grid.Cells[next].OnPath && grid.Passable(cell, maze.Down) {
			for dy := 1; dy < CellHeight; dy++ {
				dst.SetWithColor(x, y+dy, '·', core.ColorTrail)
			}
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.grid == nil {
		if g.err != nil {
			g.renderOverlay(dst, "Cannot build maze", g.err.Error())
		}
		return
	}

	g.renderHUD(dst)

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	ox, oy := g.origin(dst)
	Draw(dst, g.grid, ox, oy)
	g.renderSearch(dst, ox, oy)
	g.renderMarkers(dst, ox, oy)
	g.renderFooter(dst)

	switch {
	case g.gaveUp:
		g.renderOverlay(dst, fmt.Sprintf("Solved %d mazes", g.solved), fmt.Sprintf("Score: %d  R to restart", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "You made it!", fmt.Sprintf("Score: %d  R for a new maze", g.score))
	case g.clearTicks > 0:
		g.renderOverlay(dst, fmt.Sprintf("Maze %d solved", g.solved), "A bigger one is coming")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// origin returns where the board's top-left corner goes. Boards that fit are
// centered; larger boards scroll to keep the player in view.
func (g *Game) origin(dst *core.Screen) (int, int) {
	view := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerHeight)
	bw, bh := BoardSize(g.grid)
	px, py := CellCenter(g.grid, 0, 0, g.player)

	ox := view.X - core.ScrollOffset(px, bw, view.W)
	if bw < view.W {
		ox = view.X + (view.W-bw)/2
	}
	oy := view.Y - core.ScrollOffset(py, bh, view.H)
	if bh < view.H {
		oy = view.Y + (view.H-bh)/2
	}
	return ox, oy
}

// renderSearch shows the cells the running search has visited so far.
func (g *Game) renderSearch(dst *core.Screen, ox, oy int) {
	if g.search == nil {
		return
	}
	for i, id := range g.search.Visited[:g.revealed] {
		if g.grid.Cells[id].OnPath {
			continue
		}
		x, y := CellCenter(g.grid, ox, oy, id)
		if i == g.revealed-1 && !g.pathShown {
			dst.SetWithColor(x, y, '◦', core.ColorFrontier)
			continue
		}
		dst.SetWithColor(x, y, '·', core.ColorVisited)
	}
}

func (g *Game) renderMarkers(dst *core.Screen, ox, oy int) {
	if g.hint != noCell {
		x, y := CellCenter(g.grid, ox, oy, g.hint)
		dst.SetWithColor(x, y, '+', core.ColorHint)
	}

	gx, gy := CellCenter(g.grid, ox, oy, g.grid.Goal())
	dst.SetWithColor(gx, gy, 'X', core.ColorGoal)

	px, py := CellCenter(g.grid, ox, oy, g.player)
	dst.SetWithColor(px, py, '@', core.ColorPlayer)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | %dx%d | Moves: %d (best %d) | Hints: %d | Score: %d",
		g.Title(), g.grid.Width, g.grid.Height, g.moves, g.optimal, g.hints, g.score)
	if g.mode == ModeEndless {
		hud += fmt.Sprintf(" | Maze #%d | Size %d%%", g.solved+1, int(g.difficulty.Level(g.solved)*100))
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.search != nil {
		status := fmt.Sprintf(" %s: visited %d/%d", g.search.Mode, g.revealed, len(g.search.Visited))
		if g.pathShown {
			status += fmt.Sprintf(", path %d cells", len(g.search.Path))
		}
		dst.DrawTextWithColor(0, y, status, core.ColorStatus)
		return
	}
	dst.DrawTextWithColor(0, y, " arrows/hjkl move  d dfs  b bfs  ? hint  r new maze  p pause  q quit", core.ColorHelp)
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
