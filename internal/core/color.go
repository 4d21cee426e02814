package core

// Color is the foreground color of a screen cell. The terminal renderer maps
// each value to an ANSI 256-color code.
type Color uint8

// Base palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightCyan
	ColorGray
	ColorDim
)

// Maze roles. Boards are drawn with these names, never with the base colors.
const (
	ColorWall     = ColorDim
	ColorPlayer   = ColorGreen
	ColorGoal     = ColorRed
	ColorTrail    = ColorYellow // cells on a solved path
	ColorVisited  = ColorBlue
	ColorFrontier = ColorBrightCyan // the cell a search reached last
	ColorHint     = ColorMagenta
	ColorStatus   = ColorCyan
	ColorHelp     = ColorGray
)

// Marker reports whether c draws a single-cell marker (player, goal, hint)
// rather than board structure. Markers are rendered bold.
func (c Color) Marker() bool {
	return c == ColorPlayer || c == ColorGoal || c == ColorHint
}
