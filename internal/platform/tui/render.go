package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// palette maps the maze colors to terminal styles. Walls are dimmed so the
// trail and the search stand out; markers are bold.
var palette = func() map[core.Color]lipgloss.Style {
	fg := func(code string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault:    lipgloss.NewStyle(),
		core.ColorRed:        fg("1"),
		core.ColorGreen:      fg("2"),
		core.ColorYellow:     fg("3"),
		core.ColorBlue:       fg("4"),
		core.ColorMagenta:    fg("5"),
		core.ColorCyan:       fg("6"),
		core.ColorBrightCyan: fg("14"),
		core.ColorGray:       fg("245"),
		core.ColorDim:        fg("240"),
	}
	for c, style := range styles {
		if c.Marker() {
			styles[c] = style.Bold(true)
		}
	}
	return styles
}()

// styleFor returns the style of c, falling back to the terminal default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := palette[c]; ok {
		return style
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells with one color share an escape sequence; corridors and
// walls make long runs, so a board costs far fewer escapes than cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
