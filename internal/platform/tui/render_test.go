package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func TestPaletteCoversMazeRoles(t *testing.T) {
	roles := map[string]core.Color{
		"wall":     core.ColorWall,
		"player":   core.ColorPlayer,
		"goal":     core.ColorGoal,
		"trail":    core.ColorTrail,
		"visited":  core.ColorVisited,
		"frontier": core.ColorFrontier,
		"hint":     core.ColorHint,
		"status":   core.ColorStatus,
		"help":     core.ColorHelp,
	}
	for name, c := range roles {
		if _, ok := palette[c]; !ok {
			t.Errorf("%s color %d has no style", name, c)
		}
		if got := styleFor(c).GetBold(); got != c.Marker() {
			t.Errorf("%s: bold = %v, want %v", name, got, c.Marker())
		}
	}
	if styleFor(core.Color(200)).GetBold() {
		t.Error("unknown colors should fall back to the plain style")
	}
}

func TestRenderScreenKeepsRunes(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextWithColor(0, 0, "┌──┐", core.ColorWall)
	s.SetWithColor(1, 1, '@', core.ColorPlayer)
	s.SetWithColor(2, 1, 'X', core.ColorGoal)
	s.DrawTextWithColor(0, 2, "moves", core.ColorStatus)

	out := RenderScreen(s)
	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Fatalf("rendered %d lines, want 3", lines)
	}
	for _, want := range []string{"┌──┐", "@", "X", "moves"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}
