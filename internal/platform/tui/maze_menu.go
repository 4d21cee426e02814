package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
)

// MazeSelection holds the user's choice from the maze menu.
type MazeSelection struct {
	Mode   mazerun.Mode
	Preset config.DifficultyPreset
}

// GameID returns the registry ID of the selected mode.
func (s MazeSelection) GameID() string {
	if s.Mode == mazerun.ModeEndless {
		return "maze_endless"
	}
	return "maze"
}

// NewGame creates a game for the selection on top of base.
func (s MazeSelection) NewGame(base config.MazeConfig) *mazerun.Game {
	cfg := base
	config.ApplyMazePreset(&cfg, s.Preset)
	return mazerun.NewWithConfig(s.Mode, cfg)
}

type presetOption struct {
	preset config.DifficultyPreset
	label  string
}

// MazeModeModel lets users choose the game mode and the board size.
type MazeModeModel struct {
	base         config.MazeConfig
	cursor       int
	presetCursor int
	inPresets    bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    MazeSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewMazeModeModel creates a maze mode selection model. The size list starts
// on preset.
func NewMazeModeModel(width, height int, base config.MazeConfig, preset config.DifficultyPreset) MazeModeModel {
	m := MazeModeModel{
		base:      base,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	m.selection.Preset = preset
	return m
}

// Init initializes the model.
func (m MazeModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MazeModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MazeModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inPresets {
		return m.handlePresetKey(action)
	}
	return m.handleModeKey(action)
}

func (m MazeModeModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // Classic, Endless
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Mode = mazerun.ModeClassic
		if m.cursor == 1 {
			m.selection.Mode = mazerun.ModeEndless
		}
		m.inPresets = true
		m.presetCursor = 0
		want := m.selection.Preset
		if config.IsFixedPreset(want) && m.selection.Mode == mazerun.ModeClassic {
			// Classic boards never grow, so fixed is normal there.
			want = config.DifficultyNormal
		}
		for i, opt := range m.presets() {
			if opt.preset == want {
				m.presetCursor = i
			}
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MazeModeModel) handlePresetKey(action MenuAction) (tea.Model, tea.Cmd) {
	options := m.presets()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case MenuActionDown:
		if m.presetCursor < len(options)-1 {
			m.presetCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Preset = options[m.presetCursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.inPresets = false
	}

	return m, nil
}

// presets lists the size choices for the selected mode. Fixed only differs
// from normal in endless mode.
func (m MazeModeModel) presets() []presetOption {
	size := func(p config.DifficultyPreset) string {
		cfg := m.base
		config.ApplyMazePreset(&cfg, p)
		return fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height)
	}

	options := []presetOption{
		{config.DifficultyEasy, "Easy    " + size(config.DifficultyEasy)},
		{config.DifficultyNormal, "Normal  " + size(config.DifficultyNormal)},
		{config.DifficultyHard, "Hard    " + size(config.DifficultyHard)},
	}
	if m.selection.Mode == mazerun.ModeEndless {
		options = append(options, presetOption{config.DifficultyFixed, "Fixed   " + size(config.DifficultyFixed) + ", no growth"})
	}
	return options
}

// View renders the mode or size selection.
func (m MazeModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inPresets {
		return m.viewPresets()
	}
	return m.viewModes()
}

func (m MazeModeModel) viewModes() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M A Z E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Classic  (one maze)",
		"Endless  (growing mazes)",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+mode, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m MazeModeModel) viewPresets() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("BOARD SIZE", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.presets() {
		cursor := "  "
		if i == m.presetCursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MazeModeModel) Selected() *MazeSelection {
	if m.choosing {
		return nil
	}
	sel := m.selection
	return &sel
}

// IsChoosing returns true if still in selection mode.
func (m MazeModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m MazeModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back on the mode list.
func (m MazeModeModel) WantsBack() bool {
	return m.back
}

// RunMazeModeSelector runs the maze mode selection. It returns nil if the
// user went back or quit.
func RunMazeModeSelector(cfg core.RuntimeConfig, base config.MazeConfig, preset config.DifficultyPreset) (*MazeSelection, error) {
	model := NewMazeModeModel(cfg.ScreenW, cfg.ScreenH, base, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MazeModeModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
