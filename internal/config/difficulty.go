package config

// ApplyMazePreset sets the board size for a difficulty preset.
// Normal keeps the loaded size; fixed keeps it and turns off endless growth.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Width, cfg.Board.Height = 6, 6
	case DifficultyHard:
		cfg.Board.Width, cfg.Board.Height = 24, 14
	case DifficultyFixed:
		cfg.Endless.Growth = 0
	}
	if cfg.Endless.MaxWidth < cfg.Board.Width {
		cfg.Endless.MaxWidth = cfg.Board.Width
	}
	if cfg.Endless.MaxHeight < cfg.Board.Height {
		cfg.Endless.MaxHeight = cfg.Board.Height
	}
}

// DifficultyManager picks board sizes as an endless run progresses.
type DifficultyManager struct {
	board   BoardConfig
	endless EndlessConfig
}

// NewDifficultyManager creates a difficulty manager for cfg.
func NewDifficultyManager(cfg MazeConfig) *DifficultyManager {
	return &DifficultyManager{board: cfg.Board, endless: cfg.Endless}
}

// BoardSize returns the board size after solved mazes have been completed.
// Each solved maze adds Growth cells per side until the maximum is reached.
func (d *DifficultyManager) BoardSize(solved int) (width, height int) {
	grow := solved * d.endless.Growth
	return min(d.board.Width+grow, d.endless.MaxWidth),
		min(d.board.Height+grow, d.endless.MaxHeight)
}

// Level returns progress towards the largest board in [0, 1].
func (d *DifficultyManager) Level(solved int) float64 {
	span := (d.endless.MaxWidth - d.board.Width) + (d.endless.MaxHeight - d.board.Height)
	if span <= 0 {
		return 1
	}
	w, h := d.BoardSize(solved)
	return float64((w-d.board.Width)+(h-d.board.Height)) / float64(span)
}
