// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board T2048Board `yaml:"board"`
	Spawn T2048Spawn `yaml:"spawn"`
}

// T2048Board defines the board geometry.
type T2048Board struct {
	Size int `yaml:"size"` // Board is Size×Size
}

// T2048Spawn defines how new tiles appear.
type T2048Spawn struct {
	FourProbability float64 `yaml:"four_probability"` // Chance a spawned tile is 4 instead of 2
	InitialTiles    int     `yaml:"initial_tiles"`    // Tiles placed when play starts
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Grid       TetrisGrid       `yaml:"grid"`
	Gravity    TetrisGravity    `yaml:"gravity"`
	Preview    TetrisPreview    `yaml:"preview"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisGrid defines the playfield.
type TetrisGrid struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// TetrisGravity defines how fast pieces fall.
type TetrisGravity struct {
	IntervalMS    int `yaml:"interval_ms"`     // Time between gravity ticks at the lowest difficulty
	MinIntervalMS int `yaml:"min_interval_ms"` // Floor reached at maximum difficulty
}

// TetrisPreview defines the upcoming-piece queue.
type TetrisPreview struct {
	Count int `yaml:"count"` // Pieces shown in the "next" panel
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string is accepted and
// leaves the configuration untouched.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
