package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultT2048Config returns the built-in 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{Size: 4},
		Spawn: T2048Spawn{
			FourProbability: 0.10,
			InitialTiles:    2,
		},
	}
}

// DefaultTetrisConfig returns the built-in Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: TetrisGrid{Columns: 10, Rows: 20},
		Gravity: TetrisGravity{
			IntervalMS:    300,
			MinIntervalMS: 100,
		},
		Preview: TetrisPreview{Count: 3},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "2048":
		return defaultT2048YAML
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
