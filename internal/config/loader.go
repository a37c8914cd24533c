package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.arcade/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, err := load("t2048.yaml", customPath, defaultT2048YAML, DefaultT2048Config)
	if err != nil {
		return cfg, err
	}
	return cfg.withFallbacks(), nil
}

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := load("tetris.yaml", customPath, defaultTetrisYAML, DefaultTetrisConfig)
	if err != nil {
		return cfg, err
	}
	return cfg.withFallbacks(), nil
}

// load resolves a config file through the search path. Values absent from a
// file keep the built-in defaults. A broken custom path is an error; broken
// files found on the search path are skipped.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func (c T2048Config) withFallbacks() T2048Config {
	d := DefaultT2048Config()
	if c.Board.Size < 2 {
		c.Board.Size = d.Board.Size
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		c.Spawn.FourProbability = d.Spawn.FourProbability
	}
	if c.Spawn.InitialTiles < 0 {
		c.Spawn.InitialTiles = d.Spawn.InitialTiles
	}
	return c
}

func (c TetrisConfig) withFallbacks() TetrisConfig {
	d := DefaultTetrisConfig()
	if c.Grid.Columns < 4 {
		c.Grid.Columns = d.Grid.Columns
	}
	if c.Grid.Rows < 4 {
		c.Grid.Rows = d.Grid.Rows
	}
	if c.Gravity.IntervalMS <= 0 {
		c.Gravity.IntervalMS = d.Gravity.IntervalMS
	}
	if c.Gravity.MinIntervalMS <= 0 || c.Gravity.MinIntervalMS > c.Gravity.IntervalMS {
		c.Gravity.MinIntervalMS = c.Gravity.IntervalMS
	}
	if c.Preview.Count < 0 {
		c.Preview.Count = 0
	}
	return c
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
// Harder presets spawn more 4s; fixed keeps the file's value.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.FourProbability = 0.05
	case DifficultyNormal:
		cfg.Spawn.FourProbability = 0.10
	case DifficultyHard:
		cfg.Spawn.FourProbability = 0.25
	}
}
