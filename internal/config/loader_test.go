package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	var t2048 T2048Config
	if err := yaml.Unmarshal(GetDefaultYAML("2048"), &t2048); err != nil {
		t.Fatalf("embedded 2048 yaml: %v", err)
	}
	if t2048 != DefaultT2048Config() {
		t.Errorf("embedded 2048 config = %+v, want %+v", t2048, DefaultT2048Config())
	}

	var tetris TetrisConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tetris"), &tetris); err != nil {
		t.Fatalf("embedded tetris yaml: %v", err)
	}
	if tetris != DefaultTetrisConfig() {
		t.Errorf("embedded tetris config = %+v, want %+v", tetris, DefaultTetrisConfig())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default yaml")
	}
}

func TestLoadWithoutFilesUsesEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("LoadTetris() = %+v, want defaults", cfg)
	}
}

func TestLoadCustomPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my2048.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048() failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Spawn.FourProbability != 0.10 || cfg.Spawn.InitialTiles != 2 {
		t.Errorf("unset values should keep defaults, got %+v", cfg.Spawn)
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("grid:\n  columns: 12\n  rows: 22\n")
	if err := os.WriteFile(filepath.Join(dir, "tetris.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Grid.Columns != 12 || cfg.Grid.Rows != 22 {
		t.Errorf("Grid = %+v, want 12x22", cfg.Grid)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadT2048(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should return an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadT2048(path); err == nil {
		t.Error("malformed custom config should return an error")
	}
}

func TestFallbacksRepairInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("grid:\n  columns: 1\ngravity:\n  interval_ms: 200\n  min_interval_ms: 500\npreview:\n  count: -2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Grid.Columns != 10 {
		t.Errorf("Columns = %d, want fallback 10", cfg.Grid.Columns)
	}
	if cfg.Gravity.MinIntervalMS != 200 {
		t.Errorf("MinIntervalMS = %d, want clamp to 200", cfg.Gravity.MinIntervalMS)
	}
	if cfg.Preview.Count != 0 {
		t.Errorf("Preview.Count = %d, want 0", cfg.Preview.Count)
	}
}

func TestApplyPresets(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyTetrisPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	board := DefaultT2048Config()
	ApplyT2048Preset(&board, DifficultyHard)
	if board.Spawn.FourProbability != 0.25 {
		t.Errorf("FourProbability = %v, want 0.25", board.Spawn.FourProbability)
	}

	if _, ok := ParsePreset("insane"); ok {
		t.Error("unknown preset should not parse")
	}
	if p, ok := ParsePreset("easy"); !ok || p != DifficultyEasy {
		t.Errorf("ParsePreset(easy) = %q, %v", p, ok)
	}
}
