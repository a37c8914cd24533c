package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/kode/tui-arcade/internal/config"
	"github.com/kode/tui-arcade/internal/core"
	"github.com/kode/tui-arcade/internal/games/t2048"
	"github.com/kode/tui-arcade/internal/games/tetris"
	"github.com/kode/tui-arcade/internal/storage"
)

// newLogger builds the process logger from --log-level and --log-file. When
// no file is given, logs go to fallback. The returned func closes the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return logger, closeFn, nil
}

// applyDifficulty validates the preset and hands it to every configurable game.
func applyDifficulty(preset string) error {
	if _, ok := config.ParsePreset(preset); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}
	t2048.SetDifficultyPreset(preset)
	tetris.SetDifficultyPreset(preset)
	return nil
}

// runtimeConfig sizes the screen to the local terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Play continues without one if it
// cannot be opened.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
