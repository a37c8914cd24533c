package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kode/tui-arcade/internal/config"
	"github.com/kode/tui-arcade/internal/games/t2048"
	"github.com/kode/tui-arcade/internal/games/tetris"
	"github.com/kode/tui-arcade/internal/platform/tui"
	"github.com/kode/tui-arcade/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move (2048: slide, Tetris: shift and soft drop)
  X/Up         - Rotate (Tetris)
  Space        - Start, restart after game over
  Enter        - Place mark (tic-tac-toe)
  P            - Pause
  Ctrl+S       - Screenshot
  Esc/B, Q     - Quit

Difficulty options:
  easy   - Start slow, speed up with score
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - No progression

Examples:
  arcade play 2048
  arcade play tetris --difficulty hard
  arcade play 2048 --config ./my-2048.yaml
  arcade play tictactoe`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}
	if err := applyConfigPath(gameID, flagConfig); err != nil {
		return err
	}

	// Without --log-file there is nowhere to log that would not draw over
	// the game screen.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, runtimeConfig(), tui.GameOptions{
		Store:  store,
		Logger: logger,
	})
}

// applyConfigPath checks a custom config file up front so a bad path fails
// before the screen is taken over, then hands it to the game.
func applyConfigPath(gameID, path string) error {
	if path == "" {
		return nil
	}

	switch gameID {
	case "2048":
		if _, err := config.LoadT2048(path); err != nil {
			return err
		}
		t2048.SetConfigPath(path)
	case "tetris":
		if _, err := config.LoadTetris(path); err != nil {
			return err
		}
		tetris.SetConfigPath(path)
	default:
		return fmt.Errorf("game %q has no configuration file", gameID)
	}
	return nil
}
