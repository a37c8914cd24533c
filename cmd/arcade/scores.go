package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kode/tui-arcade/internal/registry"
	"github.com/kode/tui-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recorded rounds",
	Long: `Display the best rounds for a game, or a summary of every game.

Scores only outlive the arcade when a database file is given with --db.

Examples:
  arcade scores --db ~/.arcade/scores.db
  arcade scores tetris --db ~/.arcade/scores.db
  arcade scores 2048 --db ~/.arcade/scores.db --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagDBPath == "" {
		fmt.Println("No --db given: showing an empty in-memory table.")
		fmt.Println()
	}

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a game")
		}
		return printSummary(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	}

	return printTop(store, gameID)
}

func printTop(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	t := newTable("Rank", "Score", "Outcome", "Session", "Date")
	for i, e := range scores {
		t.Row(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.Outcome,
			shortSession(e.Session),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Best: %d  Rounds: %d  Average: %.1f\n", best, stats.GamesCount, stats.AvgScore)

	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	t := newTable("Game", "Rounds", "Best", "Average", "Last played")
	for _, id := range ids {
		s := stats[id]
		t.Row(
			id,
			fmt.Sprintf("%d", s.GamesCount),
			fmt.Sprintf("%d", s.HighScore),
			fmt.Sprintf("%.1f", s.AvgScore),
			s.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())

	return nil
}

// shortSession trims SSH session UUIDs to their first block.
func shortSession(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
