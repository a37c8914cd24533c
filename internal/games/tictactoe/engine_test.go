package tictactoe

import (
	"testing"

	"github.com/kode/tui-arcade/internal/core"
)

func play(t *testing.T, e *Engine, cells ...int) {
	t.Helper()
	for _, c := range cells {
		if !e.Place(c) {
			t.Fatalf("Place(%d) rejected in state %s", c, e.State())
		}
	}
}

func TestWinnerLines(t *testing.T) {
	for _, line := range winningLines {
		var b Board
		for _, i := range line {
			b[i] = MarkO
		}
		if got := b.Winner(); got != MarkO {
			t.Errorf("line %v: Winner() = %s, want O", line, got)
		}
	}

	var b Board
	b[0], b[1], b[2] = MarkX, MarkO, MarkX
	if got := b.Winner(); got != MarkEmpty {
		t.Errorf("mixed row: Winner() = %q, want empty", got)
	}
}

func TestPlaceAlternatesPlayers(t *testing.T) {
	e := NewEngine()
	if e.State() != StateNotStarted {
		t.Fatalf("state = %s, want Not Started", e.State())
	}

	play(t, e, 4)
	if e.State() != StatePlaying {
		t.Errorf("state = %s after first move, want Playing", e.State())
	}
	if e.Board()[4] != MarkX || e.Current() != MarkO {
		t.Errorf("board[4] = %s, current = %s", e.Board()[4], e.Current())
	}

	play(t, e, 0)
	if e.Board()[0] != MarkO || e.Current() != MarkX {
		t.Errorf("board[0] = %s, current = %s", e.Board()[0], e.Current())
	}
}

func TestPlaceRejections(t *testing.T) {
	e := NewEngine()
	play(t, e, 4)

	tests := []struct {
		name string
		cell int
	}{
		{"occupied", 4},
		{"negative", -1},
		{"past end", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if e.Place(tt.cell) {
				t.Errorf("Place(%d) should be rejected", tt.cell)
			}
			if e.Current() != MarkO {
				t.Error("rejected move must not flip the player")
			}
		})
	}
}

func TestGameResults(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
		want  State
	}{
		{"x wins row", []int{0, 3, 1, 4, 2}, StateXWon},
		{"o wins column", []int{0, 2, 1, 5, 6, 8}, StateOWon},
		{"x wins diagonal", []int{0, 1, 4, 2, 8}, StateXWon},
		{"draw", []int{0, 1, 2, 4, 3, 5, 7, 6, 8}, StateDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			play(t, e, tt.moves...)
			if e.State() != tt.want {
				t.Errorf("state = %s, want %s", e.State(), tt.want)
			}
			if !e.Finished() {
				t.Error("game should be finished")
			}
		})
	}
}

func TestNoMovesAfterResult(t *testing.T) {
	e := NewEngine()
	play(t, e, 0, 3, 1, 4, 2)

	if e.Place(5) {
		t.Error("Place after a win should be rejected")
	}
	if e.Board()[5] != MarkEmpty {
		t.Error("rejected move must not mark the board")
	}
}

func TestEngineReset(t *testing.T) {
	e := NewEngine()
	play(t, e, 0, 3, 1, 4, 2)
	e.Reset()

	if e.State() != StateNotStarted || e.Current() != MarkX {
		t.Errorf("state = %s, current = %s after reset", e.State(), e.Current())
	}
	if e.Board() != (Board{}) {
		t.Error("board should be empty after reset")
	}
}

func TestGameCursorAndPlacement(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	var transitions []string
	g.OnTransition(func(from, to string) {
		transitions = append(transitions, from+"->"+to)
	})

	step := func(actions ...core.Action) {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		g.Step(in)
	}

	step(core.ActionUp)
	step(core.ActionLeft)
	step(core.ActionLeft) // clamped at the edge
	if g.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", g.Cursor())
	}

	// X takes the top row; O answers on the middle row.
	frames := [][]core.Action{
		{core.ActionConfirm},                  // X at 0
		{core.ActionDown, core.ActionConfirm}, // O at 3
		{core.ActionRight},
		{core.ActionUp, core.ActionConfirm},   // X at 1
		{core.ActionDown, core.ActionConfirm}, // O at 4
		{core.ActionRight},
		{core.ActionUp, core.ActionConfirm}, // X at 2
	}
	for _, f := range frames {
		step(f...)
	}

	if g.State().Status != "X Won" || !g.State().GameOver {
		t.Fatalf("state = %+v, board = %v", g.State(), g.Engine().Board())
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, want 1", g.State().Score)
	}

	step(core.ActionConfirm)
	if g.State().Status != "Not Started" {
		t.Errorf("status = %q after new round, want Not Started", g.State().Status)
	}

	// Hooks stay attached across rounds.
	step(core.ActionConfirm)
	last := transitions[len(transitions)-1]
	if last != "Not Started->Playing" {
		t.Errorf("last transition = %q, want Not Started->Playing", last)
	}
}
