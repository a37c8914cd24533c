// Package tictactoe implements hot-seat tic-tac-toe on a 3×3 board. Two
// state machines cooperate: one for the game lifecycle and one that
// alternates the player to move.
package tictactoe

import "github.com/kode/tui-arcade/internal/fsm"

// Mark is the content of a board cell, and doubles as the player identity.
type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

// String returns the mark's symbol; empty cells render as a space.
func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// State is a game lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StateXWon
	StateOWon
	StateDraw
)

// String returns the display label of the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "Not Started"
	case StatePlaying:
		return "Playing"
	case StateXWon:
		return "X Won"
	case StateOWon:
		return "O Won"
	case StateDraw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Action is a lifecycle action label.
type Action int

const (
	ActionMove Action = iota
	ActionDraw
	ActionXWon
	ActionOWon
)

// Lifecycle is the game state machine type.
type Lifecycle = fsm.Machine[State, Action]

func lifecycleTable() fsm.Table[State, Action] {
	return fsm.Table[State, Action]{
		StateNotStarted: {ActionMove: StatePlaying},
		StatePlaying: {
			ActionMove: StatePlaying,
			ActionDraw: StateDraw,
			ActionXWon: StateXWon,
			ActionOWon: StateOWon,
		},
	}
}

func playerTable() fsm.Table[Mark, Action] {
	return fsm.Table[Mark, Action]{
		MarkX: {ActionMove: MarkO},
		MarkO: {ActionMove: MarkX},
	}
}

// Board is the 3×3 grid in row-major order.
type Board [9]Mark

var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the mark holding a complete line, or MarkEmpty.
func (b Board) Winner() Mark {
	for _, line := range winningLines {
		m := b[line[0]]
		if m != MarkEmpty && b[line[1]] == m && b[line[2]] == m {
			return m
		}
	}
	return MarkEmpty
}

// Full reports whether every cell is marked.
func (b Board) Full() bool {
	for _, m := range b {
		if m == MarkEmpty {
			return false
		}
	}
	return true
}

// Engine owns the board and both state machines.
type Engine struct {
	board  Board
	game   *Lifecycle
	player *fsm.Machine[Mark, Action]
}

// NewEngine creates an engine with an empty board and X to move.
func NewEngine() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// Reset clears the board and recreates both machines. Observers registered
// on the previous lifecycle are dropped.
func (e *Engine) Reset() {
	e.board = Board{}
	e.game = fsm.New(StateNotStarted, lifecycleTable())
	e.player = fsm.New(MarkX, playerTable())
}

// Lifecycle exposes the game state machine.
func (e *Engine) Lifecycle() *Lifecycle {
	return e.game
}

// State returns the game state.
func (e *Engine) State() State {
	return e.game.State()
}

// Current returns the player to move.
func (e *Engine) Current() Mark {
	return e.player.State()
}

// Board returns a copy of the board.
func (e *Engine) Board() Board {
	return e.board
}

// Finished reports whether the game reached a result.
func (e *Engine) Finished() bool {
	return e.game.IsTerminal()
}

// Place marks cell i for the player to move. It is rejected when i is out of
// range, the cell is taken, or the lifecycle does not accept a move.
func (e *Engine) Place(i int) bool {
	if i < 0 || i >= len(e.board) || e.board[i] != MarkEmpty {
		return false
	}
	if !e.game.Transition(ActionMove) {
		return false
	}

	e.board[i] = e.player.State()
	e.player.Transition(ActionMove)

	switch e.board.Winner() {
	case MarkX:
		e.game.Transition(ActionXWon)
	case MarkO:
		e.game.Transition(ActionOWon)
	default:
		if e.board.Full() {
			e.game.Transition(ActionDraw)
		}
	}
	return true
}
