package t2048

import (
	"github.com/kode/tui-arcade/internal/core"
	"github.com/kode/tui-arcade/internal/fsm"
)

// Options configures an Engine.
type Options struct {
	Size         int     // Board dimension
	Spawn4       float64 // Probability that a spawned tile is a 4
	InitialTiles int     // Tiles spawned when play starts
}

// DefaultOptions returns the classic 4×4 setup.
func DefaultOptions() Options {
	return Options{
		Size:         4,
		Spawn4:       0.10,
		InitialTiles: 2,
	}
}

// Engine owns a 2048 board and the lifecycle that gates moves on it.
//
// Entering NotStarted clears the board and score; entering Playing spawns the
// initial tiles. Both happen in an observer so they fire for every transition
// into those states.
type Engine struct {
	opts    Options
	rng     core.Rand
	board   Board
	machine *Lifecycle
	score   int
	moves   int
}

// NewEngine creates an engine in the NotStarted state.
func NewEngine(opts Options, rng core.Rand) *Engine {
	if opts.Size < 2 {
		opts.Size = DefaultOptions().Size
	}

	e := &Engine{
		opts:    opts,
		rng:     rng,
		board:   NewBoard(opts.Size),
		machine: fsm.New(StateNotStarted, lifecycleTable()),
	}
	e.machine.Subscribe(e.onTransition)
	return e
}

func (e *Engine) onTransition(_, to State) {
	switch to {
	case StateNotStarted:
		e.board = NewBoard(e.opts.Size)
		e.score = 0
		e.moves = 0
	case StatePlaying:
		for range e.opts.InitialTiles {
			e.SpawnCell()
		}
	}
}

// Lifecycle exposes the state machine so observers can subscribe.
func (e *Engine) Lifecycle() *Lifecycle {
	return e.machine
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.machine.State()
}

// Advance fires the default lifecycle action (start / give up / reset).
func (e *Engine) Advance() bool {
	return e.machine.Transition(ActionDefault)
}

// Board returns a snapshot of the board. Mutating it does not affect the engine.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

// MaxTile returns the largest tile on the board.
func (e *Engine) MaxTile() Cell {
	return e.board.MaxTile()
}

// Score returns the sum of all merged values this game.
func (e *Engine) Score() int {
	return e.score
}

// Moves returns the number of board-changing moves this game.
func (e *Engine) Moves() int {
	return e.moves
}

// Move slides the board in dir. It returns false without side effects when
// the game is not Playing or when no line changed.
//
// A changing move is followed by a spawn; if the spawn fails or the board is
// terminal afterwards, the lifecycle moves to Finished.
func (e *Engine) Move(dir Direction) bool {
	if !e.machine.Is(StatePlaying) {
		return false
	}

	points, changed := e.board.slide(dir)
	if !changed {
		return false
	}
	e.score += points
	e.moves++

	if !e.SpawnCell() || e.IsTerminal() {
		e.machine.Transition(ActionDefault)
	}
	return true
}

// SpawnCell places a 2 (or a 4, with the configured probability) on a
// uniformly chosen empty cell. It returns false when the board is full.
func (e *Engine) SpawnCell() bool {
	empty := e.board.EmptyCells()
	if len(empty) == 0 {
		return false
	}

	p := empty[e.rng.Intn(len(empty))]
	value := Cell(2)
	if e.rng.Float64() < e.opts.Spawn4 {
		value = 4
	}
	e.board.Set(p.Y, p.X, value)
	return true
}

// IsTerminal reports whether the board is full and no two orthogonally
// adjacent cells are equal. Only right and down neighbors are compared.
func (e *Engine) IsTerminal() bool {
	return IsTerminal(e.board)
}

// IsTerminal applies the terminal rule to an arbitrary board.
func IsTerminal(b Board) bool {
	return len(b.EmptyCells()) == 0 && !b.HasPossibleMerge()
}
