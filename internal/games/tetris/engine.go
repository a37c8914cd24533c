package tetris

import (
	"github.com/kode/tui-arcade/internal/core"
	"github.com/kode/tui-arcade/internal/fsm"
)

// Options configures an Engine.
type Options struct {
	Columns int
	Rows    int
	Preview int         // Upcoming pieces kept in the factory queue
	Scores  *ScoreBoard // Carried across engines to keep the best score; nil starts a new one
}

// DefaultOptions returns the classic 10×20 playfield with three previews.
func DefaultOptions() Options {
	return Options{
		Columns: 10,
		Rows:    20,
		Preview: 3,
	}
}

// Engine owns the grid, the active piece and the lifecycle that gates every
// mutation. Entering NotStarted clears the grid and deals a fresh piece.
type Engine struct {
	grid    *Grid
	factory *Factory
	machine *Lifecycle
	scores  *ScoreBoard

	piece Tetromino
	x, y  int
	lines int
}

// NewEngine creates an engine in the NotStarted state.
func NewEngine(opts Options, rng core.Rand) *Engine {
	e := &Engine{
		grid:    NewGrid(opts.Columns, opts.Rows),
		factory: NewFactory(rng, opts.Preview),
		machine: fsm.New(StateNotStarted, lifecycleTable()),
		scores:  opts.Scores,
	}
	if e.scores == nil {
		e.scores = &ScoreBoard{}
	}
	e.scores.Attach(e.grid, e.machine)
	e.grid.AddObserver("lines", func(points int) {
		e.lines += points / e.grid.Columns()
	})
	e.machine.Subscribe(e.onTransition)
	e.deal()
	return e
}

func (e *Engine) onTransition(_, to State) {
	if to == StateNotStarted {
		e.grid.Reset()
		e.lines = 0
		e.deal()
	}
}

// deal takes the next piece from the factory and places it top-center.
// It reports whether the piece fits there.
func (e *Engine) deal() bool {
	e.piece = e.factory.Next()
	w, _ := e.piece.Size()
	e.x = (e.grid.Columns() - w) / 2
	e.y = 0
	return e.grid.Validate(e.piece, e.x, e.y)
}

// Lifecycle exposes the state machine so observers can subscribe.
func (e *Engine) Lifecycle() *Lifecycle {
	return e.machine
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.machine.State()
}

// Grid returns the engine's grid for read-only use.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Piece returns the active piece and its anchor.
func (e *Engine) Piece() (Tetromino, int, int) {
	return e.piece, e.x, e.y
}

// Preview returns the upcoming pieces.
func (e *Engine) Preview() []Tetromino {
	return e.factory.Preview()
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.scores.Score()
}

// HiScore returns the best score of this engine's lifetime.
func (e *Engine) HiScore() int {
	return e.scores.HiScore()
}

// Lines returns the rows cleared this game.
func (e *Engine) Lines() int {
	return e.lines
}

// Tick runs one gravity step: compact, finish if the top row is blocked,
// otherwise drop the piece one row or merge it and deal the next one. A
// dealt piece that overlaps the stack also finishes the game.
// It returns false when the game is not Playing.
func (e *Engine) Tick() bool {
	if !e.machine.Is(StatePlaying) {
		return false
	}

	e.grid.Compact()
	if e.grid.IsFull() {
		e.machine.Transition(ActionFinish)
		return true
	}

	if e.grid.Validate(e.piece, e.x, e.y+1) {
		e.y++
		return true
	}

	e.grid.Merge(e.piece, e.x, e.y)
	if !e.deal() {
		e.machine.Transition(ActionFinish)
	}
	return true
}

// Shift moves the piece dx columns if the target placement is valid.
func (e *Engine) Shift(dx int) bool {
	if !e.machine.Is(StatePlaying) || !e.grid.Validate(e.piece, e.x+dx, e.y) {
		return false
	}
	e.x += dx
	return true
}

// SoftDrop moves the piece one row down if the target placement is valid.
func (e *Engine) SoftDrop() bool {
	if !e.machine.Is(StatePlaying) || !e.grid.Validate(e.piece, e.x, e.y+1) {
		return false
	}
	e.y++
	return true
}

// Rotate replaces the piece with its toggled shape if that fits in place.
func (e *Engine) Rotate() bool {
	if !e.machine.Is(StatePlaying) {
		return false
	}
	next := e.piece.Toggle()
	if !e.grid.Validate(next, e.x, e.y) {
		return false
	}
	e.piece = next
	return true
}

// Advance fires the default lifecycle action: start, pause, resume or reset.
func (e *Engine) Advance() bool {
	return e.machine.Transition(ActionDefault)
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() bool {
	switch e.machine.State() {
	case StatePlaying:
		return e.machine.Transition(ActionPause)
	case StatePaused:
		return e.machine.Transition(ActionPlay)
	default:
		return false
	}
}

// Quit aborts a running or paused game.
func (e *Engine) Quit() bool {
	return e.machine.Transition(ActionQuit)
}
