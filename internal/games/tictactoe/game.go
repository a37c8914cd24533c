package tictactoe

import (
	"github.com/kode/tui-arcade/internal/core"
	"github.com/kode/tui-arcade/internal/registry"
)

// Game adapts Engine to the arcade platform with a movable cursor.
type Game struct {
	engine *Engine
	hooks  []registry.TransitionFunc
	cursor int
	tick   uint64

	xWins int
	oWins int
	draws int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a tic-tac-toe game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Reset starts a new session: fresh board, cursor centered, tallies cleared.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewEngine()
	g.attachHooks()
	g.cursor = 4
	g.tick = 0
	g.xWins, g.oWins, g.draws = 0, 0, 0

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without resetting progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < boardW || h < boardH+hudHeight
}

// OnTransition registers a lifecycle hook; it survives board resets.
func (g *Game) OnTransition(fn registry.TransitionFunc) {
	g.hooks = append(g.hooks, fn)
	if g.engine != nil {
		g.subscribe(fn)
	}
}

func (g *Game) attachHooks() {
	g.engine.Lifecycle().Subscribe(g.tally)
	for _, fn := range g.hooks {
		g.subscribe(fn)
	}
}

func (g *Game) subscribe(fn registry.TransitionFunc) {
	g.engine.Lifecycle().Subscribe(func(from, to State) {
		fn(from.String(), to.String())
	})
}

func (g *Game) tally(_, to State) {
	switch to {
	case StateXWon:
		g.xWins++
	case StateOWon:
		g.oWins++
	case StateDraw:
		g.draws++
	}
}

// Engine returns the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Cursor returns the selected cell index.
func (g *Game) Cursor() int {
	return g.cursor
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.engine == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in.Direction())

	if in.Has(core.ActionConfirm) || in.Has(core.ActionStart) {
		if g.engine.Finished() {
			g.engine.Reset()
			g.attachHooks()
		} else {
			g.engine.Place(g.cursor)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(a core.Action) {
	row, col := g.cursor/3, g.cursor%3
	switch a {
	case core.ActionUp:
		row--
	case core.ActionDown:
		row++
	case core.ActionLeft:
		col--
	case core.ActionRight:
		col++
	default:
		return
	}
	g.cursor = core.Clamp(row, 0, 2)*3 + core.Clamp(col, 0, 2)
}

// State returns the current game state. Score counts decided games this
// session.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Status: StateNotStarted.String()}
	}

	return core.GameState{
		Score:    g.xWins + g.oWins,
		GameOver: g.engine.Finished(),
		Paused:   g.tooSmall,
		Status:   g.engine.State().String(),
	}
}
