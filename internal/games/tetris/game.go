package tetris

import (
	"github.com/kode/tui-arcade/internal/config"
	"github.com/kode/tui-arcade/internal/core"
	"github.com/kode/tui-arcade/internal/registry"
)

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game adapts Engine to the arcade platform. It turns input frames into
// engine commands and converts the configured gravity interval into frames.
type Game struct {
	engine     *Engine
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	rng        core.Rand
	scores     *ScoreBoard // Outlives engines so a restart keeps the best score
	hooks      []registry.TransitionFunc

	tickRate     int
	tick         uint64
	playTicks    int // Frames spent Playing, for time-based progression
	gravityTimer int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a Tetris game. Call Reset before stepping it.
func New() *Game {
	return &Game{cfg: config.DefaultTetrisConfig()}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads configuration and creates a fresh engine in NotStarted.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = core.NewRand(cfg.Seed)

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.scores = &ScoreBoard{}
	g.newEngine()
	g.checkScreenSize()
}

func loadConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	return cfg
}

func (g *Game) newEngine() {
	g.engine = NewEngine(Options{
		Columns: g.cfg.Grid.Columns,
		Rows:    g.cfg.Grid.Rows,
		Preview: g.cfg.Preview.Count,
		Scores:  g.scores,
	}, g.rng)
	g.engine.Lifecycle().Subscribe(func(_, to State) {
		if to == StateNotStarted {
			g.playTicks = 0
			g.gravityTimer = 0
		}
	})
	for _, fn := range g.hooks {
		g.subscribe(fn)
	}
	g.playTicks = 0
	g.gravityTimer = 0
}

// OnTransition registers a lifecycle hook; it is re-attached to every new
// engine.
func (g *Game) OnTransition(fn registry.TransitionFunc) {
	g.hooks = append(g.hooks, fn)
	if g.engine != nil {
		g.subscribe(fn)
	}
}

func (g *Game) subscribe(fn registry.TransitionFunc) {
	g.engine.Lifecycle().Subscribe(func(from, to State) {
		fn(from.String(), to.String())
	})
}

// Engine returns the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Resize updates the screen size without resetting progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// GravityTicks returns the frames between gravity steps at the current
// difficulty. It is never less than one.
func (g *Game) GravityTicks() int {
	ms := g.difficulty.Interval(g.cfg.Gravity.IntervalMS, g.cfg.Gravity.MinIntervalMS, g.engine.Score(), g.playTicks)
	return max(1, ms*g.tickRate/1000)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.engine == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionStart):
		if g.engine.State() == StateAborted {
			g.newEngine()
		}
		g.engine.Advance()
	case in.Has(core.ActionPause):
		g.engine.TogglePause()
	case in.Has(core.ActionQuit):
		g.engine.Quit()
	}

	if g.engine.State() != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	switch in.Direction() {
	case core.ActionLeft:
		g.engine.Shift(-1)
	case core.ActionRight:
		g.engine.Shift(1)
	case core.ActionDown:
		g.engine.SoftDrop()
	case core.ActionUp:
		g.engine.Rotate()
	}
	if in.Has(core.ActionRotate) {
		g.engine.Rotate()
	}

	g.playTicks++
	g.gravityTimer++
	if g.gravityTimer >= g.GravityTicks() {
		g.gravityTimer = 0
		g.engine.Tick()
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Status: StateNotStarted.String()}
	}

	s := g.engine.State()
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: s == StateFinished || s == StateAborted,
		Paused:   s == StatePaused || g.tooSmall,
		Status:   s.String(),
	}
}
