package t2048

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

// Game adapts Engine to the arcade platform: it maps input frames to engine
// operations and reports lifecycle state.
type Game struct {
	engine *Engine
	opts   Options
	tick   uint64
	hooks  []registry.TransitionFunc

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a 2048 game. Call Reset before stepping it.
func New() *Game {
	return &Game{opts: DefaultOptions()}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset loads configuration and creates a fresh engine in NotStarted.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.opts = loadOptions()
	g.engine = NewEngine(g.opts, core.NewRand(cfg.Seed))
	for _, fn := range g.hooks {
		g.subscribe(fn)
	}

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

func loadOptions() Options {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyT2048Preset(&cfg, preset)
	}

	return Options{
		Size:         cfg.Board.Size,
		Spawn4:       cfg.Spawn.FourProbability,
		InitialTiles: cfg.Spawn.InitialTiles,
	}
}

// OnTransition registers a lifecycle hook; it is re-attached on every Reset.
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
	boardW, boardH := boardExtent(g.opts.Size)
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+2
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.engine == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionStart) {
		g.engine.Advance()
		return core.StepResult{State: g.State()}
	}

	if g.engine.State() == StatePlaying {
		if dir, ok := directionFor(in.Direction()); ok {
			g.engine.Move(dir)
		}
	}

	return core.StepResult{State: g.State()}
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Status: StateNotStarted.String()}
	}

	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.State() == StateFinished,
		Paused:   g.tooSmall,
		Status:   g.engine.State().String(),
	}
}
