package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/kode/tui-arcade/internal/core"
	"github.com/kode/tui-arcade/internal/registry"
	"github.com/kode/tui-arcade/internal/storage"
)

// footerHeight is the number of lines below the game screen: the game's own
// controls and the key help.
const footerHeight = 2

// GameOptions configures a GameModel.
type GameOptions struct {
	Store      *storage.Store // Optional; finished rounds are recorded here
	Logger     *log.Logger    // Optional; defaults to a discarding logger
	Session    string         // Session label for recorded rounds
	Standalone bool           // Back quits the program instead of returning to a menu
}

// GameModel is the Bubble Tea model for running one game. It turns key
// presses into input frames, steps the game on every tick and records each
// finished round.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	session    string
	standalone bool
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	loop       uint64
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // A round that ended has been recorded
}

// NewGameModel creates a model for game. cfg carries the full terminal size;
// the game is given what remains after the footer.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 1)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	session := opts.Session
	if session == "" {
		session = storage.LocalSession
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		session:    session,
		standalone: opts.Standalone,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
	}

	if obs, ok := game.(registry.Observable); ok {
		id := game.ID()
		obs.OnTransition(func(from, to string) {
			logger.Debug("transition", "game", id, "session", session, "from", from, "to", to)
		})
	}

	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "session", m.session, "seed", m.config.Seed)
	return tickCmd(m.loop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		// The game sees the quit first so its lifecycle can record an abort.
		in := core.NewInputFrame()
		in.Set(core.ActionQuit)
		m.step(in)
		m.quitting = true
		return m, tea.Quit
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.inputFrame.Set(a)
	}
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame
	m.inputFrame = core.NewInputFrame()
	m.step(in)
	return m, tickCmd(m.loop, m.config.TickRate)
}

// step advances the game and records the round once when it ends.
func (m *GameModel) step(in core.InputFrame) {
	m.gameState = m.game.Step(in).State

	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID:  m.game.ID(),
		Session: m.session,
		Score:   m.gameState.Score,
		Outcome: m.gameState.Status,
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "game", entry.GameID, "error", err)
		return
	}
	m.logger.Info("round recorded", "game", entry.GameID, "session", m.session, "score", entry.Score, "outcome", entry.Outcome)
}

// saveScreenshot writes the current screen as plain text under
// ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game screen followed by the footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	controls := ""
	if c, ok := m.game.(registry.Controller); ok {
		controls = c.Controls()
	}

	return RenderScreen(m.screen) + "\n" +
		dimStyle.Render(centerText(controls, m.config.ScreenW)) + "\n" +
		m.help.View(m.keys)
}

// State returns the last stepped game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.Standalone = true
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
