package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kode/tui-arcade/internal/core"
	"github.com/kode/tui-arcade/internal/registry"
	"github.com/kode/tui-arcade/internal/storage"
)

// scriptedGame returns the next state from script on every Step and
// remembers the inputs it saw. last holds the most recent frame as passed in.
type scriptedGame struct {
	script  []core.GameState
	steps   int
	inputs  []core.InputFrame
	last    core.InputFrame
	resets  int
	resized [2]int
	hooks   []registry.TransitionFunc
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *scriptedGame) Controls() string { return "do things" }
func (g *scriptedGame) OnTransition(fn registry.TransitionFunc) { g.hooks = append(g.hooks, fn) }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.last = in
	st := g.State()
	g.steps++
	return core.StepResult{State: st}
}

func (g *scriptedGame) State() core.GameState {
	if g.steps < len(g.script) {
		return g.script[g.steps]
	}
	return core.GameState{}
}

func newTestModel(t *testing.T, g *scriptedGame) (GameModel, *storage.Store) {
	t.Helper()
	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewGameModel(g, cfg, GameOptions{Store: store, Session: "test"})
	return m, store
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	next, cmd := m.Update(TickMsg{Loop: m.loop})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(GameModel)
}

func TestGameModelRecordsRoundOnce(t *testing.T) {
	over := core.GameState{Score: 12, GameOver: true, Status: "Finished"}
	g := &scriptedGame{script: []core.GameState{
		{Score: 4},
		over,
		over,
		{},
		{Score: 30, GameOver: true, Status: "Aborted"},
		{Score: 0, GameOver: true},
	}}
	m, store := newTestModel(t, g)

	for range len(g.script) {
		m = tick(t, m)
	}

	scores, err := store.SessionScores("test")
	if err != nil {
		t.Fatalf("SessionScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("recorded %d rounds, want 2", len(scores))
	}
	// Newest first.
	if scores[0].Score != 30 || scores[0].Outcome != "Aborted" {
		t.Errorf("latest round = %+v", scores[0])
	}
	if scores[1].Score != 12 || scores[1].Outcome != "Finished" || scores[1].GameID != "scripted" {
		t.Errorf("first round = %+v", scores[1])
	}
}

func TestGameModelInputReachesGameOnTick(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g)

	next, _ := m.Update(runeKey('x'))
	m = next.(GameModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(GameModel)
	m = tick(t, m)
	m = tick(t, m)

	if len(g.inputs) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionRotate) || !g.inputs[0].Has(core.ActionLeft) {
		t.Error("first frame should carry both pressed actions")
	}
	if g.inputs[1].Has(core.ActionRotate) {
		t.Error("input frame should be cleared after each tick")
	}
}

func TestGameModelLeavesSteppedFrameAlone(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g)

	next, _ := m.Update(runeKey('x'))
	m = next.(GameModel)
	m = tick(t, m)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(GameModel)

	if !g.last.Has(core.ActionRotate) {
		t.Error("frame handed to the game should keep its actions after the tick")
	}
	if g.last.Has(core.ActionLeft) {
		t.Error("keys pressed after a tick should not reach the previous frame")
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g)

	_, cmd := m.Update(TickMsg{Loop: m.loop + 100})
	if cmd != nil {
		t.Error("stale tick should not schedule another")
	}
	if g.steps != 0 {
		t.Errorf("game stepped %d times on a stale tick", g.steps)
	}
}

func TestGameModelQuitStepsGameFirst(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g)

	next, cmd := m.Update(runeKey('q'))
	m = next.(GameModel)

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.IsQuitting() {
		t.Error("IsQuitting() should be true")
	}
	if len(g.inputs) != 1 || !g.inputs[0].Has(core.ActionQuit) {
		t.Errorf("game should see one quit frame, got %v", g.inputs)
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(GameModel)

	if cmd != nil {
		t.Error("back inside a session should not quit the program")
	}
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("back should only flag a return to the menu")
	}
}

func TestGameModelResizeAndView(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g)

	if len(g.hooks) != 1 {
		t.Fatalf("model should subscribe one transition logger, got %d", len(g.hooks))
	}
	g.hooks[0]("NotStarted", "Playing")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(GameModel)

	if g.resized != [2]int{100, 30 - footerHeight} {
		t.Errorf("Resize got %v", g.resized)
	}
	if g.resets != 0 {
		t.Error("resizable games should not be reset on resize")
	}

	view := m.View()
	if !strings.Contains(view, "scripted") || !strings.Contains(view, "do things") {
		t.Errorf("view misses screen or controls:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines, want 30", lines)
	}
}
