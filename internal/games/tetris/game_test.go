package tetris

import (
	"testing"

	"github.com/kode/tui-arcade/internal/core"
)

func press(g *Game, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	g.Step(in)
}

func newTestGame(seed int64) *Game {
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func TestGameGravityTicks(t *testing.T) {
	g := newTestGame(1)

	// 300 ms at 60 frames per second.
	if got := g.GravityTicks(); got != 18 {
		t.Errorf("GravityTicks() = %d, want 18", got)
	}
}

func TestGameGravityDropsPiece(t *testing.T) {
	g := newTestGame(1)
	press(g, core.ActionStart)

	for range 16 {
		press(g)
	}
	if y := g.Snapshot().Y; y != 0 {
		t.Fatalf("piece y = %d before the gravity interval, want 0", y)
	}

	press(g)
	if y := g.Snapshot().Y; y != 1 {
		t.Errorf("piece y = %d after the gravity interval, want 1", y)
	}
}

func TestGameLifecycleFromInput(t *testing.T) {
	g := newTestGame(1)
	var transitions []string
	g.OnTransition(func(from, to string) {
		transitions = append(transitions, from+"->"+to)
	})

	press(g, core.ActionStart)
	press(g, core.ActionPause)
	if !g.State().Paused || g.State().Status != "Paused" {
		t.Errorf("state = %+v, want Paused", g.State())
	}

	press(g, core.ActionPause)
	press(g, core.ActionQuit)
	if !g.State().GameOver || g.State().Status != "Aborted" {
		t.Errorf("state = %+v, want Aborted", g.State())
	}

	press(g, core.ActionStart)
	if g.State().Status != "Playing" {
		t.Errorf("status = %q after restart, want Playing", g.State().Status)
	}

	want := []string{
		"Not Started->Playing",
		"Playing->Paused",
		"Paused->Playing",
		"Playing->Aborted",
		"Not Started->Playing",
	}
	if len(transitions) != len(want) {
		t.Fatalf("transitions = %v, want %v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("transition %d = %q, want %q", i, transitions[i], want[i])
		}
	}
}

func TestGameRestartKeepsHiScore(t *testing.T) {
	g := newTestGame(1)

	press(g, core.ActionStart)
	g.Engine().scores.Add(40)
	press(g, core.ActionQuit)
	if g.State().Status != "Aborted" {
		t.Fatalf("status = %q, want Aborted", g.State().Status)
	}

	press(g, core.ActionStart)
	if g.State().Status != "Playing" {
		t.Fatalf("status = %q after restart, want Playing", g.State().Status)
	}
	if got := g.Engine().HiScore(); got != 40 {
		t.Errorf("hi score = %d after restart, want 40", got)
	}
	if got := g.Engine().Score(); got != 0 {
		t.Errorf("score = %d after restart, want 0", got)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := []core.Action{core.ActionStart, core.ActionLeft, core.ActionRotate, core.ActionRight, core.ActionDown}

	run := func() Snapshot {
		g := newTestGame(99)
		for _, a := range inputs {
			press(g, a)
		}
		for range 200 {
			press(g)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Piece != b.Piece || a.X != b.X || a.Y != b.Y || a.State != b.State {
		t.Fatalf("runs diverged: %+v vs %+v", a, b)
	}
	for y := range a.Grid {
		for x := range a.Grid[y] {
			if a.Grid[y][x] != b.Grid[y][x] {
				t.Fatalf("grids diverged at (%d, %d)", x, y)
			}
		}
	}
}

func TestGameRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(3)
	press(g, core.ActionStart)
	before := g.Snapshot()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	after := g.Snapshot()
	if before.X != after.X || before.Y != after.Y || before.Tick != after.Tick {
		t.Error("Render must not change game state")
	}
}
