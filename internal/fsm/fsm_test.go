package fsm

import "testing"

type light int

const (
	off light = iota
	on
	broken
)

type toggle int

const (
	flip toggle = iota
	smash
	repair
)

func lightTable() Table[light, toggle] {
	return Table[light, toggle]{
		off: {flip: on, smash: broken},
		on:  {flip: off, smash: broken},
	}
}

func TestTransitionDeclaredPairs(t *testing.T) {
	table := lightTable()

	for from, actions := range table {
		for action, want := range actions {
			m := New(from, table)
			if !m.Transition(action) {
				t.Errorf("Transition(%d) from %d returned false", action, from)
			}
			if got := m.State(); got != want {
				t.Errorf("state after %d from %d = %d, want %d", action, from, got, want)
			}
		}
	}
}

func TestTransitionUndeclaredPairs(t *testing.T) {
	tests := []struct {
		name   string
		from   light
		action toggle
	}{
		{"repair from off", off, repair},
		{"repair from on", on, repair},
		{"flip from broken", broken, flip},
		{"smash from broken", broken, smash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.from, lightTable())
			fired := 0
			m.Subscribe(func(_, _ light) { fired++ })

			if m.Transition(tt.action) {
				t.Error("Transition should return false for undeclared pair")
			}
			if m.State() != tt.from {
				t.Errorf("state changed to %d, want %d", m.State(), tt.from)
			}
			if fired != 0 {
				t.Errorf("observer fired %d times on failed transition", fired)
			}
		})
	}
}

func TestObserversFireInOrderBeforeMutation(t *testing.T) {
	m := New(off, lightTable())

	var calls []string
	var seen light = -1
	m.Subscribe(func(from, to light) {
		calls = append(calls, "first")
		seen = m.State()
		if from != off || to != on {
			t.Errorf("observer got (%d, %d), want (%d, %d)", from, to, off, on)
		}
	})
	m.Subscribe(func(_, _ light) { calls = append(calls, "second") })

	m.Transition(flip)

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("observer order = %v, want [first second]", calls)
	}
	if seen != off {
		t.Errorf("observer saw state %d, want old state %d", seen, off)
	}
}

func TestObserverFiresOncePerTransition(t *testing.T) {
	m := New(off, lightTable())
	count := 0
	m.Subscribe(func(_, _ light) { count++ })

	m.Transition(flip)
	m.Transition(flip)
	m.Transition(repair)
	m.Transition(smash)

	if count != 3 {
		t.Errorf("observer fired %d times, want 3", count)
	}
}

func TestUnsubscribe(t *testing.T) {
	m := New(off, lightTable())
	a, b := 0, 0
	idA := m.Subscribe(func(_, _ light) { a++ })
	m.Subscribe(func(_, _ light) { b++ })

	m.Transition(flip)
	m.Unsubscribe(idA)
	m.Unsubscribe(ListenerID(999))
	m.Transition(flip)

	if a != 1 {
		t.Errorf("removed observer fired %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining observer fired %d times, want 2", b)
	}
}

func TestReentrantTransitionRejected(t *testing.T) {
	m := New(off, lightTable())
	var inner bool
	m.Subscribe(func(_, _ light) {
		inner = m.Transition(smash)
	})

	if !m.Transition(flip) {
		t.Fatal("outer transition should succeed")
	}
	if inner {
		t.Error("reentrant transition should be rejected")
	}
	if m.State() != on {
		t.Errorf("state = %d, want %d", m.State(), on)
	}

	// Guard is released once the outer transition completes.
	if !m.Transition(smash) {
		t.Error("transition after observer returned should succeed")
	}
}

func TestCanAndIsTerminal(t *testing.T) {
	m := New(off, lightTable())

	if !m.Can(flip) {
		t.Error("Can(flip) should be true from off")
	}
	if m.Can(repair) {
		t.Error("Can(repair) should be false from off")
	}
	if m.IsTerminal() {
		t.Error("off should not be terminal")
	}

	m.Transition(smash)
	if !m.IsTerminal() {
		t.Error("broken should be terminal")
	}
	if !m.Is(broken) {
		t.Error("Is(broken) should be true")
	}
}
