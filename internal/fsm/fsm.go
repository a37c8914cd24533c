// Package fsm provides a small finite-state machine used by every game to
// govern its lifecycle. States and actions are caller-defined enum types, so a
// game can only name the labels it declares.
package fsm

// Table maps (current state, action) to the next state.
// A pair missing from the table means "no transition".
type Table[S comparable, A comparable] map[S]map[A]S

// Observer is called on every successful transition with the old and new
// state. It runs before the machine's state changes.
type Observer[S comparable] func(from, to S)

// ListenerID identifies a registered observer so it can be removed later.
type ListenerID int

type listener[S comparable] struct {
	id ListenerID
	fn Observer[S]
}

// Machine is a named-state transition table with ordered observers.
// It is not safe for concurrent use; games drive it from a single loop.
type Machine[S comparable, A comparable] struct {
	state     S
	table     Table[S, A]
	listeners []listener[S]
	nextID    ListenerID
	inFlight  bool
}

// New creates a machine in the initial state using the given table.
// The table is retained, not copied; callers should not mutate it afterwards.
func New[S comparable, A comparable](initial S, table Table[S, A]) *Machine[S, A] {
	return &Machine[S, A]{
		state: initial,
		table: table,
	}
}

// State returns the current state.
func (m *Machine[S, A]) State() S {
	return m.state
}

// Is reports whether the machine is currently in state s.
func (m *Machine[S, A]) Is(s S) bool {
	return m.state == s
}

// Can reports whether action a is declared for the current state.
func (m *Machine[S, A]) Can(a A) bool {
	_, ok := m.table[m.state][a]
	return ok
}

// IsTerminal reports whether the current state has no outgoing transitions.
func (m *Machine[S, A]) IsTerminal() bool {
	return len(m.table[m.state]) == 0
}

// Transition applies action a. If the pair is declared, observers are invoked
// in subscription order with (old, new), then the state is updated and true is
// returned. Otherwise nothing happens and false is returned.
//
// Calling Transition from inside an observer of the same machine is rejected
// (returns false) so a transition always completes before the next begins.
func (m *Machine[S, A]) Transition(a A) bool {
	if m.inFlight {
		return false
	}

	next, ok := m.table[m.state][a]
	if !ok {
		return false
	}

	m.inFlight = true
	defer func() { m.inFlight = false }()

	prev := m.state
	for _, l := range m.listeners {
		l.fn(prev, next)
	}
	m.state = next
	return true
}

// Subscribe registers an observer invoked on every successful transition.
func (m *Machine[S, A]) Subscribe(fn Observer[S]) ListenerID {
	m.nextID++
	m.listeners = append(m.listeners, listener[S]{id: m.nextID, fn: fn})
	return m.nextID
}

// Unsubscribe removes a previously registered observer.
// Unknown IDs are ignored.
func (m *Machine[S, A]) Unsubscribe(id ListenerID) {
	for i, l := range m.listeners {
		if l.id == id {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}
