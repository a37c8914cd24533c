package t2048

import "github.com/kode/tui-arcade/internal/fsm"

// State is a 2048 lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StateFinished
)

// String returns the display label of the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "Not Started"
	case StatePlaying:
		return "Playing"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Action is a lifecycle action label.
type Action int

// ActionDefault advances the lifecycle: start, give up, or reset.
const ActionDefault Action = iota

// Lifecycle is the 2048 state machine type.
type Lifecycle = fsm.Machine[State, Action]

func lifecycleTable() fsm.Table[State, Action] {
	return fsm.Table[State, Action]{
		StateNotStarted: {ActionDefault: StatePlaying},
		StatePlaying:    {ActionDefault: StateFinished},
		StateFinished:   {ActionDefault: StateNotStarted},
	}
}
