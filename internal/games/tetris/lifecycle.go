package tetris

import "github.com/kode/tui-arcade/internal/fsm"

// State is a Tetris lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StatePaused
	StateFinished
	StateAborted
)

// String returns the display label of the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "Not Started"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	case StateAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Action is a lifecycle action label.
type Action int

const (
	ActionDefault Action = iota
	ActionPlay
	ActionPause
	ActionQuit
	ActionFinish
)

// Lifecycle is the Tetris state machine type.
type Lifecycle = fsm.Machine[State, Action]

func lifecycleTable() fsm.Table[State, Action] {
	return fsm.Table[State, Action]{
		StateNotStarted: {
			ActionDefault: StatePlaying,
			ActionPlay:    StatePlaying,
		},
		StatePlaying: {
			ActionDefault: StatePaused,
			ActionPause:   StatePaused,
			ActionQuit:    StateAborted,
			ActionFinish:  StateFinished,
		},
		StatePaused: {
			ActionDefault: StatePlaying,
			ActionPlay:    StatePlaying,
			ActionQuit:    StateAborted,
		},
		StateFinished: {
			ActionDefault: StateNotStarted,
		},
	}
}
