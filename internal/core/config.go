package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving Step
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the platform-facing summary of a game after a step.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // The lifecycle reached a terminal or finished state
	Paused   bool   // Simulation is suspended
	Status   string // Lifecycle state label, e.g. "Playing"
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
