// Package registry holds the game factories. Games register themselves in
// init(), so the platform can list and create them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kode/tui-arcade/internal/core"
)

// Game is the contract between a game and the platform.
// Games are pure logic; the platform owns input mapping, timing and drawing.
type Game interface {
	// ID returns a unique identifier, used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset (re)initializes the game for the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one frame. The frame belongs to the caller;
	// a game that needs it after Step returns must Clone it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. It must not mutate game state.
	Render(dst *core.Screen)

	// State returns the current platform-facing state.
	State() core.GameState
}

// TransitionFunc receives lifecycle transitions as display labels.
type TransitionFunc func(from, to string)

// Observable is implemented by games whose lifecycle is a state machine.
// Hooks survive Reset.
type Observable interface {
	OnTransition(fn TransitionFunc)
}

// Resizable is implemented by games that can adapt to a new screen size
// without losing progress. Other games are Reset on resize.
type Resizable interface {
	Resize(w, h int)
}

// Controller is implemented by games that describe their own key bindings.
type Controller interface {
	Controls() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
