// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Game is the interface every registered game variant implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g., "dodge", "dodge_classic").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state and shows the start screen.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Options are handed to a factory when a game is created.
type Options struct {
	// Config is the tuning to use. Nil means config.DefaultDodgeConfig().
	Config *config.DodgeConfig

	// Clock drives wall-clock timers. Nil means core.SystemClock.
	Clock core.Clock
}

// GameConfig returns the configured tuning or the defaults.
func (o Options) GameConfig() config.DodgeConfig {
	if o.Config == nil {
		return config.DefaultDodgeConfig()
	}
	return *o.Config
}

// GameClock returns the configured clock or the system clock.
func (o Options) GameClock() core.Clock {
	if o.Clock == nil {
		return core.SystemClock{}
	}
	return o.Clock
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func(opts Options) Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Get title by creating a temporary instance
	g := f(Options{})
	entries[id] = entry{
		factory: f,
		info: GameInfo{
			ID:          id,
			Title:       g.Title(),
			Description: description,
		},
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(opts), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Info returns metadata for a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}
