package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window front-end)
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate is the frame rate the game was tuned for.
const DefaultTickRate = 30

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Started  bool // False while the start screen is waiting for a key
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventNone          EventKind = iota
	EventStarted                 // Start screen dismissed
	EventScored                  // A block left the bottom edge
	EventShieldOn                // A power-up was collected
	EventShieldBlocked           // A shielded player absorbed a block
	EventShieldOff               // The shield expired
	EventSpeedUp                 // Difficulty raised the fall speed
	EventCrash                   // Unshielded collision, game over
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventStarted:
		return "started"
	case EventScored:
		return "scored"
	case EventShieldOn:
		return "shield_on"
	case EventShieldBlocked:
		return "shield_blocked"
	case EventShieldOff:
		return "shield_off"
	case EventSpeedUp:
		return "speed_up"
	case EventCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step. Front-ends use events for sound and logs.
type Event struct {
	Kind  EventKind
	Score int // Score at the time of the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind happened this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
