package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Current level (1-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is a fire-and-forget simulation event. The platform consumes
// events for audio cues; the simulation never waits on them.
type Event int

const (
	EventHop      Event = iota // Actor committed a hop
	EventSplash                // Water death
	EventCrash                 // Road death
	EventVictory               // A home slot was filled
	EventLevelUp               // All home slots filled, level advanced
	EventGameOver              // No lives remaining
	EventPowerUp               // Power-up collected
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventHop:
		return "hop"
	case EventSplash:
		return "splash"
	case EventCrash:
		return "crash"
	case EventVictory:
		return "victory"
	case EventLevelUp:
		return "levelup"
	case EventGameOver:
		return "gameover"
	case EventPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
