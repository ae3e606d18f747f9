package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Score banked so far
	Level    int    // Current level, 1-based
	Status   string // Human-readable game status
	GameOver bool   // Whether the player ran out of lives
	Won      bool   // Whether the last level was finished
	Paused   bool   // Whether the game is paused
}

// Finished reports whether the run has ended and its score can be recorded.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Err is set when an intent could not be applied, e.g. a level failed to reload.
	Err error
}
