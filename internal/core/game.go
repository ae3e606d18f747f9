package core

// Game is the interface the platform drives.
// Games contain pure logic with no terminal dependency; the platform handles
// input mapping, timing and display.
type Game interface {
	// ID returns a stable identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts the game over with the given runtime settings.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick after applying the
	// input collected since the previous tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
