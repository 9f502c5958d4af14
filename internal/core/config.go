package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the viewport and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width (terminal cells or window pixels)
	ScreenH  int   // Viewport height (terminal cells or window pixels)
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
	Started  bool // Whether the round has left the idle state
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// RoundEnded is true only on the tick the round transitioned to game over.
	RoundEnded bool
	// EndReason says what ended the round; set together with RoundEnded.
	EndReason string
	// Frames counts the ticks since the round started.
	Frames int
	// Restarted is true on the tick a finished round was reset to idle.
	Restarted bool
}
