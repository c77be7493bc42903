package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Nominal simulation ticks per second (default 60)
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

// GameState represents the current state of the game as seen by the
// platform layer.
type GameState struct {
	Score     int  // Current score (floor of the accumulator)
	HighScore int  // Best known score, read live from the host
	NewRecord bool // Whether the last finished run beat the high score
	Running   bool // Whether a run is in progress
	GameOver  bool // Whether the last run has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by the game after each simulation tick.
type StepResult struct {
	State GameState
}
