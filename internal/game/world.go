// Package game implements the endless runner simulation: a player-controlled
// dino jumps over procedurally spawned obstacles while score accrues with
// distance, difficulty ramps over time and the sky moves through a day/night
// cycle. The package contains pure logic with no platform dependencies; the
// Bubble Tea layer drives it through Reset/Step/Render.
package game

import "math"

// The simulation runs in a fixed logical pixel space. The renderer projects
// this space onto the terminal cell grid, so physics is independent of the
// terminal size.
const (
	FieldW  = 800.0
	FieldH  = 400.0
	GroundY = 350.0

	// Entities fully left of the field by more than this margin are removed.
	OffscreenMargin = 100.0

	// MaxDelta caps the normalized frame delta so a long host pause cannot
	// produce one catastrophic physics step.
	MaxDelta = 4.0
)

// Status is the state machine tag for the run.
type Status int

const (
	StatusStart    Status = iota // Idle, awaiting input
	StatusPlaying                // Simulation active
	StatusGameOver               // Frozen, awaiting restart
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// World is the live simulation snapshot shared by the spawner, integrator,
// collision detector and renderer. It is owned by the Game and mutated only
// inside a tick.
type World struct {
	Status     Status
	FrameCount float64 // Advances by dt each tick while playing
	Score      float64 // Accumulator; displayed score is its floor
	GameSpeed  float64 // World scroll speed, ramps up to the cap

	Player    Player
	Obstacles []Obstacle
	Clouds    []Cloud
	Stars     []Star     // Fixed set, created once, survives restarts
	Particles []Particle // Fixed-capacity pool
}

// CyclePhase maps the frame counter to a repeating [0, 1) day/night phase.
func (w *World) CyclePhase(period float64) float64 {
	if period <= 0 {
		return 0
	}
	return math.Mod(w.FrameCount, period) / period
}

// ActiveParticles returns the number of live particle slots.
func (w *World) ActiveParticles() int {
	n := 0
	for i := range w.Particles {
		if w.Particles[i].Active {
			n++
		}
	}
	return n
}
