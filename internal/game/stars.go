package game

import "math/rand"

// Star is a fixed background point. The set is created once at
// initialization and survives restarts; only visibility changes with the
// day/night phase.
type Star struct {
	X, Y  float64
	Size  int     // 1 = faint dot, 2 = bright star
	Phase float64 // Twinkle offset so stars don't pulse in lockstep
}

// newStarField builds the fixed star set in the upper sky.
func newStarField(rng *rand.Rand, n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64() * FieldW,
			Y:     20 + rng.Float64()*160,
			Size:  1 + rng.Intn(2),
			Phase: rng.Float64() * 6.28318,
		}
	}
	return stars
}
