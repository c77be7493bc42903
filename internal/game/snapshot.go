package game

// Snapshot captures the simulation state for determinism tests and replay
// verification.
type Snapshot struct {
	Status          string
	FrameCount      float64
	Score           int
	GameSpeed       float64
	PlayerY         float64
	PlayerVY        float64
	Jumping         bool
	Obstacles       int
	Clouds          int
	ActiveParticles int
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Status:          g.world.Status.String(),
		FrameCount:      g.world.FrameCount,
		Score:           g.State().Score,
		GameSpeed:       g.world.GameSpeed,
		PlayerY:         g.world.Player.Y,
		PlayerVY:        g.world.Player.VY,
		Jumping:         g.world.Player.Jumping,
		Obstacles:       len(g.world.Obstacles),
		Clouds:          len(g.world.Clouds),
		ActiveParticles: g.world.ActiveParticles(),
	}
}
