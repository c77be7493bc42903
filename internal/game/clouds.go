package game

// Cloud is purely cosmetic: it never participates in collision. Each cloud
// carries its own parallax factor so the sky drifts at uneven rates.
type Cloud struct {
	X, Y  float64
	Speed float64 // Parallax factor in (0, 1], multiplied into the world speed
	Scale float64
}

// spawnClouds rolls an independent low-probability draw, scaled by dt, for
// one new cloud at the right edge.
func (g *Game) spawnClouds(dt float64) {
	if g.rng.Float64() >= g.cfg.Clouds.SpawnChance*dt {
		return
	}
	c := Cloud{
		X:     FieldW + 30,
		Y:     40 + g.rng.Float64()*140,
		Speed: g.cfg.Clouds.MinSpeed + g.rng.Float64()*(g.cfg.Clouds.MaxSpeed-g.cfg.Clouds.MinSpeed),
		Scale: 0.7 + g.rng.Float64()*0.8,
	}
	g.world.Clouds = append(g.world.Clouds, c)
}

// scrollClouds drifts clouds left at their parallax speed and compacts away
// the ones past the left margin.
func (g *Game) scrollClouds(dt float64) {
	kept := g.world.Clouds[:0]
	for _, c := range g.world.Clouds {
		c.X -= g.world.GameSpeed * c.Speed * dt
		if c.X+80*c.Scale > -OffscreenMargin {
			kept = append(kept, c)
		}
	}
	g.world.Clouds = kept
}
