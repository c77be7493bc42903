package game

import (
	"github.com/desk-pro/dino-qube/internal/core"
)

// Particle is one slot in a fixed-capacity pool. Spawning scans for an
// inactive slot and activates it in place; a tick that drops Life to zero
// deactivates it. The pool bounds worst-case memory and avoids allocation
// churn every frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1.0 -> 0; also the render alpha
	Decay  float64 // Life lost per nominal frame
	Size   float64
	Color  core.Color
	Active bool
}

var (
	dustColor   = core.NewColor(0xb8, 0xa8, 0x8a)
	impactColor = core.NewColor(0xf5, 0xf5, 0xf0)
)

// spawnParticle activates the first free slot. When the pool is full the
// spawn is dropped; the cap is a hard invariant.
func (g *Game) spawnParticle(p Particle) {
	for i := range g.world.Particles {
		if !g.world.Particles[i].Active {
			p.Active = true
			p.Life = 1.0
			g.world.Particles[i] = p
			return
		}
	}
}

// emitRunDust puffs a little dust behind the feet while running.
func (g *Game) emitRunDust() {
	p := &g.world.Player
	for i := 0; i < 2; i++ {
		g.spawnParticle(Particle{
			X:     p.X + g.rng.Float64()*6,
			Y:     GroundY - 2 - g.rng.Float64()*4,
			VX:    -0.4 - g.rng.Float64()*0.6,
			VY:    -0.3 - g.rng.Float64()*0.4,
			Decay: 0.05 + g.rng.Float64()*0.03,
			Size:  1.5,
			Color: dustColor,
		})
	}
}

// emitJumpDust kicks dust off the ground at takeoff.
func (g *Game) emitJumpDust() {
	p := &g.world.Player
	for i := 0; i < 5; i++ {
		g.spawnParticle(Particle{
			X:     p.X + g.rng.Float64()*p.W,
			Y:     GroundY - 2,
			VX:    -1 + g.rng.Float64()*2,
			VY:    -0.6 - g.rng.Float64()*0.8,
			Decay: 0.04 + g.rng.Float64()*0.03,
			Size:  2,
			Color: dustColor,
		})
	}
}

// emitLandDust spreads dust sideways on the first ground contact after a
// jump.
func (g *Game) emitLandDust() {
	p := &g.world.Player
	for i := 0; i < 6; i++ {
		dir := 1.0
		if i%2 == 0 {
			dir = -1.0
		}
		g.spawnParticle(Particle{
			X:     p.X + p.W/2,
			Y:     GroundY - 2,
			VX:    dir * (0.8 + g.rng.Float64()*1.4),
			VY:    -0.4 - g.rng.Float64()*0.5,
			Decay: 0.04 + g.rng.Float64()*0.02,
			Size:  2,
			Color: dustColor,
		})
	}
}

// emitImpact bursts particles from the player's center on collision.
func (g *Game) emitImpact(cx, cy float64) {
	for i := 0; i < 14; i++ {
		g.spawnParticle(Particle{
			X:     cx,
			Y:     cy,
			VX:    -3 + g.rng.Float64()*6,
			VY:    -3.5 + g.rng.Float64()*5,
			Decay: 0.02 + g.rng.Float64()*0.02,
			Size:  2.5,
			Color: impactColor,
		})
	}
}

// integrateParticles advances particle kinematics: own velocity plus the
// world scroll, light gravity and life decay.
func (g *Game) integrateParticles(dt float64) {
	for i := range g.world.Particles {
		p := &g.world.Particles[i]
		if !p.Active {
			continue
		}
		p.X += (p.VX - g.world.GameSpeed) * dt
		p.Y += p.VY * dt
		p.VY += 0.15 * dt
		p.Life -= p.Decay * dt
		if p.Life <= 0 || p.X < -OffscreenMargin {
			p.Active = false
		}
	}
}

// clearParticles deactivates all slots without reallocating the pool.
func (g *Game) clearParticles() {
	for i := range g.world.Particles {
		g.world.Particles[i].Active = false
	}
}
