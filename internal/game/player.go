package game

import (
	"github.com/desk-pro/dino-qube/internal/core"
)

// Player is the runner character. X is fixed after spawn; only the vertical
// axis is simulated.
type Player struct {
	X, Y    float64
	W, H    float64
	VY      float64
	Jumping bool    // True iff the player is strictly above ground level
	Frame   float64 // Continuous animation counter driving the limb swing

	runDustAt float64 // Frame value at which the next running dust puff is due
}

// Hitbox returns the player's collision box, inset from the drawn bounds so
// collisions feel forgiving.
func (p *Player) Hitbox() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H).Inset(8, 8, 8, 0)
}

// grounded reports whether the player is standing on the ground line.
func (p *Player) grounded() bool {
	return p.Y >= GroundY-p.H
}

// resetPlayer places the player at the run start position.
func (g *Game) resetPlayer() {
	p := &g.world.Player
	p.X = g.cfg.Player.X
	p.W = g.cfg.Player.Width
	p.H = g.cfg.Player.Height
	p.Y = GroundY - p.H
	p.VY = 0
	p.Jumping = false
	p.Frame = 0
	p.runDustAt = float64(g.cfg.Particles.RunEvery)
}

// jump applies the upward impulse. Only takes effect while grounded; an
// airborne jump command is a no-op.
func (g *Game) jump() {
	p := &g.world.Player
	if !p.grounded() {
		return
	}
	p.VY = g.cfg.Physics.JumpImpulse
	p.Jumping = true
	g.emitJumpDust()
}

// integratePlayer advances vertical kinematics and the run animation.
func (g *Game) integratePlayer(dt float64) {
	p := &g.world.Player
	p.Frame += dt

	if p.Jumping {
		p.VY += g.cfg.Physics.Gravity * dt
		if p.VY > g.cfg.Physics.MaxFallSpeed {
			p.VY = g.cfg.Physics.MaxFallSpeed
		}
		p.Y += p.VY * dt

		// Ground contact: snap, kill velocity, kick up landing dust.
		if p.Y >= GroundY-p.H {
			p.Y = GroundY - p.H
			p.VY = 0
			p.Jumping = false
			g.emitLandDust()
			p.runDustAt = p.Frame + float64(g.cfg.Particles.RunEvery)
		}
		return
	}

	// Grounded: periodic running dust behind the feet.
	if p.Frame >= p.runDustAt {
		g.emitRunDust()
		p.runDustAt = p.Frame + float64(g.cfg.Particles.RunEvery)
	}
}
