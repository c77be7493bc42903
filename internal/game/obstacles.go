package game

import (
	"github.com/desk-pro/dino-qube/internal/core"
)

// Variant is the closed set of obstacle shapes. Spawner, collision and
// renderer all switch over it exhaustively.
type Variant int

const (
	VariantCactusSmall Variant = iota // Common ground obstacle
	VariantCactusLarge                // Taller, less common
	VariantRock                       // Low ground hazard
	VariantPteroLow                   // Airborne at jump height
	VariantPteroHigh                  // Airborne, clears a grounded player
	VariantLandmark                   // Rare large formation, late-game only
)

// String returns a short name for the variant.
func (v Variant) String() string {
	switch v {
	case VariantCactusSmall:
		return "cactus_small"
	case VariantCactusLarge:
		return "cactus_large"
	case VariantRock:
		return "rock"
	case VariantPteroLow:
		return "ptero_low"
	case VariantPteroHigh:
		return "ptero_high"
	case VariantLandmark:
		return "landmark"
	default:
		return "unknown"
	}
}

// Obstacle is a scrolling hazard. Geometry parameterizes both the hitbox and
// the drawn shape, so the spawner's random scale renders correctly.
type Obstacle struct {
	X, Y    float64
	W, H    float64
	Variant Variant
}

// Hitbox returns the collision box with variant-specific insets. Airborne
// and landmark variants get more generous padding than ground cacti.
func (o *Obstacle) Hitbox() core.Rect {
	r := core.NewRect(o.X, o.Y, o.W, o.H)
	switch o.Variant {
	case VariantCactusSmall, VariantCactusLarge:
		return r.Inset(5, 4, 5, 0)
	case VariantRock:
		return r.Inset(6, 5, 6, 0)
	case VariantPteroLow, VariantPteroHigh:
		return r.Inset(10, 8, 10, 8)
	case VariantLandmark:
		return r.Inset(14, 12, 14, 0)
	default:
		return r
	}
}

// spawnObstacles decides once per tick whether a new obstacle enters from
// the right edge. Spacing is irregular but never tighter than the minimum
// gap: a spawn happens only when the most recent obstacle has scrolled far
// enough in from the edge.
func (g *Game) spawnObstacles() {
	obs := g.world.Obstacles
	if len(obs) > 0 && FieldW-obs[len(obs)-1].X <= g.nextGap {
		return
	}

	g.world.Obstacles = append(obs, g.makeObstacle())
	g.nextGap = g.drawGap()
}

// drawGap picks the spacing required before the next spawn.
func (g *Game) drawGap() float64 {
	return g.cfg.Obstacles.MinGap + g.rng.Float64()*g.cfg.Obstacles.GapRange
}

// makeObstacle selects a variant via ordered threshold bands on a single
// uniform draw and builds its geometry. Rarer variants sit in the lower
// bands and are gated on score, so early runs see only ground cacti.
func (g *Game) makeObstacle() Obstacle {
	r := g.rng.Float64()
	score := int(g.world.Score)
	x := FieldW + g.rng.Float64()*60
	ob := g.cfg.Obstacles

	switch {
	case r < ob.Landmark && score > ob.LandmarkScore:
		return Obstacle{X: x, Y: GroundY - 130, W: 90, H: 130, Variant: VariantLandmark}

	case r < ob.Ptero && score > ob.PteroScore:
		// Exactly two flight heights: one demands a jump, one clears a
		// grounded player.
		if g.rng.Intn(2) == 0 {
			return Obstacle{X: x, Y: GroundY - 44, W: 46, H: 30, Variant: VariantPteroLow}
		}
		return Obstacle{X: x, Y: 230, W: 46, H: 30, Variant: VariantPteroHigh}

	case r < ob.Rock:
		return Obstacle{X: x, Y: GroundY - 26, W: 44, H: 26, Variant: VariantRock}

	case r < ob.LargeCactus:
		w, h := g.scaled(34, 84)
		return Obstacle{X: x, Y: GroundY - h, W: w, H: h, Variant: VariantCactusLarge}

	default:
		w, h := g.scaled(24, 50)
		return Obstacle{X: x, Y: GroundY - h, W: w, H: h, Variant: VariantCactusSmall}
	}
}

// scaled applies an isotropic random scale factor so the hitbox stays
// proportional to the drawn shape.
func (g *Game) scaled(w, h float64) (float64, float64) {
	s := g.cfg.Obstacles.ScaleMin + g.rng.Float64()*(g.cfg.Obstacles.ScaleMax-g.cfg.Obstacles.ScaleMin)
	return w * s, h * s
}

// scrollObstacles moves obstacles with the world and compacts away the ones
// fully past the left margin.
func (g *Game) scrollObstacles(dt float64) {
	speed := g.world.GameSpeed * dt
	kept := g.world.Obstacles[:0]
	for _, o := range g.world.Obstacles {
		o.X -= speed
		if o.X+o.W > -OffscreenMargin {
			kept = append(kept, o)
		}
	}
	g.world.Obstacles = kept
}
