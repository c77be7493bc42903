package game

import (
	"math"
	"math/rand"

	"github.com/desk-pro/dino-qube/internal/config"
	"github.com/desk-pro/dino-qube/internal/core"
)

// Hooks is the external context the simulation consumes: the host's current
// high score and its game-over notification. Both are read at the moment of
// use, never cached across ticks, so a host-side update between ticks is
// always observed.
type Hooks struct {
	// HighScore returns the freshest known best score. May be nil.
	HighScore func() int

	// GameOver is invoked exactly once per PLAYING -> GAME_OVER transition
	// with the final (floored) score. May be nil.
	GameOver func(final int)
}

// Game implements the runner. The platform layer drives it through
// Reset/Step/Render and maps input to actions.
type Game struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	world   World
	hooks   Hooks

	paused    bool
	nextGap   float64 // Spacing required before the next obstacle spawn
	lastFinal int     // Final score of the last finished run
	newRecord bool    // Whether the last run beat the high score at the time
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new runner instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Qube"
}

// SetHooks installs the external context. The driver rebinds hooks whenever
// the hosting surface changes.
func (g *Game) SetHooks(h Hooks) {
	g.hooks = h
}

// Reset initializes the game: loads config, seeds the RNG, builds the star
// field and particle pool, and enters the START state awaiting input.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.paused = false
	g.lastFinal = 0
	g.newRecord = false

	g.world = World{
		Status:    StatusStart,
		GameSpeed: cfg.Speed.Initial,
		Obstacles: make([]Obstacle, 0, 8),
		Clouds:    make([]Cloud, 0, 8),
		Stars:     newStarField(g.rng, cfg.Cycle.StarCount),
		Particles: make([]Particle, cfg.Particles.Max),
	}
	g.resetPlayer()
	g.nextGap = g.drawGap()
}

// startRun performs the full reset into PLAYING: score, speed and all entity
// collections are cleared. The star field persists.
func (g *Game) startRun() {
	w := &g.world
	w.Status = StatusPlaying
	w.FrameCount = 0
	w.Score = 0
	w.GameSpeed = g.cfg.Speed.Initial
	w.Obstacles = w.Obstacles[:0]
	w.Clouds = w.Clouds[:0]
	g.clearParticles()
	g.resetPlayer()
	g.nextGap = g.drawGap()
	g.newRecord = false
}

// Step advances the simulation by one tick. dt is a dimensionless multiplier
// where 1.0 is one nominal frame at the target tick rate; the driver clamps
// it to MaxDelta before calling.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) && g.world.Status == StatusPlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.world.Status {
	case StatusStart, StatusGameOver:
		// The jump command doubles as start/restart; the simulation stays
		// frozen until then.
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			g.startRun()
		}

	case StatusPlaying:
		g.world.FrameCount += dt
		if in.Has(core.ActionJump) {
			g.jump()
		}
		g.spawnObstacles()
		g.spawnClouds(dt)
		g.integrate(dt)
		g.checkCollision()
	}

	return core.StepResult{State: g.State()}
}

// integrate advances all per-tick state: player kinematics, difficulty and
// score progression, world scroll and particle decay.
func (g *Game) integrate(dt float64) {
	w := &g.world

	g.integratePlayer(dt)

	w.GameSpeed = math.Min(g.cfg.Speed.Max, w.GameSpeed+g.cfg.Speed.Increment*dt)
	w.Score += g.cfg.Speed.ScoreRate * (w.GameSpeed / g.cfg.Speed.Initial) * dt

	g.scrollObstacles(dt)
	g.scrollClouds(dt)
	g.integrateParticles(dt)
}

// checkCollision tests the player's inset box against every active obstacle
// and handles the first overlap: the run ends, the final score is compared
// against the live high score and emitted to the host, and an impact burst
// spawns. No further state changes happen after the first hit.
func (g *Game) checkCollision() {
	pbox := g.world.Player.Hitbox()
	for i := range g.world.Obstacles {
		o := &g.world.Obstacles[i]
		if !pbox.Intersects(o.Hitbox()) {
			continue
		}

		g.world.Status = StatusGameOver
		final := int(math.Floor(g.world.Score))
		g.lastFinal = final

		best := 0
		if g.hooks.HighScore != nil {
			best = g.hooks.HighScore()
		}
		g.newRecord = final > best

		if g.hooks.GameOver != nil {
			g.hooks.GameOver(final)
		}

		cx, cy := g.world.Player.Hitbox().Center()
		g.emitImpact(cx, cy)
		return
	}
}

// Phase returns the current day/night cycle phase in [0, 1).
func (g *Game) Phase() float64 {
	return g.world.CyclePhase(g.cfg.Cycle.PeriodFrames)
}

// State returns the current game state for the platform layer. The high
// score is read through the hook so the HUD always shows the freshest value.
func (g *Game) State() core.GameState {
	best := 0
	if g.hooks.HighScore != nil {
		best = g.hooks.HighScore()
	}
	return core.GameState{
		Score:     int(math.Floor(g.world.Score)),
		HighScore: best,
		NewRecord: g.newRecord,
		Running:   g.world.Status == StatusPlaying,
		GameOver:  g.world.Status == StatusGameOver,
		Paused:    g.paused,
	}
}
