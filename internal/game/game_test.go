package game

import (
	"testing"

	"github.com/desk-pro/dino-qube/internal/core"
)

func newTestGame(seed int64) *Game {
	SetConfigPath("")
	SetDifficultyPreset("")
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and input sequence must produce an identical simulation.
	run := func() Snapshot {
		g := newTestGame(12345)
		g.Step(jumpFrame(), 1.0) // start the run

		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%25 == 0 {
				in.Set(core.ActionJump)
			}
			dt := 1.0
			if i%7 == 0 {
				dt = 1.5
			}
			g.Step(in, dt)
			if g.world.Status == StatusGameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()
	if s1 != s2 {
		t.Errorf("determinism failed:\n run1 = %+v\n run2 = %+v", s1, s2)
	}
}

func TestResetEntersStartState(t *testing.T) {
	g := newTestGame(42)

	if g.world.Status != StatusStart {
		t.Errorf("status after Reset = %v, want %v", g.world.Status, StatusStart)
	}
	if g.world.Score != 0 {
		t.Errorf("score after Reset = %f, want 0", g.world.Score)
	}
	if g.world.GameSpeed != g.cfg.Speed.Initial {
		t.Errorf("speed after Reset = %f, want %f", g.world.GameSpeed, g.cfg.Speed.Initial)
	}
	if len(g.world.Stars) != g.cfg.Cycle.StarCount {
		t.Errorf("star count = %d, want %d", len(g.world.Stars), g.cfg.Cycle.StarCount)
	}
	if len(g.world.Particles) != g.cfg.Particles.Max {
		t.Errorf("particle pool size = %d, want %d", len(g.world.Particles), g.cfg.Particles.Max)
	}
	if !g.world.Player.grounded() {
		t.Error("player should start grounded")
	}
}

func TestStartWaitsForInput(t *testing.T) {
	g := newTestGame(1)

	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame(), 1.0)
	}
	if g.world.Status != StatusStart {
		t.Errorf("status = %v, simulation must stay frozen until first input", g.world.Status)
	}
	if g.world.FrameCount != 0 {
		t.Errorf("frame count advanced while idle: %f", g.world.FrameCount)
	}

	g.Step(jumpFrame(), 1.0)
	if g.world.Status != StatusPlaying {
		t.Errorf("status after jump = %v, want %v", g.world.Status, StatusPlaying)
	}
}

func TestJumpPhysics(t *testing.T) {
	g := newTestGame(1)
	g.Step(jumpFrame(), 1.0) // start the run
	groundTop := g.world.Player.Y

	g.Step(jumpFrame(), 1.0)
	p := &g.world.Player
	if !p.Jumping {
		t.Error("jump should set Jumping")
	}
	if p.Y >= groundTop {
		t.Errorf("jump should move the player up: %f >= %f", p.Y, groundTop)
	}

	// A jump command while airborne is a no-op
	vyBefore := p.VY
	g.jump()
	if p.VY != vyBefore {
		t.Errorf("airborne jump changed VY: %f -> %f", vyBefore, p.VY)
	}

	// The player falls back, snaps to the ground and stays there
	for i := 0; i < 200; i++ {
		g.integratePlayer(1.0)
	}
	if p.Jumping {
		t.Error("player should have landed")
	}
	if p.Y != GroundY-p.H {
		t.Errorf("player Y = %f, want ground snap at %f", p.Y, GroundY-p.H)
	}
	if p.VY != 0 {
		t.Errorf("VY after landing = %f, want 0", p.VY)
	}
}

func TestFallSpeedCapped(t *testing.T) {
	g := newTestGame(1)
	g.startRun()
	g.jump()

	// Hoist the player far above ground so it falls long enough to hit
	// terminal velocity.
	g.world.Player.Y = -2000
	for i := 0; i < 500; i++ {
		g.integratePlayer(1.0)
		if g.world.Player.VY > g.cfg.Physics.MaxFallSpeed {
			t.Fatalf("fall speed %f exceeds cap %f", g.world.Player.VY, g.cfg.Physics.MaxFallSpeed)
		}
		if !g.world.Player.Jumping {
			return
		}
	}
}

func TestPlayerNeverBelowGround(t *testing.T) {
	g := newTestGame(99)
	g.Step(jumpFrame(), 1.0)

	for i := 0; i < 2000; i++ {
		in := core.NewInputFrame()
		switch {
		case i%13 == 0:
			in.Set(core.ActionJump)
		case g.world.Status == StatusGameOver:
			in.Set(core.ActionRestart)
		}
		g.Step(in, 1.0)

		p := &g.world.Player
		if p.Y > GroundY-p.H {
			t.Fatalf("tick %d: player sank below ground, Y=%f limit=%f", i, p.Y, GroundY-p.H)
		}
	}
}

func TestSpeedRampAndScore(t *testing.T) {
	g := newTestGame(7)
	g.startRun()

	prevSpeed := g.world.GameSpeed
	prevScore := g.world.Score
	reachedMax := false

	for i := 0; i < 10000; i++ {
		g.integrate(1.0)
		w := &g.world

		if w.GameSpeed < prevSpeed {
			t.Fatalf("tick %d: speed decreased %f -> %f", i, prevSpeed, w.GameSpeed)
		}
		if w.GameSpeed > g.cfg.Speed.Max {
			t.Fatalf("tick %d: speed %f exceeds cap %f", i, w.GameSpeed, g.cfg.Speed.Max)
		}
		if w.Score <= prevScore {
			t.Fatalf("tick %d: score did not increase: %f -> %f", i, prevScore, w.Score)
		}
		prevSpeed = w.GameSpeed
		prevScore = w.Score
		if w.GameSpeed == g.cfg.Speed.Max {
			reachedMax = true
		}
	}

	if !reachedMax {
		t.Errorf("speed never reached the cap, ended at %f", prevSpeed)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	g := newTestGame(1)
	g.startRun()
	g.world.Score = 42.5

	best := 40
	var reported []int
	g.SetHooks(Hooks{
		HighScore: func() int { return best },
		GameOver:  func(final int) { reported = append(reported, final) },
	})

	// Plant an obstacle on top of the player and tick once.
	g.world.Obstacles = append(g.world.Obstacles, Obstacle{
		X: g.world.Player.X, Y: GroundY - 50, W: 24, H: 50,
		Variant: VariantCactusSmall,
	})
	g.Step(core.NewInputFrame(), 1.0)

	if g.world.Status != StatusGameOver {
		t.Fatalf("status = %v, want %v", g.world.Status, StatusGameOver)
	}
	if len(reported) != 1 {
		t.Fatalf("game over hook called %d times, want 1", len(reported))
	}
	if reported[0] != 42 {
		t.Errorf("final score = %d, want 42", reported[0])
	}
	if !g.newRecord {
		t.Error("42 beats best 40, newRecord should be set")
	}
	if g.world.ActiveParticles() == 0 {
		t.Error("collision should spawn an impact burst")
	}

	// The world stays frozen until restart.
	snap := g.Snapshot()
	g.Step(core.NewInputFrame(), 1.0)
	if got := g.Snapshot(); got != snap {
		t.Errorf("simulation advanced after game over:\n before = %+v\n after  = %+v", snap, got)
	}

	// Restart clears everything for a fresh run.
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in, 1.0)

	if g.world.Status != StatusPlaying {
		t.Fatalf("status after restart = %v, want %v", g.world.Status, StatusPlaying)
	}
	if g.world.Score != 0 {
		t.Errorf("score after restart = %f, want 0", g.world.Score)
	}
	if g.world.GameSpeed != g.cfg.Speed.Initial {
		t.Errorf("speed after restart = %f, want %f", g.world.GameSpeed, g.cfg.Speed.Initial)
	}
	if len(g.world.Obstacles) != 0 {
		t.Errorf("obstacles after restart = %d, want 0", len(g.world.Obstacles))
	}
	if g.world.ActiveParticles() != 0 {
		t.Errorf("active particles after restart = %d, want 0", g.world.ActiveParticles())
	}
	if g.newRecord {
		t.Error("newRecord should clear on restart")
	}
}

func TestNoRecordWhenBelowBest(t *testing.T) {
	g := newTestGame(1)
	g.startRun()
	g.world.Score = 10

	g.SetHooks(Hooks{HighScore: func() int { return 100 }})
	g.world.Obstacles = append(g.world.Obstacles, Obstacle{
		X: g.world.Player.X, Y: GroundY - 50, W: 24, H: 50,
		Variant: VariantCactusSmall,
	})
	g.checkCollision()

	if g.newRecord {
		t.Error("10 does not beat best 100")
	}
}

func TestHighScoreReadLive(t *testing.T) {
	g := newTestGame(1)

	best := 100
	g.SetHooks(Hooks{HighScore: func() int { return best }})

	if got := g.State().HighScore; got != 100 {
		t.Errorf("HighScore = %d, want 100", got)
	}

	// A host-side update between ticks must show up immediately.
	best = 250
	if got := g.State().HighScore; got != 250 {
		t.Errorf("HighScore = %d, want 250 after host update", got)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	g.Step(jumpFrame(), 1.0)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	result := g.Step(pause, 1.0)
	if !result.State.Paused {
		t.Fatal("pause should set Paused")
	}

	frames := g.world.FrameCount
	for i := 0; i < 10; i++ {
		g.Step(jumpFrame(), 1.0)
	}
	if g.world.FrameCount != frames {
		t.Errorf("frame count advanced while paused: %f -> %f", frames, g.world.FrameCount)
	}

	result = g.Step(pause, 1.0)
	if result.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestStepScalesWithDelta(t *testing.T) {
	g := newTestGame(1)
	g.Step(jumpFrame(), 1.0)

	start := g.world.FrameCount
	g.Step(core.NewInputFrame(), 2.5)
	if got := g.world.FrameCount - start; got != 2.5 {
		t.Errorf("frame count advanced by %f, want 2.5", got)
	}
}

func TestStarFieldSurvivesRestart(t *testing.T) {
	g := newTestGame(5)
	g.Step(jumpFrame(), 1.0)

	stars := make([]Star, len(g.world.Stars))
	copy(stars, g.world.Stars)

	g.startRun()
	if len(g.world.Stars) != len(stars) {
		t.Fatalf("star count changed across restart: %d -> %d", len(stars), len(g.world.Stars))
	}
	for i := range stars {
		if g.world.Stars[i] != stars[i] {
			t.Fatalf("star %d changed across restart", i)
		}
	}
}

func TestCyclePhase(t *testing.T) {
	g := newTestGame(1)
	g.startRun()

	period := g.cfg.Cycle.PeriodFrames
	g.world.FrameCount = period * 1.25
	if got := g.Phase(); got < 0.2499 || got > 0.2501 {
		t.Errorf("Phase() = %f, want 0.25 after wrapping", got)
	}
}
