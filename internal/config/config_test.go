package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRunnerConfig(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if cfg.Physics.Gravity <= 0 {
		t.Error("gravity must pull down")
	}
	if cfg.Physics.JumpImpulse >= 0 {
		t.Error("jump impulse must be upward (negative)")
	}
	if cfg.Speed.Initial <= 0 || cfg.Speed.Max < cfg.Speed.Initial {
		t.Errorf("speed range invalid: initial %f, max %f", cfg.Speed.Initial, cfg.Speed.Max)
	}
	if cfg.Obstacles.MinGap <= 0 || cfg.Obstacles.GapRange < 0 {
		t.Errorf("gap policy invalid: min %f, range %f", cfg.Obstacles.MinGap, cfg.Obstacles.GapRange)
	}
	if cfg.Particles.Max <= 0 {
		t.Error("particle pool must have capacity")
	}

	// Variant bands must be ordered cutoffs on a single uniform draw.
	ob := cfg.Obstacles
	if !(ob.Landmark < ob.Ptero && ob.Ptero < ob.Rock && ob.Rock < ob.LargeCactus && ob.LargeCactus < 1) {
		t.Errorf("variant bands out of order: %f %f %f %f",
			ob.Landmark, ob.Ptero, ob.Rock, ob.LargeCactus)
	}
	if ob.ScaleMin > ob.ScaleMax {
		t.Errorf("scale range inverted: [%f, %f]", ob.ScaleMin, ob.ScaleMax)
	}
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree, otherwise
	// behavior depends on which loading path wins.
	loaded, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner failed: %v", err)
	}

	// Only assert on fields a user config would not plausibly override in
	// the test environment; the search path may pick up a real user file.
	if loaded.Physics.Gravity == 0 || loaded.Speed.Initial == 0 {
		t.Errorf("loaded config missing core values: %+v", loaded)
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	content := []byte(`
physics:
  gravity: 0.9
  jump_impulse: -15.0
  max_fall_speed: 20.0
speed:
  initial: 8.0
  max: 16.0
  increment: 0.002
  score_rate: 0.2
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner(%s) failed: %v", path, err)
	}
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("gravity = %f, want 0.9", cfg.Physics.Gravity)
	}
	if cfg.Speed.Max != 16.0 {
		t.Errorf("max speed = %f, want 16.0", cfg.Speed.Max)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner("/nonexistent/path/runner.yaml")
	if err == nil {
		t.Error("loading a missing explicit config should fail loudly")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	easy := DefaultRunnerConfig()
	ApplyRunnerPreset(&easy, DifficultyEasy)
	if easy.Speed.Increment >= base.Speed.Increment {
		t.Error("easy should ramp slower than normal")
	}
	if easy.Obstacles.MinGap <= base.Obstacles.MinGap {
		t.Error("easy should widen the minimum gap")
	}

	normal := DefaultRunnerConfig()
	ApplyRunnerPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should leave the defaults untouched")
	}

	hard := DefaultRunnerConfig()
	ApplyRunnerPreset(&hard, DifficultyHard)
	if hard.Speed.Initial <= base.Speed.Initial {
		t.Error("hard should start faster")
	}
	if hard.Speed.Increment <= base.Speed.Increment {
		t.Error("hard should ramp faster")
	}
	if hard.Obstacles.MinGap >= base.Obstacles.MinGap {
		t.Error("hard should tighten the minimum gap")
	}

	fixed := DefaultRunnerConfig()
	ApplyRunnerPreset(&fixed, DifficultyFixed)
	if fixed.Speed.Increment != 0 {
		t.Error("fixed should disable the speed ramp")
	}
	if fixed.Speed.Max != fixed.Speed.Initial {
		t.Error("fixed should pin the cap to the initial speed")
	}
}
