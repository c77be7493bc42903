package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// These values assume the 800x400 logical field with the ground at y=350
// and a 60 ticks/second nominal frame rate.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:      0.6,
			JumpImpulse:  -12.5,
			MaxFallSpeed: 14.0,
		},
		Speed: RunnerSpeed{
			Initial:   6.0,
			Max:       13.0,
			Increment: 0.0012,
			ScoreRate: 0.1,
		},
		Obstacles: RunnerObstacles{
			MinGap:        280,
			GapRange:      260,
			Landmark:      0.04,
			Ptero:         0.22,
			Rock:          0.38,
			LargeCactus:   0.62,
			PteroScore:    150,
			LandmarkScore: 500,
			ScaleMin:      0.9,
			ScaleMax:      1.2,
		},
		Clouds: RunnerClouds{
			SpawnChance: 0.008,
			MinSpeed:    0.2,
			MaxSpeed:    0.5,
		},
		Player: RunnerPlayer{
			X:      50,
			Width:  36,
			Height: 86,
		},
		Particles: RunnerParticles{
			Max:      60,
			RunEvery: 10,
		},
		Cycle: RunnerCycle{
			PeriodFrames: 1800,
			StarCount:    24,
		},
	}
}
