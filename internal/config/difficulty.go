package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// The simulation already ramps speed over time; presets shift where that
// ramp starts and how fast it climbs. "fixed" pins the speed at its initial
// value for the whole run.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Increment *= 0.6
		cfg.Obstacles.MinGap += 60
	case DifficultyNormal:
		// Defaults are the normal tuning.
	case DifficultyHard:
		cfg.Speed.Initial = cfg.Speed.Initial + (cfg.Speed.Max-cfg.Speed.Initial)*0.4
		cfg.Speed.Increment *= 1.5
		cfg.Obstacles.MinGap -= 40
	case DifficultyFixed:
		cfg.Speed.Increment = 0
		cfg.Speed.Max = cfg.Speed.Initial
	}
}
