// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains all tunable parameters for the runner simulation.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	Speed     RunnerSpeed     `yaml:"speed"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Clouds    RunnerClouds    `yaml:"clouds"`
	Player    RunnerPlayer    `yaml:"player"`
	Particles RunnerParticles `yaml:"particles"`
	Cycle     RunnerCycle     `yaml:"cycle"`
}

// RunnerPhysics defines vertical kinematics parameters.
// Units are logical pixels per nominal frame.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// RunnerSpeed defines the world scroll speed ramp and score accrual.
type RunnerSpeed struct {
	Initial   float64 `yaml:"initial"`    // World scroll speed at run start
	Max       float64 `yaml:"max"`        // Speed cap
	Increment float64 `yaml:"increment"`  // Speed gained per nominal frame
	ScoreRate float64 `yaml:"score_rate"` // Base score gained per nominal frame at initial speed
}

// RunnerObstacles defines the spawn gap policy and variant selection bands.
// Variant bands are cutoffs on a single uniform draw in [0, 1): a draw below
// Landmark (when unlocked) picks the landmark, below Ptero (when unlocked)
// a pterosaur, below Rock the low rock, below LargeCactus the large cactus,
// anything else the small cactus.
type RunnerObstacles struct {
	MinGap        float64 `yaml:"min_gap"`        // Lower bound on spacing between spawns
	GapRange      float64 `yaml:"gap_range"`      // Random extra spacing above the minimum
	Landmark      float64 `yaml:"landmark"`       // Band cutoff for the rare landmark
	Ptero         float64 `yaml:"ptero"`          // Band cutoff for airborne obstacles
	Rock          float64 `yaml:"rock"`           // Band cutoff for the low rock hazard
	LargeCactus   float64 `yaml:"large_cactus"`   // Band cutoff for the large cactus
	PteroScore    int     `yaml:"ptero_score"`    // Score gate unlocking airborne obstacles
	LandmarkScore int     `yaml:"landmark_score"` // Score gate unlocking the landmark
	ScaleMin      float64 `yaml:"scale_min"`      // Isotropic size jitter lower bound
	ScaleMax      float64 `yaml:"scale_max"`      // Isotropic size jitter upper bound
}

// RunnerClouds defines cosmetic cloud spawning.
type RunnerClouds struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Per-nominal-frame spawn probability
	MinSpeed    float64 `yaml:"min_speed"`    // Parallax factor lower bound
	MaxSpeed    float64 `yaml:"max_speed"`    // Parallax factor upper bound
}

// RunnerPlayer defines player geometry in logical pixels.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerParticles defines the dust/impact particle pool.
type RunnerParticles struct {
	Max      int `yaml:"max"`       // Fixed pool capacity
	RunEvery int `yaml:"run_every"` // Animation frames between running dust puffs
}

// RunnerCycle defines the day/night cycle.
type RunnerCycle struct {
	PeriodFrames float64 `yaml:"period_frames"` // Nominal frames per full day/night cycle
	StarCount    int     `yaml:"star_count"`    // Fixed star field size
}
