// Package config provides YAML-based configuration loading for the runner.
// Every gameplay constant is named here; the shipped defaults are the
// canonical tuning and can be overridden per the loader search order.
package config

// Config contains all tunable constants for the runner, in world units.
type Config struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Obstacles   ObstaclesConfig   `yaml:"obstacles"`
	Progression ProgressionConfig `yaml:"progression"`
	Backdrop    BackdropConfig    `yaml:"backdrop"`
}

// WorldConfig defines the logical play field. The world is a fixed-size
// coordinate space scaled to the terminal at render time, so gameplay is
// independent of the actual screen resolution.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Y of the ground line; a hard floor
}

// PlayerConfig defines the runner's fixed horizontal position and box.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines vertical integration constants.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`         // Per-tick downward acceleration
	JumpForce     float64 `yaml:"jump_force"`      // Instantaneous upward impulse
	FastFallAccel float64 `yaml:"fast_fall_accel"` // Extra accel while FastFall is held airborne
}

// ObstaclesConfig defines obstacle geometry and the randomized-gap spawn
// policy. The target gap is sampled uniformly from
// [gap_base_min + speed*gap_speed_min, gap_base_max + speed*gap_speed_max];
// with probability short_gap_chance the next target is overridden to
// short_gap, producing an occasional double-obstacle spike.
type ObstaclesConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	GapBaseMin     float64 `yaml:"gap_base_min"`
	GapSpeedMin    float64 `yaml:"gap_speed_min"`
	GapBaseMax     float64 `yaml:"gap_base_max"`
	GapSpeedMax    float64 `yaml:"gap_speed_max"`
	ShortGapChance float64 `yaml:"short_gap_chance"`
	ShortGap       float64 `yaml:"short_gap"`
}

// ProgressionConfig defines score accumulation and speed ramp.
type ProgressionConfig struct {
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added per tick while playing
	MaxSpeed       float64 `yaml:"max_speed"`
	ScoreRate      float64 `yaml:"score_rate"`      // Points per tick at the 60fps baseline
	MilestoneEvery int     `yaml:"milestone_every"` // Audio cue threshold in points
}

// BackdropConfig defines ambient, non-colliding scenery.
type BackdropConfig struct {
	CloudChance  float64 `yaml:"cloud_chance"` // Spawn probability per tick
	CloudSpeed   float64 `yaml:"cloud_speed"`  // Own slow speed, independent of session speed
	CloudMinY    float64 `yaml:"cloud_min_y"`
	CloudMaxY    float64 `yaml:"cloud_max_y"`
	CloudMinSize float64 `yaml:"cloud_min_size"`
	CloudMaxSize float64 `yaml:"cloud_max_size"`
	TreeChance   float64 `yaml:"tree_chance"` // Trees move at session speed
	TreeMinSize  float64 `yaml:"tree_min_size"`
	TreeMaxSize  float64 `yaml:"tree_max_size"`
}
