package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultYAML []byte

// Default returns the canonical runner configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:   1000,
			Height:  300,
			GroundY: 270,
		},
		Player: PlayerConfig{
			X:      60,
			Width:  44,
			Height: 47,
		},
		Physics: PhysicsConfig{
			Gravity:       0.8,
			JumpForce:     22,
			FastFallAccel: 0.7,
		},
		Obstacles: ObstaclesConfig{
			Width:          40,
			Height:         50,
			GapBaseMin:     600,
			GapSpeedMin:    10,
			GapBaseMax:     1200,
			GapSpeedMax:    20,
			ShortGapChance: 0.1,
			ShortGap:       300,
		},
		Progression: ProgressionConfig{
			InitialSpeed:   6,
			SpeedIncrement: 0.002,
			MaxSpeed:       13,
			ScoreRate:      0.15,
			MilestoneEvery: 100,
		},
		Backdrop: BackdropConfig{
			CloudChance:  0.008,
			CloudSpeed:   1.2,
			CloudMinY:    30,
			CloudMaxY:    130,
			CloudMinSize: 25,
			CloudMaxSize: 70,
			TreeChance:   0.012,
			TreeMinSize:  18,
			TreeMaxSize:  42,
		},
	}
}

// DefaultBytes returns the embedded default YAML.
func DefaultBytes() []byte {
	return defaultYAML
}
