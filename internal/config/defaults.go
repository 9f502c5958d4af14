package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// It mirrors defaults/flappy.yaml and backs any field a YAML file omits.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: FlappyScreen{
			Width:  864,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:     0.5,
			FlapImpulse: -7,
		},
		Player: FlappyPlayer{
			StartX:        100,
			StartOffsetY:  -20,
			Width:         34,
			Height:        24,
			Frames:        3,
			AnimationStep: 0.5,
			TiltFactor:    -2,
			DeadAngle:     -90,
		},
		Pipes: FlappyPipes{
			Width:           52,
			Height:          320,
			Gap:             150,
			Opening:         250,
			Speed:           6,
			MinOffset:       -100,
			MaxOffset:       100,
			DespawnX:        -80,
			SpawnIntervalMS: 1800,
		},
		Ground: FlappyGround{
			Height:      110,
			ScrollSpeed: 4,
			ScrollWrap:  35,
		},
		Enemy: FlappyEnemy{
			Enabled:         false,
			Width:           40,
			Height:          30,
			Speed:           9,
			FallSpeed:       6,
			SlideSpeed:      4,
			SpawnOffsetX:    15,
			MinY:            50,
			BottomMargin:    140,
			DespawnX:        -50,
			FallLifetime:    180,
			SpawnIntervalMS: 7000,
		},
		Projectile: FlappyProjectile{
			Width:            16,
			Height:           8,
			Speed:            10,
			DespawnMargin:    10,
			Magazine:         0,
			ReloadIntervalMS: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.3,
				OpeningReduction:  30,
			},
		},
	}
}
