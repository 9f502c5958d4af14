// Package config provides YAML-based game configuration loading and
// difficulty management for the flappy arcade.
package config

import (
	"fmt"
	"time"
)

// FlappyConfig contains all tuning for the Flappy Bird game.
// Distances are playfield pixels, speeds are pixels per frame and
// intervals are milliseconds of simulated time.
type FlappyConfig struct {
	Screen     FlappyScreen     `yaml:"screen"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Player     FlappyPlayer     `yaml:"player"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Ground     FlappyGround     `yaml:"ground"`
	Enemy      FlappyEnemy      `yaml:"enemy"`
	Projectile FlappyProjectile `yaml:"projectile"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyScreen defines the logical playfield size.
type FlappyScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyPhysics defines the bird's vertical motion.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every frame
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set on flap (negative = up)
}

// FlappyPlayer defines the bird sprite and its animation.
type FlappyPlayer struct {
	StartX        float64 `yaml:"start_x"`        // Center x at rest
	StartOffsetY  float64 `yaml:"start_offset_y"` // Center y relative to mid-screen
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Frames        int     `yaml:"frames"`
	AnimationStep float64 `yaml:"animation_step"`
	TiltFactor    float64 `yaml:"tilt_factor"` // Degrees of rotation per unit of velocity
	DeadAngle     float64 `yaml:"dead_angle"`  // Rotation once the round is over
}

// FlappyPipes defines obstacle pairs.
type FlappyPipes struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Gap             float64 `yaml:"gap"`
	Opening         float64 `yaml:"opening"` // Vertical span used to place the bottom pipe
	Speed           float64 `yaml:"speed"`
	MinOffset       int     `yaml:"min_offset"`
	MaxOffset       int     `yaml:"max_offset"`
	DespawnX        float64 `yaml:"despawn_x"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// FlappyGround defines the scrolling ground band.
type FlappyGround struct {
	Height      float64 `yaml:"height"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
	ScrollWrap  float64 `yaml:"scroll_wrap"`
}

// FlappyEnemy defines the flying enemy used by the shooter build.
type FlappyEnemy struct {
	Enabled         bool    `yaml:"enabled"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	FallSpeed       float64 `yaml:"fall_speed"`
	SlideSpeed      float64 `yaml:"slide_speed"`
	SpawnOffsetX    float64 `yaml:"spawn_offset_x"`
	MinY            int     `yaml:"min_y"`
	BottomMargin    int     `yaml:"bottom_margin"`
	DespawnX        float64 `yaml:"despawn_x"`
	FallLifetime    int     `yaml:"fall_lifetime"` // Frames a falling enemy lingers
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// FlappyProjectile defines the bullet fired in the shooter build.
type FlappyProjectile struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`
	DespawnMargin    float64 `yaml:"despawn_margin"`
	Magazine         int     `yaml:"magazine"` // 0 = unlimited
	ReloadIntervalMS int     `yaml:"reload_interval_ms"`
}

// PipeSpawnInterval returns the pipe timer period.
func (c FlappyConfig) PipeSpawnInterval() time.Duration {
	return time.Duration(c.Pipes.SpawnIntervalMS) * time.Millisecond
}

// EnemySpawnInterval returns the enemy timer period.
func (c FlappyConfig) EnemySpawnInterval() time.Duration {
	return time.Duration(c.Enemy.SpawnIntervalMS) * time.Millisecond
}

// ReloadInterval returns the projectile reload timer period.
func (c FlappyConfig) ReloadInterval() time.Duration {
	return time.Duration(c.Projectile.ReloadIntervalMS) * time.Millisecond
}

// GroundY returns the y coordinate of the ground line.
func (c FlappyConfig) GroundY() float64 {
	return float64(c.Screen.Height) - c.Ground.Height
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
	OpeningReduction  float64 `yaml:"opening_reduction"`  // Pixels removed from the pipe opening at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means "keep config".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}
