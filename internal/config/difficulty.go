package config

import (
	"math"
	"time"
)

// Minimum values difficulty scaling can reach, whatever the config says.
const (
	minOpening       = 120.0
	minSpawnInterval = 600 * time.Millisecond
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scrolling speed for the current difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Opening returns the vertical span used to place bottom pipes.
// A smaller opening narrows the clearance between a pipe pair.
func (d *DifficultyManager) Opening(baseOpening float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	result := baseOpening - level*d.cfg.Scaling.OpeningReduction
	if result < minOpening && baseOpening >= minOpening {
		result = minOpening
	}
	return result
}

// SpawnInterval returns the pipe timer period for the current difficulty level.
func (d *DifficultyManager) SpawnInterval(base time.Duration, score int, ticks int) time.Duration {
	level := d.Level(score, ticks)
	result := time.Duration(float64(base) * (1.0 - level*d.cfg.Scaling.IntervalReduction))
	if result < minSpawnInterval && base >= minSpawnInterval {
		result = minSpawnInterval
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
