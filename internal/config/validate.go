package config

import "fmt"

// ValidationError describes a configuration value that cannot be simulated.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate reports the first value that would break the simulation.
func (c FlappyConfig) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{c.Screen.Width > 0, "screen.width", "must be positive"},
		{c.Screen.Height > 0, "screen.height", "must be positive"},
		{c.Ground.Height >= 0 && c.Ground.Height < float64(c.Screen.Height), "ground.height", "must fit inside the screen"},
		{c.Ground.ScrollWrap > 0, "ground.scroll_wrap", "must be positive"},
		{c.Physics.Gravity > 0, "physics.gravity", "must be positive"},
		{c.Physics.FlapImpulse < 0, "physics.flap_impulse", "must be negative (upwards)"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player", "width and height must be positive"},
		{c.Player.Frames > 0, "player.frames", "must be positive"},
		{c.Pipes.Width > 0 && c.Pipes.Height > 0, "pipes", "width and height must be positive"},
		{c.Pipes.Speed > 0, "pipes.speed", "must be positive"},
		{c.Pipes.MinOffset <= c.Pipes.MaxOffset, "pipes.min_offset", "must not exceed max_offset"},
		{c.Pipes.SpawnIntervalMS > 0, "pipes.spawn_interval_ms", "must be positive"},
		{c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy", "width and height must be positive"},
		{c.Enemy.MinY <= c.Screen.Height-c.Enemy.BottomMargin, "enemy.min_y", "leaves no room to spawn"},
		{c.Enemy.SpawnIntervalMS > 0, "enemy.spawn_interval_ms", "must be positive"},
		{c.Projectile.Width > 0 && c.Projectile.Height > 0, "projectile", "width and height must be positive"},
		{c.Projectile.Magazine >= 0, "projectile.magazine", "must not be negative"},
		{c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1, "difficulty.initial_level", "must be within [0, 1]"},
		{c.Difficulty.Scaling.IntervalReduction >= 0 && c.Difficulty.Scaling.IntervalReduction < 1, "difficulty.scaling.interval_reduction", "must be within [0, 1)"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return ValidationError{Field: chk.field, Message: chk.message}
		}
	}
	return nil
}
