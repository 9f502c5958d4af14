package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

const (
	flyFrames       = 2
	flyFallingAngle = 180
)

// Fly is the enemy of the shooter build.
type Fly struct {
	Rect       core.Rect
	Frame      int
	Falling    bool
	Shot       bool // Knocked down by a bullet rather than by the bird
	FallFrames int  // Frames spent falling
	dead       bool
}

// Bounds returns the collision rectangle.
func (f *Fly) Bounds() core.Rect {
	return f.Rect
}

// Draw renders the fly, upside down once it is falling.
func (f *Fly) Draw(c core.Canvas, _ *Scene) {
	opts := core.BlitOptions{Frame: f.Frame}
	if f.Falling {
		opts.Angle = flyFallingAngle
	}
	c.Blit(core.SpriteFly, f.Rect, opts)
}

// Update runs one frame of the fly.
func (f *Fly) Update(s *Scene) {
	if f.Falling {
		f.fall(s)
		return
	}

	if s.active {
		f.Frame = (f.Frame + 1) % flyFrames
		if s.started {
			f.Rect.X -= s.cfg.Enemy.Speed
		}
		if f.Rect.Left() <= s.cfg.Enemy.DespawnX {
			f.dead = true
			return
		}
	}

	if f.Rect.Intersects(s.bird.Rect) {
		f.knockDown(false)
	}
}

// Hit marks the fly as shot and drops it by one fall step immediately.
func (f *Fly) Hit(fallSpeed float64) {
	f.knockDown(true)
	f.Rect.Y += fallSpeed
}

func (f *Fly) knockDown(shot bool) {
	f.Falling = true
	f.Shot = f.Shot || shot
}

// fall moves a knocked-down fly towards the ground.
// A shot fly drops at a fixed speed and slides off once grounded; one that
// ran into the bird follows the bird down. Either way it is removed once it
// leaves the screen or after lingering for the configured lifetime.
func (f *Fly) fall(s *Scene) {
	cfg := s.cfg.Enemy
	groundY := s.cfg.GroundY()

	if f.Shot {
		f.Rect.Y += cfg.FallSpeed
	} else {
		f.Rect.Y += math.Max(s.bird.Velocity, 0)
	}

	if f.Rect.Bottom() >= groundY {
		f.Rect.SetBottom(groundY)
		if f.Shot {
			f.Rect.X -= cfg.SlideSpeed
		}
	}

	f.FallFrames++
	if f.Rect.Left() <= cfg.DespawnX || (cfg.FallLifetime > 0 && f.FallFrames >= cfg.FallLifetime) {
		f.dead = true
	}
}

// spawnFly places a new fly just past the right edge at a random height.
// There is a single enemy slot, so a new fly replaces any previous one.
func (s *Scene) spawnFly() {
	cfg := s.cfg.Enemy
	lo := cfg.MinY
	hi := s.cfg.Screen.Height - cfg.BottomMargin
	y := lo + s.rng.Intn(hi-lo+1)

	s.fly = &Fly{
		Rect: core.RectFromCenter(float64(s.cfg.Screen.Width)+cfg.SpawnOffsetX, float64(y), cfg.Width, cfg.Height),
	}
}
