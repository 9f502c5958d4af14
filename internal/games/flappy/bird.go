package flappy

import (
	"strconv"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Score overlay position, measured from the top of the playfield.
const scoreTextY = 50

// Bird is the player avatar.
type Bird struct {
	Rect       core.Rect
	Velocity   float64 // Pixels per frame, positive = down
	Frame      float64 // Fractional animation index
	Score      int
	PassedPipe bool // Inside the nearest pipe pair, not yet scored
}

func newBird(cfg config.FlappyConfig) *Bird {
	b := &Bird{}
	b.reset(cfg)
	return b
}

// reset puts the bird back at its rest position with no momentum or score.
func (b *Bird) reset(cfg config.FlappyConfig) {
	b.Rect = core.RectFromCenter(
		cfg.Player.StartX,
		float64(cfg.Screen.Height/2)+cfg.Player.StartOffsetY,
		cfg.Player.Width,
		cfg.Player.Height,
	)
	b.Velocity = 0
	b.Frame = 0
	b.Score = 0
	b.PassedPipe = false
}

// Bounds returns the collision rectangle.
func (b *Bird) Bounds() core.Rect {
	return b.Rect
}

// Flap replaces the current velocity with an upward impulse.
func (b *Bird) Flap(impulse float64) {
	b.Velocity = impulse
}

// applyGravity integrates one frame of free fall.
func (b *Bird) applyGravity(gravity float64) {
	b.Velocity += gravity
	b.Rect.SetBottom(b.Rect.Bottom() + b.Velocity)
}

// clampToPlayfield keeps the bird between the ceiling and the ground.
// Returns true if the bird touched either bound this frame.
func (b *Bird) clampToPlayfield(groundY float64) bool {
	hit := false
	if b.Rect.Top() <= 0 {
		b.Rect.SetTop(0)
		hit = true
	}
	if b.Rect.Bottom() >= groundY {
		b.Rect.SetBottom(groundY)
		hit = true
	}
	return hit
}

// updateScore tracks passage through the nearest pipe pair.
// The bird has to be fully inside the pipe's columns before it can score,
// and scores once its left edge clears the pipe's right edge.
func (b *Bird) updateScore(nearest *Pipe) {
	if nearest == nil {
		return
	}
	p := nearest.Rect
	if b.Rect.Left() > p.Left() && b.Rect.Right() < p.Right() && !b.PassedPipe {
		b.PassedPipe = true
	}
	if b.PassedPipe && b.Rect.Left() > p.Right() {
		b.Score++
		b.PassedPipe = false
	}
}

// animate advances the wing animation.
func (b *Bird) animate(step float64, frames int) {
	b.Frame += step
	if b.Frame >= float64(frames) {
		b.Frame = 0
	}
}

// Angle returns the sprite rotation: tilted with velocity while alive,
// nose down once the round is over.
func (b *Bird) Angle(active bool, p config.FlappyPlayer) float64 {
	if !active {
		return p.DeadAngle
	}
	return b.Velocity * p.TiltFactor
}

// collides reports whether the bird overlaps a pipe or, when enabled, the enemy.
func (b *Bird) collides(s *Scene) bool {
	for _, p := range s.pipes {
		if b.Rect.Intersects(p.Rect) {
			return true
		}
	}
	return s.fly != nil && b.Rect.Intersects(s.fly.Rect)
}

// Draw renders the bird followed by the score overlay.
func (b *Bird) Draw(c core.Canvas, s *Scene) {
	c.Blit(core.SpriteBird, b.Rect, core.BlitOptions{
		Frame: int(b.Frame),
		Angle: b.Angle(s.active, s.cfg.Player),
	})
	c.Text(strconv.Itoa(b.Score), float64(s.cfg.Screen.Width/2), scoreTextY, core.ColorWhite)
}

// Update runs one frame of the bird.
// Physics and scoring run once the round has started, even after it ended,
// so a dead bird drops to the ground. Collisions and animation only run
// while the round is live.
func (b *Bird) Update(s *Scene) {
	if s.started {
		b.applyGravity(s.cfg.Physics.Gravity)
		if b.clampToPlayfield(s.cfg.GroundY()) {
			s.endRound(EndReasonBounds)
		}
		b.updateScore(s.nearestPipe())
	}
	if s.active {
		if b.collides(s) {
			s.endRound(EndReasonCollision)
		}
		b.animate(s.cfg.Player.AnimationStep, s.cfg.Player.Frames)
	}
}
