package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Bullet is the projectile the bird fires at the fly.
type Bullet struct {
	Rect core.Rect
	dead bool
}

// Bounds returns the collision rectangle.
func (b *Bullet) Bounds() core.Rect {
	return b.Rect
}

// Draw renders the bullet.
func (b *Bullet) Draw(c core.Canvas, _ *Scene) {
	c.Blit(core.SpriteBullet, b.Rect, core.BlitOptions{})
}

// Update moves the bullet right and resolves a hit on the fly.
func (b *Bullet) Update(s *Scene) {
	if !s.active {
		return
	}

	b.Rect.X += s.cfg.Projectile.Speed
	if b.Rect.Right() > float64(s.cfg.Screen.Width)+s.cfg.Projectile.DespawnMargin {
		b.dead = true
		return
	}

	if s.fly != nil && b.Rect.Intersects(s.fly.Rect) {
		s.fly.Hit(s.cfg.Enemy.FallSpeed)
		b.dead = true
	}
}

// fire spawns a bullet at the bird's center if the weapon is ready.
// Returns false when a bullet is already in flight or the magazine is empty.
func (s *Scene) fire() bool {
	if s.bullet != nil || !s.active {
		return false
	}
	if s.cfg.Projectile.Magazine > 0 {
		if s.ammo == 0 {
			return false
		}
		s.ammo--
	}

	cx, cy := s.bird.Rect.Center()
	s.bullet = &Bullet{
		Rect: core.RectFromCenter(cx, cy, s.cfg.Projectile.Width, s.cfg.Projectile.Height),
	}
	return true
}
