// Package flappy implements a Flappy Bird-style game.
// The player steers a bird through gaps between scrolling pipe pairs and,
// in the shooter build, dodges or shoots down a flying enemy.
package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Entity is any object living in the scene.
// The scene draws each entity, then updates it, once per frame.
type Entity interface {
	Bounds() core.Rect
	Draw(c core.Canvas, s *Scene)
	Update(s *Scene)
}

var (
	_ Entity = (*Bird)(nil)
	_ Entity = (*Pipe)(nil)
	_ Entity = (*Fly)(nil)
	_ Entity = (*Bullet)(nil)
)
