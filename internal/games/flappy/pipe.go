package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Orientation tells which half of a pipe pair a pipe is.
type Orientation int

const (
	OrientationTop Orientation = iota
	OrientationBottom
)

// Pipe is one half of an obstacle pair.
type Pipe struct {
	Rect        core.Rect
	Orientation Orientation
	Pair        int // Shared by the two pipes spawned together
	dead        bool
}

// Bounds returns the collision rectangle.
func (p *Pipe) Bounds() core.Rect {
	return p.Rect
}

// Draw renders the pipe; the top half is flipped so its mouth faces down.
func (p *Pipe) Draw(c core.Canvas, _ *Scene) {
	c.Blit(core.SpritePipe, p.Rect, core.BlitOptions{FlipV: p.Orientation == OrientationTop})
}

// Update scrolls the pipe while the round is live and retires it off-screen.
func (p *Pipe) Update(s *Scene) {
	if s.active && s.started {
		p.Rect.X -= s.pipeSpeed()
	}
	if p.Rect.Left() <= s.cfg.Pipes.DespawnX {
		p.dead = true
	}
}

// pipePair builds the two pipes of a pair at the right edge of the screen.
// offset shifts the opening up (negative) or down (positive).
func (s *Scene) pipePair(offset int) (top, bottom *Pipe) {
	cfg := s.cfg
	x := float64(cfg.Screen.Width)
	halfGap := math.Floor(cfg.Pipes.Gap / 2)
	opening := s.difficulty.Opening(cfg.Pipes.Opening, s.bird.Score, s.ticks)

	topY := float64(cfg.Screen.Height/2+offset) - halfGap
	bottomY := float64(cfg.Screen.Height) - math.Floor((float64(cfg.Screen.Height)-opening)/2) + float64(offset) - halfGap

	pair := s.nextPair
	s.nextPair++

	top = &Pipe{Orientation: OrientationTop, Pair: pair}
	top.Rect = core.NewRect(x, 0, cfg.Pipes.Width, cfg.Pipes.Height)
	top.Rect.SetBottom(topY)

	bottom = &Pipe{Orientation: OrientationBottom, Pair: pair}
	bottom.Rect = core.NewRect(x, bottomY, cfg.Pipes.Width, cfg.Pipes.Height)

	return top, bottom
}

// spawnPipes adds a new pipe pair with a random vertical offset.
func (s *Scene) spawnPipes() {
	lo, hi := s.cfg.Pipes.MinOffset, s.cfg.Pipes.MaxOffset
	offset := lo + s.rng.Intn(hi-lo+1)
	top, bottom := s.pipePair(offset)
	s.pipes = append(s.pipes, top, bottom)
}

// removeDeadPipes drops retired pipes. A pair is always removed as a whole,
// so the slice keeps an even length and spawn order.
func (s *Scene) removeDeadPipes() {
	deadPairs := make(map[int]bool)
	for _, p := range s.pipes {
		if p.dead {
			deadPairs[p.Pair] = true
		}
	}
	if len(deadPairs) == 0 {
		return
	}

	kept := s.pipes[:0]
	for _, p := range s.pipes {
		if !deadPairs[p.Pair] {
			kept = append(kept, p)
		}
	}
	// Drop references held past the new length
	for i := len(kept); i < len(s.pipes); i++ {
		s.pipes[i] = nil
	}
	s.pipes = kept
}

// nearestPipe returns the oldest live pipe, which the bird scores against.
func (s *Scene) nearestPipe() *Pipe {
	if len(s.pipes) == 0 {
		return nil
	}
	return s.pipes[0]
}
