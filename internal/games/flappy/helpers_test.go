package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// newTestScene builds a scene with the default tuning.
func newTestScene(t *testing.T, enemies bool) *Scene {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	cfg.Enemy.Enabled = enemies
	return NewScene(cfg, 42, 60)
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// step runs one frame headless.
func step(s *Scene, actions ...core.Action) FrameEvents {
	return s.Frame(input(actions...), core.Discard)
}

// hover pins the bird at its rest height with no momentum, so a running
// round survives as long as nothing crosses the bird's path.
func hover(s *Scene) {
	start := newBird(s.cfg).Rect
	s.bird.Rect.Y = start.Y
	s.bird.Velocity = 0
}

// start moves the scene from idle to running.
func start(t *testing.T, s *Scene) {
	t.Helper()
	step(s, core.ActionJump)
	if s.Phase() != PhaseRunning {
		t.Fatalf("phase after first jump = %s, expected running", s.Phase())
	}
}
