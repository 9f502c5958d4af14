package flappy

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestIdleSceneHoldsStill(t *testing.T) {
	s := newTestScene(t, false)
	rest := s.bird.Rect

	for i := 0; i < 300; i++ {
		step(s)
	}

	if s.Phase() != PhaseIdle {
		t.Fatalf("phase = %s, expected idle", s.Phase())
	}
	if s.bird.Rect != rest || s.bird.Velocity != 0 {
		t.Errorf("idle bird moved: %+v", s.bird)
	}
	if len(s.pipes) != 0 {
		t.Errorf("idle scene has %d pipes", len(s.pipes))
	}
	if s.groundScroll != 0 {
		t.Errorf("ground scrolled while idle: %v", s.groundScroll)
	}
}

func TestSceneLifecycle(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *Scene)
		action core.Action
		want   Phase
	}{
		{"idle jump starts", func(s *Scene) {}, core.ActionJump, PhaseRunning},
		{"idle restart ignored", func(s *Scene) {}, core.ActionRestart, PhaseIdle},
		{"running jump flaps", func(s *Scene) { s.started = true }, core.ActionJump, PhaseRunning},
		{"running restart ignored", func(s *Scene) { s.started = true }, core.ActionRestart, PhaseRunning},
		{"terminated jump restarts", func(s *Scene) { s.started = true; s.active = false }, core.ActionJump, PhaseIdle},
		{"terminated restart restarts", func(s *Scene) { s.started = true; s.active = false }, core.ActionRestart, PhaseIdle},
		{"terminated no input stays", func(s *Scene) { s.started = true; s.active = false }, core.ActionNone, PhaseTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t, false)
			tt.setup(s)
			step(s, tt.action)
			if got := s.Phase(); got != tt.want {
				t.Errorf("phase = %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestRestartClearsScene(t *testing.T) {
	s := newTestScene(t, true)
	start(t, s)

	top, bottom := s.pipePair(0)
	s.pipes = append(s.pipes, top, bottom)
	s.spawnFly()
	s.fire()
	s.bird.Score = 5
	s.bird.PassedPipe = true
	s.groundScroll = -12
	s.endRound(EndReasonCollision)

	ev := step(s, core.ActionJump)
	if !ev.Restarted {
		t.Fatal("jump after game over should report a restart")
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseIdle {
		t.Errorf("phase = %s, expected idle", snap.Phase)
	}
	if snap.Pipes != 0 || snap.HasFly || snap.HasBullet {
		t.Errorf("entities survived restart: %+v", snap)
	}
	if snap.Score != 0 || snap.BirdVelocity != 0 || snap.PassedPipe {
		t.Errorf("bird not reset: %+v", snap)
	}
	if rest := newBird(s.cfg).Rect; s.bird.Rect != rest {
		t.Errorf("bird at %+v, expected rest %+v", s.bird.Rect, rest)
	}
	if snap.GroundScroll != 0 {
		t.Errorf("ground scroll = %v, expected 0", snap.GroundScroll)
	}
}

func TestTerminatedSceneFrozen(t *testing.T) {
	s := newTestScene(t, false)
	start(t, s)
	top, bottom := s.pipePair(0)
	s.pipes = append(s.pipes, top, bottom)
	s.groundScroll = -8
	s.endRound(EndReasonCollision)

	for i := 0; i < 50; i++ {
		ev := step(s)
		if ev.RoundEnded {
			t.Fatal("round ended twice")
		}
	}
	if s.Phase() != PhaseTerminated {
		t.Fatalf("phase = %s, expected terminated", s.Phase())
	}
	if s.groundScroll != -8 {
		t.Errorf("ground scrolled after the round ended: %v", s.groundScroll)
	}
	if top.Rect.X != 864 {
		t.Errorf("pipe moved after the round ended: %v", top.Rect.X)
	}
}

func TestGroundScrollWraps(t *testing.T) {
	s := newTestScene(t, false)
	start(t, s)

	seen := map[float64]bool{}
	for i := 0; i < 100; i++ {
		hover(s)
		step(s)
		g := s.GroundScroll()
		if g <= -35 || g > 0 {
			t.Fatalf("frame %d: ground scroll %v outside (-35, 0]", i, g)
		}
		seen[g] = true
	}
	for _, want := range []float64{0, -4, -32} {
		if !seen[want] {
			t.Errorf("ground scroll never reached %v", want)
		}
	}
}

func TestPauseFreezesScene(t *testing.T) {
	s := newTestScene(t, true)
	start(t, s)
	s.fire()

	step(s, core.ActionPause)
	if !s.Paused() {
		t.Fatal("pause action should pause a running round")
	}
	frozen := s.Snapshot()

	for i := 0; i < 30; i++ {
		step(s, core.ActionJump, core.ActionFire)
	}
	if got := s.Snapshot(); !reflect.DeepEqual(got, frozen) {
		t.Errorf("paused scene changed:\n got %+v\nwant %+v", got, frozen)
	}

	step(s, core.ActionPause)
	if s.Paused() {
		t.Fatal("second pause action should resume")
	}
	if s.Snapshot().Ticks != frozen.Ticks+1 {
		t.Error("resumed frame did not advance the scene")
	}
}

func TestPauseIgnoredAfterRoundEnds(t *testing.T) {
	s := newTestScene(t, false)
	start(t, s)
	s.endRound(EndReasonBounds)

	step(s, core.ActionPause)
	if s.Paused() {
		t.Error("a finished round should not pause")
	}
}

func TestQuitStopsScene(t *testing.T) {
	s := newTestScene(t, false)
	start(t, s)

	step(s, core.ActionQuit)
	if s.Running() {
		t.Fatal("quit should clear the running flag")
	}
	before := s.Snapshot()
	step(s, core.ActionJump)
	if got := s.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Error("scene advanced after quit")
	}
}

func TestSceneDeterminism(t *testing.T) {
	for _, enemies := range []bool{false, true} {
		a := NewScene(newTestScene(t, enemies).cfg, 99, 60)
		b := NewScene(newTestScene(t, enemies).cfg, 99, 60)

		for i := 0; i < 3000; i++ {
			var actions []core.Action
			if i%28 == 0 {
				actions = append(actions, core.ActionJump)
			}
			if i%40 == 0 {
				actions = append(actions, core.ActionFire)
			}
			step(a, actions...)
			step(b, actions...)

			sa, sb := a.Snapshot(), b.Snapshot()
			if !reflect.DeepEqual(sa, sb) {
				t.Fatalf("enemies=%v frame %d: runs diverged\n a %+v\n b %+v", enemies, i, sa, sb)
			}
		}
	}
}

func TestFrameDrawsInOrder(t *testing.T) {
	s := newTestScene(t, true)
	top, bottom := s.pipePair(0)
	s.pipes = append(s.pipes, top, bottom)
	s.fly = &Fly{Rect: core.RectFromCenter(600, 100, 40, 30)}

	var dl core.DisplayList
	s.Frame(input(core.ActionFire), &dl)

	var got []string
	for _, cmd := range dl.Commands() {
		if cmd.IsText {
			got = append(got, "text:"+cmd.Text)
			continue
		}
		got = append(got, cmd.Sprite.String())
	}
	want := []string{"background", "pipe", "pipe", "bird", "text:0", "fly", "bullet", "ground"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("draw order = %v, expected %v", got, want)
	}

	if !dl.Commands()[1].Opts.FlipV || dl.Commands()[2].Opts.FlipV {
		t.Error("only the top pipe should be flipped")
	}
	score := dl.Commands()[4]
	if score.Dst.X != 432 || score.Dst.Y != 50 || score.Color != core.ColorWhite {
		t.Errorf("score text at (%v, %v) color %v, expected white at (432, 50)", score.Dst.X, score.Dst.Y, score.Color)
	}
}

func TestRestartPromptDrawnWhenOver(t *testing.T) {
	s := newTestScene(t, false)
	start(t, s)
	s.endRound(EndReasonBounds)

	var dl core.DisplayList
	s.Frame(input(), &dl)

	cmds := dl.Commands()
	last := cmds[len(cmds)-1]
	if last.IsText || last.Sprite != core.SpriteRestart {
		t.Fatalf("last draw = %+v, expected restart prompt", last)
	}
	if cx, cy := last.Dst.Center(); cx != 432 || cy != 300 {
		t.Errorf("prompt centered at (%v, %v), expected (432, 300)", cx, cy)
	}
}

func TestBulletDrawnBeforeItMoves(t *testing.T) {
	s := newShooterScene(t)
	start(t, s)
	s.bullet = &Bullet{Rect: core.NewRect(400, 280, 16, 8)}

	var dl core.DisplayList
	s.Frame(input(), &dl)

	var drawn *core.DrawCmd
	for i, cmd := range dl.Commands() {
		if !cmd.IsText && cmd.Sprite == core.SpriteBullet {
			drawn = &dl.Commands()[i]
		}
	}
	if drawn == nil || drawn.Dst.X != 400 {
		t.Fatalf("bullet drawn at %+v, expected x = 400", drawn)
	}
	if s.bullet.Rect.X != 410 {
		t.Errorf("bullet x after frame = %v, expected 410", s.bullet.Rect.X)
	}

	// A bullet leaving the screen still shows on its last frame
	s.bullet.Rect.X = 860
	dl.Reset()
	s.Frame(input(), &dl)
	found := false
	for _, cmd := range dl.Commands() {
		found = found || (!cmd.IsText && cmd.Sprite == core.SpriteBullet)
	}
	if !found || s.bullet != nil {
		t.Errorf("drawn = %v, bullet = %v; expected a final draw then removal", found, s.bullet)
	}
}

func TestTimersFireOnExactFrames(t *testing.T) {
	s := newTestScene(t, false)
	start(t, s)

	frames := 1
	for len(s.pipes) == 0 && frames < 200 {
		hover(s)
		step(s)
		frames++
	}
	if frames != 108 {
		t.Errorf("first pipe pair on frame %d, expected 108 for 1800 ms at 60 Hz", frames)
	}

	shooter := newShooterScene(t)
	start(t, shooter)
	frames = 1
	for shooter.fly == nil && frames < 500 {
		hover(shooter)
		step(shooter)
		frames++
	}
	if frames != 420 {
		t.Errorf("first fly on frame %d, expected 420 for 7000 ms at 60 Hz", frames)
	}
}
