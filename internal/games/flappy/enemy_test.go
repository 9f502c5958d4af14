package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// newShooterScene returns an enemy-build scene with no pipe spawns, so a
// hovering bird survives indefinitely.
func newShooterScene(t *testing.T) *Scene {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	cfg.Enemy.Enabled = true
	cfg.Pipes.SpawnIntervalMS = 0
	return NewScene(cfg, 7, 60)
}

func TestBulletHitsFly(t *testing.T) {
	s := newShooterScene(t)
	s.fly = &Fly{Rect: core.RectFromCenter(140, 280, 40, 30)} // Just ahead of the bird

	ev := step(s, core.ActionFire)
	if !ev.Fired || s.bullet == nil {
		t.Fatal("fire should spawn a bullet")
	}

	for i := 0; i < 5; i++ {
		step(s)
		if s.fly.Falling {
			break
		}
	}

	if !s.fly.Falling || !s.fly.Shot {
		t.Fatalf("fly should be shot down: %+v", s.fly)
	}
	if s.bullet != nil {
		t.Error("bullet should be removed on the frame it hits")
	}
	if got := s.fly.Rect.Bottom(); got != 301 {
		t.Errorf("fly bottom = %v, expected 295 + 6", got)
	}
}

func TestFireIgnoredWithoutEnemies(t *testing.T) {
	s := newTestScene(t, false)

	ev := step(s, core.ActionFire)
	if ev.Fired || s.bullet != nil {
		t.Error("classic build should not fire")
	}
}

func TestSingleBulletInFlight(t *testing.T) {
	s := newShooterScene(t)

	if ev := step(s, core.ActionFire); !ev.Fired {
		t.Fatal("first shot should fire")
	}
	first := s.bullet
	if ev := step(s, core.ActionFire); ev.Fired {
		t.Fatal("second shot fired while a bullet is live")
	}
	if s.bullet != first {
		t.Fatal("live bullet was replaced")
	}

	// Bullet leaves the right edge after about 77 frames
	for i := 0; i < 100; i++ {
		step(s)
	}
	if s.bullet != nil {
		t.Fatalf("bullet still alive at x = %v", s.bullet.Rect.X)
	}
	if ev := step(s, core.ActionFire); !ev.Fired {
		t.Error("should fire again once the bullet is gone")
	}
}

func TestBulletSpawnsAtBirdCenter(t *testing.T) {
	s := newShooterScene(t)
	s.fire()

	cx, cy := s.bullet.Rect.Center()
	if cx != 100 || cy != 280 {
		t.Errorf("bullet center = (%v, %v), expected (100, 280)", cx, cy)
	}
}

func TestBulletFrozenAfterRoundEnds(t *testing.T) {
	s := newShooterScene(t)
	start(t, s)
	s.fire()
	x := s.bullet.Rect.X

	s.endRound(EndReasonCollision)
	step(s)
	if s.bullet == nil || s.bullet.Rect.X != x {
		t.Error("bullet should stay put once the round is over")
	}
	if s.fire() {
		t.Error("fire should be refused after the round ended")
	}
}

func TestMagazineReloads(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Enemy.Enabled = true
	cfg.Projectile.Magazine = 1
	s := NewScene(cfg, 1, 60)

	if !s.fire() {
		t.Fatal("full magazine should fire")
	}
	s.bullet = nil
	if s.fire() {
		t.Fatal("empty magazine should not fire")
	}

	for i := 0; i < 70; i++ {
		step(s)
	}
	if s.Ammo() != 1 {
		t.Fatalf("ammo after reload = %d, expected 1", s.Ammo())
	}
	s.bullet = nil
	if !s.fire() {
		t.Error("reloaded magazine should fire")
	}
}

func TestBirdTouchingFlyEndsRound(t *testing.T) {
	s := newShooterScene(t)
	start(t, s)

	cx, cy := s.bird.Rect.Center()
	s.fly = &Fly{Rect: core.RectFromCenter(cx+20, cy, 40, 30)}

	ev := step(s)
	if !ev.RoundEnded || ev.EndReason != EndReasonCollision {
		t.Fatalf("events = %+v, expected collision", ev)
	}
	if !s.fly.Falling || s.fly.Shot {
		t.Errorf("fly should be knocked down without being shot: %+v", s.fly)
	}
}

func TestFlyMovesAndDespawns(t *testing.T) {
	s := newShooterScene(t)
	start(t, s)
	s.fly = &Fly{Rect: core.RectFromCenter(400, 80, 40, 30)}

	hover(s)
	step(s)
	if got := s.fly.Rect.Left(); got != 371 {
		t.Fatalf("fly left = %v, expected 380 - 9", got)
	}
	if s.fly.Frame != 1 {
		t.Errorf("fly frame = %d, expected 1", s.fly.Frame)
	}

	s.fly.Rect.X = -45
	hover(s)
	step(s)
	if s.fly != nil {
		t.Errorf("fly past the left edge should be removed, at %v", s.fly.Rect.X)
	}
}

func TestShotFlySlidesOffGround(t *testing.T) {
	s := newShooterScene(t)
	s.fly = &Fly{Rect: core.RectFromCenter(300, 475, 40, 30), Falling: true, Shot: true}

	step(s)
	if s.fly.Rect.Bottom() != 490 {
		t.Fatalf("fly bottom = %v, expected clamp to ground", s.fly.Rect.Bottom())
	}
	if s.fly.Rect.Left() != 276 {
		t.Fatalf("grounded fly left = %v, expected 280 - 4", s.fly.Rect.Left())
	}

	frames := 1
	for s.fly != nil && frames < 200 {
		step(s)
		frames++
	}
	if s.fly != nil {
		t.Fatal("grounded fly never slid off")
	}
	// 280 -> -50 at 4 px per frame
	if frames != 83 {
		t.Errorf("fly removed after %d frames, expected 83", frames)
	}
}

func TestFallingFlyLifetime(t *testing.T) {
	s := newShooterScene(t)
	// Knocked down by an idle bird, so it has no downward speed to follow
	s.fly = &Fly{Rect: core.RectFromCenter(600, 200, 40, 30), Falling: true}

	for i := 0; i < 179; i++ {
		step(s)
	}
	if s.fly == nil {
		t.Fatal("fly removed before its lifetime")
	}
	step(s)
	if s.fly != nil {
		t.Errorf("fly still alive after %d falling frames", s.fly.FallFrames)
	}
}

func TestFlySpawnsWhileRunning(t *testing.T) {
	s := newShooterScene(t)

	for i := 0; i < 500; i++ {
		step(s)
	}
	if s.fly != nil {
		t.Fatal("fly spawned while idle")
	}

	start(t, s)
	for i := 0; i < 450 && s.fly == nil; i++ {
		hover(s)
		step(s)
	}
	if s.fly == nil {
		t.Fatal("no fly within 450 frames of a 7000 ms interval")
	}

	_, cy := s.fly.Rect.Center()
	if cy < 50 || cy > 460 {
		t.Errorf("fly center y = %v, expected within [50, 460]", cy)
	}
	if s.fly.Rect.Right() > 864+15+20 {
		t.Errorf("fly right = %v, spawned too far right", s.fly.Rect.Right())
	}
}

func TestSpawnFlyReplacesOld(t *testing.T) {
	s := newShooterScene(t)
	s.spawnFly()
	first := s.fly
	s.spawnFly()
	if s.fly == nil || s.fly == first {
		t.Error("second spawn should replace the fly in the single slot")
	}
}

func TestTouchedFlyFollowsBirdDown(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		wantDY   float64
	}{
		{"bird falling", 5, 5},
		{"bird rising", -8, 0},
		{"bird still", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newShooterScene(t)
			s.fly = &Fly{Rect: core.RectFromCenter(600, 200, 40, 30), Falling: true}
			s.bird.Velocity = tt.velocity
			y := s.fly.Rect.Y

			step(s)
			if got := s.fly.Rect.Y - y; got != tt.wantDY {
				t.Errorf("fly moved %v, expected %v", got, tt.wantDY)
			}
		})
	}
}
