package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Restart prompt size in playfield pixels.
const (
	restartPromptW = 120
	restartPromptH = 42
)

// Phase is the round lifecycle state derived from the scene flags.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseRunning    Phase = "running"
	PhaseTerminated Phase = "terminated"
)

// EndReason explains why a round ended.
type EndReason string

const (
	EndReasonNone      EndReason = ""
	EndReasonBounds    EndReason = "bounds"
	EndReasonCollision EndReason = "collision"
)

// FrameEvents reports lifecycle transitions that happened during a frame.
type FrameEvents struct {
	RoundEnded bool
	EndReason  EndReason
	Restarted  bool
	Fired      bool
}

// Scene owns every entity and the round state, and runs the frame loop body.
// It is not safe for concurrent use; one goroutine drives it.
type Scene struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	running bool // Cleared by a quit request
	started bool // Left the idle state
	active  bool // Round not yet over
	paused  bool

	groundScroll float64
	ticks        int // Frames since the round started

	bird     *Bird
	pipes    []*Pipe
	nextPair int
	fly      *Fly    // Single slot
	bullet   *Bullet // Single slot
	ammo     int

	pipeTimer   *core.Timer
	flyTimer    *core.Timer
	reloadTimer *core.Timer

	events FrameEvents
}

// NewScene creates a scene in the idle state.
func NewScene(cfg config.FlappyConfig, seed int64, tickRate int) *Scene {
	s := &Scene{
		cfg:         cfg,
		difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		rng:         rand.New(rand.NewSource(seed)),
		running:     true,
		active:      true,
		bird:        newBird(cfg),
		pipes:       make([]*Pipe, 0, 8),
		ammo:        cfg.Projectile.Magazine,
		pipeTimer:   core.NewTimer(cfg.PipeSpawnInterval(), tickRate),
		flyTimer:    core.NewTimer(cfg.EnemySpawnInterval(), tickRate),
		reloadTimer: core.NewTimer(cfg.ReloadInterval(), tickRate),
	}
	return s
}

// Config returns the tuning the scene runs with.
func (s *Scene) Config() config.FlappyConfig {
	return s.cfg
}

// Bird returns the player avatar.
func (s *Scene) Bird() *Bird {
	return s.bird
}

// Pipes returns the live pipes in spawn order.
func (s *Scene) Pipes() []*Pipe {
	return s.pipes
}

// Fly returns the enemy, or nil if none is alive.
func (s *Scene) Fly() *Fly {
	return s.fly
}

// Bullet returns the projectile in flight, or nil.
func (s *Scene) Bullet() *Bullet {
	return s.bullet
}

// Running reports whether a quit has not been requested.
func (s *Scene) Running() bool {
	return s.running
}

// Paused reports whether the simulation is frozen by the player.
func (s *Scene) Paused() bool {
	return s.paused
}

// Phase returns the current round lifecycle state.
func (s *Scene) Phase() Phase {
	switch {
	case !s.active:
		return PhaseTerminated
	case s.started:
		return PhaseRunning
	default:
		return PhaseIdle
	}
}

// GroundScroll returns the horizontal offset of the ground band.
func (s *Scene) GroundScroll() float64 {
	return s.groundScroll
}

// Ammo returns the rounds left in the magazine; meaningless when unlimited.
func (s *Scene) Ammo() int {
	return s.ammo
}

// Frame runs one tick: input, timers, then the fixed draw/update order.
// Draw calls go to c; pass core.Discard for headless runs.
func (s *Scene) Frame(in core.InputFrame, c core.Canvas) FrameEvents {
	if c == nil {
		c = core.Discard
	}
	s.events = FrameEvents{}
	if !s.running {
		return s.events
	}

	s.handleInput(in)
	if !s.running {
		return s.events
	}

	if s.paused {
		s.draw(c)
		return s.events
	}

	s.advanceTimers()
	if s.started {
		s.ticks++
	}

	// Order matters: later draws cover earlier ones.
	c.Blit(core.SpriteBackground, core.NewRect(0, 0, float64(s.cfg.Screen.Width), float64(s.cfg.Screen.Height)), core.BlitOptions{})

	for _, p := range s.pipes {
		p.Draw(c, s)
	}
	for _, p := range s.pipes {
		p.Update(s)
	}
	s.removeDeadPipes()

	s.bird.Draw(c, s)
	s.bird.Update(s)

	if s.fly != nil {
		s.fly.Draw(c, s)
		s.fly.Update(s)
		if s.fly.dead {
			s.fly = nil
		}
	}

	if s.bullet != nil {
		s.bullet.Draw(c, s)
		s.bullet.Update(s)
		if s.bullet.dead {
			s.bullet = nil
		}
	}

	s.drawGround(c)
	if s.started {
		s.scrollGround()
	}

	s.drawRestartPrompt(c)
	return s.events
}

// draw renders the scene without advancing it.
func (s *Scene) draw(c core.Canvas) {
	c.Blit(core.SpriteBackground, core.NewRect(0, 0, float64(s.cfg.Screen.Width), float64(s.cfg.Screen.Height)), core.BlitOptions{})
	for _, p := range s.pipes {
		p.Draw(c, s)
	}
	s.bird.Draw(c, s)
	if s.fly != nil {
		s.fly.Draw(c, s)
	}
	if s.bullet != nil {
		s.bullet.Draw(c, s)
	}
	s.drawGround(c)
	s.drawRestartPrompt(c)
}

// handleInput applies the player's actions for this frame.
func (s *Scene) handleInput(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		s.running = false
		return
	}

	if in.Has(core.ActionPause) && s.active {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}

	switch {
	case in.Has(core.ActionJump):
		switch {
		case !s.active:
			s.Restart()
		case !s.started:
			s.started = true
			s.bird.Flap(s.cfg.Physics.FlapImpulse)
		default:
			s.bird.Flap(s.cfg.Physics.FlapImpulse)
		}
	case in.Has(core.ActionRestart) && !s.active:
		s.Restart()
	}

	if in.Has(core.ActionFire) && s.cfg.Enemy.Enabled {
		s.events.Fired = s.fire()
	}
}

// advanceTimers moves the periodic timers by one frame and handles what fired.
func (s *Scene) advanceTimers() {
	interval := s.difficulty.SpawnInterval(s.cfg.PipeSpawnInterval(), s.bird.Score, s.ticks)
	s.pipeTimer.SetInterval(interval)

	for range s.pipeTimer.Tick() {
		if s.started && (s.active || !s.cfg.Enemy.Enabled) {
			s.spawnPipes()
		}
	}

	if !s.cfg.Enemy.Enabled {
		return
	}

	for range s.flyTimer.Tick() {
		if s.started && s.active {
			s.spawnFly()
		}
	}

	for range s.reloadTimer.Tick() {
		if s.ammo < s.cfg.Projectile.Magazine {
			s.ammo++
		}
	}
}

// pipeSpeed returns the scroll speed for the current difficulty.
func (s *Scene) pipeSpeed() float64 {
	return s.difficulty.Speed(s.cfg.Pipes.Speed, s.bird.Score, s.ticks)
}

// endRound terminates the round. Only the first call per round counts.
func (s *Scene) endRound(reason EndReason) {
	if !s.active {
		return
	}
	s.active = false
	s.events.RoundEnded = true
	s.events.EndReason = reason
}

// Restart clears every obstacle, enemy and bullet and returns the bird to
// its rest position in the idle state.
func (s *Scene) Restart() {
	for i := range s.pipes {
		s.pipes[i] = nil
	}
	s.pipes = s.pipes[:0]
	s.fly = nil
	s.bullet = nil
	s.ammo = s.cfg.Projectile.Magazine

	s.bird.reset(s.cfg)
	s.active = true
	s.started = false
	s.paused = false
	s.groundScroll = 0
	s.ticks = 0

	s.events.Restarted = true
}

// scrollGround advances the looping ground offset.
func (s *Scene) scrollGround() {
	if s.active {
		s.groundScroll -= s.cfg.Ground.ScrollSpeed
	}
	if math.Abs(s.groundScroll) > s.cfg.Ground.ScrollWrap {
		s.groundScroll = 0
	}
}

// drawGround renders the ground band, wide enough to cover the scroll offset.
func (s *Scene) drawGround(c core.Canvas) {
	w := float64(s.cfg.Screen.Width) + s.cfg.Ground.ScrollWrap + s.cfg.Ground.ScrollSpeed
	c.Blit(core.SpriteGround, core.NewRect(s.groundScroll, s.cfg.GroundY(), w, s.cfg.Ground.Height), core.BlitOptions{})
}

// drawRestartPrompt shows the restart button once the round is over.
func (s *Scene) drawRestartPrompt(c core.Canvas) {
	if s.active {
		return
	}
	dst := core.RectFromCenter(float64(s.cfg.Screen.Width/2), float64(s.cfg.Screen.Height)/2, restartPromptW, restartPromptH)
	c.Blit(core.SpriteRestart, dst, core.BlitOptions{})
}
