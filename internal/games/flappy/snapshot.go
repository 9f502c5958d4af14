package flappy

// Snapshot captures the complete scene state for determinism testing.
type Snapshot struct {
	Phase        Phase
	Paused       bool
	Ticks        int
	Score        int
	BirdX        float64
	BirdY        float64
	BirdVelocity float64
	BirdFrame    float64
	PassedPipe   bool
	Pipes        int
	PipeXs       []float64
	HasFly       bool
	FlyFalling   bool
	HasBullet    bool
	Ammo         int
	GroundScroll float64
}

// Snapshot returns the current scene state.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        s.Phase(),
		Paused:       s.paused,
		Ticks:        s.ticks,
		Score:        s.bird.Score,
		BirdX:        s.bird.Rect.X,
		BirdY:        s.bird.Rect.Y,
		BirdVelocity: s.bird.Velocity,
		BirdFrame:    s.bird.Frame,
		PassedPipe:   s.bird.PassedPipe,
		Pipes:        len(s.pipes),
		PipeXs:       make([]float64, 0, len(s.pipes)),
		HasFly:       s.fly != nil,
		HasBullet:    s.bullet != nil,
		Ammo:         s.ammo,
		GroundScroll: s.groundScroll,
	}
	for _, p := range s.pipes {
		snap.PipeXs = append(snap.PipeXs, p.Rect.X)
	}
	if s.fly != nil {
		snap.FlyFalling = s.fly.Falling
	}
	return snap
}
