package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

// Registered game IDs.
const (
	IDClassic = "flappy"
	IDShooter = "flappy_fly"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// Game adapts a Scene to the arcade's Game interface.
type Game struct {
	id      string
	title   string
	enemies bool
	cfg     *config.FlappyConfig // Explicit config; nil means load on Reset
	scene   *Scene
	frame   core.DisplayList // Draw calls of the last tick
	state   core.GameState
}

// New creates the classic game: pipes only.
func New() *Game {
	return &Game{id: IDClassic, title: "Flappy Bird"}
}

// NewShooter creates the shooter build with the fly and bullets.
func NewShooter() *Game {
	return &Game{id: IDShooter, title: "Flappy Bird: Fly Hunt", enemies: true}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
// The enemy toggle in cfg selects the build.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	g := New()
	if cfg.Enemy.Enabled {
		g = NewShooter()
	}
	g.cfg = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh scene.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	var cfg config.FlappyConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		loaded, _, err := config.LoadFlappy(configPath)
		if err != nil {
			loaded = config.DefaultFlappyConfig()
		}
		config.ApplyFlappyPreset(&loaded, difficultyPreset)
		cfg = loaded
	}
	cfg.Enemy.Enabled = g.enemies

	g.scene = NewScene(cfg, runtime.Seed, runtime.TickRate)
	g.frame.Reset()
	g.scene.draw(&g.frame)
	g.state = g.stateFromScene()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame.Reset()
	ev := g.scene.Frame(in, &g.frame)
	g.state = g.stateFromScene()

	return core.StepResult{
		State:      g.state,
		RoundEnded: ev.RoundEnded,
		EndReason:  string(ev.EndReason),
		Frames:     g.scene.ticks,
		Restarted:  ev.Restarted,
	}
}

// Draw replays the last tick's draw calls.
func (g *Game) Draw(c core.Canvas) {
	g.frame.Replay(c)
	if g.state.Paused {
		w, h := g.Playfield()
		c.Text("PAUSED", float64(w)/2, float64(h)/2, core.ColorBrightYellow)
	}
}

// Enemies reports whether this is the shooter build.
func (g *Game) Enemies() bool {
	return g.enemies
}

// Playfield returns the logical size of the scene.
func (g *Game) Playfield() (int, int) {
	if g.scene == nil {
		d := config.DefaultFlappyConfig()
		return d.Screen.Width, d.Screen.Height
	}
	return g.scene.cfg.Screen.Width, g.scene.cfg.Screen.Height
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Scene exposes the underlying scene to frontends and tests.
func (g *Game) Scene() *Scene {
	return g.scene
}

func (g *Game) stateFromScene() core.GameState {
	return core.GameState{
		Score:    g.scene.bird.Score,
		Started:  g.scene.started,
		GameOver: !g.scene.active,
		Paused:   g.scene.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDShooter, func() registry.Game {
		return NewShooter()
	})
}
