// Package window runs a game in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// keyBindings maps keyboard keys to game actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyControlLeft, core.ActionFire},
	{ebiten.KeyF, core.ActionFire},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyQ, core.ActionQuit},
}

// mapKeys builds the input frame from the keys pressed this tick.
func mapKeys(justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		if justPressed(b.key) {
			in.Set(b.action)
		}
	}
	return in
}

// Options configure the window.
type Options struct {
	Scale float64 // Window size relative to the playfield
}

// Window implements ebiten.Game around a registry game.
type Window struct {
	game      registry.Game
	store     *storage.Store
	logger    *log.Logger
	canvas    *ImageCanvas
	highScore int
}

// New resets game and wraps it for Ebitengine. store and logger may be nil.
func New(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(cfg)

	w := &Window{
		game:   game,
		store:  store,
		logger: logger,
		canvas: NewImageCanvas(),
	}
	if store != nil {
		best, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not read high score", "game", game.ID(), "error", err)
		}
		w.highScore = best
	}
	return w
}

// Update runs one simulation tick.
func (w *Window) Update() error {
	in := mapKeys(inpututil.IsKeyJustPressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := w.game.Step(in)
	if result.RoundEnded {
		w.recordRound(result)
	}
	return nil
}

// recordRound logs a finished round and saves its score.
func (w *Window) recordRound(result core.StepResult) {
	score := result.State.Score
	w.logger.Info("round ended", "game", w.game.ID(), "score", score, "reason", result.EndReason, "frames", result.Frames)

	w.highScore = max(w.highScore, score)
	if w.store == nil || score == 0 {
		return
	}
	_, err := w.store.SaveRound(storage.Round{
		GameID:    w.game.ID(),
		Score:     score,
		EndReason: result.EndReason,
		Frames:    result.Frames,
	})
	if err != nil {
		w.logger.Warn("could not save score", "game", w.game.ID(), "error", err)
	}
}

// Draw presents the last tick's frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.SetTarget(screen)
	w.game.Draw(w.canvas)

	if st := w.game.State(); st.GameOver && w.highScore > 0 {
		pw, _ := w.game.Playfield()
		w.canvas.Text("best "+strconv.Itoa(w.highScore), float64(pw)/2, 100, core.ColorBrightWhite)
	}
}

// Layout keeps the logical screen at the playfield size; Ebitengine scales it
// to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.game.Playfield()
}

// Run opens a window and plays game until the window closes or the player quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, store, logger, cfg)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	pw, ph := game.Playfield()
	ebiten.SetWindowSize(int(float64(pw)*scale), int(float64(ph)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	w.logger.Info("opening window", "game", game.ID(), "width", pw, "height", ph, "tps", cfg.TickRate)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
