package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 108, ScreenH: 61, TickRate: 60, Seed: 1}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelSavesFinishedRound(t *testing.T) {
	store := openTestStore(t)
	game := flappy.NewWithConfig(config.DefaultFlappyConfig())
	m := NewModel(game, store, nil, testRuntime())

	m = update(t, m, runeKey(' '))
	m = update(t, m, TickMsg{})
	game.Scene().Bird().Score = 3

	// Left alone, the bird drops to the ground
	for i := 0; i < 300 && !m.gameState.GameOver; i++ {
		m = update(t, m, TickMsg{})
	}
	if !m.gameState.GameOver {
		t.Fatal("round never ended")
	}

	scores, err := store.TopScores(game.ID(), 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 3 || scores[0].EndReason != "bounds" {
		t.Fatalf("saved rounds = %+v, expected one bounds round scoring 3", scores)
	}
	if scores[0].Frames == 0 {
		t.Error("round length not recorded")
	}
	if m.highScore != 3 {
		t.Errorf("high score = %d, expected 3", m.highScore)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	game := flappy.NewWithConfig(config.DefaultFlappyConfig())
	m := NewModel(game, store, nil, testRuntime())

	m = update(t, m, runeKey(' '))
	for i := 0; i < 300 && !m.gameState.GameOver; i++ {
		m = update(t, m, TickMsg{})
	}

	if high, _ := store.HighScore(game.ID()); high != 0 {
		t.Errorf("zero-point round saved as %d", high)
	}
}

func TestModelViewStatusLine(t *testing.T) {
	tests := []struct {
		name     string
		enemies  bool
		wantFire bool
	}{
		{"classic", false, false},
		{"shooter", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultFlappyConfig()
			cfg.Enemy.Enabled = tt.enemies
			m := NewModel(flappy.NewWithConfig(cfg), nil, nil, testRuntime())

			view := m.View()
			lines := strings.Split(view, "\n")
			if len(lines) != 61 {
				t.Fatalf("view has %d lines, expected 60 playfield rows and a status line", len(lines))
			}
			status := lines[len(lines)-1]
			if !strings.Contains(status, "Score 0") || !strings.Contains(status, "flap") {
				t.Errorf("status line = %q", status)
			}
			if got := strings.Contains(status, "fire"); got != tt.wantFire {
				t.Errorf("fire shown = %v, expected %v", got, tt.wantFire)
			}
		})
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	game := flappy.NewWithConfig(config.DefaultFlappyConfig())
	m := NewModel(game, nil, nil, testRuntime())
	m = update(t, m, runeKey(' '))
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 54, Height: 31})
	if m.screen.Width() != 54 || m.screen.Height() != 31 {
		t.Fatalf("screen = %dx%d, expected 54x31", m.screen.Width(), m.screen.Height())
	}
	if !game.State().Started {
		t.Error("resize should not reset a running round")
	}
	if got := len(strings.Split(m.View(), "\n")); got != 31 {
		t.Errorf("view has %d lines after resize, expected 31", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(flappy.NewWithConfig(config.DefaultFlappyConfig()), nil, nil, testRuntime())

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.View(); v != "" {
		t.Errorf("view after quit = %q, expected empty", v)
	}
}

func TestScoreboardShowsRounds(t *testing.T) {
	store := openTestStore(t)
	store.SaveRound(storage.Round{GameID: flappy.IDClassic, Score: 9, EndReason: "collision", Frames: 900})
	store.SaveRound(storage.Round{GameID: flappy.IDClassic, Score: 4, EndReason: "bounds", Frames: 300})

	m := NewScoreboardModel(store, 100, 30, 60)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("table has %d rows, expected 2", len(rows))
	}
	if rows[0][1] != "9" || rows[0][2] != "collision" || rows[0][3] != "15.0s" {
		t.Errorf("first row = %v", rows[0])
	}

	view := m.View()
	if !strings.Contains(view, "Flappy Bird") || !strings.Contains(view, "2 rounds") {
		t.Errorf("scoreboard view missing title or stats:\n%s", view)
	}
}

func TestScoreboardSwitchesBuilds(t *testing.T) {
	store := openTestStore(t)
	store.SaveRound(storage.Round{GameID: flappy.IDClassic, Score: 9, EndReason: "collision", Frames: 900})
	store.SaveRound(storage.Round{GameID: flappy.IDShooter, Score: 3, EndReason: "bounds", Frames: 120})
	store.SaveRound(storage.Round{GameID: flappy.IDShooter, Score: 7, EndReason: "collision", Frames: 240})

	m := NewScoreboardModel(store, 100, 30, 60)
	step := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(ScoreboardModel)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][1] != "7" {
		t.Fatalf("after tab rows = %v, expected the shooter build's two rounds", rows)
	}

	// wraps around in both directions
	step(tea.KeyMsg{Type: tea.KeyRight})
	if m.builds[m.current].ID != flappy.IDClassic {
		t.Errorf("right from last build selected %q", m.builds[m.current].ID)
	}
	step(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.builds[m.current].ID != flappy.IDShooter {
		t.Errorf("shift+tab from first build selected %q", m.builds[m.current].ID)
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() || m.View() != "" {
		t.Error("esc should return to the menu")
	}
}
