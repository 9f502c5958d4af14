package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// statusRows is the number of rows below the playfield.
const statusRows = 1

var (
	statusScoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// enemyGame is implemented by games whose fire key does something.
type enemyGame interface {
	Enemies() bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *CellCanvas
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	highScore  int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := NewKeyMapper()
	if eg, ok := game.(enemyGame); ok {
		keys.SetFireEnabled(eg.Enemies())
	} else {
		keys.SetFireEnabled(false)
	}

	game.Reset(cfg)
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH, statusRows+1))
	playW, playH := game.Playfield()

	m := Model{
		game:       game,
		screen:     screen,
		canvas:     NewCellCanvas(screen, playW, playH, screen.Height()-statusRows),
		store:      store,
		logger:     logger,
		keys:       keys,
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
	m.help.Width = cfg.ScreenW

	if store != nil {
		best, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not read high score", "game", game.ID(), "error", err)
		}
		m.highScore = best
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize fits the playfield to the new terminal size.
// The simulation keeps its own pixel playfield, so the round carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height, statusRows+1))

	playW, playH := m.game.Playfield()
	m.canvas.Resize(playW, playH, m.screen.Height()-statusRows)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.RoundEnded {
		m.recordRound(result)
	}
	if result.Restarted {
		m.logger.Debug("round restarted", "game", m.game.ID())
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRound logs a finished round and saves its score.
func (m *Model) recordRound(result core.StepResult) {
	score := result.State.Score
	m.logger.Info("round ended", "game", m.game.ID(), "score", score, "reason", result.EndReason, "frames", result.Frames)

	if score > m.highScore {
		m.highScore = score
	}
	if m.store == nil || score == 0 {
		return
	}

	_, err := m.store.SaveRound(storage.Round{
		GameID:    m.game.ID(),
		Score:     score,
		EndReason: result.EndReason,
		Frames:    result.Frames,
	})
	if err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("score saved", "game", m.game.ID(), "score", score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// render draws the last game frame into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	m.game.Draw(m.canvas)
}

// View renders the playfield followed by the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	rows := m.screen.Height() - statusRows

	score := statusScoreStyle.Render(fmt.Sprintf(" Score %d  Best %d ", m.gameState.Score, max(m.highScore, m.gameState.Score)))
	status := score + statusHelpStyle.Render(m.help.View(m.keys.Keys()))

	return renderRows(m.screen, rows) + "\n" + status
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
