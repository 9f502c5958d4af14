package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

const boardRows = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = boardTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardFrame      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardMuted      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type boardKeys struct {
	Scroll key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Switch, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var scoreboardKeys = boardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
	Switch: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab/←/→", "switch build")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel lists the recorded rounds of one build at a time.
type ScoreboardModel struct {
	store    *storage.Store
	builds   []registry.GameInfo
	current  int
	tickRate int

	rounds []storage.ScoreEntry
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	width int

	quitting  bool
	goingBack bool
}

func NewScoreboardModel(store *storage.Store, width, height, tickRate int) ScoreboardModel {
	if tickRate <= 0 {
		tickRate = 60
	}
	m := ScoreboardModel{
		store:    store,
		builds:   registry.List(),
		tickRate: tickRate,
		help:     help.New(),
		width:    width,
	}
	m.table = newRoundTable(height)
	m.reload()
	return m
}

func newRoundTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 7},
			{Title: "Ended", Width: 10},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// reload fetches the rounds and aggregates of the current build.
func (m *ScoreboardModel) reload() {
	m.rounds, m.stats = nil, nil
	if m.store != nil && len(m.builds) > 0 {
		id := m.builds[m.current].ID
		m.rounds, _ = m.store.TopScores(id, boardRows)
		m.stats, _ = m.store.GetGameStats(id)
	}

	rows := make([]table.Row, 0, len(m.rounds))
	for i, r := range m.rounds {
		ended := r.EndReason
		if ended == "" {
			ended = "-"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprint(r.Score),
			ended,
			fmt.Sprintf("%.1fs", float64(r.Frames)/float64(m.tickRate)),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, scoreboardKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, scoreboardKeys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, scoreboardKeys.Switch):
			if n := len(m.builds); n > 1 {
				step := 1
				if s := msg.String(); s == "shift+tab" || s == "left" || s == "h" {
					step = n - 1
				}
				m.current = (m.current + step) % n
				m.reload()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-9, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tabs := make([]string, len(m.builds))
	for i, b := range m.builds {
		if i == m.current {
			tabs[i] = boardActiveTab.Render(b.Title)
		} else {
			tabs[i] = boardTabStyle.Render(b.Title)
		}
	}

	body := m.table.View()
	if len(m.rounds) == 0 {
		body = boardMuted.Italic(true).Padding(1, 4).Render("No rounds recorded yet.")
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n")
	if m.stats != nil && m.stats.GamesCount > 0 {
		line := fmt.Sprintf("%d rounds  |  avg %.1f  |  %d crashes", m.stats.GamesCount, m.stats.AvgScore, m.stats.Collisions)
		b.WriteString(centerText(boardMuted.Render(line), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(boardFrame.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(boardMuted.Render(m.help.View(scoreboardKeys)))
	return b.String()
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard until the player leaves it.
// goBack is false when the player quit outright.
func RunScoreboard(store *storage.Store, width, height, tickRate int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height, tickRate), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
