package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

const maxScores = 100 // Rows loaded per variant

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next variant"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the high-score table for each variant.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard opened on the given variant, or
// the first one when gameID is empty or unknown.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.gameCursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable builds the table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	playerW := 16
	if spare := m.width - 4 - 6 - 8 - 14 - 8; spare > playerW {
		playerW = min(spare, 24)
	}
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Player", Width: playerW},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load refreshes scores and stats for the selected variant.
func (m *ScoreboardModel) load() {
	m.scores = nil
	m.stats = nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.gameCursor].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			player,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycle(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES  <  %s  >", m.games[m.gameCursor].Title)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	if m.stats != nil && m.stats.GamesCount > 0 {
		line := fmt.Sprintf("%d games  |  best %d  |  average %.1f  |  last played %s",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format("Jan 02 15:04"))
		b.WriteString(centerText(dimStyle.Render(line), m.width))
	}
	b.WriteString("\n\n")

	var content string
	if len(m.scores) == 0 {
		content = dimStyle.Italic(true).Padding(1, 4).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
	} else {
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(content)))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
