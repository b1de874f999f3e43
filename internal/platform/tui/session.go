package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel runs menu, game and scoreboard inside one program:
// menu -> game -> menu, or menu -> scores -> menu.
// Sub-models quit their own programs when run alone; here those quits
// become view switches.
type SessionModel struct {
	session    Session
	config     core.RuntimeConfig
	view       sessionView
	menu       MenuModel
	gameModel  *GameModel
	scoreboard ScoreboardModel
	lastGameID string
	quitting   bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(session Session, cfg core.RuntimeConfig) SessionModel {
	session = session.withDefaults()
	return SessionModel{
		session: session,
		config:  cfg,
		menu:    NewMenuModel(session.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stale tick from a game that just ended.
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.session.Store, m.lastGameID, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		game, err := registry.Create(id, m.session.Options)
		if err != nil {
			m.session.Logger.Error("cannot create game", "game", id, "error", err)
			m.menu = NewMenuModel(m.session.Store, m.config)
			return m, nil
		}

		cfg := m.config
		cfg.Seed = 0
		gameModel := NewGameModel(game, m.session, cfg)
		m.gameModel = &gameModel
		m.lastGameID = id
		m.view = viewGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// toMenu rebuilds the menu so best scores are current.
func (m *SessionModel) toMenu() {
	m.view = viewMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.session.Store, m.config)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(session Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewSessionModel(session, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
