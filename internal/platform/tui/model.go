package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/audio"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Session carries what one player's run needs. A local run has one; the
// SSH server builds one per connection.
type Session struct {
	Store      *storage.Store // Nil disables score saving
	Player     string
	Logger     *log.Logger
	Sound      audio.Player
	Clock      core.Clock
	HoldWindow time.Duration
	Options    registry.Options // Passed to game factories
}

// withDefaults fills the optional fields.
func (s Session) withDefaults() Session {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Sound == nil {
		s.Sound = audio.Nop{}
	}
	if s.Clock == nil {
		s.Clock = core.SystemClock{}
	}
	if s.Options.Clock == nil {
		s.Options.Clock = s.Clock
	}
	return s
}

// GameModel runs one game variant with restart and back-to-menu support.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	session    Session
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	hold       *core.HoldTracker
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool
	standalone bool // No menu to go back to; back quits
}

// NewGameModel creates a game model. A zero seed picks one from the clock.
func NewGameModel(game registry.Game, session Session, cfg core.RuntimeConfig) GameModel {
	session = session.withDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = session.Clock.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		session:    session,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		hold:       core.NewHoldTracker(session.HoldWindow),
		keyMapper:  NewKeyMapper(),
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.session.Logger.Info("game started", "game", m.game.ID(), "player", m.session.Player, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The world scales to the screen, so a resize never restarts the game.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.hold, m.session.Clock) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused || !m.gameState.Started) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = m.session.Clock.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.hold.Release()
		m.inputFrame.Clear()
		m.session.Logger.Info("game restarted", "game", m.game.ID(), "player", m.session.Player)
		return m, tickCmd(m.config.TickRate)
	}

	m.hold.Apply(&m.inputFrame, m.session.Clock.Now())
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		m.session.Logger.Debug("event", "kind", e.Kind, "score", e.Score)
		m.session.Sound.Play(e.Kind)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) saveScore() {
	score := m.gameState.Score
	m.session.Logger.Info("game over", "game", m.game.ID(), "player", m.session.Player, "score", score)
	if m.session.Store == nil {
		return
	}
	if _, err := m.session.Store.SaveScore(m.game.ID(), m.session.Player, score); err != nil {
		m.session.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current frame as text under ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.session.Clock.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.session.Logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last stepped game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one variant in the local terminal until the player quits or
// goes back.
func Run(game registry.Game, session Session, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, session, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
