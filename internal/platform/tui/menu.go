package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int // Best recorded score, 0 without a store
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a menu listing every registered variant.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("D O D G E   T H E   B L O C K S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Title)
		if item.Best > 0 {
			line += fmt.Sprintf("  (best %d)", item.Best)
		}
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(m.items[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within the given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
