package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewHistory
)

// SessionModel manages the full session flow: menu -> level -> menu, with
// the run history reachable from the menu. Each session owns its own
// simulation.
type SessionModel struct {
	deps     Deps
	config   core.RuntimeConfig
	username string
	view     sessionView
	menu     MenuModel
	game     *Model
	history  *HistoryModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		deps:     deps,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewHistory:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		h := NewHistoryModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.history = &h
		m.view = viewHistory
		return m, h.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()
		level, err := registry.Create(selected.LevelID)
		if err != nil {
			// Menu only shows registered levels
			return m.resetMenu(), nil
		}

		cfg := m.config
		cfg.Seed = m.deps.Config.Simulation.Seed
		game, err := NewModel(level, m.deps, cfg, m.username)
		if err != nil {
			if m.deps.Logger != nil {
				m.deps.Logger.Error("cannot start level", "level", selected.LevelID, "err", err)
			}
			return m.resetMenu(), nil
		}
		m.game = &game
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.resetMenu(), nil
	}

	return m, cmd
}

// updateHistory handles updates when browsing runs.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if h, ok := newModel.(HistoryModel); ok {
		m.history = &h
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		return m.resetMenu(), nil
	}

	return m, cmd
}

func (m SessionModel) resetMenu() SessionModel {
	m.view = viewMenu
	m.game = nil
	m.history = nil
	m.menu = NewMenuModel(m.config)
	return m
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewHistory:
		return m.history.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(deps Deps, cfg core.RuntimeConfig, username string) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg, username),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := final.(SessionModel); ok && sm.game != nil {
		sm.game.finish()
	}
	return nil
}
