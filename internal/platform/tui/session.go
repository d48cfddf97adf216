package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/campus-runner/internal/core"
	"github.com/vovakirdan/campus-runner/internal/games/runner"
	"github.com/vovakirdan/campus-runner/internal/storage"
)

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the run history one key away. Used for local play and SSH sessions.
type SessionModel struct {
	game      *runner.Game
	store     *storage.Store
	profile   string
	config    core.RuntimeConfig
	audio     CuePlayer
	screen    sessionScreen
	menu      MenuModel
	gameModel *GameModel
	scores    *ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a session around game. store may be nil, in which
// case the scoreboard stays empty.
func NewSessionModel(game *runner.Game, store *storage.Store, profile string, cfg core.RuntimeConfig, audio CuePlayer) SessionModel {
	return SessionModel{
		game:    game,
		store:   store,
		profile: profile,
		config:  cfg,
		audio:   audio,
		menu:    NewMenuModel(game.Progression(), cfg),
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

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stale tick from a finished run
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
		scores := NewScoreboardModel(m.store, m.profile, m.config.ScreenW, m.config.ScreenH)
		m.scores = &scores
		m.screen = screenScores
		return m, scores.Init()

	case m.menu.Started():
		gameModel := NewGameModel(m.game, m.config, m.audio)
		m.gameModel = &gameModel
		m.screen = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
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
		m.gameModel = nil
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// The scoreboard quits its own program on back; swallow that here
	if m.scores.IsGoingBack() {
		m.scores = nil
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu reloads progress and shows a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.game.Progression().Reload()
	m.menu = NewMenuModel(m.game.Progression(), m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Run runs a local session until the player quits.
func Run(game *runner.Game, store *storage.Store, profile string, cfg core.RuntimeConfig, audio CuePlayer) error {
	model := NewSessionModel(game, store, profile, cfg, audio)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
