package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/campus-runner/internal/core"
	"github.com/vovakirdan/campus-runner/internal/games/runner"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuInfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	menuOKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// MenuModel is the character select screen.
type MenuModel struct {
	progress       *runner.Progression
	characters     []runner.Character
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	message        string
	messageErr     bool
	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates a character menu over progress.
func NewMenuModel(progress *runner.Progression, cfg core.RuntimeConfig) MenuModel {
	chars := runner.Characters()

	cursor := 0
	for i, c := range chars {
		if c.ID == progress.Selected() {
			cursor = i
		}
	}

	return MenuModel{
		progress:   progress,
		characters: chars,
		cursor:     cursor,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.message = ""

	case MenuActionDown:
		if m.cursor < len(m.characters)-1 {
			m.cursor++
		}
		m.message = ""

	case MenuActionUnlock:
		m.unlock()

	case MenuActionSelect:
		c := m.characters[m.cursor]
		if !m.progress.Progress().IsUnlocked(c.ID) {
			m.unlock()
			return m, nil
		}
		if err := m.progress.Select(c.ID); err != nil {
			m.setError(err)
			return m, nil
		}
		m.started = true

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// unlock tries to unlock the character under the cursor.
func (m *MenuModel) unlock() {
	c := m.characters[m.cursor]
	if m.progress.Progress().IsUnlocked(c.ID) {
		m.message, m.messageErr = fmt.Sprintf("%s is already unlocked", c.Name), false
		return
	}
	if err := m.progress.Unlock(c.ID); err != nil {
		m.setError(err)
		return
	}
	m.message, m.messageErr = fmt.Sprintf("Unlocked %s!", c.Name), false
}

func (m *MenuModel) setError(err error) {
	m.messageErr = true
	switch {
	case errors.Is(err, runner.ErrInsufficientKnowledge):
		c := m.characters[m.cursor]
		m.message = fmt.Sprintf("Need %d knowledge to unlock %s", c.UnlockCost, c.Name)
	case errors.Is(err, runner.ErrLocked):
		m.message = "That character is locked"
	default:
		m.message = err.Error()
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	progress := m.progress.Progress()

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("C A M P U S   R U N N E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuInfoStyle.Render(
		fmt.Sprintf("Knowledge: %d   Best: %d", progress.Knowledge, progress.HighScore)), m.width))
	b.WriteString("\n\n")

	for i, c := range m.characters {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		status := "unlocked"
		if !progress.IsUnlocked(c.ID) {
			status = fmt.Sprintf("locked, %d knowledge", c.UnlockCost)
		}
		line := fmt.Sprintf("%s%-18s %-22s [%s]", cursor, c.Name, c.Perk, status)

		switch {
		case i == m.cursor:
			line = menuCursorStyle.Render(line)
		case !progress.IsUnlocked(c.ID):
			line = menuLockedStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.message != "" {
		style := menuOKStyle
		if m.messageErr {
			style = menuErrorStyle
		}
		b.WriteString(centerText(style.Render(m.message), m.width))
	}
	b.WriteString("\n\n")

	controls := "Up/Down: Choose  |  Enter: Play  |  U: Unlock  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuInfoStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Started reports whether the player picked a character to run with.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
