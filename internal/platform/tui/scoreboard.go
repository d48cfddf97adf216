package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/campus-runner/internal/games/runner"
	"github.com/vovakirdan/campus-runner/internal/storage"
)

const maxRuns = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardFootStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// scoreView is one run listing. An empty profile lists every profile.
type scoreView struct {
	title   string
	profile string
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next view")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev view")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}

// ScoreboardModel shows the run history, globally or for one profile.
type ScoreboardModel struct {
	store     *storage.Store
	views     []scoreView
	view      int
	runs      []storage.RunEntry
	stats     *storage.RunStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard. A non-empty profile adds a
// personal view next to the global one. store may be nil.
func NewScoreboardModel(store *storage.Store, profile string, width, height int) ScoreboardModel {
	views := []scoreView{{title: "All players"}}
	if profile != "" {
		views = append(views, scoreView{title: "My runs", profile: profile})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).
		BorderForeground(lipgloss.Color("240"))
	styles.Selected = styles.Selected.Bold(false).
		Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	m := ScoreboardModel{
		store:  store,
		views:  views,
		table:  table.New(table.WithFocused(true), table.WithStyles(styles)),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.layout()
	m.load()
	return m
}

// layout sizes the table columns to the terminal.
func (m *ScoreboardModel) layout() {
	player := 12
	// Columns plus cell padding, frame border and frame padding
	if spare := m.width - (5 + 12 + 16 + 7 + 4 + 12) - 6*2 - 4; spare > 0 {
		player += min(spare, 12)
	}

	m.table.SetColumns([]table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: player},
		{Title: "Character", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Year", Width: 4},
		{Title: "Date", Width: 12},
	})
	// Title, tabs, frame, footer and help
	m.table.SetHeight(max(m.height-10, 3))
	m.help.Width = m.width
}

// load fetches the runs of the current view.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		v := m.views[m.view]
		if runs, err := m.store.TopRuns(v.profile, maxRuns); err == nil {
			m.runs = runs
		}
		if v.profile != "" {
			if stats, err := m.store.Stats(v.profile); err == nil {
				m.stats = stats
			}
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		character := string(r.Run.Character)
		if c, ok := runner.CharacterByID(r.Run.Character); ok {
			character = c.Name
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			r.Profile,
			character,
			strconv.Itoa(r.Run.Score),
			strconv.Itoa(r.Run.Semester + 1),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Back and quit both end the program when the
// scoreboard runs on its own; a session checks IsGoingBack instead.
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
		case key.Matches(msg, m.keys.Next):
			m.view = (m.view + 1) % len(m.views)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.view = (m.view + len(m.views) - 1) % len(m.views)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tabs := make([]string, len(m.views))
	for i, v := range m.views {
		style := boardTabStyle
		if i == m.view {
			style = boardActiveTab
		}
		tabs[i] = style.Render(v.title)
	}

	body := boardEmptyStyle.Render("No runs recorded yet.\nGo to class and set a high score!")
	if len(m.runs) > 0 {
		body = m.table.View()
	}

	sections := []string{
		boardTitleStyle.Render("HIGH SCORES"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		boardFrameStyle.Render(body),
	}
	if m.stats != nil && m.stats.Runs > 0 {
		sections = append(sections, boardFootStyle.Render(fmt.Sprintf(
			"%d runs  best %d  average %.0f  knowledge earned %d",
			m.stats.Runs, m.stats.HighScore, m.stats.AvgScore, m.stats.Knowledge)))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

// IsGoingBack reports whether the user asked to leave the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// Returns true if the user went back rather than quitting.
func RunScoreboard(store *storage.Store, profile string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, profile, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
