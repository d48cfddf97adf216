package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/campus-runner/internal/config"
	"github.com/vovakirdan/campus-runner/internal/core"
	"github.com/vovakirdan/campus-runner/internal/games/runner"
)

// CuePlayer plays sound cues for simulation events.
type CuePlayer interface {
	Play(events ...core.Event)
}

type silentPlayer struct{}

func (silentPlayer) Play(...core.Event) {}

// GameModel runs one runner game inside Bubble Tea.
type GameModel struct {
	game       *runner.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	latch      *runner.CrouchLatch
	gesture    *runner.GestureTracker
	audio      CuePlayer
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. audio may be nil.
func NewGameModel(game *runner.Game, cfg core.RuntimeConfig, audio CuePlayer) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	// Zero falls back to the simulation default
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if audio == nil {
		audio = silentPlayer{}
	}

	input := config.DefaultRunnerConfig().Input
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		latch:      runner.NewCrouchLatch(float64(input.CrouchHoldMS)),
		gesture:    runner.NewGestureTracker(input.DragThreshold),
		audio:      audio,
	}
}

// Init starts the run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Input thresholds follow the loaded configuration
	input := m.game.Config().Input
	*m.latch = *runner.NewCrouchLatch(float64(input.CrouchHoldMS))
	*m.gesture = *runner.NewGestureTracker(input.DragThreshold)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// The field is scaled to the screen, so a resize never resets the run
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

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionCrouchStart:
		if a := m.latch.Press(); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
	case core.ActionJump:
		// A jump cancels a held crouch
		if a := m.latch.Release(); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		m.inputFrame.Set(action)
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart, core.ActionContinue:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone, core.ActionConfirm:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse feeds pointer drags to the gesture tracker.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := m.fieldY(msg.Y)

	var action core.Action
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			// The release of the previous drag may have been lost
			if m.gesture.Crouching() {
				m.inputFrame.Set(core.ActionCrouchEnd)
			}
			m.gesture.Start(y)
		}
	case tea.MouseActionMotion:
		action = m.gesture.Move(y)
	case tea.MouseActionRelease:
		action = m.gesture.End()
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// fieldY converts a screen row to a field y coordinate.
func (m GameModel) fieldY(row int) float64 {
	rows := max(m.screen.Height()-1, 1)
	return float64(row-1) * m.game.Config().Field.Height / float64(rows)
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	dtMS := 1000 / float64(m.config.TickRate)
	if !m.gameState.Paused {
		if a := m.latch.Advance(dtMS); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if len(result.Events) > 0 {
		m.audio.Play(result.Events...)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}
