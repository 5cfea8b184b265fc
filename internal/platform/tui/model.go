package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/games/paddleball"
)

// helpRows is the number of terminal rows reserved below the arena.
const helpRows = 1

// Model is the Bubble Tea model for a paddleball game.
type Model struct {
	game          *paddleball.Game
	screen        *core.Screen
	keys          KeyMap
	help          help.Model
	config        core.RuntimeConfig
	screenshotDir string
	notice        string
	ticking       bool
	quitting      bool
}

// NewModel creates a model for a game that has already been Reset with cfg.
func NewModel(game *paddleball.Game, cfg core.RuntimeConfig) Model {
	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		config:        cfg,
		screenshotDir: defaultScreenshotDir(),
		ticking:       true,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies input immediately, independent of the tick loop.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.notice = "screenshot failed: " + err.Error()
		} else {
			m.notice = "saved " + path
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.Handle(action) && !m.ticking {
		// A finished game stopped the loop; restart it for the new round.
		m.ticking = true
		m.notice = ""
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// handleResize resizes the screen buffer. The arena follows the terminal
// only until the first tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, msg.Height-helpRows)

	err := m.game.Resize(msg.Width, msg.Height-helpRows)
	switch {
	case err == nil, errors.Is(err, paddleball.ErrArenaLocked):
	default:
		m.notice = "terminal too small"
	}
	return m, nil
}

// handleTick advances the simulation and schedules the next tick while
// the game is running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Step().GameOver {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.notice != "" {
		footer = m.notice
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".paddleball", "screenshots")
}

// Run resets the game for the terminal described by cfg and runs it until
// the player quits.
func Run(game *paddleball.Game, cfg core.RuntimeConfig) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(playfield(cfg)); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// playfield returns cfg with the help rows taken off the screen height.
func playfield(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH -= helpRows
	return cfg
}
