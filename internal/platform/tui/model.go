package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/session"
)

// Model is the Bubble Tea model that plays one session.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	tickRate int
	last     time.Time // Time of the previous tick
	shotDir  string
	status   string // Transient footer message
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
// The bottom row of the terminal is kept for the help footer.
func NewModel(s *session.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		session:  s,
		screen:   core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: cfg.TickRate,
		shotDir:  defaultScreenshotDir(),
		logger:   logger,
	}
}

// defaultScreenshotDir returns ~/.jumper/screenshots.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".jumper", "screenshots")
	}
	return filepath.Join(home, ".jumper", "screenshots")
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.session.Close()
		return m, tea.Quit
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
	case core.ActionJump:
		m.session.Jump()
	case core.ActionRestart:
		if m.session.Restart() {
			m.status = ""
		}
	case core.ActionPause:
		m.session.TogglePause()
	}
	return m, nil
}

// handleTick advances the session by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameInterval(m.tickRate)
	if !m.last.IsZero() {
		dt = now.Sub(m.last)
	}
	m.last = now
	m.session.Advance(dt)
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.session.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("jumper_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run plays a session in the local terminal until the user quits.
func Run(s *session.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(s, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	s.Close()
	return err
}
