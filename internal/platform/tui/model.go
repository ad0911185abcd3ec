package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Model is the Bubble Tea model for a flappy session.
// The session is driven from Update only, so it never sees concurrent calls.
type Model struct {
	session  *flappy.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	ticking  bool // Whether a TickMsg is in flight
	quitting bool
}

// NewModel wraps a session that has not been started yet.
// The session's renderer is replaced with one drawing into the model's screen.
func NewModel(session *flappy.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		config:  cfg,
		logger:  logger,
		ticking: true,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.fieldRows(cfg.ScreenH))

	session.SetRenderer(flappy.NewScreenRenderer(m.screen, session.Tunables()))
	session.SetLogger(logger)
	return m
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleAction applies a game action.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPrimary:
		if m.session.RestartIfOver() {
			return m.resume()
		}
		m.session.Jump()

	case core.ActionRestart:
		if m.session.RestartIfOver() {
			return m.resume()
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.config.ScreenW, m.config.ScreenH)
	}

	return m, nil
}

// resume restarts the tick loop after a restart. A loop that is still
// running is left alone so ticks never double up.
func (m Model) resume() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	m.logger.Debug("tick loop resumed")
	return m, tickCmd(m.config)
}

// handleResize fits the screen to the terminal, leaving room for the help view.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width
	m.screen.Resize(width, m.fieldRows(height))
	m.session.Redraw()
	return m, nil
}

// handleTick advances the session by one frame.
// Once the session is over the loop stops until a restart.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.Tick() {
		return m, tickCmd(m.config)
	}
	m.ticking = false
	return m, nil
}

// fieldRows returns the rows left for the playfield once the help view is drawn.
func (m Model) fieldRows(height int) int {
	return max(height-m.helpRows(), 0)
}

func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// View renders the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for the session and blocks until quit.
func Run(session *flappy.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap like the space bar
	)

	_, err := p.Run()
	return err
}
