package dashboard

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sidebar/internal/hardware"
	"github.com/rileyhilliard/sidebar/internal/logger"
	"github.com/rileyhilliard/sidebar/internal/panel"
	"github.com/rileyhilliard/sidebar/internal/render"
	"github.com/rileyhilliard/sidebar/internal/telemetry"
)

const settingsWidth = 44

var (
	settingsPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(render.ColorBorder).
				Padding(0, 1).
				MarginLeft(2)

	statusLineStyle = lipgloss.NewStyle().
			Foreground(render.ColorMuted).
			MarginLeft(1)

	errorLineStyle = lipgloss.NewStyle().
			Foreground(render.ColorDanger).
			MarginLeft(1)
)

// Options wires a Model to its collaborators.
type Options struct {
	State    *panel.State
	Source   telemetry.Source
	Renderer render.Renderer
	// Sink receives every routed action. Defaults to a LogSink.
	Sink panel.ActionSink
	Log  logger.Logger
}

// Model is the Bubble Tea model for the sidebar.
type Model struct {
	state    *panel.State
	source   telemetry.Source
	renderer render.Renderer
	router   panel.Router
	sink     panel.ActionSink
	log      logger.Logger
	interval time.Duration

	keys keyMap
	help help.Model

	surface string // last painted sidebar
	paints  int
	ended   bool
	err     error

	settings *huh.Form
	prefs    *preferences

	quitting bool
}

// frameTickMsg drives one telemetry cycle.
type frameTickMsg time.Time

// NewModel builds the model and paints the startup state so the first View
// has something to show before telemetry arrives.
func NewModel(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = logger.Noop()
	}
	sink := opts.Sink
	if sink == nil {
		sink = panel.LogSink{Log: log}
	}

	m := Model{
		state:    opts.State,
		source:   opts.Source,
		renderer: opts.Renderer,
		router:   panel.SettingsRouter(opts.Renderer.Layout().Settings),
		sink:     sink,
		log:      log,
		interval: time.Second / time.Duration(opts.State.Cadence().BaseFrequency()),
		keys:     defaultKeyMap(),
		help:     help.New(),
		prefs:    &preferences{},
	}
	m.paint()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameTickMsg:
		return m.step()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.settings != nil {
			return m.updateSettings(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Settings):
			ev := panel.NewEvent(panel.ActionOpenSettings, panel.Point{X: -1, Y: -1})
			m.sink.Emit(ev)
			return m.handleAction(ev)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.MouseMsg:
		if m.settings != nil {
			return m.updateSettings(msg)
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if ev, ok := m.router.Dispatch(panel.Point{X: msg.X, Y: msg.Y}, m.sink); ok {
			return m.handleAction(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	if m.settings != nil {
		return m.updateSettings(msg)
	}
	return m, nil
}

// View renders the last painted sidebar; it never paints itself.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.surface
	if m.settings != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, settingsPanelStyle.Render(m.settings.View()))
	}

	lines := []string{body}
	switch {
	case m.err != nil:
		lines = append(lines, errorLineStyle.Render("telemetry stopped: "+firstLine(m.err.Error())))
	case m.ended:
		lines = append(lines, statusLineStyle.Render("end of recording"))
	}
	lines = append(lines, statusLineStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// step applies one frame and schedules the next tick. The loop stops for
// good when the source ends or fails.
func (m Model) step() (tea.Model, tea.Cmd) {
	f, err := m.source.Next()
	if err == io.EOF {
		m.ended = true
		m.log.Info("telemetry source ended")
		return m, nil
	}
	if err != nil {
		m.err = err
		m.log.Error("telemetry source failed: %v", err)
		return m, nil
	}

	if m.state.Apply(f) {
		m.paint()
	}
	return m, m.tickCmd()
}

func (m *Model) paint() {
	m.surface = m.renderer.Render(m.state.Snapshot())
	m.state.MarkRendered()
	m.paints++
}

func (m Model) handleAction(ev panel.Event) (tea.Model, tea.Cmd) {
	switch ev.Action {
	case panel.ActionOpenSettings:
		if m.settings != nil {
			return m, nil
		}
		m.prefs.SatelliteTelemetry = m.state.Capabilities().SatelliteTelemetry
		m.settings = newSettingsForm(m.prefs)
		return m, m.settings.Init()
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.settings.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.settings = f
	}

	switch m.settings.State {
	case huh.StateCompleted:
		caps := hardware.Capabilities{SatelliteTelemetry: m.prefs.SatelliteTelemetry}
		m.state.SetCapabilities(caps)
		m.log.Info("settings saved: satellite telemetry=%t", caps.SatelliteTelemetry)
		m.settings = nil
	case huh.StateAborted:
		m.settings = nil
	}
	return m, cmd
}

// SettingsOpen reports whether the settings overlay is showing.
func (m Model) SettingsOpen() bool {
	return m.settings != nil
}

// Paints returns how many times the sidebar has been painted.
func (m Model) Paints() int {
	return m.paints
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
