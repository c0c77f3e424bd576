package tui

import (
	"github.com/Iron-Ham/pitwall/internal/errors"
	"github.com/Iron-Ham/pitwall/internal/logging"
	"github.com/Iron-Ham/pitwall/internal/telemetry"
	"github.com/Iron-Ham/pitwall/internal/tui/keymap"
	"github.com/Iron-Ham/pitwall/internal/tui/msg"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Init mounts the dashboard and starts both slice loads.
func (m Model) Init() tea.Cmd {
	m.life.mounted.Store(true)
	m.logger.Debug("dashboard mounted")

	return tea.Batch(
		m.spinner.Tick,
		msg.LoadAerodynamic(m.life.ctx, m.src, m.aero.Generation),
		msg.LoadTelemetry(m.life.ctx, m.src, m.tel.Generation),
	)
}

// Update handles incoming messages.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.help.Width = message.Width
		return m, nil

	case msg.AerodynamicLoadedMsg:
		return m.applyAerodynamic(message), nil

	case msg.TelemetryLoadedMsg:
		return m.applyTelemetry(message), nil

	case spinner.TickMsg:
		// Let the spinner chain die once nothing is loading; retry restarts it.
		if !m.anyLoading() || !m.Mounted() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeypress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Lookup(key) {
	case keymap.CmdQuit:
		m.quitting = true
		m.Unmount()
		return m, tea.Quit

	case keymap.CmdRetry:
		return m.retryFailed()

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}

// retryFailed restarts every Failed slice under a new generation.
func (m Model) retryFailed() (tea.Model, tea.Cmd) {
	if !m.Mounted() || !m.anyFailed() {
		return m, nil
	}

	cmds := []tea.Cmd{m.spinner.Tick}
	if m.aero.IsFailed() {
		m.aero = m.aero.Restart()
		m.logger.WithSlice(string(telemetry.SliceAerodynamic)).Info("retrying load", "generation", m.aero.Generation)
		cmds = append(cmds, msg.LoadAerodynamic(m.life.ctx, m.src, m.aero.Generation))
	}
	if m.tel.IsFailed() {
		m.tel = m.tel.Restart()
		m.logger.WithSlice(string(telemetry.SliceTelemetry)).Info("retrying load", "generation", m.tel.Generation)
		cmds = append(cmds, msg.LoadTelemetry(m.life.ctx, m.src, m.tel.Generation))
	}
	m.keys.SetRetryEnabled(m.anyFailed())

	return m, tea.Batch(cmds...)
}

func (m Model) applyAerodynamic(result msg.AerodynamicLoadedMsg) Model {
	logger := m.logger.WithSlice(string(telemetry.SliceAerodynamic)).With("generation", result.Generation)
	if !m.accepts(result.Err) {
		logger.Debug("discarding load result", "mounted", m.Mounted(), "error", result.Err)
		return m
	}

	next, ok := m.aero.Resolve(result.Generation, result.Data, result.Err)
	if !ok {
		logger.Debug("discarding stale load result", "current", m.aero.Generation)
		return m
	}
	m.aero = next

	if result.Err != nil {
		logFailure(logger, result.Err)
	} else {
		logger.Info("slice loaded",
			"samples", len(result.Data.Performance),
			"flagged", len(result.Data.Flagged),
		)
	}
	m.keys.SetRetryEnabled(m.anyFailed())
	return m
}

func (m Model) applyTelemetry(result msg.TelemetryLoadedMsg) Model {
	logger := m.logger.WithSlice(string(telemetry.SliceTelemetry)).With("generation", result.Generation)
	if !m.accepts(result.Err) {
		logger.Debug("discarding load result", "mounted", m.Mounted(), "error", result.Err)
		return m
	}

	next, ok := m.tel.Resolve(result.Generation, result.Data, result.Err)
	if !ok {
		logger.Debug("discarding stale load result", "current", m.tel.Generation)
		return m
	}
	m.tel = next

	if result.Err != nil {
		logFailure(logger, result.Err)
	} else {
		logger.Info("slice loaded", "events", len(result.Data.Events))
	}
	m.keys.SetRetryEnabled(m.anyFailed())
	return m
}

// logFailure logs a slice failure at the level its cause warrants: an
// invalid payload or a timeout is a warning, a source outage an error.
func logFailure(logger *logging.Logger, err error) {
	args := []any{"error", err, "retryable", errors.IsRetryable(err)}
	switch errors.GetSeverity(err) {
	case errors.SeverityDebug:
		logger.Debug("load failed", args...)
	case errors.SeverityInfo:
		logger.Info("load failed", args...)
	case errors.SeverityWarning:
		logger.Warn("load failed", args...)
	default:
		logger.Error("load failed", args...)
	}
}

// accepts reports whether a load result may touch the state. Nothing is
// applied after unmount, and a canceled load is never a failure.
func (m Model) accepts(err error) bool {
	return m.Mounted() && !errors.IsCanceled(err)
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	out := m.dashboard.Render(m)
	if m.plain {
		return ansi.Strip(out)
	}
	return out
}
