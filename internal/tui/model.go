// Package tui provides the terminal performance dashboard.
//
// The [Model] owns the two slice states and drives their loads through an
// injected [source.Source]. Loads are bound to the model's lifetime: the
// context created at construction is canceled by [Model.Unmount], and each
// result carries the generation it was started with so that stale or late
// results are dropped.
package tui

import (
	"context"
	"sync/atomic"

	"github.com/Iron-Ham/pitwall/internal/logging"
	"github.com/Iron-Ham/pitwall/internal/source"
	"github.com/Iron-Ham/pitwall/internal/telemetry"
	"github.com/Iron-Ham/pitwall/internal/tui/keymap"
	"github.com/Iron-Ham/pitwall/internal/tui/styles"
	"github.com/Iron-Ham/pitwall/internal/tui/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
)

// DefaultChartHeight is the chart height used when none is configured.
const DefaultChartHeight = 10

// lifecycle is shared by every copy of a Model. Bubbletea passes the model
// by value, so the mount flag and the cancel func must live behind a pointer.
type lifecycle struct {
	ctx     context.Context
	cancel  context.CancelFunc
	mounted atomic.Bool
}

// Model is the Bubbletea model of the dashboard.
type Model struct {
	src    source.Source
	logger *logging.Logger

	styles    *styles.ThemedStyles
	dashboard *view.DashboardView
	keys      keymap.Keymap
	help      help.Model
	spinner   spinner.Model
	showHelp  bool
	plain     bool

	aero view.SliceState[telemetry.AerodynamicData]
	tel  view.SliceState[telemetry.TelemetryData]

	width       int
	height      int
	chartHeight int
	quitting    bool

	life *lifecycle
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. The dashboard owns the terminal, so this
// should write to a file.
func WithLogger(l *logging.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTheme selects a color theme by name.
func WithTheme(name string) Option {
	return func(m *Model) {
		m.styles = styles.ForTheme(name)
	}
}

// WithChartHeight sets the performance chart height in rows.
func WithChartHeight(rows int) Option {
	return func(m *Model) {
		if rows > 0 {
			m.chartHeight = rows
		}
	}
}

// WithWidth sets the initial terminal width, before any resize event.
func WithWidth(width int) Option {
	return func(m *Model) {
		m.width = width
	}
}

// WithoutHelp hides the help bar, as for headless rendering.
func WithoutHelp() Option {
	return func(m *Model) {
		m.showHelp = false
	}
}

// WithPlainText strips colors and styling from the rendered view.
func WithPlainText() Option {
	return func(m *Model) {
		m.plain = true
	}
}

// NewModel creates a dashboard model reading from src. parent bounds the
// model's lifetime in addition to Unmount.
func NewModel(parent context.Context, src source.Source, opts ...Option) Model {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	m := Model{
		src:         src,
		logger:      logging.NopLogger(),
		styles:      styles.ForTheme(string(styles.ThemeDefault)),
		keys:        keymap.Default(),
		help:        help.New(),
		showHelp:    true,
		chartHeight: DefaultChartHeight,
		aero:        view.SliceState[telemetry.AerodynamicData]{}.Restart(),
		tel:         view.SliceState[telemetry.TelemetryData]{}.Restart(),
		life:        &lifecycle{ctx: ctx, cancel: cancel},
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.logger = m.logger.WithComponent("dashboard")
	m.dashboard = view.NewDashboardView(m.styles)
	m.spinner = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(m.styles.Loading),
	)
	m.help.Styles.ShortKey = m.styles.HelpKey
	m.help.Styles.ShortDesc = m.styles.HelpDesc
	m.help.Styles.FullKey = m.styles.HelpKey
	m.help.Styles.FullDesc = m.styles.HelpDesc
	return m
}

// Mounted reports whether the model accepts load results.
func (m Model) Mounted() bool {
	return m.life.mounted.Load()
}

// Unmount tears the view down: in-flight loads are canceled and any result
// that still arrives is discarded. It is safe to call more than once.
func (m Model) Unmount() {
	if m.life.mounted.Swap(false) {
		m.logger.Debug("dashboard unmounted")
	}
	m.life.cancel()
}

// Context returns the context loads are started with.
func (m Model) Context() context.Context {
	return m.life.ctx
}

// anyLoading reports whether a slice is waiting for data.
func (m Model) anyLoading() bool {
	return m.aero.IsLoading() || m.tel.IsLoading()
}

// anyFailed reports whether a slice can be retried.
func (m Model) anyFailed() bool {
	return m.aero.IsFailed() || m.tel.IsFailed()
}

// The methods below implement view.DashboardState.

// Aerodynamic returns the aerodynamic slice state.
func (m Model) Aerodynamic() view.SliceState[telemetry.AerodynamicData] { return m.aero }

// Telemetry returns the telemetry slice state.
func (m Model) Telemetry() view.SliceState[telemetry.TelemetryData] { return m.tel }

// TerminalWidth returns the last known terminal width.
func (m Model) TerminalWidth() int { return m.width }

// ChartHeight returns the performance chart height.
func (m Model) ChartHeight() int { return m.chartHeight }

// SpinnerView returns the current spinner frame.
func (m Model) SpinnerView() string { return m.spinner.View() }

// HelpView returns the help bar, or "" when hidden.
func (m Model) HelpView() string {
	if !m.showHelp {
		return ""
	}
	return m.help.View(m.keys)
}
