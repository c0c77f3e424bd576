package view

import (
	"strings"

	"github.com/Iron-Ham/pitwall/internal/telemetry"
	"github.com/Iron-Ham/pitwall/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants for dashboard rendering
const (
	// DefaultWidth is used before the first window size is known.
	DefaultWidth = 80

	// WideLayoutMinWidth is the narrowest terminal that still fits both
	// data panels side by side.
	WideLayoutMinWidth = 100

	// PanelGap is the number of columns between side-by-side panels.
	PanelGap = 2

	// PanelFrameWidth is border (2) plus horizontal padding (2).
	PanelFrameWidth = 4

	// MinPanelWidth keeps panel content legible on tiny terminals.
	MinPanelWidth = 30
)

// DashboardState provides the state needed for dashboard rendering.
// This interface decouples the view from the full Model implementation.
type DashboardState interface {
	// Aerodynamic returns the performance series and flagged components slice
	Aerodynamic() SliceState[telemetry.AerodynamicData]
	// Telemetry returns the anomaly events slice
	Telemetry() SliceState[telemetry.TelemetryData]
	// TerminalWidth returns the terminal width, or 0 when unknown
	TerminalWidth() int
	// ChartHeight returns the number of rows for the performance chart
	ChartHeight() int
	// SpinnerView returns the current spinner frame
	SpinnerView() string
	// HelpView returns the rendered help bar, or "" to omit it
	HelpView() string
}

// DashboardView renders the whole dashboard.
type DashboardView struct {
	styles *styles.ThemedStyles
}

// NewDashboardView creates a DashboardView drawing with s.
// A nil s selects the default theme.
func NewDashboardView(s *styles.ThemedStyles) *DashboardView {
	if s == nil {
		s = styles.ForTheme(string(styles.ThemeDefault))
	}
	return &DashboardView{styles: s}
}

// Render renders the dashboard for the given state.
func (dv *DashboardView) Render(state DashboardState) string {
	width := state.TerminalWidth()
	if width <= 0 {
		width = DefaultWidth
	}

	sections := []string{
		dv.RenderHeader(width),
		dv.renderDataPanels(state, width),
		dv.RenderSummary(width),
	}
	if help := state.HelpView(); help != "" {
		sections = append(sections, help)
	}

	return strings.Join(sections, "\n")
}

func (dv *DashboardView) renderDataPanels(state DashboardState, width int) string {
	if width < WideLayoutMinWidth {
		panelWidth := max(width, MinPanelWidth)
		return lipgloss.JoinVertical(lipgloss.Left,
			dv.RenderAerodynamicPanel(state, panelWidth),
			dv.RenderTelemetryPanel(state, panelWidth),
		)
	}

	leftWidth := (width - PanelGap) / 2
	rightWidth := width - PanelGap - leftWidth

	left := dv.aerodynamicContent(state, innerWidth(leftWidth))
	right := dv.telemetryContent(state, innerWidth(rightWidth))

	// Give both panels the same height so their borders line up.
	height := max(lipgloss.Height(left), lipgloss.Height(right))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		dv.panel(leftWidth).Height(height).Render(left),
		strings.Repeat(" ", PanelGap),
		dv.panel(rightWidth).Height(height).Render(right),
	)
}

// RenderAerodynamicPanel renders the aerodynamic panel at an outer width.
func (dv *DashboardView) RenderAerodynamicPanel(state DashboardState, width int) string {
	return dv.panel(width).Render(dv.aerodynamicContent(state, innerWidth(width)))
}

// RenderTelemetryPanel renders the telemetry panel at an outer width.
func (dv *DashboardView) RenderTelemetryPanel(state DashboardState, width int) string {
	return dv.panel(width).Render(dv.telemetryContent(state, innerWidth(width)))
}

// panel returns the bordered panel style for an outer width.
func (dv *DashboardView) panel(width int) lipgloss.Style {
	// lipgloss widths include padding but exclude the border.
	return dv.styles.Panel.Width(width - 2)
}

// innerWidth returns the content width of a panel with the given outer width.
func innerWidth(width int) int {
	return max(width-PanelFrameWidth, 1)
}
