package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/pitwall/internal/telemetry"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/guptarohit/asciigraph"
)

// Aerodynamic panel copy.
const (
	AerodynamicTitle      = "Aerodynamic Performance Monitoring"
	AerodynamicLoading    = "Loading aerodynamic data..."
	PerformanceTitle      = "Performance Trends (Downforce & Drag)"
	PerformanceFallback   = "No performance data available."
	FlaggedTitle          = "Flagged Components"
	FlaggedFallback       = "No components currently flagged for attention."
	DownforceLegend       = "Downforce (N)"
	DragLegend            = "Drag (N)"
	ChartAxisCaption      = "Value"
	aerodynamicSliceLabel = "aerodynamic data"
)

// minPlotWidth is the narrowest plot area drawn, excluding the y-axis labels.
const minPlotWidth = 10

func (dv *DashboardView) aerodynamicContent(state DashboardState, width int) string {
	var b strings.Builder
	b.WriteString(dv.styles.PanelTitle.Render(AerodynamicTitle))
	b.WriteString("\n")

	slice := state.Aerodynamic()
	switch slice.Status {
	case StatusLoading:
		b.WriteString(dv.renderLoading(state.SpinnerView(), AerodynamicLoading))
	case StatusFailed:
		b.WriteString(dv.renderFailure(aerodynamicSliceLabel, slice.Err, width))
	case StatusLoaded:
		b.WriteString(dv.renderPerformance(slice.Data, width, state.ChartHeight()))
		b.WriteString("\n\n")
		b.WriteString(dv.renderFlagged(slice.Data.Flagged, width))
	}

	return b.String()
}

// renderPerformance renders the chart, its race axis and the value table.
func (dv *DashboardView) renderPerformance(data telemetry.AerodynamicData, width, chartHeight int) string {
	var b strings.Builder
	b.WriteString(dv.styles.SectionTitle.Render(PerformanceTitle))
	b.WriteString("\n")

	if len(data.Performance) == 0 {
		b.WriteString(dv.renderFallback(PerformanceFallback))
		return b.String()
	}

	plot, axisCol, plotWidth := dv.renderChart(data, width, chartHeight)
	b.WriteString(plot)
	b.WriteString("\n")
	b.WriteString(dv.renderRaceAxis(data.Labels(), axisCol, plotWidth))
	b.WriteString("\n")
	b.WriteString(dv.renderChartLegend(axisCol, plotWidth))
	b.WriteString("\n\n")
	b.WriteString(dv.renderPerformanceTable(data.Performance, width))
	return b.String()
}

// renderChart plots downforce and drag as two series within width columns.
// It returns the plot rows, the column of the y-axis and the plot width.
// The y-axis labels are as wide as the largest value needs, so the plot is
// drawn once to measure them and again sized to what is left.
func (dv *DashboardView) renderChart(data telemetry.AerodynamicData, width, height int) (string, int, int) {
	downforce := data.DownforceSeries()
	drag := data.DragSeries()
	if len(downforce) == 1 {
		// asciigraph cannot stretch a single point across the plot width.
		downforce = append(downforce, downforce[0])
		drag = append(drag, drag[0])
	}

	p := dv.styles.Palette
	plot := func(plotWidth int) string {
		return asciigraph.PlotMany(
			[][]float64{downforce, drag},
			asciigraph.Height(height),
			asciigraph.Width(plotWidth),
			asciigraph.Precision(0),
			asciigraph.SeriesColors(p.Downforce, p.Drag),
			asciigraph.AxisColor(p.Axis),
			asciigraph.LabelColor(p.Axis),
		)
	}

	axisCol := axisColumn(plot(minPlotWidth))
	plotWidth := max(width-axisCol, minPlotWidth)
	return plot(plotWidth), axisCol, plotWidth
}

// axisColumn returns the display column of the y-axis in a rendered plot.
func axisColumn(plot string) int {
	first, _, _ := strings.Cut(ansi.Strip(plot), "\n")
	i := strings.IndexAny(first, "┤┼")
	if i < 0 {
		return 0
	}
	return ansi.StringWidth(first[:i])
}

// renderRaceAxis labels the first and last race under the plot area,
// starting at the y-axis column.
func (dv *DashboardView) renderRaceAxis(labels []string, axisCol, plotWidth int) string {
	if len(labels) == 0 {
		return ""
	}
	first, last := labels[0], labels[len(labels)-1]

	line := first
	if len(labels) > 1 {
		gap := max(plotWidth-ansi.StringWidth(first)-ansi.StringWidth(last), 1)
		line = first + strings.Repeat(" ", gap) + last
	}
	return strings.Repeat(" ", axisCol) + dv.styles.Muted.Render(ansi.Truncate(line, plotWidth, "…"))
}

// renderChartLegend renders the value caption and the series legend centred
// under the plot area. The legend items stack when they do not fit side by side.
func (dv *DashboardView) renderChartLegend(axisCol, plotWidth int) string {
	p := dv.styles.Palette
	item := func(name string, c asciigraph.AnsiColor) string {
		return c.String() + "■" + asciigraph.Default.String() + " " + name
	}
	items := []string{item(DownforceLegend, p.Downforce), item(DragLegend, p.Drag)}

	legend := strings.Join(items, "   ")
	if ansi.StringWidth(legend) > plotWidth {
		legend = lipgloss.JoinVertical(lipgloss.Left, items...)
	}

	indent := strings.Repeat(" ", axisCol)
	center := func(s string) string {
		placed := lipgloss.PlaceHorizontal(plotWidth, lipgloss.Center, s)
		return indent + strings.ReplaceAll(placed, "\n", "\n"+indent)
	}
	return center(dv.styles.Muted.Render(ChartAxisCaption)) + "\n\n" + center(legend)
}

// renderPerformanceTable lists every race with its exact values.
func (dv *DashboardView) renderPerformanceTable(samples []telemetry.PerformanceSample, width int) string {
	labelWidth := len("Race")
	for _, s := range samples {
		labelWidth = max(labelWidth, ansi.StringWidth(s.Label))
	}

	row := func(label, downforce, drag string) string {
		return ansi.Truncate(fmt.Sprintf("%-*s  %13s  %8s", labelWidth, label, downforce, drag), width, "…")
	}

	lines := []string{dv.styles.ItemLabel.Render(row("Race", DownforceLegend, DragLegend))}
	for _, s := range samples {
		lines = append(lines, row(s.Label, formatValue(s.Downforce), formatValue(s.Drag)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderFlagged renders the flagged components list or its fallback.
func (dv *DashboardView) renderFlagged(components []telemetry.FlaggedComponent, width int) string {
	var b strings.Builder
	b.WriteString(dv.styles.SectionTitle.Render(FlaggedTitle))
	b.WriteString("\n")

	if len(components) == 0 {
		b.WriteString(dv.renderFallback(FlaggedFallback))
		return b.String()
	}

	itemWidth := max(width-2, 1)
	for i, c := range components {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(dv.styles.FlagMarker.Render("⚠ "))
		b.WriteString(dv.styles.ItemTitle.Render(ansi.Truncate(c.Identifier, itemWidth, "…")))
		b.WriteString("\n  ")
		b.WriteString(indentContinuation(dv.labeled("Status", c.Status, itemWidth), "  "))
		b.WriteString("\n  ")
		b.WriteString(indentContinuation(dv.labeled("Loss", c.Loss, itemWidth), "  "))
		b.WriteString("\n  ")
		b.WriteString(indentContinuation(dv.labeled("Recommendation", c.Recommendation, itemWidth), "  "))
	}
	return b.String()
}

// formatValue prints a sample value without trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// indentContinuation indents every line after the first.
func indentContinuation(s, indent string) string {
	return strings.ReplaceAll(s, "\n", "\n"+indent)
}
