package view

import (
	"strings"

	"github.com/Iron-Ham/pitwall/internal/telemetry"
	"github.com/charmbracelet/x/ansi"
)

// Telemetry panel copy.
const (
	TelemetryTitle      = "F1 Telemetry Analysis Platform"
	TelemetryLoading    = "Loading telemetry data..."
	AnomaliesTitle      = "Recent Anomaly Detections"
	AnomaliesFallback   = "No recent telemetry anomalies detected."
	InsightsTitle       = "Telemetry Insights & Predictions"
	InsightsPlaceholder = "This section will display advanced insights from LSTM models for time-series analysis, " +
		"including predictive maintenance and component wear analysis. " +
		"Interactive time-series plots and detailed anomaly detection results will be presented here."
	InsightsAction      = "View Full Telemetry Report"
	telemetrySliceLabel = "telemetry data"
)

func (dv *DashboardView) telemetryContent(state DashboardState, width int) string {
	var b strings.Builder
	b.WriteString(dv.styles.PanelTitle.Render(TelemetryTitle))
	b.WriteString("\n")

	slice := state.Telemetry()
	switch slice.Status {
	case StatusLoading:
		b.WriteString(dv.renderLoading(state.SpinnerView(), TelemetryLoading))
	case StatusFailed:
		b.WriteString(dv.renderFailure(telemetrySliceLabel, slice.Err, width))
	case StatusLoaded:
		b.WriteString(dv.renderEvents(slice.Data.Events, width))
		b.WriteString("\n\n")
		b.WriteString(dv.renderInsights(width))
	}

	return b.String()
}

// renderEvents renders the anomaly list in arrival order, or its fallback.
func (dv *DashboardView) renderEvents(events []telemetry.TelemetryEvent, width int) string {
	var b strings.Builder
	b.WriteString(dv.styles.SectionTitle.Render(AnomaliesTitle))
	b.WriteString("\n")

	if len(events) == 0 {
		b.WriteString(dv.renderFallback(AnomaliesFallback))
		return b.String()
	}

	itemWidth := max(width-2, 1)
	for i, ev := range events {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(dv.styles.EventTitle.Render("● " + ansi.Truncate(ev.Event, itemWidth, "…")))
		b.WriteString("\n  ")
		b.WriteString(indentContinuation(dv.labeled("Timestamp", ev.Timestamp, itemWidth), "  "))
		b.WriteString("\n  ")
		b.WriteString(indentContinuation(dv.labeled("Details", ev.Details, itemWidth), "  "))
	}
	return b.String()
}

// renderInsights renders the placeholder for the predictive insights.
func (dv *DashboardView) renderInsights(width int) string {
	var b strings.Builder
	b.WriteString(dv.styles.SectionTitle.Render(InsightsTitle))
	b.WriteString("\n")
	b.WriteString(dv.styles.Muted.Render(ansi.Wordwrap(InsightsPlaceholder, width, " ")))
	b.WriteString("\n\n")
	b.WriteString(dv.styles.Action.Render(InsightsAction))
	return b.String()
}
