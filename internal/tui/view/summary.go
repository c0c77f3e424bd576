package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Summary panel copy.
const (
	SummaryTitle    = "High Performance Car Overview"
	SummaryLine     = "This dashboard provides critical insights for maintaining peak performance of your high-performance vehicle."
	SummaryFootnote = "Utilizing advanced models for aerodynamic prediction and component wear."
)

var carArt = []string{
	`    ______    `,
	` __/  ||  \__ `,
	`|  _      _  |`,
	`'-(_)----(_)-'`,
}

// RenderSummary renders the full-width overview panel.
func (dv *DashboardView) RenderSummary(width int) string {
	width = max(width, MinPanelWidth)
	inner := innerWidth(width)

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(inner, lipgloss.Center, s)
	}

	var lines []string
	lines = append(lines, center(dv.styles.PanelTitle.UnsetMarginBottom().Render(SummaryTitle)), "")
	for _, row := range carArt {
		lines = append(lines, center(dv.styles.Error.Render(row)))
	}
	lines = append(lines, "")
	for _, row := range strings.Split(ansi.Wordwrap(SummaryLine, inner, " "), "\n") {
		lines = append(lines, center(dv.styles.Text.Render(row)))
	}
	for _, row := range strings.Split(ansi.Wordwrap(SummaryFootnote, inner, " "), "\n") {
		lines = append(lines, center(dv.styles.Muted.Render(row)))
	}

	return dv.panel(width).Render(strings.Join(lines, "\n"))
}
