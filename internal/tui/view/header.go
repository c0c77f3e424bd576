package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	DashboardTitle   = "F1 Performance Dashboard"
	DashboardTagline = "Integrating Aerodynamics and Telemetry for Optimal Race Strategy"
)

// RenderHeader renders the centred title and tagline, wrapped to width.
func (dv *DashboardView) RenderHeader(width int) string {
	title := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		dv.styles.Title.Render(ansi.Wordwrap(DashboardTitle, width, " ")))
	tagline := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		dv.styles.Tagline.Render(ansi.Wordwrap(DashboardTagline, width, " ")))
	return title + "\n" + tagline + "\n"
}
