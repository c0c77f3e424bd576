package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains the lipgloss styles built from a color palette.
// The dashboard renders exclusively through one of these, so switching the
// theme means building a new value rather than mutating globals.
type ThemedStyles struct {
	Palette *ColorPalette

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Page header
	Title   lipgloss.Style
	Tagline lipgloss.Style

	// Panels
	Panel        lipgloss.Style
	PanelTitle   lipgloss.Style
	SectionTitle lipgloss.Style

	// List items
	ItemTitle  lipgloss.Style
	ItemLabel  lipgloss.Style
	FlagMarker lipgloss.Style
	EventTitle lipgloss.Style

	// States
	Loading  lipgloss.Style
	Fallback lipgloss.Style
	Failure  lipgloss.Style
	Action   lipgloss.Style

	// Help bar
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{Palette: p}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Tagline = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.ItemTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.ItemLabel = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.FlagMarker = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Warning)

	s.EventTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Error)

	s.Loading = lipgloss.NewStyle().
		Foreground(p.Primary)

	s.Fallback = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.Failure = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Error)

	s.Action = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 1)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	return s
}

// ForTheme builds the styles for a named theme.
func ForTheme(name string) *ThemedStyles {
	return NewThemedStyles(GetPalette(ThemeName(name)))
}
