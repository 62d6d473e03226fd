package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text     string
	Muted    string
	Accent   string
	Danger   string
	Selected string
}

var themes = []Theme{
	{
		Name:     "Dracula",
		Text:     "#F8F8F2",
		Muted:    "#6272A4",
		Accent:   "#BD93F9",
		Danger:   "#FF5555",
		Selected: "#44475A",
	},
	{
		Name:     "Slate",
		Text:     "#E2E8F0",
		Muted:    "#64748B",
		Accent:   "#7DD3FC",
		Danger:   "#F87171",
		Selected: "#334155",
	},
}

// GetTheme returns the named theme, or the first one for unknown names.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Selected)).
			Foreground(lipgloss.Color(t.Text)),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles contains pre-built lipgloss styles for the theme.
type Styles struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
	Footer   lipgloss.Style
}
