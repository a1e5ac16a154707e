package ui

import "github.com/charmbracelet/lipgloss"

// Styles are the Lip Gloss styles derived from a Theme.
type Styles struct {
	Title    lipgloss.Style
	Success  lipgloss.Style
	Pending  lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Panel    lipgloss.Style
	Input    lipgloss.Style
}

func newStyles(t Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Pending:  lipgloss.NewStyle().Foreground(t.Pending),
		Accent:   lipgloss.NewStyle().Foreground(t.Accent),
		Muted:    lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Panel: lipgloss.NewStyle().
			Border(t.Border).
			BorderForeground(t.BorderColor).
			Padding(0, 1),
		Input: lipgloss.NewStyle().
			Border(t.Border).
			BorderForeground(t.BorderColor).
			Padding(0, 1),
	}
}

// CurrentStyles returns the styles of the active theme.
func CurrentStyles() Styles { return styles }
