package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Accent style for resolved dates and highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted style for secondary info such as descriptions
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for headers
	Bold = lipgloss.NewStyle().Bold(true)
)

// Render applies style only when output goes to a terminal.
func (d *DisplayContext) Render(style lipgloss.Style, s string) string {
	if d == nil || !d.IsTTY {
		return s
	}
	return style.Render(s)
}
