// Package header provides the title bar component.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Title string
	Width int
	Color string
}

// Render renders the header component.
func Render(p Props) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Color)).
		PaddingBottom(1)
	if p.Width > 0 {
		style = style.Width(p.Width).Align(lipgloss.Center)
	}
	return style.Render(p.Title)
}
