// Package mainview provides the framed area around the code canvas.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width   int
	Body    string
	Actions string
}

// Render renders the canvas panel with the action row beneath it.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Align(lipgloss.Center)
	if p.Width > 0 {
		mainStyle = mainStyle.Width(p.Width)
	}

	content := p.Body
	if p.Actions != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, p.Body, "", p.Actions)
	}
	return mainStyle.Render(content)
}
