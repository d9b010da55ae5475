// Package layout provides the main layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Header   string
	Form     string
	Controls string
	Main     string
	Footer   string
	Width    int
}

// Render stacks the sections top to bottom, skipping empty ones.
// A positive Width clips every line so narrow terminals never wrap the frame.
func Render(p Props) string {
	sections := make([]string, 0, 5)
	for _, s := range []string{p.Header, p.Form, p.Controls, p.Main, p.Footer} {
		if s != "" {
			sections = append(sections, s)
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if p.Width > 0 {
		return lipgloss.NewStyle().MaxWidth(p.Width).Render(content)
	}
	return content
}
