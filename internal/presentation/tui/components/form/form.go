// Package form provides the text entry component.
package form

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the form component.
type Props struct {
	Input       string
	Err         string
	Focused     bool
	GenerateKey string
	Width       int
	AccentColor string
	ErrorColor  string
	MutedColor  string
}

// Render renders the input box, its error line and the generate hint.
// The border turns red while an error is shown.
func Render(p Props) string {
	borderColor := lipgloss.Color(p.MutedColor)
	if p.Focused {
		borderColor = lipgloss.Color(p.AccentColor)
	}
	if p.Err != "" {
		borderColor = lipgloss.Color(p.ErrorColor)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)
	if p.Width > 0 {
		box = box.Width(p.Width)
	}

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.AccentColor)).
		Render("[" + p.GenerateKey + "] Generate QR")

	parts := []string{box.Render(p.Input)}
	if p.Err != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(p.ErrorColor)).Render(p.Err))
	}
	parts = append(parts, hint)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
