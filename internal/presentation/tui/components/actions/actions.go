// Package actions provides the export button row.
package actions

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the actions component.
type Props struct {
	Enabled      bool
	CopyFeedback string
	DownloadKey  string
	CopyKey      string
	ClearKey     string
	MutedColor   string
}

// Render renders the download, copy and clear buttons.
// Nothing is rendered while there is no code to act on.
func Render(p Props) string {
	if !p.Enabled {
		return ""
	}

	copyLabel := "Copy Value"
	if p.CopyFeedback != "" {
		copyLabel = p.CopyFeedback
	}

	buttons := []string{
		button("Download QR", p.DownloadKey, lipgloss.Color("34"), p.MutedColor),
		button(copyLabel, p.CopyKey, lipgloss.Color("33"), p.MutedColor),
		button("Clear", p.ClearKey, lipgloss.Color("245"), p.MutedColor),
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons[0], "  ", buttons[1], "  ", buttons[2])
}

func button(label, keyName string, bg lipgloss.Color, mutedColor string) string {
	face := lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(bg).
		Bold(true).
		Padding(0, 1).
		Render(label)
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor)).Render(" " + keyName)
	return face + hint
}
