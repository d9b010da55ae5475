// Package controls provides the style controls panel.
package controls

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/qrgen/internal/domain/qr"
)

// Field identifies one control in the panel.
type Field int

const (
	NoField Field = iota
	SizeField
	BackgroundField
	ForegroundField
)

// Props defines the properties for the controls component.
type Props struct {
	Title           string
	Size            int
	SliderWidth     int
	BackgroundInput string
	ForegroundInput string
	Background      qr.Color
	Foreground      qr.Color
	Active          Field
	AccentColor     string
	MutedColor      string
}

// Render renders the size slider and both color fields.
func Render(p Props) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.AccentColor))

	rows := []string{
		titleStyle.Render(p.Title),
		p.row(SizeField, "Size (px)", Slider(p.Size, p.SliderWidth)+fmt.Sprintf(" %dpx", p.Size)),
		p.row(BackgroundField, "Background", swatch(p.Background)+" "+p.BackgroundInput),
		p.row(ForegroundField, "Foreground", swatch(p.Foreground)+" "+p.ForegroundInput),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (p Props) row(field Field, label, value string) string {
	marker := "  "
	labelStyle := lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color(p.MutedColor))
	if p.Active == field {
		marker = "> "
		labelStyle = labelStyle.Foreground(lipgloss.Color(p.AccentColor)).Bold(true)
	}
	return marker + labelStyle.Render(label) + value
}

// Slider draws a track of width cells with a knob at size's position.
func Slider(size, width int) string {
	if width < 2 {
		width = 2
	}
	pos := (size - qr.MinSize) * (width - 1) / (qr.MaxSize - qr.MinSize)
	pos = max(0, min(width-1, pos))
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", width-1-pos)
}

func swatch(c qr.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.String())).Render("  ")
}
