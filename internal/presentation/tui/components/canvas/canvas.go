// Package canvas draws the QR code, or a placeholder when there is none.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/qrgen/internal/domain/qr"
)

// Placeholder is shown until a code has been generated.
const Placeholder = "Enter text or a number and press enter to create your QR code"

const placeholderIcon = `▛▀▜ ▗ ▛▀▜
▌▀▐ ▝▘▌▀▐
▙▄▟ ▖ ▙▄▟
 ▗▝▖▞ ▘▗▞
▛▀▜  ▗▘ ▖
▌▀▐ ▞ ▘▗▝
▙▄▟ ▖▗▞ ▘`

// Props defines the properties for the canvas component.
type Props struct {
	Bitmap     [][]bool
	Err        error
	Empty      bool
	Preview    string
	IsURL      bool
	OpenKey    string
	Style      qr.Style
	MaxWidth   int
	MutedColor string
	LinkColor  string
}

// Render renders the code with its preview line and optional link.
func Render(p Props) string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(p.MutedColor))
	if p.Empty {
		return lipgloss.JoinVertical(lipgloss.Center,
			muted.Render(placeholderIcon),
			"",
			muted.Render(Placeholder),
		)
	}

	var code string
	if p.Err != nil {
		code = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("Cannot draw QR code: " + p.Err.Error())
	} else {
		code = Draw(p.Bitmap, Scale(p.Style.Size, len(p.Bitmap), p.MaxWidth), p.Style)
	}

	lines := []string{
		code,
		"",
		lipgloss.NewStyle().Bold(true).Render("QR Content: ") + p.Preview,
	}
	if p.IsURL {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.LinkColor)).
			Underline(true).
			Render("Visit URL")+muted.Render(" ("+p.OpenKey+")"))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// Scale maps a pixel size to a module scale, then shrinks it until
// modules*scale fits maxWidth. A maxWidth of zero means unbounded.
func Scale(size, modules, maxWidth int) int {
	scale := 1 + (size-qr.MinSize)/192
	for scale > 1 && maxWidth > 0 && modules*scale > maxWidth {
		scale--
	}
	return max(scale, 1)
}

// Draw renders bitmap with upper half blocks, two module rows per line.
func Draw(bitmap [][]bool, scale int, style qr.Style) string {
	if len(bitmap) == 0 {
		return ""
	}
	if scale < 1 {
		scale = 1
	}

	fg := lipgloss.Color(style.Foreground.String())
	bg := lipgloss.Color(style.Background.String())
	pick := func(dark bool) lipgloss.Color {
		if dark {
			return fg
		}
		return bg
	}

	rows := len(bitmap) * scale
	cols := len(bitmap[0]) * scale
	at := func(y, x int) bool {
		if y >= rows {
			return false
		}
		return bitmap[y/scale][x/scale]
	}

	lines := make([]string, 0, (rows+1)/2)
	for y := 0; y < rows; y += 2 {
		var b strings.Builder
		runStart := 0
		for x := 1; x <= cols; x++ {
			if x < cols && at(y, x) == at(y, runStart) && at(y+1, x) == at(y+1, runStart) {
				continue
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(pick(at(y, runStart))).
				Background(pick(at(y+1, runStart))).
				Render(strings.Repeat("▀", x-runStart)))
			runStart = x
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
