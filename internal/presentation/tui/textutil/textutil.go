// Package textutil fits status text into the footer.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// StatusLine flattens text to one line of at most width cells. Overlong
// text loses its middle, so both the verb ("Saved", "Download failed") and
// the file name or error at the end stay visible. A width of zero or less
// means the terminal size is not known yet and nothing is cut.
func StatusLine(text string, width int) string {
	line := SingleLine(text)
	total := ansi.StringWidth(line)
	if width <= 0 || total <= width {
		return line
	}
	if width == 1 {
		return ellipsis
	}
	head := (width - 1) / 2
	tail := width - 1 - head
	return ansi.Truncate(line, head, "") + ellipsis + ansi.TruncateLeft(line, total-tail, "")
}
