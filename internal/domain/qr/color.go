package qr

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB color. It satisfies color.Color.
type Color struct {
	colorful.Color
}

// ParseColor parses "#RRGGBB" or "#RGB"; the leading '#' is optional.
func ParseColor(text string) (Color, error) {
	hex := strings.TrimSpace(text)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return Color{}, fmt.Errorf("invalid color %q", text)
	}
	for _, r := range hex[1:] {
		if !isHexDigit(r) {
			return Color{}, fmt.Errorf("invalid color %q", text)
		}
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", text, err)
	}
	return Color{Color: c}, nil
}

// MustParseColor is ParseColor for constants.
func MustParseColor(text string) Color {
	c, err := ParseColor(text)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the canonical "#RRGGBB" form.
func (c Color) String() string {
	return strings.ToUpper(c.Hex())
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
