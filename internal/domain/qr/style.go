package qr

import (
	"errors"
	"fmt"
)

// Size bounds in pixels.
const (
	MinSize     = 128
	MaxSize     = 512
	SizeStep    = 8
	DefaultSize = 256
)

// ErrSizeOutOfRange is returned when a size falls outside [MinSize, MaxSize].
var ErrSizeOutOfRange = errors.New("qr: size out of range")

// Default colors.
var (
	DefaultBackground = MustParseColor("#FFFFFF")
	DefaultForeground = MustParseColor("#000000")
)

// Style holds the cosmetic parameters of a rendered code.
type Style struct {
	Size       int
	Background Color
	Foreground Color
}

// DefaultStyle returns the initial style.
func DefaultStyle() Style {
	return Style{
		Size:       DefaultSize,
		Background: DefaultBackground,
		Foreground: DefaultForeground,
	}
}

// WithSize returns a copy using size snapped to the step grid.
func (s Style) WithSize(size int) (Style, error) {
	if size < MinSize || size > MaxSize {
		return s, fmt.Errorf("%w: %d not in [%d, %d]", ErrSizeOutOfRange, size, MinSize, MaxSize)
	}
	s.Size = NormalizeSize(size)
	return s, nil
}

// Step moves the size by the given number of steps, clamped to the bounds.
func (s Style) Step(steps int) Style {
	s.Size = NormalizeSize(s.Size + steps*SizeStep)
	return s
}

// NormalizeSize clamps size into range and snaps it down to the step grid.
func NormalizeSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return MinSize + (size-MinSize)/SizeStep*SizeStep
}
