// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	MaxFormWidth      = 72
	InputChromeWidth  = 6
	MinInputWidth     = 10
	CanvasChromeWidth = 6

	SliderWidth = 24
)
