package update

import (
	"github.com/tesso57/qrgen/internal/presentation/tui/metrics"
	"github.com/tesso57/qrgen/internal/presentation/tui/state"
)

// UpdateSizes fits the input and help widths to the terminal.
func UpdateSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	s.Help.Width = s.Width
	s.Input.Width = clampMin(min(s.Width, metrics.MaxFormWidth)-metrics.InputChromeWidth, metrics.MinInputWidth)
}

// CanvasWidth returns the columns available for drawing the code.
func CanvasWidth(s *state.ModelState) int {
	if s.Width <= 0 {
		return 0
	}
	return clampMin(s.Width-metrics.CanvasChromeWidth, 1)
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
