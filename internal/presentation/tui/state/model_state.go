package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/tesso57/qrgen/internal/domain/qr"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session         Session
	Previous        Session
	Focus           Focus
	Input           textinput.Model
	BackgroundInput textinput.Model
	ForegroundInput textinput.Model
	Help            help.Model
	Keys            KeyMap
	Width           int
	Height          int

	Request   qr.Request
	Style     qr.Style
	Bitmap    [][]bool
	RenderErr error

	Err           string
	CopyFeedback  string
	CopySeq       int
	StatusMessage string
	Year          int
}

// Draft returns the live contents of the text input.
func (s *ModelState) Draft() string {
	return s.Input.Value()
}

// HasRequest reports whether a code is currently drawn.
func (s *ModelState) HasRequest() bool {
	return !s.Request.Empty()
}
