// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/qrgen/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Generate
	Download
	Copy
	Clear
	OpenURL
	SaveStyle
	NextField
	PrevField
	Increase
	Decrease
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
// Increase and Decrease are plain keys; callers only honor them on the size control.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Generate):
		return Intent{Type: Generate}
	case key.Matches(msg, keys.Download):
		return Intent{Type: Download}
	case key.Matches(msg, keys.Copy):
		return Intent{Type: Copy}
	case key.Matches(msg, keys.Clear):
		return Intent{Type: Clear}
	case key.Matches(msg, keys.OpenURL):
		return Intent{Type: OpenURL}
	case key.Matches(msg, keys.SaveStyle):
		return Intent{Type: SaveStyle}
	case key.Matches(msg, keys.NextField):
		return Intent{Type: NextField}
	case key.Matches(msg, keys.PrevField):
		return Intent{Type: PrevField}
	case key.Matches(msg, keys.Increase):
		return Intent{Type: Increase}
	case key.Matches(msg, keys.Decrease):
		return Intent{Type: Decrease}
	default:
		return Intent{Type: None}
	}
}
