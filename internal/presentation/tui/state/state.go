// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/qrgen/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	FormView Session = iota
	QuitView
)

// Focus identifies the control receiving keystrokes.
type Focus int

const (
	InputFocus Focus = iota
	SizeFocus
	BackgroundFocus
	ForegroundFocus
)

// focusCount is the number of focusable controls.
const focusCount = 4

// Next returns the following control, wrapping around.
func (f Focus) Next() Focus {
	return (f + 1) % focusCount
}

// Prev returns the preceding control, wrapping around.
func (f Focus) Prev() Focus {
	return (f + focusCount - 1) % focusCount
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Generate  key.Binding
	Download  key.Binding
	Copy      key.Binding
	Clear     key.Binding
	OpenURL   key.Binding
	SaveStyle key.Binding
	NextField key.Binding
	PrevField key.Binding
	Increase  key.Binding
	Decrease  key.Binding
	Quit      key.Binding
	Help      key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.NextField, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Clear, k.OpenURL},
		{k.Download, k.Copy, k.SaveStyle},
		{k.NextField, k.PrevField, k.Increase, k.Decrease},
		{k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Generate: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Generate)...),
			key.WithHelp(cfg.Generate, "generate"),
		),
		Download: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Download)...),
			key.WithHelp(cfg.Download, "download png"),
		),
		Copy: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Copy)...),
			key.WithHelp(cfg.Copy, "copy value"),
		),
		Clear: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Clear)...),
			key.WithHelp(cfg.Clear, "clear"),
		),
		OpenURL: key.NewBinding(
			key.WithKeys(splitKeys(cfg.OpenURL)...),
			key.WithHelp(cfg.OpenURL, "visit url"),
		),
		SaveStyle: key.NewBinding(
			key.WithKeys(splitKeys(cfg.SaveStyle)...),
			key.WithHelp(cfg.SaveStyle, "save style"),
		),
		NextField: key.NewBinding(
			key.WithKeys(splitKeys(cfg.NextField)...),
			key.WithHelp(cfg.NextField, "next control"),
		),
		PrevField: key.NewBinding(
			key.WithKeys(splitKeys(cfg.PrevField)...),
			key.WithHelp(cfg.PrevField, "prev control"),
		),
		Increase: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Increase)...),
			key.WithHelp(firstKey(cfg.Increase), "bigger"),
		),
		Decrease: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Decrease)...),
			key.WithHelp(firstKey(cfg.Decrease), "smaller"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(firstKey(cfg.Quit), "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "toggle help"),
		),
	}
}

// HelpKey returns the label of a binding's first key.
func HelpKey(b key.Binding) string {
	return b.Help().Key
}

func firstKey(keys string) string {
	parts := splitKeys(keys)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
