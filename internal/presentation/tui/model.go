package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/qrgen/internal/application/settings"
	"github.com/tesso57/qrgen/internal/application/usecase"
	"github.com/tesso57/qrgen/internal/presentation/tui/state"
	"github.com/tesso57/qrgen/internal/presentation/tui/update"
	"github.com/tesso57/qrgen/internal/presentation/tui/view"
)

// Services groups the application services the model drives.
type Services struct {
	Codes  *usecase.CodeService
	Copier *usecase.CopyService
	Styles update.StyleSaver
}

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	services Services
	state    *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, services Services) *Model {
	return &Model{
		settings: cfg,
		services: services,
		state:    newModelState(cfg),
	}
}

// SetDraft pre-fills the text input without committing it.
func (m *Model) SetDraft(text string) {
	m.state.Input.SetValue(text)
	m.state.Input.CursorEnd()
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
		return m, nil
	case update.CopiedMsg:
		return m, update.HandleCopiedMsg(m.state, msg)
	case update.CopyFeedbackExpiredMsg:
		update.HandleCopyFeedbackExpiredMsg(m.state, msg)
		return m, nil
	case update.DownloadedMsg:
		update.HandleDownloadedMsg(m.state, msg)
		return m, nil
	}

	return m, update.ForwardToInputs(m.state, msg)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Codes:       m.services.Codes,
		Copier:      m.services.Copier,
		Styles:      m.services.Styles,
		OpenBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	style := cfg.QRStyle()
	st := &state.ModelState{
		Session:         state.FormView,
		Focus:           state.InputFocus,
		Input:           newTextInput(),
		BackgroundInput: update.NewColorInput(style.Background.String()),
		ForegroundInput: update.NewColorInput(style.Foreground.String()),
		Help:            help.New(),
		Keys:            state.NewKeyMap(cfg.KeyMap),
		Style:           style,
		Year:            time.Now().Year(),
	}
	return st
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Enter text or number to generate QR code"
	ti.Focus()
	ti.Width = 40
	return ti
}
