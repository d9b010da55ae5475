package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/qrgen/internal/application/settings"
	"github.com/tesso57/qrgen/internal/application/usecase"
	"github.com/tesso57/qrgen/internal/domain/qr"
)

type stubDrawer struct {
	mock.Mock
}

func (s *stubDrawer) Bitmap(content string) ([][]bool, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(content)
		bitmap, _ := args.Get(0).([][]bool)
		return bitmap, args.Error(1)
	}
	return [][]bool{
		{false, false, false, false},
		{false, true, true, false},
		{false, true, false, false},
		{false, false, false, false},
	}, nil
}

func (s *stubDrawer) PNG(content string, style qr.Style) ([]byte, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(content, style)
		data, _ := args.Get(0).([]byte)
		return data, args.Error(1)
	}
	return []byte("png"), nil
}

type stubSaver struct {
	mock.Mock
}

func (s *stubSaver) Save(ctx context.Context, name string, data []byte) (string, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, name, data)
		return args.String(0), args.Error(1)
	}
	return "/tmp/out/" + name, nil
}

type stubClipboard struct {
	mock.Mock
	text string
}

func (s *stubClipboard) Write(ctx context.Context, text string) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, text)
		return args.Error(0)
	}
	s.text = text
	return nil
}

type stubStyleSaver struct {
	mock.Mock
}

func (s *stubStyleSaver) SetStyle(style qr.Style) error {
	args := s.Called(style)
	return args.Error(0)
}

type testDeps struct {
	drawer    *stubDrawer
	saver     *stubSaver
	clipboard *stubClipboard
	styles    *stubStyleSaver
}

func newTestDeps() testDeps {
	return testDeps{
		drawer:    &stubDrawer{},
		saver:     &stubSaver{},
		clipboard: &stubClipboard{},
		styles:    &stubStyleSaver{},
	}
}

func testSettings() settings.Settings {
	return settings.Settings{
		KeyMap: settings.KeyMapConfig{
			Generate:  "enter",
			Download:  "ctrl+s",
			Copy:      "ctrl+y",
			Clear:     "ctrl+l",
			OpenURL:   "ctrl+o",
			SaveStyle: "ctrl+t",
			NextField: "tab",
			PrevField: "shift+tab",
			Increase:  "right,l,+",
			Decrease:  "left,h,-",
			Quit:      "ctrl+c,esc",
			Help:      "f1",
		},
		Theme: settings.ThemeConfig{
			Accent: "63",
			Error:  "196",
			Muted:  "244",
		},
		Style: settings.StyleConfig{
			Size:       256,
			Background: "#FFFFFF",
			Foreground: "#000000",
		},
		OutputDir: ".",
	}
}

func newTestModel(cfg settings.Settings, deps testDeps) *Model {
	return NewModel(cfg, Services{
		Codes:  usecase.NewCodeService(deps.drawer, deps.saver),
		Copier: usecase.NewCopyService(deps.clipboard),
		Styles: deps.styles,
	})
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, text string) {
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func commit(m *Model, text string) {
	m.state.Input.SetValue(text)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
}

// run executes cmd and feeds its message back into the model.
func run(m *Model, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	_, next := m.Update(cmd())
	return next
}
