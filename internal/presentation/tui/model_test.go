package tui

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/qrgen/internal/domain/qr"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/canvas"
	"github.com/tesso57/qrgen/internal/presentation/tui/state"
	"github.com/tesso57/qrgen/internal/presentation/tui/update"
)

func resize(m *Model) {
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 60})
}

func TestNewModel(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())

	assert.Equal(t, state.FormView, m.state.Session)
	assert.Equal(t, state.InputFocus, m.state.Focus)
	assert.True(t, m.state.Input.Focused())
	assert.Equal(t, qr.DefaultStyle(), m.state.Style)
	assert.False(t, m.state.HasRequest())
	assert.Equal(t, "#FFFFFF", m.state.BackgroundInput.Value())
	assert.Equal(t, "#000000", m.state.ForegroundInput.Value())
	assert.NotNil(t, m.Init())
}

func TestNewModel_StyleFromSettings(t *testing.T) {
	cfg := testSettings()
	cfg.Style.Size = 400
	cfg.Style.Foreground = "#336699"

	m := newTestModel(cfg, newTestDeps())

	assert.Equal(t, 400, m.state.Style.Size)
	assert.Equal(t, "#336699", m.state.Style.Foreground.String())
	assert.Equal(t, "#336699", m.state.ForegroundInput.Value())
}

func TestSetDraft_DoesNotCommit(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())

	m.SetDraft("prefilled")

	assert.Equal(t, "prefilled", m.state.Draft())
	assert.False(t, m.state.HasRequest())
}

func TestCommit(t *testing.T) {
	tests := []struct {
		name    string
		draft   string
		wantURL bool
	}{
		{name: "plain text", draft: "hello world", wantURL: false},
		{name: "number", draft: "12345", wantURL: false},
		{name: "absolute url", draft: "https://example.com", wantURL: true},
		{name: "host without scheme", draft: "example.com", wantURL: false},
		{name: "keeps surrounding spaces", draft: "  padded  ", wantURL: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(testSettings(), newTestDeps())

			commit(m, tt.draft)

			assert.Equal(t, tt.draft, m.state.Request.Content)
			assert.Equal(t, tt.wantURL, m.state.Request.IsURL)
			assert.Empty(t, m.state.Err)
			assert.NotNil(t, m.state.Bitmap)
		})
	}
}

func TestCommit_EmptyInputKeepsPreviousRequest(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	commit(m, "first")

	commit(m, "   ")

	assert.Equal(t, qr.EmptyInputMessage, m.state.Err)
	assert.Equal(t, "first", m.state.Request.Content)
}

func TestCommit_EmptyInputWithoutRequest(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	resize(m)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, qr.EmptyInputMessage, m.state.Err)
	assert.False(t, m.state.HasRequest())
	view := m.View()
	assert.Contains(t, view, qr.EmptyInputMessage)
	assert.Contains(t, view, canvas.Placeholder)
}

func TestCommit_Idempotent(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())

	commit(m, "https://example.com/a")
	first := m.state.Request
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, first, m.state.Request)
}

func TestCommit_RenderError(t *testing.T) {
	deps := newTestDeps()
	deps.drawer.On("Bitmap", mock.Anything).Return(nil, errors.New("content too long"))
	m := newTestModel(testSettings(), deps)
	resize(m)

	commit(m, "huge")

	assert.True(t, m.state.HasRequest())
	require.Error(t, m.state.RenderErr)
	assert.Contains(t, m.View(), "content too long")
	deps.drawer.AssertExpectations(t)
}

func TestTyping_ClearsErrorAndFeedback(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	m.state.Err = qr.EmptyInputMessage
	m.state.CopyFeedback = update.CopiedText

	typeText(m, "a")

	assert.Equal(t, "a", m.state.Draft())
	assert.Empty(t, m.state.Err)
	assert.Empty(t, m.state.CopyFeedback)
}

func TestTyping_StepKeysInsertTextInInput(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())

	typeText(m, "l")
	typeText(m, "+")

	assert.Equal(t, "l+", m.state.Draft())
	assert.Equal(t, qr.DefaultSize, m.state.Style.Size)
}

func TestView_Preview(t *testing.T) {
	long := strings.Repeat("abcdefghij", 5)
	m := newTestModel(testSettings(), newTestDeps())
	resize(m)

	commit(m, long)

	assert.Contains(t, m.View(), "QR Content: "+long[:40]+"...")
}

func TestView_ShortPreview(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	resize(m)

	commit(m, "short text")

	assert.Contains(t, m.View(), "QR Content: short text")
	assert.NotContains(t, m.View(), "Visit URL")
}

func TestView_VisitURL(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	resize(m)

	commit(m, "https://example.com")

	assert.Contains(t, m.View(), "Visit URL")
	assert.Contains(t, m.View(), "Download QR")
}

func TestClear(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	commit(m, "https://example.com")
	m.state.CopyFeedback = update.CopiedText
	m.state.StatusMessage = "Saved ./qrcode.png"
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, state.SizeFocus, m.state.Focus)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Empty(t, m.state.Draft())
	assert.False(t, m.state.HasRequest())
	assert.False(t, m.state.Request.IsURL)
	assert.Empty(t, m.state.Err)
	assert.Empty(t, m.state.CopyFeedback)
	assert.Empty(t, m.state.StatusMessage)
	assert.Nil(t, m.state.Bitmap)
	assert.Equal(t, state.InputFocus, m.state.Focus)
	assert.True(t, m.state.Input.Focused())
	assert.Equal(t, qr.DefaultSize+qr.SizeStep, m.state.Style.Size)
}

func TestClear_NoRequestIsNoop(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	typeText(m, "draft")

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Nil(t, cmd)
	assert.Equal(t, "draft", m.state.Draft())
}

func TestCopy(t *testing.T) {
	deps := newTestDeps()
	m := newTestModel(testSettings(), deps)
	commit(m, "hello")
	typeText(m, "!")

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	expire := run(m, cmd)

	assert.Equal(t, "hello!", deps.clipboard.text)
	assert.Equal(t, update.CopiedText, m.state.CopyFeedback)
	require.NotNil(t, expire)

	msg := expire()
	require.IsType(t, update.CopyFeedbackExpiredMsg{}, msg)
	m.Update(msg)
	assert.Empty(t, m.state.CopyFeedback)
}

func TestCopy_StaleExpiryKeepsNewerFeedback(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	commit(m, "hello")

	run(m, press(m, tea.KeyMsg{Type: tea.KeyCtrlY}))
	firstSeq := m.state.CopySeq
	run(m, press(m, tea.KeyMsg{Type: tea.KeyCtrlY}))

	m.Update(update.CopyFeedbackExpiredMsg{Seq: firstSeq})
	assert.Equal(t, update.CopiedText, m.state.CopyFeedback)

	m.Update(update.CopyFeedbackExpiredMsg{Seq: m.state.CopySeq})
	assert.Empty(t, m.state.CopyFeedback)
}

func TestCopy_Failure(t *testing.T) {
	deps := newTestDeps()
	deps.clipboard.On("Write", mock.Anything, "hello").Return(errors.New("no clipboard"))
	m := newTestModel(testSettings(), deps)
	commit(m, "hello")

	next := run(m, press(m, tea.KeyMsg{Type: tea.KeyCtrlY}))

	assert.Nil(t, next)
	assert.Empty(t, m.state.CopyFeedback)
	deps.clipboard.AssertExpectations(t)
}

func TestCopy_DisabledWithoutRequest(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	typeText(m, "not committed")

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Nil(t, cmd)
}

func TestDownload(t *testing.T) {
	deps := newTestDeps()
	deps.saver.On("Save", mock.Anything, "qrcode.png", []byte("png")).Return("/out/qrcode.png", nil)
	m := newTestModel(testSettings(), deps)
	commit(m, "hello")

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	run(m, cmd)

	assert.Equal(t, "Saved /out/qrcode.png", m.state.StatusMessage)
	deps.saver.AssertExpectations(t)
}

func TestDownload_Failure(t *testing.T) {
	deps := newTestDeps()
	deps.saver.On("Save", mock.Anything, "qrcode.png", mock.Anything).Return("", errors.New("disk full"))
	m := newTestModel(testSettings(), deps)
	commit(m, "hello")

	run(m, press(m, tea.KeyMsg{Type: tea.KeyCtrlS}))

	assert.Contains(t, m.state.StatusMessage, "Download failed")
	assert.Contains(t, m.state.StatusMessage, "disk full")
}

func TestDownload_DisabledWithoutRequest(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Empty(t, m.state.StatusMessage)
}

func TestStyleControls_Size(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, state.SizeFocus, m.state.Focus)
	assert.False(t, m.state.Input.Focused())

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 264, m.state.Style.Size)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	assert.Equal(t, 248, m.state.Style.Size)

	for i := 0; i < 100; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	assert.Equal(t, qr.MinSize, m.state.Style.Size)
}

func TestStyleControls_Colors(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	commit(m, "hello")

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, state.BackgroundFocus, m.state.Focus)
	require.True(t, m.state.BackgroundInput.Focused())

	press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeText(m, "#0")
	assert.Equal(t, "#FFFFFF", m.state.Style.Background.String(), "partial value is not applied")
	typeText(m, "00")
	assert.Equal(t, "#000000", m.state.Style.Background.String())

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, state.ForegroundFocus, m.state.Focus)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	typeText(m, "#ff0000")
	assert.Equal(t, "#FF0000", m.state.Style.Foreground.String())

	assert.Equal(t, "hello", m.state.Request.Content, "style changes need no re-commit")
}

func TestStyleControls_PrevField(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})

	assert.Equal(t, state.ForegroundFocus, m.state.Focus)
	assert.True(t, m.state.ForegroundInput.Focused())
}

func TestGenerate_FromAnyField(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	typeText(m, "hello")
	press(m, tea.KeyMsg{Type: tea.KeyTab})

	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "hello", m.state.Request.Content)
}

func TestOpenURL(t *testing.T) {
	var openedURL string
	oldOpen := OSOpenCmd
	defer func() { OSOpenCmd = oldOpen }()
	OSOpenCmd = func(url string) *exec.Cmd {
		openedURL = url
		return exec.Command("echo", "mock")
	}

	m := newTestModel(testSettings(), newTestDeps())
	commit(m, "plain text")
	press(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Empty(t, openedURL)

	commit(m, "https://example.com/path?q=1")
	press(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, "https://example.com/path?q=1", openedURL)
}

func TestSaveStyle(t *testing.T) {
	deps := newTestDeps()
	want := qr.DefaultStyle().Step(1)
	deps.styles.On("SetStyle", want).Return(nil)
	m := newTestModel(testSettings(), deps)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Equal(t, "Saved style as default", m.state.StatusMessage)
	deps.styles.AssertExpectations(t)
}

func TestSaveStyle_Failure(t *testing.T) {
	deps := newTestDeps()
	deps.styles.On("SetStyle", mock.Anything).Return(errors.New("read-only"))
	m := newTestModel(testSettings(), deps)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Contains(t, m.state.StatusMessage, "read-only")
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	resize(m)

	press(m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.state.Help.ShowAll)
	assert.Contains(t, m.View(), "download")

	typeText(m, "x")
	assert.Empty(t, m.state.Draft(), "keys are swallowed while help is open")

	press(m, tea.KeyMsg{Type: tea.KeyF1})
	assert.False(t, m.state.Help.ShowAll)
}

func TestView_Footer(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	resize(m)

	view := m.View()
	assert.Contains(t, view, "QR Code Generator. All rights reserved.")
	assert.Contains(t, view, state.Tagline)
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
}

func TestView_LongStatusKeepsFileName(t *testing.T) {
	m := newTestModel(testSettings(), newTestDeps())
	resize(m)
	m.Update(update.DownloadedMsg{Path: strings.Repeat("/deep", 60) + "/qrcode.png"})

	view := m.View()
	assert.Contains(t, view, "Saved /deep")
	assert.Contains(t, view, "…")
	assert.Contains(t, view, "/qrcode.png")
}
