// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/qrgen/internal/application/usecase"
	"github.com/tesso57/qrgen/internal/domain/qr"
	"github.com/tesso57/qrgen/internal/presentation/tui/intent"
	"github.com/tesso57/qrgen/internal/presentation/tui/state"
)

// CopyFeedbackDuration is how long "Copied!" stays visible.
const CopyFeedbackDuration = 2 * time.Second

// CopiedText is the feedback shown after a successful copy.
const CopiedText = "Copied!"

// StyleSaver persists style defaults.
type StyleSaver interface {
	SetStyle(style qr.Style) error
}

// Deps groups external dependencies for updates.
type Deps struct {
	Codes       *usecase.CodeService
	Copier      *usecase.CopyService
	Styles      StyleSaver
	OpenBrowser func(string) error
}

// CopiedMsg is emitted after a clipboard write finishes.
type CopiedMsg struct {
	Err error
}

// CopyFeedbackExpiredMsg clears copy feedback set by the copy with the same Seq.
type CopyFeedbackExpiredMsg struct {
	Seq int
}

// DownloadedMsg is emitted after a PNG export finishes.
type DownloadedMsg struct {
	Path string
	Err  error
}

// CopyCmd creates a command that writes text to the clipboard.
func CopyCmd(copier *usecase.CopyService, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: copier.Copy(context.Background(), text)}
	}
}

// DownloadCmd creates a command that rasterizes and saves the current code.
func DownloadCmd(codes *usecase.CodeService, req qr.Request, style qr.Style) tea.Cmd {
	return func() tea.Msg {
		path, err := codes.Download(context.Background(), req, style)
		return DownloadedMsg{Path: path, Err: err}
	}
}

// ExpireCopyFeedbackCmd fires CopyFeedbackExpiredMsg after CopyFeedbackDuration.
func ExpireCopyFeedbackCmd(seq int) tea.Cmd {
	return tea.Tick(CopyFeedbackDuration, func(time.Time) tea.Msg {
		return CopyFeedbackExpiredMsg{Seq: seq}
	})
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if s.Help.ShowAll {
		if parsed.Type == intent.ToggleHelp || parsed.Type == intent.Quit {
			s.Help.ShowAll = false
		}
		return nil, true
	}

	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.Generate:
		Commit(s, deps)
		return nil, true
	case intent.Download:
		return startDownload(s, deps), true
	case intent.Copy:
		return startCopy(s, deps), true
	case intent.Clear:
		return Clear(s), true
	case intent.OpenURL:
		openURL(s, deps)
		return nil, true
	case intent.SaveStyle:
		saveStyle(s, deps)
		return nil, true
	case intent.NextField:
		return SetFocus(s, s.Focus.Next()), true
	case intent.PrevField:
		return SetFocus(s, s.Focus.Prev()), true
	case intent.Increase, intent.Decrease:
		if s.Focus == state.SizeFocus {
			steps := 1
			if parsed.Type == intent.Decrease {
				steps = -1
			}
			s.Style = s.Style.Step(steps)
			return nil, true
		}
	}

	return updateFocusedInput(s, msg), true
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y", "ctrl+c":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

// Commit validates the draft and promotes it into the render request.
// On failure the previous request is kept and the error is shown.
func Commit(s *state.ModelState, deps Deps) {
	req, err := qr.Commit(s.Draft())
	if err != nil {
		s.Err = qr.EmptyInputMessage
		return
	}

	s.Err = ""
	s.Request = req
	s.Bitmap = nil
	s.RenderErr = nil
	if deps.Codes == nil {
		return
	}
	bitmap, err := deps.Codes.Render(req)
	if err != nil {
		log.Printf("render: %v", err)
		s.RenderErr = err
		return
	}
	s.Bitmap = bitmap
}

// Clear resets the form to its initial empty state and refocuses the input.
// Style settings are kept.
func Clear(s *state.ModelState) tea.Cmd {
	if !s.HasRequest() {
		return nil
	}
	s.Input.Reset()
	s.Request = qr.Request{}
	s.Bitmap = nil
	s.RenderErr = nil
	s.Err = ""
	s.CopyFeedback = ""
	s.StatusMessage = ""
	return SetFocus(s, state.InputFocus)
}

// SetFocus moves keyboard focus to the given control.
func SetFocus(s *state.ModelState, f state.Focus) tea.Cmd {
	s.Focus = f
	s.Input.Blur()
	s.BackgroundInput.Blur()
	s.ForegroundInput.Blur()

	switch f {
	case state.InputFocus:
		return s.Input.Focus()
	case state.BackgroundFocus:
		return s.BackgroundInput.Focus()
	case state.ForegroundFocus:
		return s.ForegroundInput.Focus()
	default:
		return nil
	}
}

func startDownload(s *state.ModelState, deps Deps) tea.Cmd {
	if !s.HasRequest() || deps.Codes == nil {
		return nil
	}
	s.StatusMessage = "Saving " + usecase.DownloadFilename + "..."
	return DownloadCmd(deps.Codes, s.Request, s.Style)
}

func startCopy(s *state.ModelState, deps Deps) tea.Cmd {
	if !s.HasRequest() || s.Draft() == "" || deps.Copier == nil {
		return nil
	}
	return CopyCmd(deps.Copier, s.Draft())
}

func openURL(s *state.ModelState, deps Deps) {
	if !s.Request.IsURL || deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(s.Request.Content); err != nil {
		log.Printf("open url %q: %v", s.Request.Content, err)
		s.StatusMessage = fmt.Sprintf("Could not open URL: %v", err)
	}
}

func saveStyle(s *state.ModelState, deps Deps) {
	if deps.Styles == nil {
		return
	}
	if err := deps.Styles.SetStyle(s.Style); err != nil {
		log.Printf("save style: %v", err)
		s.StatusMessage = fmt.Sprintf("Could not save style: %v", err)
		return
	}
	s.StatusMessage = "Saved style as default"
}

func updateFocusedInput(s *state.ModelState, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.Focus {
	case state.InputFocus:
		prev := s.Input.Value()
		s.Input, cmd = s.Input.Update(msg)
		if s.Input.Value() != prev {
			s.Err = ""
			s.CopyFeedback = ""
		}
	case state.BackgroundFocus:
		s.BackgroundInput, cmd = s.BackgroundInput.Update(msg)
		if c, err := qr.ParseColor(s.BackgroundInput.Value()); err == nil {
			s.Style.Background = c
		}
	case state.ForegroundFocus:
		s.ForegroundInput, cmd = s.ForegroundInput.Update(msg)
		if c, err := qr.ParseColor(s.ForegroundInput.Value()); err == nil {
			s.Style.Foreground = c
		}
	}
	return cmd
}

// ForwardToInputs passes non-key messages such as cursor blinks to every field.
func ForwardToInputs(s *state.ModelState, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	cmds = append(cmds, cmd)
	s.BackgroundInput, cmd = s.BackgroundInput.Update(msg)
	cmds = append(cmds, cmd)
	s.ForegroundInput, cmd = s.ForegroundInput.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// HandleCopiedMsg shows copy feedback and schedules its expiry.
// Failures are only logged.
func HandleCopiedMsg(s *state.ModelState, msg CopiedMsg) tea.Cmd {
	if msg.Err != nil {
		if !errors.Is(msg.Err, usecase.ErrNothingToCopy) {
			log.Printf("could not copy text: %v", msg.Err)
		}
		return nil
	}
	s.CopySeq++
	s.CopyFeedback = CopiedText
	return ExpireCopyFeedbackCmd(s.CopySeq)
}

// HandleCopyFeedbackExpiredMsg clears feedback unless a newer copy replaced it.
func HandleCopyFeedbackExpiredMsg(s *state.ModelState, msg CopyFeedbackExpiredMsg) {
	if msg.Seq != s.CopySeq {
		return
	}
	s.CopyFeedback = ""
}

// HandleDownloadedMsg reports the export result in the status line.
func HandleDownloadedMsg(s *state.ModelState, msg DownloadedMsg) {
	if msg.Err != nil {
		log.Printf("download: %v", msg.Err)
		s.StatusMessage = fmt.Sprintf("Download failed: %v", msg.Err)
		return
	}
	s.StatusMessage = "Saved " + msg.Path
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
	UpdateSizes(s)
}

// NewColorInput creates a hex color field.
func NewColorInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "#RRGGBB"
	ti.CharLimit = 7
	ti.Width = 8
	ti.SetValue(value)
	return ti
}
