// Package tui provides the main user interface model and view components.
package tui

import (
	"github.com/tesso57/qrgen/internal/presentation/tui/components/actions"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/canvas"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/controls"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/form"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/qrgen/internal/presentation/tui/components/main"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/modal"
	"github.com/tesso57/qrgen/internal/presentation/tui/metrics"
	"github.com/tesso57/qrgen/internal/presentation/tui/state"
	"github.com/tesso57/qrgen/internal/presentation/tui/textutil"
	"github.com/tesso57/qrgen/internal/presentation/tui/update"
	"github.com/tesso57/qrgen/internal/presentation/tui/view"
)

const appTitle = "QR Code Generator"

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header:   m.buildHeaderProps(),
		Form:     m.buildFormProps(),
		Controls: m.buildControlsProps(),
		Canvas:   m.buildCanvasProps(),
		Actions:  m.buildActionsProps(),
		Main:     m.buildMainProps(),
		Modal:    m.buildModalProps(),
		Footer:   m.buildFooterProps(),
		Width:    m.state.Width,
	}
}

func (m *Model) buildHeaderProps() header.Props {
	return header.Props{
		Title: appTitle,
		Width: m.formWidth(),
		Color: m.settings.Theme.Accent,
	}
}

func (m *Model) buildFormProps() form.Props {
	return form.Props{
		Input:       m.state.Input.View(),
		Err:         m.state.Err,
		Focused:     m.state.Focus == state.InputFocus,
		GenerateKey: state.HelpKey(m.state.Keys.Generate),
		Width:       m.formWidth() - 2,
		AccentColor: m.settings.Theme.Accent,
		ErrorColor:  m.settings.Theme.Error,
		MutedColor:  m.settings.Theme.Muted,
	}
}

func (m *Model) buildControlsProps() controls.Props {
	return controls.Props{
		Title:           "Customize QR Code",
		Size:            m.state.Style.Size,
		SliderWidth:     metrics.SliderWidth,
		BackgroundInput: m.state.BackgroundInput.View(),
		ForegroundInput: m.state.ForegroundInput.View(),
		Background:      m.state.Style.Background,
		Foreground:      m.state.Style.Foreground,
		Active:          activeField(m.state.Focus),
		AccentColor:     m.settings.Theme.Accent,
		MutedColor:      m.settings.Theme.Muted,
	}
}

func (m *Model) buildCanvasProps() canvas.Props {
	return canvas.Props{
		Bitmap:     m.state.Bitmap,
		Err:        m.state.RenderErr,
		Empty:      !m.state.HasRequest(),
		Preview:    m.state.Request.Preview(),
		IsURL:      m.state.Request.IsURL,
		OpenKey:    state.HelpKey(m.state.Keys.OpenURL),
		Style:      m.state.Style,
		MaxWidth:   update.CanvasWidth(m.state),
		MutedColor: m.settings.Theme.Muted,
		LinkColor:  m.settings.Theme.Accent,
	}
}

func (m *Model) buildActionsProps() actions.Props {
	return actions.Props{
		Enabled:      m.state.HasRequest(),
		CopyFeedback: m.state.CopyFeedback,
		DownloadKey:  state.HelpKey(m.state.Keys.Download),
		CopyKey:      state.HelpKey(m.state.Keys.Copy),
		ClearKey:     state.HelpKey(m.state.Keys.Clear),
		MutedColor:   m.settings.Theme.Muted,
	}
}

func (m *Model) buildMainProps() mainview.Props {
	width := 0
	if m.state.Width > 0 {
		width = m.state.Width - 2
	}
	return mainview.Props{Width: width}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	status := textutil.StatusLine(m.state.StatusMessage, m.state.Width)
	return state.FooterText(status, helpText, m.state.Year)
}

func (m *Model) formWidth() int {
	if m.state.Width <= 0 {
		return metrics.MaxFormWidth
	}
	return min(m.state.Width, metrics.MaxFormWidth)
}

func activeField(f state.Focus) controls.Field {
	switch f {
	case state.SizeFocus:
		return controls.SizeField
	case state.BackgroundFocus:
		return controls.BackgroundField
	case state.ForegroundFocus:
		return controls.ForegroundField
	default:
		return controls.NoField
	}
}
