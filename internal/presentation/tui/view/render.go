// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/qrgen/internal/presentation/tui/components/actions"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/canvas"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/controls"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/form"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/header"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/qrgen/internal/presentation/tui/components/main"
	"github.com/tesso57/qrgen/internal/presentation/tui/components/modal"
)

// Props aggregates properties for all UI components.
type Props struct {
	Header   header.Props
	Form     form.Props
	Controls controls.Props
	Canvas   canvas.Props
	Actions  actions.Props
	Main     mainview.Props
	Modal    modal.Props
	Footer   string
	Width    int
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	p.Main.Body = canvas.Render(p.Canvas)
	p.Main.Actions = actions.Render(p.Actions)

	return layout.Render(layout.Props{
		Header:   header.Render(p.Header),
		Form:     form.Render(p.Form) + "\n",
		Controls: controls.Render(p.Controls) + "\n",
		Main:     mainview.Render(p.Main),
		Footer:   p.Footer,
		Width:    p.Width,
	})
}
