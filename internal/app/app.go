// Package app wires configuration, collaborators and the TUI together.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/qrgen/internal/application/settings"
	"github.com/tesso57/qrgen/internal/application/usecase"
	"github.com/tesso57/qrgen/internal/domain/qr"
	"github.com/tesso57/qrgen/internal/infrastructure/clipboard"
	"github.com/tesso57/qrgen/internal/infrastructure/config"
	"github.com/tesso57/qrgen/internal/infrastructure/filesave"
	"github.com/tesso57/qrgen/internal/infrastructure/qrcode"
	"github.com/tesso57/qrgen/internal/presentation/tui"
)

// Options are command line values for a single run.
// Zero values leave the loaded configuration untouched.
type Options struct {
	ConfigPath string
	Size       int
	Background string
	Foreground string
	OutputDir  string
	Text       string
}

// Run executes the Bubble Tea program for the QR code generator.
func Run(opts Options) error {
	store, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg, err := ApplyOverrides(store.Settings, opts)
	if err != nil {
		return err
	}

	logFile, err := OpenLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	model := tui.NewModel(cfg, tui.Services{
		Codes:  usecase.NewCodeService(qrcode.NewDrawer(), filesave.NewSaver(cfg.OutputDir)),
		Copier: usecase.NewCopyService(clipboard.New()),
		Styles: store,
	})
	model.SetDraft(opts.Text)

	return runProgram(model)
}

// ApplyOverrides returns cfg with the command line values applied.
// The store keeps the file values, so saving a style never persists a flag.
func ApplyOverrides(cfg settings.Settings, opts Options) (settings.Settings, error) {
	if opts.Size != 0 {
		style, err := qr.DefaultStyle().WithSize(opts.Size)
		if err != nil {
			return cfg, fmt.Errorf("--size: %w", err)
		}
		cfg.Style.Size = style.Size
	}
	if opts.Background != "" {
		c, err := qr.ParseColor(opts.Background)
		if err != nil {
			return cfg, fmt.Errorf("--background: %w", err)
		}
		cfg.Style.Background = c.String()
	}
	if opts.Foreground != "" {
		c, err := qr.ParseColor(opts.Foreground)
		if err != nil {
			return cfg, fmt.Errorf("--foreground: %w", err)
		}
		cfg.Style.Foreground = c.String()
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
	return cfg, nil
}

// OpenLog redirects the standard logger to path so that log output
// never draws over the alternate screen.
func OpenLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "qrgen")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
