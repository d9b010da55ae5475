package main

import (
	"github.com/alecthomas/kong"

	"github.com/tesso57/qrgen/internal/app"
)

var cli struct {
	Config     string `short:"c" type:"path" help:"Path to the config file (default ~/.config/qrgen/config.yaml)."`
	Size       int    `help:"QR code size in pixels for this run (128-512, step 8)."`
	Background string `help:"Background color for this run, e.g. #FFFFFF."`
	Foreground string `help:"Foreground color for this run, e.g. #000000."`
	OutputDir  string `type:"path" help:"Directory downloaded PNGs are written to."`
	Text       string `arg:"" optional:"" help:"Text to pre-fill the input with."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("qrgen"),
		kong.Description("Generate QR codes in the terminal."),
		kong.UsageOnError(),
	)

	err := app.Run(app.Options{
		ConfigPath: cli.Config,
		Size:       cli.Size,
		Background: cli.Background,
		Foreground: cli.Foreground,
		OutputDir:  cli.OutputDir,
		Text:       cli.Text,
	})
	ctx.FatalIfErrorf(err)
}
