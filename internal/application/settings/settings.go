// Package settings defines application-level configuration data.
package settings

import "github.com/tesso57/qrgen/internal/domain/qr"

// KeyMapConfig defines the configuration for keybindings.
// Action keys use modifiers because plain keys are typed into the input.
type KeyMapConfig struct {
	Generate  string `yaml:"generate" kong:"help='Generate key',default='enter'"`
	Download  string `yaml:"download" kong:"help='Download PNG key',default='ctrl+s'"`
	Copy      string `yaml:"copy" kong:"help='Copy value key',default='ctrl+y'"`
	Clear     string `yaml:"clear" kong:"help='Clear key',default='ctrl+l'"`
	OpenURL   string `yaml:"open_url" kong:"help='Visit URL key',default='ctrl+o'"`
	SaveStyle string `yaml:"save_style" kong:"help='Save style as default key',default='ctrl+t'"`
	NextField string `yaml:"next_field" kong:"help='Next control key',default='tab'"`
	PrevField string `yaml:"prev_field" kong:"help='Previous control key',default='shift+tab'"`
	Increase  string `yaml:"increase" kong:"help='Increase size key',default='right,l,+'"`
	Decrease  string `yaml:"decrease" kong:"help='Decrease size key',default='left,h,-'"`
	Quit      string `yaml:"quit" kong:"help='Quit key',default='ctrl+c,esc'"`
	Help      string `yaml:"help" kong:"help='Toggle help key',default='f1'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='63'"`
	Error  string `yaml:"error" kong:"help='Error color',default='196'"`
	Muted  string `yaml:"muted" kong:"help='Muted text color',default='244'"`
}

// StyleConfig defines the initial QR code style.
type StyleConfig struct {
	Size       int    `yaml:"size" kong:"help='QR code size in pixels (128-512, step 8)',default='256'"`
	Background string `yaml:"background" kong:"help='Background color',default='#FFFFFF'"`
	Foreground string `yaml:"foreground" kong:"help='Foreground color',default='#000000'"`
}

// Settings represents the application configuration.
type Settings struct {
	KeyMap    KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme     ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Style     StyleConfig  `yaml:"style" kong:"embed,prefix='style.'"`
	OutputDir string       `yaml:"output_dir" kong:"help='Directory downloads are saved to',default='.'"`
	LogFile   string       `yaml:"log_file" kong:"help='Log file path'"`
}

// QRStyle converts the configured style into a domain style.
// Invalid values fall back to the defaults.
func (s Settings) QRStyle() qr.Style {
	style := qr.DefaultStyle()
	if s.Style.Size != 0 {
		style.Size = qr.NormalizeSize(s.Style.Size)
	}
	if c, err := qr.ParseColor(s.Style.Background); err == nil {
		style.Background = c
	}
	if c, err := qr.ParseColor(s.Style.Foreground); err == nil {
		style.Foreground = c
	}
	return style
}
