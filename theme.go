package loom

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Standard environment keys. Widgets read these instead of hardcoding
// metrics and colors; applications override them globally through a
// theme or locally with Key.With.
var (
	KeyWindowBackground = NewKey[Color]("loom.window-background")
	KeyTextColor        = NewKey[Color]("loom.text-color")
	KeyAccentColor      = NewKey[Color]("loom.accent-color")
	KeyBorderColor      = NewKey[Color]("loom.border-color")
	KeyButtonColor      = NewKey[Color]("loom.button-color")

	// Text metrics. Real glyph shaping lives in the rendering backend;
	// layout uses these nominal advances.
	KeyCharWidth  = NewKey[float64]("loom.char-width")
	KeyLineHeight = NewKey[float64]("loom.line-height")

	KeySpacing     = NewKey[float64]("loom.spacing")
	KeyBorderWidth = NewKey[float64]("loom.border-width")
)

// DefaultEnv returns the base environment with the dark theme installed.
func DefaultEnv() Env {
	return ThemeDark.Env()
}

// Theme is a named set of environment defaults.
type Theme struct {
	WindowBackground Color
	Text             Color
	Accent           Color
	Border           Color
	Button           Color

	CharWidth   float64
	LineHeight  float64
	Spacing     float64
	BorderWidth float64
}

// ThemeDark is light text on a dark background.
var ThemeDark = Theme{
	WindowBackground: Hex("#1e1e2e"),
	Text:             Hex("#cdd6f4"),
	Accent:           Hex("#89b4fa"),
	Border:           Hex("#45475a"),
	Button:           Hex("#313244"),
	CharWidth:        8,
	LineHeight:       16,
	Spacing:          8,
	BorderWidth:      1,
}

// ThemeLight is dark text on a light background.
var ThemeLight = Theme{
	WindowBackground: Hex("#eff1f5"),
	Text:             Hex("#4c4f69"),
	Accent:           Hex("#1e66f5"),
	Border:           Hex("#bcc0cc"),
	Button:           Hex("#ccd0da"),
	CharWidth:        8,
	LineHeight:       16,
	Spacing:          8,
	BorderWidth:      1,
}

// Env builds a fresh base environment carrying the theme's defaults.
func (t Theme) Env() Env {
	e := NewEnv()
	e = KeyWindowBackground.Default(e, t.WindowBackground)
	e = KeyTextColor.Default(e, t.Text)
	e = KeyAccentColor.Default(e, t.Accent)
	e = KeyBorderColor.Default(e, t.Border)
	e = KeyButtonColor.Default(e, t.Button)
	e = KeyCharWidth.Default(e, t.CharWidth)
	e = KeyLineHeight.Default(e, t.LineHeight)
	e = KeySpacing.Default(e, t.Spacing)
	e = KeyBorderWidth.Default(e, t.BorderWidth)
	return e
}

// themeFile is the on-disk TOML shape. Unset fields fall back to the
// base theme.
type themeFile struct {
	Base   string `toml:"base"`
	Colors struct {
		WindowBackground string `toml:"window_background"`
		Text             string `toml:"text"`
		Accent           string `toml:"accent"`
		Border           string `toml:"border"`
		Button           string `toml:"button"`
	} `toml:"colors"`
	Metrics struct {
		CharWidth   float64 `toml:"char_width"`
		LineHeight  float64 `toml:"line_height"`
		Spacing     float64 `toml:"spacing"`
		BorderWidth float64 `toml:"border_width"`
	} `toml:"metrics"`
}

// LoadTheme reads a theme from a TOML file:
//
//	base = "dark"
//
//	[colors]
//	accent = "#f38ba8"
//
//	[metrics]
//	spacing = 12
func LoadTheme(path string) (Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(raw)
}

// ParseTheme parses TOML theme data. See LoadTheme.
func ParseTheme(raw []byte) (Theme, error) {
	var tf themeFile
	if err := toml.Unmarshal(raw, &tf); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}

	t := ThemeDark
	switch tf.Base {
	case "", "dark":
	case "light":
		t = ThemeLight
	default:
		return Theme{}, fmt.Errorf("parse theme: unknown base %q", tf.Base)
	}

	setColor := func(dst *Color, hex string) {
		if hex != "" {
			*dst = Hex(hex)
		}
	}
	setColor(&t.WindowBackground, tf.Colors.WindowBackground)
	setColor(&t.Text, tf.Colors.Text)
	setColor(&t.Accent, tf.Colors.Accent)
	setColor(&t.Border, tf.Colors.Border)
	setColor(&t.Button, tf.Colors.Button)

	if tf.Metrics.CharWidth > 0 {
		t.CharWidth = tf.Metrics.CharWidth
	}
	if tf.Metrics.LineHeight > 0 {
		t.LineHeight = tf.Metrics.LineHeight
	}
	if tf.Metrics.Spacing > 0 {
		t.Spacing = tf.Metrics.Spacing
	}
	if tf.Metrics.BorderWidth > 0 {
		t.BorderWidth = tf.Metrics.BorderWidth
	}
	return t, nil
}
