package theme

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme selects where palette colors come from.
type Theme string

const (
	Dark   Theme = "Dark"
	Light  Theme = "Light"
	Custom Theme = "Custom"
)

// Themes lists the supported themes in display order.
var Themes = []Theme{Dark, Light, Custom}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case Dark, Light, Custom:
		return true
	default:
		return false
	}
}

// Scheme names of the built-in palette table.
const (
	BuiltinDark    = "Builtin Dark"
	BuiltinLight   = "Builtin Light"
	Gruvbox        = "Gruvbox"
	Dracula        = "Dracula"
	Monokai        = "Monokai"
	SolarizedDark  = "Solarized Dark"
	SolarizedLight = "Solarized Light"
	Nord           = "Nord"
)

// DefaultScheme is used whenever a scheme name is not in the table.
const DefaultScheme = BuiltinDark

// Palette is the resolved color triple. Values are hex strings.
type Palette struct {
	Background string `toml:"background" json:"bg"`
	Foreground string `toml:"foreground" json:"fg"`
	Accent     string `toml:"accent" json:"prompt"`
}

// ErrInvalidColor is returned when a palette slot is not a hex color.
var ErrInvalidColor = errors.New("invalid hex color")

var schemeOrder = [...]string{
	BuiltinDark, BuiltinLight, Gruvbox, Dracula,
	Monokai, SolarizedDark, SolarizedLight, Nord,
}

var schemes = map[string]Palette{
	BuiltinDark:    {Background: "#121212", Foreground: "#d0d0d0", Accent: "#5fafff"},
	BuiltinLight:   {Background: "#f0f0f0", Foreground: "#333333", Accent: "#0087af"},
	Gruvbox:        {Background: "#282828", Foreground: "#ebdbb2", Accent: "#b8bb26"},
	Dracula:        {Background: "#282a36", Foreground: "#f8f8f2", Accent: "#bd93f9"},
	Monokai:        {Background: "#272822", Foreground: "#f8f8f2", Accent: "#a6e22e"},
	SolarizedDark:  {Background: "#002b36", Foreground: "#839496", Accent: "#268bd2"},
	SolarizedLight: {Background: "#fdf6e3", Foreground: "#657b83", Accent: "#268bd2"},
	Nord:           {Background: "#2e3440", Foreground: "#d8dee9", Accent: "#88c0d0"},
}

var themeSchemes = map[Theme]string{
	Dark:  BuiltinDark,
	Light: BuiltinLight,
}

// Resolve returns the palette for a theme selection.
//
// With theme Custom and a complete customColors record, the record is
// returned verbatim. Otherwise colorScheme is looked up in the built-in
// table, falling back to Builtin Dark for unknown names.
func Resolve(t Theme, colorScheme string, customColors *Palette) Palette {
	if t == Custom && customColors.Complete() {
		return *customColors
	}
	if p, ok := LookupScheme(colorScheme); ok {
		return p
	}
	return schemes[DefaultScheme]
}

// LookupScheme returns the built-in palette for name without any fallback.
func LookupScheme(name string) (Palette, bool) {
	p, ok := schemes[name]
	return p, ok
}

// SchemeNames returns the built-in scheme names in table order.
func SchemeNames() []string {
	names := make([]string, len(schemeOrder))
	copy(names, schemeOrder[:])
	return names
}

// SchemeForTheme returns the scheme a theme switches to by default.
// Custom has no scheme and yields "".
func SchemeForTheme(t Theme) string {
	return themeSchemes[t]
}

// Complete reports whether all three slots are present.
func (p *Palette) Complete() bool {
	if p == nil {
		return false
	}
	return strings.TrimSpace(p.Background) != "" &&
		strings.TrimSpace(p.Foreground) != "" &&
		strings.TrimSpace(p.Accent) != ""
}

// Validate checks that every slot parses as a #rgb or #rrggbb color.
func (p Palette) Validate() error {
	slots := []struct {
		name  string
		value string
	}{
		{"background", p.Background},
		{"foreground", p.Foreground},
		{"accent", p.Accent},
	}
	for _, slot := range slots {
		if _, err := NormalizeHex(slot.value); err != nil {
			return fmt.Errorf("%s: %w", slot.name, err)
		}
	}
	return nil
}

// NormalizeHex parses a hex color and returns it in lower-case #rrggbb form.
func NormalizeHex(value string) (string, error) {
	v := strings.TrimSpace(value)
	if len(v) != 4 && len(v) != 7 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return c.Hex(), nil
}

// IsDark reports whether a hex color is closer to black than white.
// Unparseable colors are treated as dark.
func IsDark(hex string) bool {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return true
	}
	l, _, _ := c.Lab()
	return l < 0.5
}
