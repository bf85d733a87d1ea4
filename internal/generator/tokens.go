package generator

import (
	"strings"

	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
)

// Cell size used to turn window pixels into columns and rows. This is a
// fixed approximation, not a font metric.
const (
	PixelsPerColumn = 8
	PixelsPerRow    = 16
)

var cursorTokens = map[settings.CursorStyle]string{
	settings.CursorBlock:     "SteadyBlock",
	settings.CursorBar:       "SteadyBar",
	settings.CursorUnderline: "SteadyUnderline",
}

// CursorStyleToken maps a cursor style to its WezTerm default_cursor_style
// value. Unknown styles map to SteadyBlock.
func CursorStyleToken(c settings.CursorStyle) string {
	if token, ok := cursorTokens[c]; ok {
		return token
	}
	return "SteadyBlock"
}

var decorationTokens = map[settings.WindowDecoration]string{
	settings.DecorationTitle:             "TITLE",
	settings.DecorationResize:            "RESIZE",
	settings.DecorationShadowOnMac:       "MACOS_FORCE_ENABLE_SHADOW",
	settings.DecorationIntegratedButtons: "INTEGRATED_BUTTONS",
}

// DecorationsValue renders a decoration set as a WezTerm window_decorations
// string in canonical flag order, e.g. "TITLE | RESIZE". Unknown flags are
// skipped. An empty set yields "".
func DecorationsValue(decorations []settings.WindowDecoration) string {
	present := make(map[settings.WindowDecoration]bool, len(decorations))
	for _, d := range decorations {
		present[d] = true
	}

	var flags []string
	for _, d := range settings.WindowDecorations {
		if present[d] {
			flags = append(flags, decorationTokens[d])
		}
	}
	return strings.Join(flags, " | ")
}

// CloseConfirmationValue maps a close confirmation mode to its WezTerm
// value.
func CloseConfirmationValue(c settings.CloseConfirmation) string {
	if c == settings.CloseNever {
		return "NeverPrompt"
	}
	if c == "" {
		return string(settings.CloseAlwaysPrompt)
	}
	return string(c)
}
