// Package preview renders the visual mock of a terminal configured by a
// settings snapshot: an HTML page with a live-update hook, a summary of
// active settings, and an ANSI rendition for terminals.
package preview

import (
	"encoding/json"
	"fmt"

	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
)

// Payload is the object passed to window.updateTerminalConfig.
type Payload struct {
	Background      string  `json:"bg"`
	Foreground      string  `json:"fg"`
	PromptColor     string  `json:"promptColor"`
	CursorStyle     string  `json:"cursorStyle"`
	FontSize        int     `json:"fontSize"`
	LineHeight      float64 `json:"lineHeight"`
	Font            string  `json:"font"`
	Padding         int     `json:"padding"`
	Opacity         float64 `json:"opacity"`
	EnableTabBar    bool    `json:"enableTabBar"`
	EnableScrollBar bool    `json:"enableScrollBar"`
}

// NewPayload builds the live-update object for s and p. Palette colors are
// normalized to #rrggbb; an invalid color is an error.
func NewPayload(s settings.Settings, p theme.Palette) (Payload, error) {
	palette, err := normalizePalette(p)
	if err != nil {
		return Payload{}, err
	}
	return Payload{
		Background:      palette.Background,
		Foreground:      palette.Foreground,
		PromptColor:     palette.Accent,
		CursorStyle:     CursorCSS(s.CursorStyle, palette.Accent),
		FontSize:        s.FontSize,
		LineHeight:      s.LineHeight,
		Font:            s.Font,
		Padding:         s.Padding,
		Opacity:         s.Opacity,
		EnableTabBar:    s.EnableTabBar,
		EnableScrollBar: s.EnableScrollBar,
	}, nil
}

// UpdatePayload returns the JSON encoding of NewPayload.
func UpdatePayload(s settings.Settings, p theme.Palette) ([]byte, error) {
	payload, err := NewPayload(s, p)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preview payload: %w", err)
	}
	return data, nil
}

// UpdateScript returns a script snippet that pushes the payload into an
// already rendered preview page.
func UpdateScript(s settings.Settings, p theme.Palette) (string, error) {
	data, err := UpdatePayload(s, p)
	if err != nil {
		return "", err
	}
	arg, err := json.Marshal(string(data))
	if err != nil {
		return "", fmt.Errorf("failed to encode preview payload: %w", err)
	}
	return fmt.Sprintf("if (window.updateTerminalConfig) { window.updateTerminalConfig(%s); }", arg), nil
}

// CursorCSS returns the inline CSS that draws a cursor of style c in the
// accent color. Unknown styles draw a block.
func CursorCSS(c settings.CursorStyle, accent string) string {
	switch c {
	case settings.CursorBar:
		return fmt.Sprintf("border-left:2px solid %s;", accent)
	case settings.CursorUnderline:
		return fmt.Sprintf("border-bottom:2px solid %s;", accent)
	default:
		return fmt.Sprintf("background:%s;color:black;", accent)
	}
}

func normalizePalette(p theme.Palette) (theme.Palette, error) {
	var out theme.Palette
	var err error
	if out.Background, err = theme.NormalizeHex(p.Background); err != nil {
		return theme.Palette{}, fmt.Errorf("preview background: %w", err)
	}
	if out.Foreground, err = theme.NormalizeHex(p.Foreground); err != nil {
		return theme.Palette{}, fmt.Errorf("preview foreground: %w", err)
	}
	if out.Accent, err = theme.NormalizeHex(p.Accent); err != nil {
		return theme.Palette{}, fmt.Errorf("preview accent: %w", err)
	}
	return out, nil
}
