package preview

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorCSS(t *testing.T) {
	assert.Equal(t, "background:#ff0000;color:black;", CursorCSS(settings.CursorBlock, "#ff0000"))
	assert.Equal(t, "border-left:2px solid #ff0000;", CursorCSS(settings.CursorBar, "#ff0000"))
	assert.Equal(t, "border-bottom:2px solid #ff0000;", CursorCSS(settings.CursorUnderline, "#ff0000"))
	assert.Equal(t, "background:#ff0000;color:black;", CursorCSS("Unknown", "#ff0000"))
}

func TestUpdatePayload(t *testing.T) {
	s := settings.Default()
	s.CursorStyle = settings.CursorBar

	data, err := UpdatePayload(s, s.Palette())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, map[string]any{
		"bg":              "#121212",
		"fg":              "#d0d0d0",
		"promptColor":     "#5fafff",
		"cursorStyle":     "border-left:2px solid #5fafff;",
		"fontSize":        float64(14),
		"lineHeight":      float64(1),
		"font":            "JetBrains Mono",
		"padding":         float64(8),
		"opacity":         0.95,
		"enableTabBar":    true,
		"enableScrollBar": false,
	}, got)
}

func TestUpdatePayloadNormalizesAndRejectsColors(t *testing.T) {
	s := settings.Default()

	payload, err := NewPayload(s, theme.Palette{Background: "#000", Foreground: "#FFFFFF", Accent: "#F00"})
	require.NoError(t, err)
	assert.Equal(t, "#000000", payload.Background)
	assert.Equal(t, "#ffffff", payload.Foreground)
	assert.Equal(t, "#ff0000", payload.PromptColor)

	_, err = UpdatePayload(s, theme.Palette{Background: "red;}", Foreground: "#fff", Accent: "#fff"})
	assert.True(t, errors.Is(err, theme.ErrInvalidColor))
}

func TestUpdateScript(t *testing.T) {
	script, err := UpdateScript(settings.Default(), settings.Default().Palette())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(script, "if (window.updateTerminalConfig) { window.updateTerminalConfig(\""))
	assert.Contains(t, script, `\"bg\":\"#121212\"`)
}

func TestSummaryRows(t *testing.T) {
	s := settings.Default()
	s.HyperlinkRules = []settings.HyperlinkRule{settings.RuleEmailAddresses, settings.RuleURLDetection}
	s.LeaderKey = ""

	rows := SummaryRows(s, s.Palette())
	values := make(map[string]string, len(rows))
	for _, r := range rows {
		values[r.Name] = r.Value
	}

	assert.Equal(t, "Theme", rows[0].Name)
	assert.Equal(t, "Builtin Dark", values["Color scheme"])
	assert.Equal(t, "14px", values["Font size"])
	assert.Equal(t, "0.95", values["Opacity"])
	assert.Equal(t, "1.0", values["Line height"])
	assert.Equal(t, "Enabled", values["Tab bar"])
	assert.Equal(t, "Disabled", values["Scroll bar"])
	assert.Equal(t, "URLDetection, EmailAddresses", values["Hyperlink rules"])
	assert.Equal(t, "Not set", values["Leader key"])
	assert.Equal(t, "#5fafff", values["Accent"])

	s.HyperlinkRules = nil
	s.Theme = theme.Custom
	rows = SummaryRows(s, theme.Palette{Background: "#000000", Foreground: "#ffffff", Accent: "#ff0000"})
	for _, r := range rows {
		values[r.Name] = r.Value
	}
	assert.Equal(t, "None", values["Hyperlink rules"])
	assert.Equal(t, "-", values["Color scheme"])
}

func TestRenderHTML(t *testing.T) {
	s := settings.Default()

	page, err := RenderHTML(s, s.Palette())
	require.NoError(t, err)

	assert.Contains(t, page, "font-family: 'JetBrains Mono', monospace")
	assert.Contains(t, page, "font-size: 14px")
	assert.Contains(t, page, "background:#121212;color:#d0d0d0;padding:8px;opacity:0.95;")
	assert.Contains(t, page, "height:320px")
	assert.Contains(t, page, `id="terminal-tab-bar" style="display:block"`)
	assert.Contains(t, page, `id="terminal-scrollbar" style="display:none"`)
	assert.Contains(t, page, "window.updateTerminalConfig = function")
	assert.Contains(t, page, "Active configuration")
	assert.Contains(t, page, "bash")
}

func TestRenderHTMLWithoutTabBar(t *testing.T) {
	s := settings.Default()
	s.EnableTabBar = false
	s.EnableScrollBar = true

	page, err := RenderHTML(s, s.Palette())
	require.NoError(t, err)
	assert.Contains(t, page, "height:350px")
	assert.Contains(t, page, `id="terminal-tab-bar" style="display:none"`)
	assert.Contains(t, page, `id="terminal-scrollbar" style="display:block"`)
}

func TestRenderHTMLEscapesFreeText(t *testing.T) {
	s := settings.Default()
	s.LeaderKey = "<script>alert(1)</script>"

	page, err := RenderHTML(s, s.Palette())
	require.NoError(t, err)
	assert.NotContains(t, page, "<script>alert(1)</script>")
	assert.Contains(t, page, "&lt;script&gt;")
}

func TestRenderHTMLRejectsInvalidPalette(t *testing.T) {
	_, err := RenderHTML(settings.Default(), theme.Palette{Background: "url(x)", Foreground: "#fff", Accent: "#fff"})
	assert.Error(t, err)
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 320, ContentHeight(true))
	assert.Equal(t, 350, ContentHeight(false))
}

func TestRenderANSI(t *testing.T) {
	s := settings.Default()

	out := RenderANSI(s, s.Palette(), 60)
	plain := ansi.Strip(out)

	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Contains(t, plain, windowTitle)
	assert.Contains(t, plain, "bash ✕")
	assert.Contains(t, plain, promptText)
	assert.Contains(t, plain, "JetBrains Mono 14px, opacity 0.95")
	assert.NotContains(t, plain, "┃")
}

func TestRenderANSIVariants(t *testing.T) {
	s := settings.Default()
	s.EnableTabBar = false
	s.EnableScrollBar = true
	s.CursorStyle = settings.CursorBar

	plain := ansi.Strip(RenderANSI(s, s.Palette(), 10))

	assert.NotContains(t, plain, "bash")
	assert.Contains(t, plain, "┃")
	assert.Contains(t, plain, "▏")
	assert.Equal(t, MinANSIWidth, lipgloss.Width(plain))
}

func TestRenderANSIPlainTabs(t *testing.T) {
	s := settings.Default()
	s.FancyTabBar = false

	plain := ansi.Strip(RenderANSI(s, theme.Palette{Background: "bad"}, 60))
	assert.Contains(t, plain, "bash")
	assert.NotContains(t, plain, "✕")
}

func TestCursorGlyph(t *testing.T) {
	assert.Equal(t, " ", CursorGlyph(settings.CursorBlock))
	assert.Equal(t, "▏", CursorGlyph(settings.CursorBar))
	assert.Equal(t, "_", CursorGlyph(settings.CursorUnderline))
}
