package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
)

// Section names.
const (
	SectionHeader     = "header"
	SectionFont       = "font"
	SectionVisual     = "visual"
	SectionWindow     = "window"
	SectionHyperlinks = "hyperlinks"
	SectionLeader     = "leader"
	SectionColors     = "colors"
	SectionFooter     = "footer"
)

// RenderFunc renders one section. A nil or empty result omits the section.
type RenderFunc func(s settings.Settings, p theme.Palette) ([]string, error)

// Section is one named block of the document.
type Section struct {
	Name     string
	Optional bool
	Render   RenderFunc
}

var sections = []Section{
	{Name: SectionHeader, Render: renderHeader},
	{Name: SectionFont, Render: renderFont},
	{Name: SectionVisual, Render: renderVisual},
	{Name: SectionWindow, Render: renderWindow},
	{Name: SectionHyperlinks, Optional: true, Render: renderHyperlinks},
	{Name: SectionLeader, Optional: true, Render: renderLeader},
	{Name: SectionColors, Render: renderColors},
	{Name: SectionFooter, Render: renderFooter},
}

// Sections returns the document sections in emission order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

func renderHeader(settings.Settings, theme.Palette) ([]string, error) {
	return []string{
		"local wezterm = require 'wezterm'",
		"local act = wezterm.action",
		"",
		"local config = wezterm.config_builder()",
	}, nil
}

func renderFont(s settings.Settings, _ theme.Palette) ([]string, error) {
	lineHeight, err := luaNumber(s.LineHeight)
	if err != nil {
		return nil, sectionError(SectionFont, "line_height", err)
	}
	return []string{
		"-- Font",
		fmt.Sprintf("config.font = wezterm.font(%s)", quote(s.Font)),
		fmt.Sprintf("config.font_size = %d", s.FontSize),
		fmt.Sprintf("config.line_height = %s", lineHeight),
	}, nil
}

func renderVisual(s settings.Settings, _ theme.Palette) ([]string, error) {
	opacity, err := luaNumber(s.Opacity)
	if err != nil {
		return nil, sectionError(SectionVisual, "opacity", err)
	}
	pad := strconv.Itoa(s.Padding)
	return []string{
		"-- Appearance",
		"config.enable_tab_bar = " + luaBool(s.EnableTabBar),
		"config.use_fancy_tab_bar = " + luaBool(s.FancyTabBar),
		"config.enable_scroll_bar = " + luaBool(s.EnableScrollBar),
		"config.window_background_opacity = " + opacity,
		fmt.Sprintf("config.default_cursor_style = %s", quote(CursorStyleToken(s.CursorStyle))),
		"config.window_padding = {",
		fmt.Sprintf("  left = %s, right = %s,", pad, pad),
		fmt.Sprintf("  top = %s, bottom = %s,", pad, pad),
		"}",
	}, nil
}

func renderWindow(s settings.Settings, _ theme.Palette) ([]string, error) {
	if s.WindowWidth < 0 {
		return nil, sectionError(SectionWindow, "window_width",
			fmt.Errorf("%w: negative width %d", ErrInvalidSettings, s.WindowWidth))
	}
	if s.WindowHeight < 0 {
		return nil, sectionError(SectionWindow, "window_height",
			fmt.Errorf("%w: negative height %d", ErrInvalidSettings, s.WindowHeight))
	}

	lines := []string{
		"-- Window",
		fmt.Sprintf("config.initial_cols = %d", s.WindowWidth/PixelsPerColumn),
		fmt.Sprintf("config.initial_rows = %d", s.WindowHeight/PixelsPerRow),
	}
	if decorations := DecorationsValue(s.WindowDecorations); decorations != "" {
		lines = append(lines, "config.window_decorations = "+quote(decorations))
	}
	if s.WindowPosition != nil {
		lines = append(lines, fmt.Sprintf("config.initial_position = { x = %d, y = %d }",
			s.WindowPosition.X, s.WindowPosition.Y))
	}
	switch {
	case s.WindowMaximized:
		lines = append(lines, "config.default_gui_startup_args = { 'start', '--maximized' }")
	case s.WindowFullscreen:
		lines = append(lines, "config.default_gui_startup_args = { 'start', '--fullscreen' }")
	}
	lines = append(lines,
		"config.window_close_confirmation = "+quote(CloseConfirmationValue(s.WindowCloseConfirmation)),
		"config.hide_tab_bar_if_only_one_tab = "+luaBool(s.HideTabBarIfOneTab),
		"config.window_is_always_on_top = "+luaBool(s.WindowAlwaysOnTop),
	)
	return lines, nil
}

type hyperlinkRule struct {
	rule    settings.HyperlinkRule
	comment string
	regex   string
	format  string
}

// hyperlinkTable is ordered: URLs, then email addresses, then file paths.
// The regex values are Lua source text, so each backslash is already
// doubled.
var hyperlinkTable = []hyperlinkRule{
	{
		rule:    settings.RuleURLDetection,
		comment: "URLs",
		regex:   `\\b\\w+://[\\w.-]+\\.[\\w.-]+\\S*\\b`,
		format:  "$0",
	},
	{
		rule:    settings.RuleEmailAddresses,
		comment: "Email addresses",
		regex:   `\\b\\w+@[\\w.-]+\\.[\\w]+\\b`,
		format:  "mailto:$0",
	},
	{
		rule:    settings.RuleFilePaths,
		comment: "File paths",
		regex:   `\\b(\\w+:)?[\\/\\\\][\\w.~-]+[\\/\\\\][\\w.~-]+\\b`,
		format:  "$0",
	},
}

func renderHyperlinks(s settings.Settings, _ theme.Palette) ([]string, error) {
	var body []string
	for _, entry := range hyperlinkTable {
		if !s.HasRule(entry.rule) {
			continue
		}
		body = append(body,
			"  -- "+entry.comment,
			"  {",
			"    regex = '"+entry.regex+"',",
			"    format = "+quote(entry.format)+",",
			"  },",
		)
	}
	if len(body) == 0 {
		return nil, nil
	}

	lines := append([]string{"-- Hyperlinks", "config.hyperlink_rules = {"}, body...)
	return append(lines, "}"), nil
}

func renderLeader(s settings.Settings, _ theme.Palette) ([]string, error) {
	key, mods, ok := ParseLeaderKey(s.LeaderKey)
	if !ok {
		return nil, nil
	}
	return []string{
		"-- Leader key",
		fmt.Sprintf("config.leader = { key = %s, mods = %s, timeout_milliseconds = %d }",
			quote(key), quote(mods), LeaderTimeoutMillis),
	}, nil
}

func renderColors(s settings.Settings, p theme.Palette) ([]string, error) {
	if s.Theme != theme.Custom {
		name := s.ColorScheme
		if strings.TrimSpace(name) == "" {
			name = theme.DefaultScheme
		}
		return []string{
			"-- Color scheme",
			"config.color_scheme = " + quote(name),
		}, nil
	}

	if !p.Complete() {
		return nil, sectionError(SectionColors, "custom_colors", ErrMissingCustomColors)
	}
	return []string{
		"-- Custom colors",
		"config.colors = {",
		fmt.Sprintf("  background = %s,", quote(p.Background)),
		fmt.Sprintf("  foreground = %s,", quote(p.Foreground)),
		fmt.Sprintf("  cursor_bg = %s,", quote(p.Accent)),
		"  cursor_fg = 'black',",
		"}",
	}, nil
}

func renderFooter(settings.Settings, theme.Palette) ([]string, error) {
	return []string{"return config"}, nil
}
