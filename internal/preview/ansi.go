package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
)

// MinANSIWidth is the narrowest ANSI preview, border included.
const MinANSIWidth = 40

// ansiContentRows is the text area height; the tab bar takes one of them.
const ansiContentRows = 6

type ansiStyles struct {
	window      lipgloss.Style
	title       lipgloss.Style
	tabBar      lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	content     lipgloss.Style
	prompt      lipgloss.Style
	cursor      lipgloss.Style
	muted       lipgloss.Style
	scrollbar   lipgloss.Style
}

func newANSIStyles(s settings.Settings, p theme.Palette) ansiStyles {
	bg := lipgloss.Color(p.Background)
	fg := lipgloss.Color(p.Foreground)
	accent := lipgloss.Color(p.Accent)

	st := ansiStyles{
		window:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5c6370")),
		title:     lipgloss.NewStyle().Background(lipgloss.Color("#21252b")).Foreground(lipgloss.Color("#9da5b4")).Align(lipgloss.Center),
		tabBar:    lipgloss.NewStyle().Background(bg).Foreground(fg),
		content:   lipgloss.NewStyle().Background(bg).Foreground(fg),
		prompt:    lipgloss.NewStyle().Background(bg).Foreground(accent).Bold(true),
		muted:     lipgloss.NewStyle().Background(bg).Foreground(fg).Faint(true),
		scrollbar: lipgloss.NewStyle().Background(bg).Foreground(accent),
	}

	if s.FancyTabBar {
		st.activeTab = lipgloss.NewStyle().Background(accent).Foreground(bg).Padding(0, 1)
		st.inactiveTab = lipgloss.NewStyle().Background(bg).Foreground(fg).Padding(0, 1)
	} else {
		st.activeTab = lipgloss.NewStyle().Background(bg).Foreground(fg).Bold(true).Padding(0, 1)
		st.inactiveTab = lipgloss.NewStyle().Background(bg).Foreground(fg).Faint(true).Padding(0, 1)
	}

	switch s.CursorStyle {
	case settings.CursorBar:
		st.cursor = lipgloss.NewStyle().Background(bg).Foreground(accent)
	case settings.CursorUnderline:
		st.cursor = lipgloss.NewStyle().Background(bg).Foreground(accent).Underline(true)
	default:
		st.cursor = lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("#000000"))
	}
	return st
}

// CursorGlyph returns the character drawn for a cursor style.
func CursorGlyph(c settings.CursorStyle) string {
	switch c {
	case settings.CursorBar:
		return "▏"
	case settings.CursorUnderline:
		return "_"
	default:
		return " "
	}
}

// RenderANSI draws the mock terminal with lipgloss, width columns wide
// (at least MinANSIWidth). An unparseable palette falls back to the
// default scheme.
func RenderANSI(s settings.Settings, p theme.Palette, width int) string {
	if width < MinANSIWidth {
		width = MinANSIWidth
	}
	palette, err := normalizePalette(p)
	if err != nil {
		palette = theme.Resolve(theme.Dark, theme.DefaultScheme, nil)
	}
	st := newANSIStyles(s, palette)
	inner := width - 2

	parts := []string{st.title.Width(inner).Render(windowTitle)}
	rows := ansiContentRows
	if s.EnableTabBar {
		parts = append(parts, renderANSITabs(s, st, inner))
		rows--
	}
	parts = append(parts, renderANSIContent(s, st, inner, rows))

	return st.window.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderANSITabs(s settings.Settings, st ansiStyles, width int) string {
	tabs := make([]string, 0, len(mockTabs))
	for i, name := range mockTabs {
		label := name
		if s.FancyTabBar {
			label += " ✕"
		}
		if i == 0 {
			tabs = append(tabs, st.activeTab.Render(label))
		} else {
			tabs = append(tabs, st.inactiveTab.Render(label))
		}
	}
	return st.tabBar.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func renderANSIContent(s settings.Settings, st ansiStyles, width, rows int) string {
	textWidth := width
	if s.EnableScrollBar {
		textWidth--
	}

	pad := s.Padding / 4
	if pad > textWidth/4 {
		pad = textWidth / 4
	}

	lines := []string{
		st.prompt.Render(promptText) + st.cursor.Render(CursorGlyph(s.CursorStyle)),
	}
	for len(lines) < rows-1 {
		lines = append(lines, "")
	}
	lines = append(lines, st.muted.Render(fmt.Sprintf("%s %dpx, opacity %s", s.Font, s.FontSize, decimal(s.Opacity))))

	text := st.content.
		Width(textWidth).
		Height(rows).
		PaddingLeft(pad).
		Render(strings.Join(lines, "\n"))
	if !s.EnableScrollBar {
		return text
	}

	bar := make([]string, rows)
	for i := range bar {
		if i < 2 {
			bar[i] = "┃"
		} else {
			bar[i] = "│"
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, text, st.scrollbar.Render(strings.Join(bar, "\n")))
}
