package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
)

// Row is one line of the active settings table.
type Row struct {
	Name  string
	Value string
}

// SummaryRows lists the active settings in display order, ending with the
// three palette colors.
func SummaryRows(s settings.Settings, p theme.Palette) []Row {
	scheme := s.ColorScheme
	if s.Theme == theme.Custom {
		scheme = "-"
	}
	leader := strings.TrimSpace(s.LeaderKey)
	if leader == "" {
		leader = "Not set"
	}

	return []Row{
		{Name: "Theme", Value: string(s.Theme)},
		{Name: "Color scheme", Value: scheme},
		{Name: "Font", Value: s.Font},
		{Name: "Font size", Value: fmt.Sprintf("%dpx", s.FontSize)},
		{Name: "Opacity", Value: fmt.Sprintf("%.2f", s.Opacity)},
		{Name: "Padding", Value: fmt.Sprintf("%dpx", s.Padding)},
		{Name: "Line height", Value: decimal(s.LineHeight)},
		{Name: "Cursor style", Value: string(s.CursorStyle)},
		{Name: "Tab bar", Value: enabled(s.EnableTabBar)},
		{Name: "Scroll bar", Value: enabled(s.EnableScrollBar)},
		{Name: "Hyperlink rules", Value: ruleList(s)},
		{Name: "Leader key", Value: leader},
		{Name: "Background", Value: p.Background},
		{Name: "Foreground", Value: p.Foreground},
		{Name: "Accent", Value: p.Accent},
	}
}

func enabled(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}

func ruleList(s settings.Settings) string {
	var names []string
	for _, r := range settings.HyperlinkRules {
		if s.HasRule(r) {
			names = append(names, string(r))
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}

func decimal(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
