package state

import (
	"fmt"
	"math"

	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
)

const (
	fontSizeStep     = 1
	opacityStep      = 0.05
	paddingStep      = 1
	lineHeightStep   = 0.1
	windowWidthStep  = 80
	windowHeightStep = 60
	minWindowWidth   = windowWidthStep
	minWindowHeight  = windowHeightStep
)

// leaderPresets are the leader key choices offered by the editor. The
// empty entry disables the leader.
var leaderPresets = []string{"CTRL + a", "CTRL + b", "CTRL + SHIFT + space", "ALT + a", ""}

// field is one editable row. step receives a private copy of the settings
// and returns the edited copy; delta is -1 or +1.
type field struct {
	label string
	value func(settings.Settings) string
	step  func(s settings.Settings, delta int) settings.Settings
}

var ruleLabels = map[settings.HyperlinkRule]string{
	settings.RuleURLDetection:   "Links: URLs",
	settings.RuleFilePaths:      "Links: file paths",
	settings.RuleEmailAddresses: "Links: email",
}

var decorationLabels = map[settings.WindowDecoration]string{
	settings.DecorationTitle:             "Decoration: title",
	settings.DecorationResize:            "Decoration: resize",
	settings.DecorationShadowOnMac:       "Decoration: macOS shadow",
	settings.DecorationIntegratedButtons: "Decoration: buttons",
}

// editorFields returns the rows of the settings list in display order.
func editorFields() []field {
	fields := []field{
		{
			label: "Theme",
			value: func(s settings.Settings) string { return string(s.Theme) },
			step:  stepTheme,
		},
		{
			label: "Color scheme",
			value: func(s settings.Settings) string {
				if s.Theme == theme.Custom && s.CustomColors.Complete() {
					return "custom"
				}
				return s.ColorScheme
			},
			step: func(s settings.Settings, delta int) settings.Settings {
				s.ColorScheme = cycle(theme.SchemeNames(), s.ColorScheme, delta)
				return s
			},
		},
		{
			label: "Font",
			value: func(s settings.Settings) string { return s.Font },
			step: func(s settings.Settings, delta int) settings.Settings {
				s.Font = cycle(settings.Fonts, s.Font, delta)
				return s
			},
		},
		{
			label: "Font size",
			value: func(s settings.Settings) string { return fmt.Sprintf("%dpx", s.FontSize) },
			step: func(s settings.Settings, delta int) settings.Settings {
				s.FontSize = clampInt(s.FontSize+delta*fontSizeStep, settings.MinFontSize, settings.MaxFontSize)
				return s
			},
		},
		{
			label: "Opacity",
			value: func(s settings.Settings) string { return fmt.Sprintf("%.2f", s.Opacity) },
			step: func(s settings.Settings, delta int) settings.Settings {
				s.Opacity = clampFloat(roundHundredths(s.Opacity+float64(delta)*opacityStep), settings.MinOpacity, settings.MaxOpacity)
				return s
			},
		},
		{
			label: "Padding",
			value: func(s settings.Settings) string { return fmt.Sprintf("%dpx", s.Padding) },
			step: func(s settings.Settings, delta int) settings.Settings {
				s.Padding = clampInt(s.Padding+delta*paddingStep, settings.MinPadding, settings.MaxPadding)
				return s
			},
		},
		{
			label: "Line height",
			value: func(s settings.Settings) string { return fmt.Sprintf("%.1f", s.LineHeight) },
			step: func(s settings.Settings, delta int) settings.Settings {
				s.LineHeight = clampFloat(roundHundredths(s.LineHeight+float64(delta)*lineHeightStep), settings.MinLineHeight, settings.MaxLineHeight)
				return s
			},
		},
		{
			label: "Cursor style",
			value: func(s settings.Settings) string { return string(s.CursorStyle) },
			step: func(s settings.Settings, delta int) settings.Settings {
				s.CursorStyle = cycle(settings.CursorStyles, s.CursorStyle, delta)
				return s
			},
		},
		toggleField("Tab bar", func(s *settings.Settings) *bool { return &s.EnableTabBar }),
		toggleField("Fancy tab bar", func(s *settings.Settings) *bool { return &s.FancyTabBar }),
		toggleField("Hide single tab bar", func(s *settings.Settings) *bool { return &s.HideTabBarIfOneTab }),
		toggleField("Scroll bar", func(s *settings.Settings) *bool { return &s.EnableScrollBar }),
	}

	for _, rule := range settings.HyperlinkRules {
		fields = append(fields, ruleField(rule))
	}

	fields = append(fields,
		field{
			label: "Leader key",
			value: func(s settings.Settings) string {
				if s.LeaderKey == "" {
					return "none"
				}
				return s.LeaderKey
			},
			step: func(s settings.Settings, delta int) settings.Settings {
				s.LeaderKey = cycle(leaderPresets, s.LeaderKey, delta)
				return s
			},
		},
		field{
			label: "Window width",
			value: func(s settings.Settings) string { return fmt.Sprintf("%dpx", s.WindowWidth) },
			step: func(s settings.Settings, delta int) settings.Settings {
				s.WindowWidth = max(s.WindowWidth+delta*windowWidthStep, minWindowWidth)
				return s
			},
		},
		field{
			label: "Window height",
			value: func(s settings.Settings) string { return fmt.Sprintf("%dpx", s.WindowHeight) },
			step: func(s settings.Settings, delta int) settings.Settings {
				s.WindowHeight = max(s.WindowHeight+delta*windowHeightStep, minWindowHeight)
				return s
			},
		},
	)

	for _, d := range settings.WindowDecorations {
		fields = append(fields, decorationField(d))
	}

	fields = append(fields,
		toggleField("Maximized", func(s *settings.Settings) *bool { return &s.WindowMaximized }),
		toggleField("Fullscreen", func(s *settings.Settings) *bool { return &s.WindowFullscreen }),
		toggleField("Always on top", func(s *settings.Settings) *bool { return &s.WindowAlwaysOnTop }),
		field{
			label: "Close confirmation",
			value: func(s settings.Settings) string { return string(s.WindowCloseConfirmation) },
			step: func(s settings.Settings, delta int) settings.Settings {
				s.WindowCloseConfirmation = cycle(settings.CloseConfirmations, s.WindowCloseConfirmation, delta)
				return s
			},
		},
	)
	return fields
}

// stepTheme switches the theme. Dark and Light move the scheme to their
// default; Custom is seeded from the palette on screen when it has no
// colors yet.
func stepTheme(s settings.Settings, delta int) settings.Settings {
	next := cycle(theme.Themes, s.Theme, delta)
	if next == theme.Custom {
		if !s.CustomColors.Complete() {
			p := s.Palette()
			s.CustomColors = &p
		}
	} else {
		s.ColorScheme = theme.SchemeForTheme(next)
	}
	s.Theme = next
	return s
}

func toggleField(label string, get func(*settings.Settings) *bool) field {
	return field{
		label: label,
		value: func(s settings.Settings) string { return onOff(*get(&s)) },
		step: func(s settings.Settings, _ int) settings.Settings {
			v := get(&s)
			*v = !*v
			return s
		},
	}
}

func ruleField(rule settings.HyperlinkRule) field {
	return field{
		label: ruleLabels[rule],
		value: func(s settings.Settings) string { return onOff(s.HasRule(rule)) },
		step: func(s settings.Settings, _ int) settings.Settings {
			s.HyperlinkRules = toggleMember(s.HyperlinkRules, rule)
			return s
		},
	}
}

func decorationField(d settings.WindowDecoration) field {
	return field{
		label: decorationLabels[d],
		value: func(s settings.Settings) string { return onOff(s.HasDecoration(d)) },
		step: func(s settings.Settings, _ int) settings.Settings {
			s.WindowDecorations = toggleMember(s.WindowDecorations, d)
			return s
		},
	}
}

// toggleMember adds v to set or removes every occurrence of it. The result
// never shares its backing array with set.
func toggleMember[T comparable](set []T, v T) []T {
	out := make([]T, 0, len(set)+1)
	found := false
	for _, item := range set {
		if item == v {
			found = true
			continue
		}
		out = append(out, item)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

// cycle moves delta steps through values, wrapping at both ends. A current
// value outside the list lands on the first (delta > 0) or last entry.
func cycle[T comparable](values []T, current T, delta int) T {
	n := len(values)
	if n == 0 {
		return current
	}
	for i, v := range values {
		if v == current {
			return values[((i+delta)%n+n)%n]
		}
	}
	if delta < 0 {
		return values[n-1]
	}
	return values[0]
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func roundHundredths(v float64) float64 {
	return math.Round(v*100) / 100
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
