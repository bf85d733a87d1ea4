package settings

import (
	"errors"
	"math"
	"testing"

	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()

	require.NoError(t, Validate(s))
	assert.Equal(t, theme.Dark, s.Theme)
	assert.Equal(t, theme.BuiltinDark, s.ColorScheme)
	assert.Equal(t, "JetBrains Mono", s.Font)
	assert.Equal(t, 14, s.FontSize)
	assert.Equal(t, 0.95, s.Opacity)
	assert.Equal(t, []HyperlinkRule{RuleURLDetection}, s.HyperlinkRules)
	assert.Equal(t, "CTRL + a", s.LeaderKey)
	assert.Equal(t, CloseAlwaysPrompt, s.WindowCloseConfirmation)
}

func TestValidateRejectsOutOfDomainValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Settings)
		field  string
	}{
		{name: "unknown theme", mutate: func(s *Settings) { s.Theme = "Sepia" }, field: "theme"},
		{name: "empty scheme", mutate: func(s *Settings) { s.ColorScheme = " " }, field: "color_scheme"},
		{name: "custom without colors", mutate: func(s *Settings) { s.Theme = theme.Custom }, field: "custom_colors"},
		{name: "custom with bad hex", mutate: func(s *Settings) {
			s.Theme = theme.Custom
			s.CustomColors = &theme.Palette{Background: "#000000", Foreground: "white", Accent: "#ff0000"}
		}, field: "foreground"},
		{name: "font not allowed", mutate: func(s *Settings) { s.Font = "Comic Sans" }, field: "font"},
		{name: "font size low", mutate: func(s *Settings) { s.FontSize = 7 }, field: "font_size"},
		{name: "font size high", mutate: func(s *Settings) { s.FontSize = 33 }, field: "font_size"},
		{name: "opacity low", mutate: func(s *Settings) { s.Opacity = 0.49 }, field: "opacity"},
		{name: "opacity NaN", mutate: func(s *Settings) { s.Opacity = math.NaN() }, field: "opacity"},
		{name: "padding high", mutate: func(s *Settings) { s.Padding = 21 }, field: "padding"},
		{name: "line height high", mutate: func(s *Settings) { s.LineHeight = 2.1 }, field: "line_height"},
		{name: "cursor", mutate: func(s *Settings) { s.CursorStyle = "Beam" }, field: "cursor_style"},
		{name: "rule", mutate: func(s *Settings) { s.HyperlinkRules = []HyperlinkRule{"Phone"} }, field: "hyperlink_rules"},
		{name: "width", mutate: func(s *Settings) { s.WindowWidth = 0 }, field: "window_width"},
		{name: "height", mutate: func(s *Settings) { s.WindowHeight = -1 }, field: "window_height"},
		{name: "decoration", mutate: func(s *Settings) { s.WindowDecorations = []WindowDecoration{"Blur"} }, field: "window_decorations"},
		{name: "close confirmation", mutate: func(s *Settings) { s.WindowCloseConfirmation = "Sometimes" }, field: "window_close_confirmation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := Validate(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidValue))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateAcceptsDomainBoundaries(t *testing.T) {
	s := Default()
	s.FontSize = MaxFontSize
	s.Opacity = MinOpacity
	s.Padding = MaxPadding
	s.LineHeight = MinLineHeight
	s.Theme = theme.Custom
	s.CustomColors = &theme.Palette{Background: "#000", Foreground: "#FFFFFF", Accent: "#ff0000"}
	s.WindowDecorations = WindowDecorations
	s.HyperlinkRules = HyperlinkRules

	assert.NoError(t, Validate(s))
}

func TestValidateAcceptsAnyLeaderKey(t *testing.T) {
	for _, key := range []string{"", "a", "CTRL + a", "+", "weird+++"} {
		s := Default()
		s.LeaderKey = key
		assert.NoError(t, Validate(s), key)
	}
}

func TestLeaderKeyWarning(t *testing.T) {
	s := Default()
	assert.Empty(t, LeaderKeyWarning(s))

	s.LeaderKey = "  "
	assert.Empty(t, LeaderKeyWarning(s))

	s.LeaderKey = "a"
	assert.Contains(t, LeaderKeyWarning(s), "defaulting to CTRL")
}

func TestCloneDoesNotAlias(t *testing.T) {
	s := Default()
	s.CustomColors = &theme.Palette{Background: "#000000", Foreground: "#ffffff", Accent: "#ff0000"}
	s.WindowPosition = &Position{X: 1, Y: 2}

	c := s.Clone()
	c.CustomColors.Background = "#111111"
	c.WindowPosition.X = 99
	c.HyperlinkRules[0] = RuleFilePaths

	assert.Equal(t, "#000000", s.CustomColors.Background)
	assert.Equal(t, 1, s.WindowPosition.X)
	assert.Equal(t, RuleURLDetection, s.HyperlinkRules[0])
}

func TestPaletteFollowsTheme(t *testing.T) {
	s := Default()
	s.ColorScheme = theme.Nord
	nord, _ := theme.LookupScheme(theme.Nord)
	assert.Equal(t, nord, s.Palette())

	s.Theme = theme.Custom
	s.CustomColors = &theme.Palette{Background: "#000000", Foreground: "#ffffff", Accent: "#ff0000"}
	assert.Equal(t, *s.CustomColors, s.Palette())
}
