package settings

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
)

// ErrInvalidValue is wrapped by every validation failure.
var ErrInvalidValue = errors.New("invalid settings value")

// Validate checks that every field is inside its domain.
func Validate(s Settings) error {
	if err := validateColors(s); err != nil {
		return err
	}
	if err := validateFont(s.Font); err != nil {
		return err
	}
	if err := validateIntRange("font_size", s.FontSize, MinFontSize, MaxFontSize); err != nil {
		return err
	}
	if err := validateFloatRange("opacity", s.Opacity, MinOpacity, MaxOpacity); err != nil {
		return err
	}
	if err := validateIntRange("padding", s.Padding, MinPadding, MaxPadding); err != nil {
		return err
	}
	if err := validateFloatRange("line_height", s.LineHeight, MinLineHeight, MaxLineHeight); err != nil {
		return err
	}
	if !s.CursorStyle.Valid() {
		return invalid("cursor_style", s.CursorStyle)
	}
	for _, rule := range s.HyperlinkRules {
		if !rule.Valid() {
			return invalid("hyperlink_rules", rule)
		}
	}
	if err := validateWindow(s); err != nil {
		return err
	}
	return nil
}

func validateColors(s Settings) error {
	if !s.Theme.Valid() {
		return invalid("theme", s.Theme)
	}
	if s.Theme != theme.Custom {
		if strings.TrimSpace(s.ColorScheme) == "" {
			return fmt.Errorf("%w: color_scheme is required when theme is %s", ErrInvalidValue, s.Theme)
		}
		return nil
	}
	if !s.CustomColors.Complete() {
		return fmt.Errorf("%w: custom_colors requires background, foreground and accent", ErrInvalidValue)
	}
	if err := s.CustomColors.Validate(); err != nil {
		return fmt.Errorf("%w: custom_colors.%v", ErrInvalidValue, err)
	}
	return nil
}

func validateFont(font string) error {
	for _, f := range Fonts {
		if f == font {
			return nil
		}
	}
	return fmt.Errorf("%w: font %q is not one of: %s", ErrInvalidValue, font, strings.Join(Fonts, ", "))
}

func validateWindow(s Settings) error {
	if s.WindowWidth <= 0 {
		return invalid("window_width", s.WindowWidth)
	}
	if s.WindowHeight <= 0 {
		return invalid("window_height", s.WindowHeight)
	}
	for _, d := range s.WindowDecorations {
		if !d.Valid() {
			return invalid("window_decorations", d)
		}
	}
	if !s.WindowCloseConfirmation.Valid() {
		return invalid("window_close_confirmation", s.WindowCloseConfirmation)
	}
	return nil
}

func validateIntRange(field string, v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidValue, field, min, max, v)
	}
	return nil
}

func validateFloatRange(field string, v, min, max float64) error {
	if math.IsNaN(v) || v < min || v > max {
		return fmt.Errorf("%w: %s must be between %g and %g, got %g", ErrInvalidValue, field, min, max, v)
	}
	return nil
}

func invalid(field string, value any) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidValue, field, fmt.Sprint(value))
}

// Valid reports whether c is a known cursor style.
func (c CursorStyle) Valid() bool {
	switch c {
	case CursorBlock, CursorBar, CursorUnderline:
		return true
	}
	return false
}

// Valid reports whether r is a known hyperlink rule.
func (r HyperlinkRule) Valid() bool {
	switch r {
	case RuleURLDetection, RuleFilePaths, RuleEmailAddresses:
		return true
	}
	return false
}

// Valid reports whether d is a known decoration flag.
func (d WindowDecoration) Valid() bool {
	switch d {
	case DecorationTitle, DecorationResize, DecorationShadowOnMac, DecorationIntegratedButtons:
		return true
	}
	return false
}

// Valid reports whether c is a known close confirmation mode.
func (c CloseConfirmation) Valid() bool {
	switch c {
	case CloseNever, CloseAlwaysPrompt, CloseOnlyIfMultipleTabs:
		return true
	}
	return false
}

// LeaderKeyWarning returns a hint when the leader key has no modifier
// part. Such keys are still accepted; the generator defaults the modifier
// to CTRL.
func LeaderKeyWarning(s Settings) string {
	key := strings.TrimSpace(s.LeaderKey)
	if key == "" || strings.Contains(key, "+") {
		return ""
	}
	return fmt.Sprintf("leader key %q has no modifier; expected 'MOD + KEY' such as 'CTRL + a', defaulting to CTRL", key)
}
