// Package settings defines the configurator's settings model, its
// validation rules and TOML profile persistence.
package settings

import (
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
)

// CursorStyle is the cursor shape shown by the terminal.
type CursorStyle string

const (
	CursorBlock     CursorStyle = "Block"
	CursorBar       CursorStyle = "Bar"
	CursorUnderline CursorStyle = "Underline"
)

// CursorStyles lists the cursor styles in display order.
var CursorStyles = []CursorStyle{CursorBlock, CursorBar, CursorUnderline}

// HyperlinkRule selects a built-in auto-link rule.
type HyperlinkRule string

const (
	RuleURLDetection   HyperlinkRule = "URLDetection"
	RuleFilePaths      HyperlinkRule = "FilePaths"
	RuleEmailAddresses HyperlinkRule = "EmailAddresses"
)

// HyperlinkRules lists the supported rules in display order.
var HyperlinkRules = []HyperlinkRule{RuleURLDetection, RuleFilePaths, RuleEmailAddresses}

// WindowDecoration is one flag of the window decoration set.
type WindowDecoration string

const (
	DecorationTitle             WindowDecoration = "Title"
	DecorationResize            WindowDecoration = "Resize"
	DecorationShadowOnMac       WindowDecoration = "ShadowOnMac"
	DecorationIntegratedButtons WindowDecoration = "IntegratedButtons"
)

// WindowDecorations lists the decoration flags in display order.
var WindowDecorations = []WindowDecoration{
	DecorationTitle,
	DecorationResize,
	DecorationShadowOnMac,
	DecorationIntegratedButtons,
}

// CloseConfirmation controls when closing a window asks for confirmation.
type CloseConfirmation string

const (
	CloseNever              CloseConfirmation = "Never"
	CloseAlwaysPrompt       CloseConfirmation = "AlwaysPrompt"
	CloseOnlyIfMultipleTabs CloseConfirmation = "OnlyIfMultipleTabs"
)

// CloseConfirmations lists the close confirmation modes in display order.
var CloseConfirmations = []CloseConfirmation{CloseNever, CloseAlwaysPrompt, CloseOnlyIfMultipleTabs}

// Fonts is the allow-list of font families offered by the configurator.
var Fonts = []string{
	"JetBrains Mono",
	"Fira Code",
	"Cascadia Code",
	"Hack",
	"Source Code Pro",
	"Ubuntu Mono",
	"Menlo",
	"Monaco",
}

// Value domains.
const (
	MinFontSize   = 8
	MaxFontSize   = 32
	MinOpacity    = 0.5
	MaxOpacity    = 1.0
	MinPadding    = 0
	MaxPadding    = 20
	MinLineHeight = 0.8
	MaxLineHeight = 2.0
)

// Position is an initial window position in screen pixels.
type Position struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// Settings is a complete snapshot of the user's choices. A new value is
// built on every interaction; generation never mutates it.
//
// Sets (HyperlinkRules, WindowDecorations) are stored as slices whose
// order carries no meaning.
type Settings struct {
	Theme        theme.Theme    `toml:"theme"`
	ColorScheme  string         `toml:"color_scheme"`
	CustomColors *theme.Palette `toml:"custom_colors,omitempty"`

	Font       string  `toml:"font"`
	FontSize   int     `toml:"font_size"`
	Opacity    float64 `toml:"opacity"`
	Padding    int     `toml:"padding"`
	LineHeight float64 `toml:"line_height"`

	CursorStyle     CursorStyle `toml:"cursor_style"`
	EnableTabBar    bool        `toml:"enable_tab_bar"`
	FancyTabBar     bool        `toml:"use_fancy_tab_bar"`
	EnableScrollBar bool        `toml:"enable_scroll_bar"`

	HyperlinkRules []HyperlinkRule `toml:"hyperlink_rules"`
	LeaderKey      string          `toml:"leader_key"`

	WindowWidth             int                `toml:"window_width"`
	WindowHeight            int                `toml:"window_height"`
	WindowDecorations       []WindowDecoration `toml:"window_decorations"`
	WindowPosition          *Position          `toml:"window_position,omitempty"`
	WindowMaximized         bool               `toml:"window_maximized"`
	WindowFullscreen        bool               `toml:"window_fullscreen"`
	WindowAlwaysOnTop       bool               `toml:"window_always_on_top"`
	WindowCloseConfirmation CloseConfirmation  `toml:"window_close_confirmation"`
	HideTabBarIfOneTab      bool               `toml:"hide_tab_bar_if_only_one_tab"`
}

// Default returns the settings the configurator starts with.
func Default() Settings {
	return Settings{
		Theme:                   theme.Dark,
		ColorScheme:             theme.BuiltinDark,
		Font:                    "JetBrains Mono",
		FontSize:                14,
		Opacity:                 0.95,
		Padding:                 8,
		LineHeight:              1.0,
		CursorStyle:             CursorBlock,
		EnableTabBar:            true,
		FancyTabBar:             true,
		EnableScrollBar:         false,
		HyperlinkRules:          []HyperlinkRule{RuleURLDetection},
		LeaderKey:               "CTRL + a",
		WindowWidth:             800,
		WindowHeight:            600,
		WindowCloseConfirmation: CloseAlwaysPrompt,
		HideTabBarIfOneTab:      true,
	}
}

// Palette resolves the palette these settings select.
func (s Settings) Palette() theme.Palette {
	return theme.Resolve(s.Theme, s.ColorScheme, s.CustomColors)
}

// Clone returns a deep copy so callers can derive a new snapshot without
// aliasing slices or pointers of the original.
func (s Settings) Clone() Settings {
	out := s
	if s.CustomColors != nil {
		c := *s.CustomColors
		out.CustomColors = &c
	}
	if s.WindowPosition != nil {
		p := *s.WindowPosition
		out.WindowPosition = &p
	}
	out.HyperlinkRules = append([]HyperlinkRule(nil), s.HyperlinkRules...)
	out.WindowDecorations = append([]WindowDecoration(nil), s.WindowDecorations...)
	return out
}

// HasRule reports whether the hyperlink rule set contains r.
func (s Settings) HasRule(r HyperlinkRule) bool {
	for _, rule := range s.HyperlinkRules {
		if rule == r {
			return true
		}
	}
	return false
}

// HasDecoration reports whether the decoration set contains d.
func (s Settings) HasDecoration(d WindowDecoration) bool {
	for _, dec := range s.WindowDecorations {
		if dec == d {
			return true
		}
	}
	return false
}
