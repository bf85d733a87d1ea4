package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
)

// Mock window geometry in CSS pixels.
const (
	TerminalHeight = 350
	TabBarHeight   = 30
)

const (
	windowTitle = "WezTerm - user@machine: ~/projects"
	promptText  = "user@machine:~/projects$ "
)

var mockTabs = []string{"bash", "zsh", "python"}

//go:embed templates/*.html
var templateFS embed.FS

var terminalTemplate = template.Must(template.ParseFS(templateFS, "templates/terminal.html"))

type htmlView struct {
	Title  string
	Prompt string
	Font   string

	FontSize   int
	LineHeight string
	Padding    int
	Opacity    string

	Background template.CSS
	Foreground template.CSS
	Accent     template.CSS
	CursorCSS  template.CSS

	EnableTabBar        bool
	FancyTabBar         bool
	EnableScrollBar     bool
	Tabs                []string
	TabBarBackground    template.CSS
	ActiveTabBackground template.CSS
	InactiveTabColor    template.CSS

	ContentHeight     int
	HeightWithTabs    int
	HeightWithoutTabs int

	Rows    []Row
	Payload Payload
}

// ContentHeight returns the height of the mock terminal's text area.
func ContentHeight(enableTabBar bool) int {
	if enableTabBar {
		return TerminalHeight - TabBarHeight
	}
	return TerminalHeight
}

// RenderHTML renders the mock terminal page for s with palette p. The page
// exposes window.updateTerminalConfig so it can be refreshed with
// UpdatePayload output without being re-rendered.
func RenderHTML(s settings.Settings, p theme.Palette) (string, error) {
	payload, err := NewPayload(s, p)
	if err != nil {
		return "", err
	}

	view := htmlView{
		Title:             windowTitle,
		Prompt:            promptText,
		Font:              s.Font,
		FontSize:          s.FontSize,
		LineHeight:        decimal(s.LineHeight),
		Padding:           s.Padding,
		Opacity:           decimal(s.Opacity),
		Background:        template.CSS(payload.Background),
		Foreground:        template.CSS(payload.Foreground),
		Accent:            template.CSS(payload.PromptColor),
		CursorCSS:         template.CSS(payload.CursorStyle),
		EnableTabBar:      s.EnableTabBar,
		FancyTabBar:       s.FancyTabBar,
		EnableScrollBar:   s.EnableScrollBar,
		Tabs:              mockTabs,
		ContentHeight:     ContentHeight(s.EnableTabBar),
		HeightWithTabs:    ContentHeight(true),
		HeightWithoutTabs: ContentHeight(false),
		Rows:              SummaryRows(s, p),
		Payload:           payload,
	}
	if s.FancyTabBar {
		view.TabBarBackground = "rgba(0,0,0,0.3)"
		view.ActiveTabBackground = view.Accent
		view.InactiveTabColor = view.Foreground
	} else {
		view.TabBarBackground = view.Background
		view.ActiveTabBackground = "rgba(255,255,255,0.1)"
		view.InactiveTabColor = "rgba(255,255,255,0.6)"
	}

	var buf bytes.Buffer
	if err := terminalTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}
