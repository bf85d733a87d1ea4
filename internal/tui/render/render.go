// Package render holds the stateless view helpers of the configurator TUI.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/cristianoliveira/wezterm-configurator/internal/errors"
)

const (
	labelWidth       = 22
	cursorSymbol     = "▸"
	dirtySymbol      = "●"
	minValueWidth    = 8
	ellipsis         = "..."
	paneSeparator    = " │ "
	helpSeparator    = "  |  "
	helpColor        = "241"
	selectedFgColor  = "0"
	defaultRowWidth  = 60
	valuePlaceholder = "-"
)

// HeaderState defines the inputs needed to render the header line.
type HeaderState struct {
	ProfilePath string
	Revision    int64
	Dirty       bool
	Width       int
}

// FieldRowState defines the inputs needed to render one editable field.
type FieldRowState struct {
	Label    string
	Value    string
	Selected bool
	Width    int
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	Pane  string
	Dirty bool
}

// Header renders the title line with the profile path and the unsaved marker.
func Header(state HeaderState) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))

	title := "WezTerm configurator"
	if state.ProfilePath != "" {
		title += "  " + state.ProfilePath
	}
	if state.Revision > 0 {
		title += fmt.Sprintf("  rev %d", state.Revision)
	}
	if state.Dirty {
		title += "  " + dirtySymbol + " unsaved"
	}

	return headerStyle.Render(truncate(title, state.Width))
}

// FieldRow renders a single "label value" row of the settings list.
func FieldRow(state FieldRowState) string {
	rowStyle := lipgloss.NewStyle()
	marker := " "
	if state.Selected {
		rowStyle = rowStyle.
			Background(lipgloss.Color(ansiColorNumber(colors.Blue))).
			Foreground(lipgloss.Color(selectedFgColor))
		marker = cursorSymbol
	}

	width := state.Width
	if width <= 0 {
		width = defaultRowWidth
	}
	valueWidth := width - labelWidth - 4
	if valueWidth < minValueWidth {
		valueWidth = minValueWidth
	}

	value := state.Value
	if value == "" {
		value = valuePlaceholder
	}
	row := fmt.Sprintf("%s %-*s %s", marker, labelWidth, truncate(state.Label, labelWidth), truncate(value, valueWidth))
	return rowStyle.Render(row)
}

// PaneTitle renders the title above the right-hand pane.
func PaneTitle(title string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Render(title)
}

// Columns joins the settings list and the output pane side by side.
func Columns(left, right string) string {
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color(helpColor)).Render(paneSeparator)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, sep, right)
}

// Status renders a status message with a prefix matching its type.
func Status(msg errors.Message) string {
	if msg.Text == "" {
		return ""
	}
	var color string
	switch msg.Type {
	case errors.MessageTypeError:
		color = colors.Red
	case errors.MessageTypeWarning:
		color = colors.Yellow
	case errors.MessageTypeSuccess:
		color = colors.Green
	default:
		color = colors.Cyan
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(color)))
	return style.Render(fmt.Sprintf("%s: %s", msg.Type, msg.Text))
}

// Footer renders the footer with help text.
func Footer(state FooterState) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(helpColor))

	help := []string{
		"j/k: move",
		"h/l: change",
		"tab: " + nextPaneLabel(state.Pane),
		"r: reset",
	}
	saveHelp := "s: save"
	if state.Dirty {
		saveHelp = "s: save " + dirtySymbol
	}
	help = append(help, saveHelp, "q: quit")

	return helpStyle.Render(strings.Join(help, helpSeparator))
}

func nextPaneLabel(pane string) string {
	if pane == "" {
		return "switch pane"
	}
	return "switch from " + pane
}

func truncate(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width <= len(ellipsis) {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-len(ellipsis)]) + ellipsis
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
