package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/cristianoliveira/wezterm-configurator/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestAnsiColorNumber(t *testing.T) {
	assert.Equal(t, "34", ansiColorNumber(colors.Blue))
	assert.Equal(t, "31", ansiColorNumber(colors.Red))
	assert.Equal(t, "", ansiColorNumber("x"))
	assert.Equal(t, "", ansiColorNumber("plain"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		width int
		want  string
	}{
		{"fits", "Hack", 10, "Hack"},
		{"zero width keeps value", "JetBrains Mono", 0, "JetBrains Mono"},
		{"ellipsis", "JetBrains Mono", 10, "JetBrai..."},
		{"tiny width", "JetBrains Mono", 2, "Je"},
		{"runes", "▸▸▸▸▸▸", 5, "▸▸..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.value, tt.width))
		})
	}
}

func TestHeader(t *testing.T) {
	plain := ansi.Strip(Header(HeaderState{ProfilePath: "/tmp/profile.toml", Revision: 3, Dirty: true}))
	assert.Contains(t, plain, "WezTerm configurator")
	assert.Contains(t, plain, "/tmp/profile.toml")
	assert.Contains(t, plain, "rev 3")
	assert.Contains(t, plain, "unsaved")

	clean := ansi.Strip(Header(HeaderState{}))
	assert.Equal(t, "WezTerm configurator", clean)
}

func TestFieldRow(t *testing.T) {
	row := ansi.Strip(FieldRow(FieldRowState{Label: "Font size", Value: "14", Width: 60}))
	assert.True(t, strings.HasPrefix(row, "  Font size"))
	assert.True(t, strings.HasSuffix(row, "14"))

	selected := ansi.Strip(FieldRow(FieldRowState{Label: "Font size", Value: "14", Selected: true}))
	assert.True(t, strings.HasPrefix(selected, cursorSymbol+" Font size"))

	empty := ansi.Strip(FieldRow(FieldRowState{Label: "Leader key"}))
	assert.True(t, strings.HasSuffix(empty, valuePlaceholder))
}

func TestFieldRowTruncatesLongValues(t *testing.T) {
	row := ansi.Strip(FieldRow(FieldRowState{
		Label: "Hyperlink rules",
		Value: strings.Repeat("x", 100),
		Width: 40,
	}))
	assert.Contains(t, row, ellipsis)
	assert.LessOrEqual(t, len([]rune(row)), 40)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "", Status(errors.Message{}))
	assert.Equal(t, "saved: profile written", ansi.Strip(Status(errors.Message{Text: "profile written", Type: errors.MessageTypeSuccess})))
	assert.Equal(t, "error: boom", ansi.Strip(Status(errors.Message{Text: "boom", Type: errors.MessageTypeError})))
	assert.Equal(t, "warning: careful", ansi.Strip(Status(errors.Message{Text: "careful", Type: errors.MessageTypeWarning})))
	assert.Equal(t, "info: hi", ansi.Strip(Status(errors.Message{Text: "hi", Type: errors.MessageTypeInfo})))
}

func TestFooter(t *testing.T) {
	footer := ansi.Strip(Footer(FooterState{Pane: "lua"}))
	assert.Equal(t, "j/k: move  |  h/l: change  |  tab: switch from lua  |  r: reset  |  s: save  |  q: quit", footer)

	dirty := ansi.Strip(Footer(FooterState{Dirty: true}))
	assert.Contains(t, dirty, "tab: switch pane")
	assert.Contains(t, dirty, "s: save "+dirtySymbol)
}

func TestColumns(t *testing.T) {
	out := ansi.Strip(Columns("a\nb", "c"))
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "a"+paneSeparator+"c", lines[0])
}
