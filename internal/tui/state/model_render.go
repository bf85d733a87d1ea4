package state

import (
	"strings"

	"github.com/cristianoliveira/wezterm-configurator/internal/errors"
	"github.com/cristianoliveira/wezterm-configurator/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(render.Header(render.HeaderState{
		ProfilePath: m.profilePath,
		Revision:    m.revision,
		Dirty:       m.Dirty(),
		Width:       m.uiState.GetWidth(),
	}))
	s.WriteString("\n")

	right := render.PaneTitle(m.uiState.ActivePane().Title()) + "\n" + m.uiState.PaneViewport().View()
	s.WriteString(render.Columns(m.uiState.ListViewport().View(), right))

	s.WriteString("\n")
	s.WriteString(render.Status(errors.Message{Text: m.statusMessage, Type: m.statusMessageType}))
	s.WriteString("\n")
	if m.showHelp {
		m.help.ShowAll = true
		s.WriteString(m.help.View(m.keys))
	} else {
		s.WriteString(render.Footer(render.FooterState{
			Pane:  m.uiState.ActivePane().String(),
			Dirty: m.Dirty(),
		}))
	}

	return s.String()
}

// updateViewportContent refreshes the settings list and the active pane.
func (m *Model) updateViewportContent() {
	var list strings.Builder
	width := m.uiState.ListWidth()
	cursor := m.uiState.GetCursor()
	for i, f := range m.fields {
		if i > 0 {
			list.WriteString("\n")
		}
		list.WriteString(render.FieldRow(render.FieldRowState{
			Label:    f.label,
			Value:    f.value(m.current),
			Selected: i == cursor,
			Width:    width,
		}))
	}
	m.uiState.ListViewport().SetContent(list.String())
	m.uiState.EnsureCursorVisible()

	pane := m.uiState.PaneViewport()
	if m.uiState.ActivePane() == PanePreview {
		pane.SetContent(m.ansi)
	} else {
		pane.SetContent(m.lua)
	}
}
