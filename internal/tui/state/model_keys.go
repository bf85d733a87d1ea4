package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQ) {
		return m, tea.Quit
	}
	if !key.Matches(msg, m.keys.Quit) {
		m.quitting = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.keys.Cancel):
		m.showHelp = false
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.uiState.MoveCursorUp()
		m.updateViewportContent()
	case key.Matches(msg, m.keys.Down):
		m.uiState.MoveCursorDown(len(m.fields))
		m.updateViewportContent()
	case key.Matches(msg, m.keys.Prev):
		m.stepField(-1)
	case key.Matches(msg, m.keys.Next):
		m.stepField(1)
	case key.Matches(msg, m.keys.Pane):
		m.uiState.TogglePane()
		m.updateViewportContent()
	case key.Matches(msg, m.keys.ScrollUp):
		m.uiState.ScrollPane(-1)
	case key.Matches(msg, m.keys.ScrollDn):
		m.uiState.ScrollPane(1)
	case key.Matches(msg, m.keys.Reset):
		m.apply(m.saved.Clone())
	case key.Matches(msg, m.keys.Save):
		return m, SaveSettingsCmd(m.save, m.profilePath, m.current.Clone())
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// handleQuit quits right away when nothing is unsaved. Otherwise the first
// press only warns.
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	if !m.Dirty() || m.quitting {
		return m, tea.Quit
	}
	m.quitting = true
	m.errorHandler.Warning("unsaved changes, press q again to quit or s to save")
	return m, errorMsgAfter(errorClearDuration)
}

// stepField moves the selected field one value in direction delta.
func (m *Model) stepField(delta int) {
	cursor := m.uiState.GetCursor()
	if cursor < 0 || cursor >= len(m.fields) {
		return
	}
	m.apply(m.fields[cursor].step(m.current.Clone(), delta))
	m.updateViewportContent()
}

// handleWindowSizeMsg handles window resize events.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.UpdateViewportSize()
	m.help.Width = msg.Width
	if err := m.rerenderANSI(); err != nil {
		m.errorHandler.Error(err.Error())
	}
	m.updateViewportContent()
	return m, nil
}
