package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
)

// errorMsg clears the status line once its display time is over.
type errorMsg struct{}

// errorMsgAfter schedules an errorMsg.
func errorMsgAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return errorMsg{}
	})
}

// saveSettingsSuccessMsg is sent when the profile was written.
type saveSettingsSuccessMsg struct {
	path     string
	snapshot settings.Settings
}

// saveSettingsFailedMsg is sent when writing the profile failed.
type saveSettingsFailedMsg struct {
	err error
}

// SaveFunc writes a settings snapshot to a profile path.
type SaveFunc func(path string, s settings.Settings) error

// SaveSettingsCmd returns a command that writes snapshot off the update loop.
func SaveSettingsCmd(save SaveFunc, path string, snapshot settings.Settings) tea.Cmd {
	return func() tea.Msg {
		if err := save(path, snapshot); err != nil {
			return saveSettingsFailedMsg{err: err}
		}
		return saveSettingsSuccessMsg{path: path, snapshot: snapshot}
	}
}
