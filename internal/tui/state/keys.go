package state

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings of the configurator. It satisfies help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Pane     key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
	Reset    key.Binding
	Save     key.Binding
	Help     key.Binding
	Cancel   key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous field")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next field")),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous value")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "enter", " "), key.WithHelp("→/l/enter", "next value")),
		Pane:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "lua/preview")),
		ScrollUp: key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll pane up")),
		ScrollDn: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "scroll pane down")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset to saved")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save profile")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Cancel:   key.NewBinding(key.WithKeys("esc")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp returns the bindings shown in the compact help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Pane, k.Save, k.Quit}
}

// FullHelp returns the bindings of the expanded help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Pane, k.ScrollUp, k.ScrollDn},
		{k.Reset, k.Save, k.Help, k.Quit},
	}
}
