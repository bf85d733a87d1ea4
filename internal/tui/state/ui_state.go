package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// Pane selects what the right-hand column shows.
type Pane int

const (
	PaneLua Pane = iota
	PanePreview
)

// String returns the pane name shown in the footer.
func (p Pane) String() string {
	if p == PanePreview {
		return "preview"
	}
	return "lua"
}

// Title returns the heading drawn above the pane.
func (p Pane) Title() string {
	if p == PanePreview {
		return "Preview"
	}
	return "wezterm.lua"
}

// UIState manages the layout and navigation state of the TUI: the
// terminal size, the cursor in the settings list and the two viewports.
type UIState struct {
	list viewport.Model
	pane viewport.Model

	width  int
	height int
	cursor int
	active Pane
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	u := &UIState{
		width:  defaultViewportWidth,
		height: defaultViewportHeight,
	}
	u.UpdateViewportSize()
	return u
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width of the UI.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetHeight updates the height of the UI.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// ListWidth is the width of the settings column.
func (u *UIState) ListWidth() int {
	return min(maxListWidth, u.width/2)
}

// PaneWidth is the width of the output column.
func (u *UIState) PaneWidth() int {
	return max(u.width-u.ListWidth()-columnGap, 1)
}

// UpdateViewportSize rebuilds both viewports for the current size.
func (u *UIState) UpdateViewportSize() {
	bodyHeight := max(u.height-headerFooterLines, 1)
	u.list = viewport.New(u.ListWidth(), bodyHeight)
	u.pane = viewport.New(u.PaneWidth(), max(bodyHeight-paneTitleLines, 1))
}

// ListViewport returns the viewport of the settings column.
func (u *UIState) ListViewport() *viewport.Model {
	return &u.list
}

// PaneViewport returns the viewport of the output column.
func (u *UIState) PaneViewport() *viewport.Model {
	return &u.pane
}

// GetCursor returns the current cursor position.
func (u *UIState) GetCursor() int {
	return u.cursor
}

// SetCursor updates the cursor position.
func (u *UIState) SetCursor(cursor int) {
	u.cursor = max(cursor, 0)
}

// MoveCursorUp moves the cursor up one position if possible.
func (u *UIState) MoveCursorUp() {
	if u.cursor > 0 {
		u.cursor--
	}
}

// MoveCursorDown moves the cursor down one position if possible.
func (u *UIState) MoveCursorDown(listLen int) {
	if u.cursor < listLen-1 {
		u.cursor++
	}
}

// EnsureCursorVisible scrolls the settings column so the cursor row shows.
func (u *UIState) EnsureCursorVisible() {
	if u.list.Height <= 0 {
		return
	}
	if u.cursor < u.list.YOffset {
		u.list.SetYOffset(u.cursor)
	} else if u.cursor >= u.list.YOffset+u.list.Height {
		u.list.SetYOffset(u.cursor - u.list.Height + 1)
	}
}

// ActivePane returns the pane shown in the output column.
func (u *UIState) ActivePane() Pane {
	return u.active
}

// TogglePane switches between the Lua and preview panes.
func (u *UIState) TogglePane() {
	if u.active == PaneLua {
		u.active = PanePreview
	} else {
		u.active = PaneLua
	}
	u.pane.GotoTop()
}

// ScrollPane moves the output column half a page in direction dir.
func (u *UIState) ScrollPane(dir int) {
	lines := max(u.pane.Height/2, 1)
	if dir < 0 {
		u.pane.LineUp(lines)
	} else {
		u.pane.LineDown(lines)
	}
}
