// Package state implements the bubbletea model of the configurator TUI.
package state

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/wezterm-configurator/internal/errors"
	"github.com/cristianoliveira/wezterm-configurator/internal/generator"
	"github.com/cristianoliveira/wezterm-configurator/internal/preview"
	"github.com/cristianoliveira/wezterm-configurator/internal/session"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
)

const (
	headerFooterLines     = 3
	paneTitleLines        = 1
	columnGap             = 3
	maxListWidth          = 48
	defaultViewportWidth  = 100
	defaultViewportHeight = 30
	errorClearDuration    = 5 * time.Second
)

// OutputCache stores settings snapshots and the outputs rendered for
// them. session.Store is the production implementation.
type OutputCache interface {
	Update(ctx context.Context, next settings.Settings) (bool, error)
	Revision(ctx context.Context) (int64, error)
	Output(ctx context.Context, kind session.OutputKind, render func(settings.Settings) (string, error)) (string, error)
	PutOutput(ctx context.Context, kind session.OutputKind, text string) error
}

// Options configures a new Model.
type Options struct {
	ProfilePath string
	Settings    settings.Settings
	Cache       OutputCache
	// Save defaults to settings.SaveProfile.
	Save SaveFunc
}

// Model represents the TUI model for bubbletea.
type Model struct {
	ctx     context.Context
	uiState *UIState
	keys    keyMap
	help    help.Model
	fields  []field

	current     settings.Settings
	saved       settings.Settings
	profilePath string
	cache       OutputCache
	save        SaveFunc
	revision    int64

	lua      string
	ansi     string
	showHelp bool
	quitting bool

	errorHandler      *errors.TUIHandler
	statusMessage     string
	statusMessageType errors.MessageType
}

// NewModel creates a new TUI model seeded with opts.Settings, which are
// also treated as the saved state.
func NewModel(ctx context.Context, opts Options) (*Model, error) {
	if opts.Cache == nil {
		return nil, fmt.Errorf("tui: output cache is required")
	}
	if opts.Save == nil {
		opts.Save = settings.SaveProfile
	}

	m := &Model{
		ctx:         ctx,
		uiState:     NewUIState(),
		keys:        defaultKeyMap(),
		help:        help.New(),
		fields:      editorFields(),
		current:     opts.Settings.Clone(),
		saved:       opts.Settings.Clone(),
		profilePath: opts.ProfilePath,
		cache:       opts.Cache,
		save:        opts.Save,
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
		m.statusMessageType = msg.Type
	})

	if err := m.refresh(); err != nil {
		return nil, err
	}
	if warning := settings.LeaderKeyWarning(m.current); warning != "" {
		m.errorHandler.Warning(warning)
	}
	return m, nil
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case saveSettingsSuccessMsg:
		m.saved = msg.snapshot.Clone()
		m.errorHandler.Success(fmt.Sprintf("profile written to %s", msg.path))
		return m, errorMsgAfter(errorClearDuration)
	case saveSettingsFailedMsg:
		m.errorHandler.Error(errors.Describe(msg.err))
		return m, errorMsgAfter(errorClearDuration)
	case errorMsg:
		m.statusMessage = ""
		return m, nil
	}
	return m, nil
}

// Settings returns a copy of the settings being edited.
func (m *Model) Settings() settings.Settings {
	return m.current.Clone()
}

// Dirty reports whether the edited settings differ from the saved ones.
func (m *Model) Dirty() bool {
	return settings.HasChanged(m.current, m.saved)
}

// Lua returns the configuration generated for the current settings.
func (m *Model) Lua() string {
	return m.lua
}

// apply replaces the current settings when next differs from them and
// refreshes the outputs.
func (m *Model) apply(next settings.Settings) {
	if !settings.HasChanged(next, m.current) {
		return
	}
	m.current = next
	if err := m.refresh(); err != nil {
		m.errorHandler.Error(errors.Describe(err))
	}
}

// refresh stores the current snapshot and reloads both outputs. Outputs
// come from the cache when the snapshot did not change.
func (m *Model) refresh() error {
	if _, err := m.cache.Update(m.ctx, m.current); err != nil {
		return err
	}
	revision, err := m.cache.Revision(m.ctx)
	if err != nil {
		return err
	}
	m.revision = revision

	lua, err := m.cache.Output(m.ctx, session.OutputLua, generator.GenerateDocument)
	if err != nil {
		m.lua = "-- " + errors.Describe(err)
		m.errorHandler.Error(errors.Describe(err))
	} else {
		m.lua = lua
	}

	ansi, err := m.cache.Output(m.ctx, session.OutputANSI, m.renderANSI)
	if err != nil {
		return err
	}
	m.ansi = ansi
	m.updateViewportContent()
	return nil
}

// rerenderANSI replaces the cached preview after the pane width changed.
func (m *Model) rerenderANSI() error {
	ansi, err := m.renderANSI(m.current)
	if err != nil {
		return err
	}
	if err := m.cache.PutOutput(m.ctx, session.OutputANSI, ansi); err != nil {
		return err
	}
	m.ansi = ansi
	return nil
}

func (m *Model) renderANSI(s settings.Settings) (string, error) {
	return preview.RenderANSI(s, s.Palette(), m.uiState.PaneWidth()), nil
}
