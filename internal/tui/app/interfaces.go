// Package app provides TUI application adapters for command wiring.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/wezterm-configurator/internal/session"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
)

// ProgramRunner defines the interface for running a bubbletea program.
// This abstraction allows for easier testing and swapping of implementations.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner is the default implementation of ProgramRunner
// that wraps tea.NewProgram with standard options.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program on the alternate screen.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// ProfileLoader loads the settings the editor starts from.
type ProfileLoader interface {
	Load(path string) (settings.Settings, error)
}

// DefaultProfileLoader falls back to the default settings when the
// profile does not exist yet.
type DefaultProfileLoader struct{}

// NewDefaultProfileLoader creates a new DefaultProfileLoader.
func NewDefaultProfileLoader() *DefaultProfileLoader {
	return &DefaultProfileLoader{}
}

// Load reads the profile at path.
func (l *DefaultProfileLoader) Load(path string) (settings.Settings, error) {
	return settings.LoadProfileOrDefault(path)
}

// CacheOpener opens the output cache backing one editor session.
type CacheOpener interface {
	Open(ctx context.Context) (*session.Store, error)
}

// DefaultCacheOpener opens an in-memory session store.
type DefaultCacheOpener struct{}

// NewDefaultCacheOpener creates a new DefaultCacheOpener.
func NewDefaultCacheOpener() *DefaultCacheOpener {
	return &DefaultCacheOpener{}
}

// Open opens a fresh session store.
func (o *DefaultCacheOpener) Open(ctx context.Context) (*session.Store, error) {
	return session.Open(ctx)
}
