// Package app provides TUI application adapters for command wiring.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/cristianoliveira/wezterm-configurator/internal/hooks"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/tui/state"
)

// Client defines dependencies needed by the tui command.
type Client interface {
	Run(ctx context.Context, profilePath string) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	programRunner ProgramRunner
	profileLoader ProfileLoader
	cacheOpener   CacheOpener
}

// NewDefaultClient creates a default TUI client adapter. Nil arguments are
// replaced by their Default implementations.
func NewDefaultClient(programRunner ProgramRunner, profileLoader ProfileLoader, cacheOpener CacheOpener) *DefaultClient {
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	if profileLoader == nil {
		profileLoader = NewDefaultProfileLoader()
	}
	if cacheOpener == nil {
		cacheOpener = NewDefaultCacheOpener()
	}
	return &DefaultClient{
		programRunner: programRunner,
		profileLoader: profileLoader,
		cacheOpener:   cacheOpener,
	}
}

// Run loads the profile, opens a session cache and runs the editor until
// the user quits.
func (d *DefaultClient) Run(ctx context.Context, profilePath string) error {
	loaded, err := d.profileLoader.Load(profilePath)
	if err != nil {
		return err
	}

	store, err := d.cacheOpener.Open(ctx)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer func() { _ = store.Close() }()

	model, err := state.NewModel(ctx, state.Options{
		ProfilePath: profilePath,
		Settings:    loaded,
		Cache:       store,
		Save:        saveWithHooks(ctx),
	})
	if err != nil {
		return err
	}

	if err := d.programRunner.Run(model); err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}

// saveWithHooks writes the profile and then runs the post-save hooks.
// Script output is discarded while the editor owns the terminal.
func saveWithHooks(ctx context.Context) state.SaveFunc {
	return func(path string, s settings.Settings) error {
		if err := settings.SaveProfile(path, s); err != nil {
			return err
		}
		return hooks.NewRunner(io.Discard).Run(ctx, hooks.PostSave, map[string]string{
			hooks.EnvProfilePath: path,
		})
	}
}
