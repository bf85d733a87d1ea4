/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cristianoliveira/wezterm-configurator/cmd"
	"github.com/cristianoliveira/wezterm-configurator/internal/generator"
	"github.com/cristianoliveira/wezterm-configurator/internal/hooks"
	"github.com/cristianoliveira/wezterm-configurator/internal/preview"
	"github.com/cristianoliveira/wezterm-configurator/internal/session"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
	"github.com/cristianoliveira/wezterm-configurator/internal/tui/app"
	"github.com/cristianoliveira/wezterm-configurator/internal/version"
)

// Preview formats accepted by the preview command.
const (
	formatHTML = "html"
	formatANSI = "ansi"
	formatJSON = "json"
)

// client is the production implementation of every command's narrow
// client interface.
type client struct {
	tui app.Client
}

var coreClient = &client{tui: app.NewDefaultClient(nil, nil, nil)}

// profilePath resolves the --profile flag for the running command.
func profilePath() string {
	return cmd.ProfilePath()
}

func (c *client) LoadProfile(path string) (settings.Settings, error) {
	return settings.LoadProfile(path)
}

func (c *client) LoadProfileOrDefault(path string) (settings.Settings, error) {
	return settings.LoadProfileOrDefault(path)
}

func (c *client) SaveProfile(path string, s settings.Settings) error {
	return settings.SaveProfile(path, s)
}

func (c *client) EncodeProfile(s settings.Settings) ([]byte, error) {
	return settings.EncodeProfile(s)
}

func (c *client) ProfileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (c *client) Generate(ctx context.Context, s settings.Settings) (string, error) {
	return render(ctx, s, session.OutputLua, generator.GenerateDocument)
}

func (c *client) Preview(ctx context.Context, s settings.Settings, format string, width int) (string, error) {
	switch format {
	case formatJSON:
		data, err := preview.UpdatePayload(s, s.Palette())
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case formatHTML:
		return render(ctx, s, session.OutputHTML, func(s settings.Settings) (string, error) {
			return preview.RenderHTML(s, s.Palette())
		})
	case formatANSI:
		return render(ctx, s, session.OutputANSI, func(s settings.Settings) (string, error) {
			return preview.RenderANSI(s, s.Palette(), width) + "\n", nil
		})
	default:
		return "", fmt.Errorf("unknown preview format %q (want %s, %s or %s)", format, formatHTML, formatANSI, formatJSON)
	}
}

func (c *client) RunHooks(ctx context.Context, point string, vars map[string]string, out io.Writer) error {
	return hooks.NewRunner(out).Run(ctx, point, vars)
}

func (c *client) Schemes() []schemeEntry {
	names := theme.SchemeNames()
	entries := make([]schemeEntry, 0, len(names))
	for _, name := range names {
		p, _ := theme.LookupScheme(name)
		entries = append(entries, schemeEntry{Name: name, Palette: p})
	}
	return entries
}

func (c *client) RunTUI(ctx context.Context, path string) error {
	return c.tui.Run(ctx, path)
}

func (c *client) Version() string {
	return version.String()
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute.
func commandContext(c interface{ Context() context.Context }) context.Context {
	if ctx := c.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// render produces one output through a short-lived session store so the
// CLI and the TUI share the same rendering path.
func render(ctx context.Context, s settings.Settings, kind session.OutputKind, fn func(settings.Settings) (string, error)) (string, error) {
	store, err := session.Open(ctx)
	if err != nil {
		return "", fmt.Errorf("open session: %w", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := store.Update(ctx, s); err != nil {
		return "", err
	}
	return store.Output(ctx, kind, fn)
}
