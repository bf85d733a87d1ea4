/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/wezterm-configurator/cmd"
	"github.com/cristianoliveira/wezterm-configurator/internal/config"
	"github.com/cristianoliveira/wezterm-configurator/internal/preview"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/spf13/cobra"
)

type previewClient interface {
	LoadProfileOrDefault(path string) (settings.Settings, error)
	Preview(ctx context.Context, s settings.Settings, format string, width int) (string, error)
}

const defaultPreviewWidth = 72

var previewFileNames = map[string]string{
	formatHTML: "preview.html",
	formatANSI: "preview.txt",
	formatJSON: "preview.json",
}

const previewCommandLong = `Render a preview of the terminal a profile configures.

USAGE:
    wezconf preview [OPTIONS]

OPTIONS:
    -p, --profile PATH   Settings profile (default {config_dir}/profile.toml)
    -f, --format FORMAT  html, ansi or json (default: preview_format from config.toml)
    -w, --width N        Width of the ansi preview in columns (default 72)
    -o, --out PATH       Output file or directory, "-" for stdout
    -h, --help           Show this help

FORMATS:
    html    Standalone page with the mock terminal and a settings summary
    ansi    Mock terminal drawn with the profile colors in this terminal
    json    Live update payload consumed by updateTerminalConfig

EXAMPLES:
    wezconf preview --format ansi
    wezconf preview --out /tmp`

// NewPreviewCmd creates the preview command with explicit dependencies.
func NewPreviewCmd(client previewClient) *cobra.Command {
	if client == nil {
		panic("NewPreviewCmd: client dependency cannot be nil")
	}

	var (
		format string
		width  int
		out    string
	)
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Render an html, ansi or json preview",
		Long:  previewCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = config.Get("preview_format", formatHTML)
			}
			return runPreview(cmd, client, profilePath(), format, width, out)
		},
	}
	previewCmd.Flags().StringVarP(&format, "format", "f", formatHTML, "Preview format: html, ansi or json")
	previewCmd.Flags().IntVarP(&width, "width", "w", defaultPreviewWidth, "Width of the ansi preview")
	previewCmd.Flags().StringVarP(&out, "out", "o", stdoutTarget, "Output file or directory, '-' for stdout")
	return previewCmd
}

func runPreview(cmd *cobra.Command, client previewClient, path, format string, width int, out string) error {
	if width < preview.MinANSIWidth {
		return fmt.Errorf("--width must be at least %d, got %d", preview.MinANSIWidth, width)
	}
	s, err := client.LoadProfileOrDefault(path)
	if err != nil {
		return err
	}
	text, err := client.Preview(commandContext(cmd), s, format, width)
	if err != nil {
		return err
	}
	_, err = writeOutput(cmd.OutOrStdout(), out, previewFileNames[format], text)
	return err
}

var previewCmd = NewPreviewCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(previewCmd)
}
