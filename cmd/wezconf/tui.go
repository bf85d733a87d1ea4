/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"

	"github.com/cristianoliveira/wezterm-configurator/cmd"
	"github.com/spf13/cobra"
)

type tuiClient interface {
	RunTUI(ctx context.Context, profilePath string) error
}

const tuiCommandLong = `Edit a profile interactively with live wezterm.lua and preview panes.

USAGE:
    wezconf tui [--profile PATH]

KEY BINDINGS:
    j/k, up/down       Select a setting
    h/l, left/right    Change its value
    tab                Switch between the wezterm.lua and preview panes
    pgup/pgdown        Scroll the pane
    r                  Reset to the saved profile
    s                  Save the profile
    ?                  Toggle full help
    q                  Quit (asks again when there are unsaved changes)`

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client tuiClient) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the profile interactively",
		Long:  tuiCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.RunTUI(commandContext(cmd), profilePath())
		},
	}
}

var tuiCmd = NewTUICmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
}
