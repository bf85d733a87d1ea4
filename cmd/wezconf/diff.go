/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/wezterm-configurator/cmd"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/spf13/cobra"
)

// errSettingsChanged makes diff exit with status 1 without printing an
// error, like diff(1).
var errSettingsChanged = errors.New("settings changed")

type diffClient interface {
	LoadProfile(path string) (settings.Settings, error)
}

const diffCommandLong = `Report whether two profiles produce different settings.

USAGE:
    wezconf diff OLD NEW

Prints "changed" and exits 1 when any setting differs, "unchanged" and
exits 0 otherwise. The order of hyperlink rules and window decorations is
ignored.

EXAMPLES:
    wezconf diff profile.toml profile.new.toml && echo same`

// NewDiffCmd creates the diff command with explicit dependencies.
func NewDiffCmd(client diffClient) *cobra.Command {
	if client == nil {
		panic("NewDiffCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compare two profiles",
		Long:  diffCommandLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := client.LoadProfile(args[0])
			if err != nil {
				return err
			}
			next, err := client.LoadProfile(args[1])
			if err != nil {
				return err
			}
			if settings.HasChanged(next, prev) {
				fmt.Fprintln(cmd.OutOrStdout(), "changed")
				return errSettingsChanged
			}
			fmt.Fprintln(cmd.OutOrStdout(), "unchanged")
			return nil
		},
	}
}

var diffCmd = NewDiffCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(diffCmd)
}
