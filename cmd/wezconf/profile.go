/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/wezterm-configurator/cmd"
	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/cristianoliveira/wezterm-configurator/internal/logging"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/spf13/cobra"
)

type profileClient interface {
	LoadProfile(path string) (settings.Settings, error)
	LoadProfileOrDefault(path string) (settings.Settings, error)
	SaveProfile(path string, s settings.Settings) error
	EncodeProfile(s settings.Settings) ([]byte, error)
	ProfileExists(path string) bool
}

const (
	profileCommandLong = `Manage the settings profile.

USAGE:
    wezconf profile <subcommand> [OPTIONS]

SUBCOMMANDS:
    init        Write the default profile
    show        Print the profile as TOML
    validate    Check every value of the profile

EXAMPLES:
    wezconf profile init
    wezconf profile show --profile work.toml`
	initCommandLong = `Write a profile holding the default settings.

USAGE:
    wezconf profile init [OPTIONS]

OPTIONS:
    --force    Overwrite an existing profile
    -h, --help Show this help`
)

// NewProfileCmd creates the profile command with explicit dependencies.
func NewProfileCmd(client profileClient) *cobra.Command {
	if client == nil {
		panic("NewProfileCmd: client dependency cannot be nil")
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Create, show or validate the settings profile",
		Long:  profileCommandLong,
	}
	profileCmd.AddCommand(newProfileInitCmd(client))
	profileCmd.AddCommand(newProfileShowCmd(client))
	profileCmd.AddCommand(newProfileValidateCmd(client))
	return profileCmd
}

func newProfileInitCmd(client profileClient) *cobra.Command {
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default profile",
		Long:  initCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileInit(client, profilePath(), force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing profile")
	return initCmd
}

func newProfileShowCmd(client profileClient) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the profile as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := client.LoadProfileOrDefault(profilePath())
			if err != nil {
				return err
			}
			data, err := client.EncodeProfile(s)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newProfileValidateCmd(client profileClient) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every value of the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := profilePath()
			s, err := client.LoadProfile(path)
			if err != nil {
				return err
			}
			if warning := settings.LeaderKeyWarning(s); warning != "" {
				colors.Warning(warning)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			return nil
		},
	}
}

func runProfileInit(client profileClient, path string, force bool) error {
	if client.ProfileExists(path) && !force {
		return fmt.Errorf("profile already exists at %s (use --force to overwrite)", path)
	}
	if err := client.SaveProfile(path, settings.Default()); err != nil {
		return err
	}
	logging.Info("profile initialized", "path", path, "force", force)
	colors.Success(fmt.Sprintf("Default profile written to %s", path))
	return nil
}

var profileCmd = NewProfileCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(profileCmd)
}
