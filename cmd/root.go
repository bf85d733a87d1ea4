/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/cristianoliveira/wezterm-configurator/internal/config"
	"github.com/cristianoliveira/wezterm-configurator/internal/logging"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/version"
	"github.com/spf13/cobra"
)

// Global flag values shared by every subcommand.
var (
	profileFlag string
	debugFlag   bool
	quietFlag   bool
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "wezconf",
	Short:         "Build a wezterm.lua from a settings profile.",
	Long:          `Build a wezterm.lua from a settings profile, preview it and edit it interactively.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

// ProfilePath returns the --profile flag, or the configured profile path
// when the flag is empty.
func ProfilePath() string {
	if profileFlag != "" {
		return profileFlag
	}
	return settings.DefaultProfilePath()
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "Settings profile (default {config_dir}/profile.toml)")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Print debug messages")
	RootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only print errors")

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		printHelpText(cmd, cmd.OutOrStdout())
	})
}

// setup loads configuration, applies the global flags and starts file
// logging for the command being run.
func setup(cmd *cobra.Command) error {
	config.Load()
	if debugFlag {
		config.Set("debug", strconv.FormatBool(true))
	}
	if quietFlag {
		config.Set("quiet", strconv.FormatBool(true))
	}
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	if err := logging.InitGlobal(cmd.Name()); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	logging.Debug("command started", "command", cmd.CommandPath(), "profile", ProfilePath())
	return nil
}

func printHelpText(cmd *cobra.Command, w io.Writer) {
	commandOrder := []string{
		"generate",
		"preview",
		"schemes",
		"diff",
		"profile",
		"tui",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Name(), found.Short))
	}

	helpText := fmt.Sprintf(`wezconf %s

%s

USAGE:
    wezconf [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -p, --profile   Settings profile to read
        --debug     Print debug messages
    -q, --quiet     Only print errors
    -h, --help      Show help message
`, version.String(), cmd.Short, strings.Join(cmdLines, "\n"))
	fmt.Fprint(w, helpText)
}
