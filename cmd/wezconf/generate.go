/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"errors"
	"io"

	"github.com/cristianoliveira/wezterm-configurator/cmd"
	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/cristianoliveira/wezterm-configurator/internal/config"
	"github.com/cristianoliveira/wezterm-configurator/internal/generator"
	"github.com/cristianoliveira/wezterm-configurator/internal/hooks"
	"github.com/cristianoliveira/wezterm-configurator/internal/logging"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/spf13/cobra"
)

type generateClient interface {
	LoadProfileOrDefault(path string) (settings.Settings, error)
	Generate(ctx context.Context, s settings.Settings) (string, error)
	RunHooks(ctx context.Context, point string, vars map[string]string, out io.Writer) error
}

const generateCommandLong = `Generate a wezterm.lua from a settings profile.

USAGE:
    wezconf generate [OPTIONS]

OPTIONS:
    -p, --profile PATH   Settings profile (default {config_dir}/profile.toml)
    -o, --out PATH       Output file or directory, "-" for stdout
                         (default: output_path from config.toml)
    -h, --help           Show this help

A missing profile generates the default configuration. After writing a
file, the executable scripts in {config_dir}/hooks/post-generate/ run
with WEZCONF_OUTPUT_PATH and WEZCONF_PROFILE_PATH set.

EXAMPLES:
    # Print the configuration
    wezconf generate

    # Write ~/.config/wezterm/wezterm.lua
    wezconf generate --out ~/.config/wezterm`

// NewGenerateCmd creates the generate command with explicit dependencies.
func NewGenerateCmd(client generateClient) *cobra.Command {
	if client == nil {
		panic("NewGenerateCmd: client dependency cannot be nil")
	}

	var out string
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write wezterm.lua for a profile",
		Long:  generateCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := out
			if !cmd.Flags().Changed("out") {
				target = config.Get("output_path", stdoutTarget)
			}
			return runGenerate(cmd, client, profilePath(), target)
		},
	}
	generateCmd.Flags().StringVarP(&out, "out", "o", stdoutTarget, "Output file or directory, '-' for stdout")
	return generateCmd
}

func runGenerate(cmd *cobra.Command, client generateClient, path, target string) error {
	s, err := client.LoadProfileOrDefault(path)
	if err != nil {
		return err
	}
	if warning := settings.LeaderKeyWarning(s); warning != "" {
		colors.Warning(warning)
	}

	ctx := commandContext(cmd)
	lua, err := client.Generate(ctx, s)
	if err != nil {
		var genErr *generator.GenerationError
		if errors.As(err, &genErr) {
			logging.Error("generation failed", "section", genErr.Section, "field", genErr.Field, "error", err)
		}
		return err
	}

	written, err := writeOutput(cmd.OutOrStdout(), target, generator.FileName, lua)
	if err != nil {
		return err
	}
	logging.Info("configuration generated", "profile", path, "output", written)
	if written == "" {
		return nil
	}
	return client.RunHooks(ctx, hooks.PostGenerate, map[string]string{
		hooks.EnvOutputPath:  written,
		hooks.EnvProfilePath: path,
	}, cmd.ErrOrStderr())
}

var generateCmd = NewGenerateCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(generateCmd)
}
