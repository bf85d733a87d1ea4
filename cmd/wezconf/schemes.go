/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/wezterm-configurator/cmd"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
	"github.com/spf13/cobra"
)

// schemeEntry is one row of the schemes listing.
type schemeEntry struct {
	Name    string
	Palette theme.Palette
}

type schemesClient interface {
	Schemes() []schemeEntry
}

const schemeNameWidth = 16

// NewSchemesCmd creates the schemes command with explicit dependencies.
func NewSchemesCmd(client schemesClient) *cobra.Command {
	if client == nil {
		panic("NewSchemesCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "schemes",
		Short: "List the built-in color schemes",
		Long: `List the built-in color schemes with their background, foreground and accent colors.

USAGE:
    wezconf schemes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSchemes(cmd.OutOrStdout(), client.Schemes())
			return nil
		},
	}
}

func printSchemes(w io.Writer, entries []schemeEntry) {
	fmt.Fprintf(w, "%-*s  %-9s %-9s %-9s\n", schemeNameWidth, "SCHEME", "BG", "FG", "ACCENT")
	for _, e := range entries {
		fmt.Fprintf(w, "%-*s  %-9s %-9s %-9s %s\n",
			schemeNameWidth, e.Name,
			e.Palette.Background, e.Palette.Foreground, e.Palette.Accent,
			swatch(e.Palette))
	}
}

// swatch renders the palette as a short sample of prompt text.
func swatch(p theme.Palette) string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(p.Background))
	return base.Foreground(lipgloss.Color(p.Accent)).Render(" $ ") +
		base.Foreground(lipgloss.Color(p.Foreground)).Render("ls ")
}

var schemesCmd = NewSchemesCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(schemesCmd)
}
