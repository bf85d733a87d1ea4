/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	stderrors "errors"
	"os"

	"github.com/cristianoliveira/wezterm-configurator/cmd"
	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/cristianoliveira/wezterm-configurator/internal/errors"
)

func main() {
	colors.StructuredInfo("startup", "main", "started", nil, "", nil)
	if err := cmd.Execute(); err != nil {
		if !stderrors.Is(err, errSettingsChanged) {
			errors.Report(errors.NewDefaultCLIHandler(), err)
			colors.StructuredError("startup", "main", "failed", err, "", nil)
		}
		os.Exit(1)
	}
	colors.StructuredInfo("startup", "main", "completed", nil, "", nil)
}
