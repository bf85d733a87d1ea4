/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/cristianoliveira/wezterm-configurator/internal/config"
)

// stdoutTarget selects standard output as the destination.
const stdoutTarget = "-"

// writeOutput writes text to w when target is "-" or empty. Otherwise it
// writes a file at target, or at target/defaultName when target is an
// existing directory, and returns the written path.
func writeOutput(w io.Writer, target, defaultName, text string) (string, error) {
	if target == "" || target == stdoutTarget {
		_, err := io.WriteString(w, text)
		return "", err
	}

	path := target
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		path = filepath.Join(target, defaultName)
	}
	if err := os.MkdirAll(filepath.Dir(path), config.FileModeDir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), config.FileModeFile); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	colors.Success(fmt.Sprintf("Wrote %s", path))
	return path, nil
}
