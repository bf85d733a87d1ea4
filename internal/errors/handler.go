// Package errors routes user-facing messages to the CLI or the TUI and
// turns configurator errors into short, actionable text.
package errors

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/cristianoliveira/wezterm-configurator/internal/generator"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
)

// ErrorHandler receives user-facing messages.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console sink used by CLIHandler.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler writes messages to the console. Messages from concurrent
// callers are not interleaved.
type CLIHandler struct {
	mu     sync.Mutex
	colors ColorOutput
}

// NewCLIHandler returns a handler writing to colors.
func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors.Success(msg)
}

// Report sends err to h as an error message. A nil err is ignored.
func Report(h ErrorHandler, err error) {
	if err == nil {
		return
	}
	h.Error(Describe(err))
}

// Describe renders err for humans, adding a hint for the failures users
// can fix themselves.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var genErr *generator.GenerationError
	switch {
	case stderrors.Is(err, generator.ErrMissingCustomColors):
		return fmt.Sprintf("%v (set background, foreground and accent under [custom_colors], or pick a color scheme)", err)
	case stderrors.As(err, &genErr):
		return fmt.Sprintf("cannot generate %s: %v", generator.FileName, err)
	case stderrors.Is(err, settings.ErrProfileNotFound):
		return fmt.Sprintf("%v (run `wezconf profile init` to create one)", err)
	case stderrors.Is(err, settings.ErrInvalidValue):
		return fmt.Sprintf("%v (run `wezconf profile validate` for details)", err)
	default:
		return err.Error()
	}
}
