package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCustomColors is returned when the Custom theme is selected
	// without a complete custom palette.
	ErrMissingCustomColors = errors.New("custom theme requires background, foreground and accent colors")

	// ErrInvalidSettings is returned when a value cannot be rendered as
	// valid Lua, such as a negative window size or a non-finite number.
	ErrInvalidSettings = errors.New("settings cannot be rendered")
)

// GenerationError reports the section and field that stopped generation.
type GenerationError struct {
	Section string
	Field   string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("generate %s section: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("generate %s section: %s: %v", e.Section, e.Field, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func sectionError(section, field string, err error) error {
	return &GenerationError{Section: section, Field: field, Err: err}
}
