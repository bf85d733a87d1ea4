package generator

import (
	"errors"
	"strings"

	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
)

// FileName is the conventional name of the generated document.
const FileName = "wezterm.lua"

// Generate renders s with palette p. Sections are separated by a blank
// line and the document ends with a newline. Generation either returns the
// whole document or a *GenerationError; it never returns partial text.
func Generate(s settings.Settings, p theme.Palette) (string, error) {
	if s.Theme == theme.Custom && !s.CustomColors.Complete() {
		err := sectionError(SectionColors, "custom_colors", ErrMissingCustomColors)
		logFailure(err)
		return "", err
	}

	blocks := make([]string, 0, len(sections))
	for _, section := range sections {
		lines, err := section.Render(s, p)
		if err != nil {
			logFailure(err)
			return "", err
		}
		if len(lines) == 0 {
			continue
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

// GenerateDocument resolves the palette selected by s and renders it.
func GenerateDocument(s settings.Settings) (string, error) {
	return Generate(s, s.Palette())
}

func logFailure(err error) {
	fields := map[string]any{}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		fields["section"] = genErr.Section
		fields["field"] = genErr.Field
	}
	colors.StructuredError("generator", "generate", "failed", err, "", fields)
}
