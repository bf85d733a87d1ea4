package settings

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/wezterm-configurator/internal/config"
	"github.com/pelletier/go-toml/v2"
)

const profileHeader = "# wezconf settings profile\n# Edit values and run `wezconf generate` to produce wezterm.lua.\n\n"

// ErrProfileNotFound is returned when a profile file does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// DefaultProfilePath returns the configured profile location.
func DefaultProfilePath() string {
	if p := config.Get("profile_path", ""); p != "" {
		return p
	}
	return filepath.Join(config.Get("config_dir", "."), "profile"+config.FileExtTOML)
}

// LoadProfile reads a TOML profile. Keys missing from the file keep their
// default values; unknown keys are rejected. The result is validated.
func LoadProfile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("%w: %s", ErrProfileNotFound, path)
		}
		return Settings{}, fmt.Errorf("failed to read profile: %w", err)
	}

	s, err := DecodeProfile(data)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if err := Validate(s); err != nil {
		return Settings{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return s, nil
}

// LoadProfileOrDefault behaves like LoadProfile but returns Default()
// when the file does not exist.
func LoadProfileOrDefault(path string) (Settings, error) {
	s, err := LoadProfile(path)
	if errors.Is(err, ErrProfileNotFound) {
		return Default(), nil
	}
	return s, err
}

// DecodeProfile decodes TOML on top of Default() without validating.
func DecodeProfile(data []byte) (Settings, error) {
	s := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// EncodeProfile renders settings as a commented TOML document. Empty sets
// are written as empty arrays so decoding does not restore the defaults.
func EncodeProfile(s Settings) ([]byte, error) {
	s = s.Clone()
	if s.HyperlinkRules == nil {
		s.HyperlinkRules = []HyperlinkRule{}
	}
	if s.WindowDecorations == nil {
		s.WindowDecorations = []WindowDecoration{}
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	return append([]byte(profileHeader), data...), nil
}

// SaveProfile validates settings and writes them to path, creating the
// parent directory when needed.
func SaveProfile(path string, s Settings) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("profile path cannot be empty")
	}
	if err := Validate(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	data, err := EncodeProfile(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), config.FileModeDir); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}
	if err := os.WriteFile(path, data, config.FileModeFile); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}
