package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("WEZCONF_CONFIG_PATH", "")
	colors.SetOutput(&discard{}, &discard{})
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return tmp
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestLoadDefaults(t *testing.T) {
	tmp := isolate(t)

	Load()

	assert.Equal(t, filepath.Join(tmp, "config", "wezconf"), Get("config_dir", ""))
	assert.Equal(t, filepath.Join(tmp, "state", "wezconf"), Get("state_dir", ""))
	assert.Equal(t, filepath.Join(tmp, "config", "wezconf", "profile.toml"), Get("profile_path", ""))
	assert.Equal(t, "-", Get("output_path", ""))
	assert.Equal(t, "html", Get("preview_format", ""))
	assert.False(t, GetBool("logging_enabled", true))
	assert.Equal(t, 10, GetInt("logging_max_files", 0))
	assert.Equal(t, filepath.Join(tmp, "config", "wezconf", "hooks"), Get("hooks_dir", ""))
	assert.Equal(t, "warn", Get("hooks_failure_mode", ""))
	assert.Equal(t, 30, GetInt("hooks_timeout", 0))
	assert.Equal(t, "fallback", Get("missing", "fallback"))
}

func TestLoadPrecedenceEnvOverFile(t *testing.T) {
	tmp := isolate(t)

	configFile := filepath.Join(tmp, "custom.toml")
	content := `
preview_format = "ansi"
logging_max_files = 3
logging_enabled = true
output_path = "/tmp/out.lua"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("WEZCONF_CONFIG_PATH", configFile)
	t.Setenv("WEZCONF_PREVIEW_FORMAT", "json")

	Load()

	assert.Equal(t, "json", Get("preview_format", ""), "environment should override config file")
	assert.Equal(t, 3, GetInt("logging_max_files", 0))
	assert.True(t, GetBool("logging_enabled", false))
	assert.Equal(t, "/tmp/out.lua", Get("output_path", ""))
}

func TestLoadReadsDefaultConfigFile(t *testing.T) {
	tmp := isolate(t)

	dir := filepath.Join(tmp, "config", "wezconf")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`profile_path = "/srv/profile.toml"`), 0644))

	Load()

	assert.Equal(t, "/srv/profile.toml", Get("profile_path", ""))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("WEZCONF_PREVIEW_FORMAT", "pdf")
	t.Setenv("WEZCONF_LOGGING_MAX_FILES", "-4")
	t.Setenv("WEZCONF_DEBUG", "maybe")
	t.Setenv("WEZCONF_QUIET", "YES")
	t.Setenv("WEZCONF_HOOKS_FAILURE_MODE", "explode")
	t.Setenv("WEZCONF_HOOKS_TIMEOUT", "0")

	Load()

	assert.Equal(t, "html", Get("preview_format", ""))
	assert.Equal(t, "10", Get("logging_max_files", ""))
	assert.Equal(t, "false", Get("debug", ""))
	assert.Equal(t, "true", Get("quiet", ""))
	assert.Equal(t, "warn", Get("hooks_failure_mode", ""))
	assert.Equal(t, "30", Get("hooks_timeout", ""))
}

func TestMalformedFileIsIgnored(t *testing.T) {
	tmp := isolate(t)
	configFile := filepath.Join(tmp, "broken.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("preview_format = "), 0644))
	t.Setenv("WEZCONF_CONFIG_PATH", configFile)

	Load()

	assert.Equal(t, "html", Get("preview_format", ""))
}

func TestSetOverridesValue(t *testing.T) {
	isolate(t)
	Load()

	Set("profile_path", "/elsewhere.toml")

	assert.Equal(t, "/elsewhere.toml", Get("profile_path", ""))
}

func TestCoerceConfigValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{in: "x", want: "x", ok: true},
		{in: int64(7), want: "7", ok: true},
		{in: 0.5, want: "0.5", ok: true},
		{in: true, want: "true", ok: true},
		{in: []any{1}, ok: false},
	}
	for _, tt := range tests {
		got, ok := coerceConfigValue(tt.in)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestRegisterValidatorPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		RegisterValidator("debug", BoolValidator())
	})
}
