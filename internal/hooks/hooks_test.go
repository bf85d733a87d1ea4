package hooks

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/wezterm-configurator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, point, name, body string, mode os.FileMode) string {
	t.Helper()
	hookDir := filepath.Join(dir, point)
	require.NoError(t, os.MkdirAll(hookDir, 0755))
	path := filepath.Join(hookDir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), mode))
	return path
}

func newTestRunner(t *testing.T, mode string) (*Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Runner{Dir: t.TempDir(), FailureMode: mode, Timeout: 5 * time.Second, Out: &out}, &out
}

func TestRunWithoutHooksDirectory(t *testing.T) {
	r, out := newTestRunner(t, FailureAbort)

	require.NoError(t, r.Run(context.Background(), PostGenerate, nil))
	assert.Empty(t, out.String())

	r.Dir = ""
	require.NoError(t, r.Run(context.Background(), PostGenerate, nil))
}

func TestRunPassesEnvironment(t *testing.T) {
	r, _ := newTestRunner(t, FailureAbort)
	record := filepath.Join(t.TempDir(), "env.txt")
	writeScript(t, r.Dir, PostGenerate, "10-record.sh",
		`echo "$WEZCONF_HOOK_POINT $WEZCONF_OUTPUT_PATH $WEZCONF_PROFILE_PATH" > "`+record+`"
test -n "$WEZCONF_HOOK_TIMESTAMP"`, 0755)

	err := r.Run(context.Background(), PostGenerate, map[string]string{
		EnvOutputPath:  "/tmp/wezterm.lua",
		EnvProfilePath: "/tmp/profile.toml",
	})

	require.NoError(t, err)
	data, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "post-generate /tmp/wezterm.lua /tmp/profile.toml\n", string(data))
}

func TestRunOrdersScriptsAndSkipsNonExecutable(t *testing.T) {
	r, out := newTestRunner(t, FailureAbort)
	writeScript(t, r.Dir, PostSave, "20-second.sh", "echo second", 0755)
	writeScript(t, r.Dir, PostSave, "10-first.sh", "echo first", 0755)
	writeScript(t, r.Dir, PostSave, "30-disabled.sh", "echo disabled", 0644)
	require.NoError(t, os.MkdirAll(filepath.Join(r.Dir, PostSave, "nested"), 0755))

	require.NoError(t, r.Run(context.Background(), PostSave, nil))

	assert.Equal(t, "first\nsecond\n", out.String())
}

func TestRunFailureModes(t *testing.T) {
	tests := []struct {
		mode        string
		wantErr     bool
		wantWarning bool
	}{
		{FailureAbort, true, false},
		{FailureWarn, false, true},
		{FailureIgnore, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			r, out := newTestRunner(t, tt.mode)
			writeScript(t, r.Dir, PostGenerate, "10-fail.sh", "exit 3", 0755)
			writeScript(t, r.Dir, PostGenerate, "20-after.sh", "echo after", 0755)

			err := r.Run(context.Background(), PostGenerate, nil)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "10-fail.sh")
				assert.NotContains(t, out.String(), "after")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), "after")
			assert.Equal(t, tt.wantWarning, strings.Contains(out.String(), "warning: hook 10-fail.sh failed"))
		})
	}
}

func TestRunTimesOut(t *testing.T) {
	r, _ := newTestRunner(t, FailureAbort)
	r.Timeout = 100 * time.Millisecond
	writeScript(t, r.Dir, PostGenerate, "slow.sh", "exec sleep 5", 0755)

	err := r.Run(context.Background(), PostGenerate, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestNewRunnerReadsConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("WEZCONF_CONFIG_PATH", "")
	t.Setenv("WEZCONF_HOOKS_FAILURE_MODE", "abort")
	t.Setenv("WEZCONF_HOOKS_TIMEOUT", "7")
	config.Load()

	var out bytes.Buffer
	r := NewRunner(&out)

	assert.Equal(t, filepath.Join(tmp, "wezconf", "hooks"), r.Dir)
	assert.Equal(t, FailureAbort, r.FailureMode)
	assert.Equal(t, 7*time.Second, r.Timeout)
	assert.Same(t, &out, r.Out)
}
