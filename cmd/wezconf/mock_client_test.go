package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockClient implements every command client interface.
type mockClient struct {
	mock.Mock
}

func (m *mockClient) LoadProfile(path string) (settings.Settings, error) {
	args := m.Called(path)
	return args.Get(0).(settings.Settings), args.Error(1)
}

func (m *mockClient) LoadProfileOrDefault(path string) (settings.Settings, error) {
	args := m.Called(path)
	return args.Get(0).(settings.Settings), args.Error(1)
}

func (m *mockClient) SaveProfile(path string, s settings.Settings) error {
	args := m.Called(path, s)
	return args.Error(0)
}

func (m *mockClient) EncodeProfile(s settings.Settings) ([]byte, error) {
	args := m.Called(s)
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockClient) ProfileExists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *mockClient) Generate(ctx context.Context, s settings.Settings) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

func (m *mockClient) Preview(ctx context.Context, s settings.Settings, format string, width int) (string, error) {
	args := m.Called(ctx, s, format, width)
	return args.String(0), args.Error(1)
}

func (m *mockClient) RunHooks(ctx context.Context, point string, vars map[string]string, out io.Writer) error {
	args := m.Called(ctx, point, vars, out)
	return args.Error(0)
}

func (m *mockClient) Schemes() []schemeEntry {
	args := m.Called()
	return args.Get(0).([]schemeEntry)
}

func (m *mockClient) RunTUI(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *mockClient) Version() string {
	args := m.Called()
	return args.String(0)
}

// runCommand executes c with args and returns what it printed.
func runCommand(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SilenceErrors = true
	c.SilenceUsage = true
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

func requirePanicsWithNilClient(t *testing.T, build func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic, got nil")
		msg, ok := r.(string)
		require.True(t, ok, "expected panic message as string, got %T", r)
		require.True(t, strings.Contains(msg, "client dependency cannot be nil"), "unexpected panic message %q", msg)
	}()
	build()
}
