package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/wezterm-configurator/internal/preview"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPreviewCmdPanicsWhenClientIsNil(t *testing.T) {
	requirePanicsWithNilClient(t, func() { NewPreviewCmd(nil) })
}

func TestPreviewPassesFormatAndWidth(t *testing.T) {
	client := new(mockClient)
	client.On("LoadProfileOrDefault", mock.Anything).Return(settings.Default(), nil)
	client.On("Preview", mock.Anything, mock.Anything, formatANSI, 90).Return("box\n", nil)

	out, err := runCommand(t, NewPreviewCmd(client), "--format", "ansi", "--width", "90")

	require.NoError(t, err)
	assert.Equal(t, "box\n", out)
	client.AssertExpectations(t)
}

func TestPreviewDefaultsToHTML(t *testing.T) {
	client := new(mockClient)
	client.On("LoadProfileOrDefault", mock.Anything).Return(settings.Default(), nil)
	client.On("Preview", mock.Anything, mock.Anything, formatHTML, defaultPreviewWidth).Return("<html>", nil)

	_, err := runCommand(t, NewPreviewCmd(client))

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestPreviewRejectsNarrowWidth(t *testing.T) {
	client := new(mockClient)

	_, err := runCommand(t, NewPreviewCmd(client), "--format", "ansi", "--width", "10")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--width")
	client.AssertNotCalled(t, "LoadProfileOrDefault", mock.Anything)
}

func TestPreviewWritesFormatFileIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	client := new(mockClient)
	client.On("LoadProfileOrDefault", mock.Anything).Return(settings.Default(), nil)
	client.On("Preview", mock.Anything, mock.Anything, formatJSON, defaultPreviewWidth).Return("{}\n", nil)

	_, err := runCommand(t, NewPreviewCmd(client), "--format", "json", "--out", dir)

	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "preview.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestClientPreviewFormats(t *testing.T) {
	s := settings.Default()

	jsonOut, err := coreClient.Preview(context.Background(), s, formatJSON, defaultPreviewWidth)
	require.NoError(t, err)
	var payload preview.Payload
	require.NoError(t, json.Unmarshal([]byte(jsonOut), &payload))
	assert.Equal(t, 14, payload.FontSize)

	htmlOut, err := coreClient.Preview(context.Background(), s, formatHTML, defaultPreviewWidth)
	require.NoError(t, err)
	assert.Contains(t, htmlOut, "window.updateTerminalConfig")

	ansiOut, err := coreClient.Preview(context.Background(), s, formatANSI, 60)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(ansi.Strip(ansiOut), "\n"), "\n")
	assert.Equal(t, 60, len([]rune(lines[0])))

	_, err = coreClient.Preview(context.Background(), s, "svg", defaultPreviewWidth)
	assert.ErrorContains(t, err, "unknown preview format")
}
