package session

import (
	"context"
	"errors"
	"testing"

	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	"github.com/cristianoliveira/wezterm-configurator/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	_, ok, err := store.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	revision, err := store.Revision(ctx)
	require.NoError(t, err)
	assert.Zero(t, revision)

	assert.True(t, errors.Is(store.PutOutput(ctx, OutputLua, "x"), ErrNoSnapshot))

	_, ok, err = store.CachedOutput(ctx, OutputLua)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateStoresSnapshotAndDetectsChanges(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	s := settings.Default()
	s.Theme = theme.Custom
	s.CustomColors = &theme.Palette{Background: "#000000", Foreground: "#ffffff", Accent: "#ff0000"}
	s.HyperlinkRules = nil
	s.WindowPosition = &settings.Position{X: 3, Y: 4}

	changed, err := store.Update(ctx, s)
	require.NoError(t, err)
	assert.True(t, changed)

	current, ok, err := store.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, settings.HasChanged(current, s))
	assert.Empty(t, current.HyperlinkRules)

	changed, err = store.Update(ctx, s.Clone())
	require.NoError(t, err)
	assert.False(t, changed, "an equal snapshot is not a change")

	next := s.Clone()
	next.FontSize = 20
	changed, err = store.Update(ctx, next)
	require.NoError(t, err)
	assert.True(t, changed)

	revision, err := store.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), revision)
}

func TestUpdateIgnoresSetOrder(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	a := settings.Default()
	a.HyperlinkRules = []settings.HyperlinkRule{settings.RuleURLDetection, settings.RuleEmailAddresses}
	_, err := store.Update(ctx, a)
	require.NoError(t, err)

	b := a.Clone()
	b.HyperlinkRules = []settings.HyperlinkRule{settings.RuleEmailAddresses, settings.RuleURLDetection}
	changed, err := store.Update(ctx, b)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestOutputsAreInvalidatedByChanges(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	s := settings.Default()
	_, err := store.Update(ctx, s)
	require.NoError(t, err)

	require.NoError(t, store.PutOutput(ctx, OutputLua, "return config"))
	require.NoError(t, store.PutOutput(ctx, OutputHTML, "<div></div>"))

	text, ok, err := store.CachedOutput(ctx, OutputLua)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "return config", text)

	_, err = store.Update(ctx, s.Clone())
	require.NoError(t, err)
	_, ok, err = store.CachedOutput(ctx, OutputLua)
	require.NoError(t, err)
	assert.True(t, ok, "unchanged settings keep cached outputs")

	s.Opacity = 0.8
	_, err = store.Update(ctx, s)
	require.NoError(t, err)
	for _, kind := range []OutputKind{OutputLua, OutputHTML} {
		_, ok, err = store.CachedOutput(ctx, kind)
		require.NoError(t, err)
		assert.False(t, ok, kind)
	}
}

func TestOutputRendersOnce(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	render := func(settings.Settings) (string, error) {
		t.Fatal("render called without snapshot")
		return "", nil
	}
	_, err := store.Output(ctx, OutputANSI, render)
	assert.True(t, errors.Is(err, ErrNoSnapshot))

	_, err = store.Update(ctx, settings.Default())
	require.NoError(t, err)

	calls := 0
	counting := func(s settings.Settings) (string, error) {
		calls++
		return s.Font, nil
	}
	for i := 0; i < 3; i++ {
		text, err := store.Output(ctx, OutputANSI, counting)
		require.NoError(t, err)
		assert.Equal(t, "JetBrains Mono", text)
	}
	assert.Equal(t, 1, calls)

	failing := func(settings.Settings) (string, error) { return "", errors.New("boom") }
	_, err = store.Output(ctx, OutputLua, failing)
	assert.EqualError(t, err, "boom")
	_, ok, err := store.CachedOutput(ctx, OutputLua)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidOutputKind(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	_, _, err := store.CachedOutput(ctx, "pdf")
	assert.True(t, errors.Is(err, ErrInvalidOutputKind))
	assert.True(t, errors.Is(store.PutOutput(ctx, "pdf", ""), ErrInvalidOutputKind))
}

func TestStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := openStore(t)
	b := openStore(t)

	_, err := a.Update(ctx, settings.Default())
	require.NoError(t, err)

	_, ok, err := b.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCloseNil(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
}
