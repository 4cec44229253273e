package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	m, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("pixelmenu_test_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	return m
}

func TestSettingsStore_NilManager(t *testing.T) {
	store := NewSettingsStore(nil, 7)

	s, err := store.LoadOrCreate()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	assert.NoError(t, store.Save(s))
}

func TestSettingsStore_CreatesDefaults(t *testing.T) {
	m := newTestManager(t)
	store := NewSettingsStore(m, 7)

	s, err := store.LoadOrCreate()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.True(t, m.ObjectPropExists(settingsObject, settingsProperty))
}

func TestSettingsStore_SaveAndLoad(t *testing.T) {
	m := newTestManager(t)
	store := NewSettingsStore(m, 7)

	s := DefaultSettings()
	s.ResolutionScale = 5
	s.Keys.Up = Key(ebiten.KeyW)
	require.NoError(t, store.Save(s))

	loaded, err := store.LoadOrCreate()
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.ResolutionScale)
	assert.Equal(t, ebiten.KeyW, loaded.Keys.Up.Ebiten())
	assert.Equal(t, ebiten.KeyArrowDown, loaded.Keys.Down.Ebiten())
}

func TestSettingsStore_CorruptDataFallsBack(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.SaveObjectProp(settingsObject, settingsProperty, []byte("keys: [")))
	store := NewSettingsStore(m, 7)

	s, err := store.LoadOrCreate()
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsStore_NormalizesResolution(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.SaveObjectProp(settingsObject, settingsProperty, []byte("resolutionScale: 42\n")))
	store := NewSettingsStore(m, 7)

	s, err := store.LoadOrCreate()
	require.NoError(t, err)
	assert.Equal(t, DefaultResolutionScale, s.ResolutionScale)
	assert.Equal(t, ebiten.KeyEnter, s.Keys.Enter.Ebiten())
}
