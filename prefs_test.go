package uidebug_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/uidebug"
)

func TestPrefs_Defaults(t *testing.T) {
	p := uidebug.NewPrefs(nil)
	assert.False(t, p.ElementDebug())
	assert.False(t, p.CellDebug())
	assert.False(t, p.ForceElementDebug())
	assert.Equal(t, uidebug.DefaultBoundsOpacity, p.BoundsOpacity())
	assert.Equal(t, uidebug.DefaultBoundsThickness, p.BoundsThickness())
}

func TestPrefs_Clamp(t *testing.T) {
	p := uidebug.NewPrefs(nil)
	p.SetBoundsOpacity(5)
	assert.Equal(t, uidebug.MaxBoundsOpacity, p.BoundsOpacity())
	p.SetBoundsOpacity(0)
	assert.Equal(t, uidebug.MinBoundsOpacity, p.BoundsOpacity())
	p.SetBoundsThickness(-1)
	assert.Equal(t, uidebug.MinBoundsThickness, p.BoundsThickness())

	// Values written behind the typed accessors are clamped on read.
	p.Settings().SetFloat(uidebug.KeyBoundsThickness, 100)
	assert.Equal(t, uidebug.MaxBoundsThickness, p.BoundsThickness())
}

func TestViperSettings_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "uidebug.toml")

	s, err := uidebug.LoadSettings(path)
	require.NoError(t, err, "missing file is not an error")
	assert.Equal(t, path, s.Path())

	p := uidebug.NewPrefs(s)
	p.SetElementDebug(true)
	p.SetBoundsThickness(4)
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "uidebugger")

	loaded, err := uidebug.LoadSettings(path)
	require.NoError(t, err)
	q := uidebug.NewPrefs(loaded)
	assert.True(t, q.ElementDebug())
	assert.False(t, q.CellDebug())
	assert.Equal(t, float32(4), q.BoundsThickness())
}

func TestViperSettings_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is = = not toml"), 0o644))
	_, err := uidebug.LoadSettings(path)
	assert.Error(t, err)
}

func TestViperSettings_InMemorySaveIsNoop(t *testing.T) {
	assert.NoError(t, uidebug.NewViperSettings().Save())
}
