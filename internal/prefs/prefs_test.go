package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/view"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "status", p.ViewMode)
	assert.Equal(t, view.Filter{}, p.Filter)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	want := &Prefs{
		ViewMode: "date",
		Filter:   view.Filter{Search: "groceries", Priority: "high", Category: "cat-1"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadDefaultsOnMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, prefsDir, prefsFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "status", p.ViewMode)
}
