package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidyhome/dashboard-api/internal/prefs"
)

func TestStore_LoadMissingFileUsesFallback(t *testing.T) {
	st := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"), "es")

	p, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "es", p.Locale)
}

func TestStore_UnsupportedFallback(t *testing.T) {
	st := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"), "fr")

	p, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, prefs.DefaultLocale, p.Locale)
}

func TestStore_SetLocaleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	st := prefs.NewStore(path, "en")

	p, err := st.SetLocale(" ES ")
	require.NoError(t, err)
	assert.Equal(t, "es", p.Locale)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"locale":"es"}`, string(data))

	reopened := prefs.NewStore(path, "en")
	p, err = reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "es", p.Locale)
}

func TestStore_SetLocaleRejectsUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	st := prefs.NewStore(path, "en")

	_, err := st.SetLocale("klingon")
	assert.ErrorIs(t, err, prefs.ErrUnsupportedLocale)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing is written for a rejected locale")
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := prefs.NewStore(path, "en").Load()
	assert.Error(t, err)
}
