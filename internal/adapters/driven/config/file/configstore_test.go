package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekrasovka/libsearch/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))
}

func TestNewSettingsStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewSettingsStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.False(t, store.Exists())
}

func TestNewSettingsStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewSettingsStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".libsearch", "config.toml"), store.Path())
}

func TestSettingsStore_LoadMissingFileGivesDefaults(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), settings)
}

func TestSettingsStore_LoadOverlaysFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[server]
base_url = "https://search.example.org"
index = "newspapers"
timeout = "5s"
like_rate = 2.5

[search]
start_year = 1917
end_year = 1930

[display]
sanitize = true

[log]
file = "/tmp/libsearch.log"
`)
	store, err := NewSettingsStore(tmpDir)
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, "https://search.example.org", settings.Server.BaseURL)
	assert.Equal(t, "newspapers", settings.Server.Index)
	assert.Equal(t, 5*time.Second, settings.Server.Timeout)
	assert.InDelta(t, 2.5, settings.Server.LikeRate, 0.0001)
	assert.Equal(t, domain.YearRange{Start: 1917, End: 1930}, settings.Years)
	assert.True(t, settings.Display.Sanitize)
	assert.Equal(t, "/tmp/libsearch.log", settings.Log.File)
}

func TestSettingsStore_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[server]
timeout = 10
like_rate = 1
`)
	store, err := NewSettingsStore(tmpDir)
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8076", settings.Server.BaseURL)
	assert.Equal(t, domain.DefaultIndex, settings.Server.Index)
	assert.Equal(t, 10*time.Second, settings.Server.Timeout)
	assert.InDelta(t, 1.0, settings.Server.LikeRate, 0.0001)
	assert.Equal(t, domain.FullYearRange(), settings.Years)
}

func TestSettingsStore_YearsClamped(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[search]
start_year = 1200
end_year = 3000
`)
	store, err := NewSettingsStore(tmpDir)
	require.NoError(t, err)

	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.FullYearRange(), settings.Years)
}

func TestSettingsStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "[server\nbase_url = ")
	store, err := NewSettingsStore(tmpDir)
	require.NoError(t, err)

	_, err = store.Load()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsStore_InvalidTimeout(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
[server]
timeout = "soon"
`)
	store, err := NewSettingsStore(tmpDir)
	require.NoError(t, err)

	_, err = store.Load()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), KeyTimeout)
}

func TestSettingsStore_SaveAndReload(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested")
	store, err := NewSettingsStore(tmpDir)
	require.NoError(t, err)

	want := domain.DefaultAppSettings()
	want.Server.BaseURL = "https://books.example.org"
	want.Server.Timeout = 90 * time.Second
	want.Server.LikeRate = 4
	want.Years = domain.YearRange{Start: 1800, End: 1900}
	want.Display.Sanitize = true
	want.Log.File = "/var/log/libsearch.log"

	require.NoError(t, store.Save(want))
	assert.True(t, store.Exists())

	reloaded, err := NewSettingsStore(tmpDir)
	require.NoError(t, err)
	got, err := reloaded.Load()

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsStore_SavePermissions(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(domain.DefaultAppSettings()))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNewSettingsStoreAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nindex = \"maps\"\n"), 0600))

	store := NewSettingsStoreAt(path)
	settings, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
	assert.Equal(t, "maps", settings.Server.Index)
}

func TestFlattenMap(t *testing.T) {
	got := flattenMap(map[string]any{
		"a": map[string]any{"b": int64(1), "c": map[string]any{"d": "x"}},
		"e": true,
	}, "")

	assert.Equal(t, map[string]any{"a.b": int64(1), "a.c.d": "x", "e": true}, got)
}
