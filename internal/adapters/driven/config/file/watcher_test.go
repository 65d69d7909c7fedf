package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	require.NoError(t, Watch(ctx, path, func() { changed <- struct{}{} }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(path, []byte("[server]\n"), 0600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.toml")

	err := Watch(context.Background(), path, func() {})

	assert.Error(t, err)
}
