package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nekrasovka/libsearch/internal/logger"
)

// settleDelay lets editors finish writing before the file is re-read.
const settleDelay = 100 * time.Millisecond

// Watch calls onChange whenever the settings file is written, created,
// replaced or removed, until ctx is done. The containing directory is
// watched so that atomic saves (write temp, rename) are seen.
// It returns an error only when the watch cannot be set up.
func Watch(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating settings watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close() //nolint:errcheck
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("Watching settings file: %s", path)

	go func() {
		defer watcher.Close() //nolint:errcheck
		target := filepath.Clean(path)

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
					continue
				}
				logger.Debug("Settings file changed (%s)", event.Op)
				time.Sleep(settleDelay)
				onChange()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Settings watcher error: %v", err)
			}
		}
	}()

	return nil
}
