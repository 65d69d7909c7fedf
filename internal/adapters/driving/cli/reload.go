package cli

import (
	"context"
	"sync"

	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
	"github.com/nekrasovka/libsearch/internal/logger"
)

// Ensure liveServices implements the interface.
var _ driving.LikeService = (*liveServices)(nil)

// liveServices rebuilds the services whenever the settings file changes.
// Sessions created after a reload use the new settings; sessions already
// running keep theirs. Likes remain latched across reloads.
type liveServices struct {
	mu      sync.RWMutex
	current *Services
	likes   []driving.LikeService
}

func newLiveServices(initial *Services) *liveServices {
	l := &liveServices{current: initial}
	if initial.Likes != nil {
		l.likes = append(l.likes, initial.Likes)
	}
	return l
}

// watch starts reloading on settings changes. A watch that cannot be set
// up is logged and the current services stay in use.
func (l *liveServices) watch(ctx context.Context) {
	if wiring.Watch == nil {
		return
	}
	svc, err := settingsService()
	if err != nil {
		return
	}
	if err := wiring.Watch(ctx, svc.Path(), l.reload); err != nil {
		logger.Warn("Settings will not be reloaded: %v", err)
	}
}

// reload rebuilds the services from the settings file. Invalid settings
// are logged and the current services kept.
func (l *liveServices) reload() {
	_, next, err := buildServices()
	if err != nil {
		logger.Error("Reloading settings: %v", err)
		return
	}

	l.mu.Lock()
	l.current = next
	if next.Likes != nil {
		l.likes = append(l.likes, next.Likes)
	}
	l.mu.Unlock()
	logger.Info("Settings reloaded")
}

// Sessions creates a session from the current services.
func (l *liveServices) Sessions() driving.SearchSession {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current.Sessions()
}

// Formatter returns the current snippet formatter.
func (l *liveServices) Formatter() driving.SnippetFormatter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current.Formatter
}

// Like registers a like unless any generation already has it.
func (l *liveServices) Like(ctx context.Context, id, query string) bool {
	if l.Liked(id) {
		return false
	}
	l.mu.RLock()
	likes := l.current.Likes
	l.mu.RUnlock()
	if likes == nil {
		return false
	}
	return likes.Like(ctx, id, query)
}

// Liked reports whether id was liked under any settings generation.
func (l *liveServices) Liked(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, likes := range l.likes {
		if likes.Liked(id) {
			return true
		}
	}
	return false
}

// Wait blocks until every generation's like calls have finished.
func (l *liveServices) Wait() {
	l.mu.RLock()
	likes := append([]driving.LikeService(nil), l.likes...)
	l.mu.RUnlock()
	for _, s := range likes {
		s.Wait()
	}
}
