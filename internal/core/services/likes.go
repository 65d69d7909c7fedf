package services

import (
	"context"
	"sync"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
	"github.com/nekrasovka/libsearch/internal/logger"
)

// Ensure LikeTracker implements the interface.
var _ driving.LikeService = (*LikeTracker)(nil)

// LikeTracker records likes optimistically.
// A like is a one-way latch: it is set before the remote call is made and
// never cleared, whatever the call's outcome. Duplicate or lost likes are
// the backend's concern.
type LikeTracker struct {
	mu      sync.Mutex
	liked   map[string]bool
	gateway driven.LikeGateway
	wg      sync.WaitGroup
}

// NewLikeTracker creates a tracker. A nil gateway keeps likes local.
func NewLikeTracker(gateway driven.LikeGateway) *LikeTracker {
	return &LikeTracker{
		liked:   make(map[string]bool),
		gateway: gateway,
	}
}

// Like marks id as liked and sends the like in the background.
// Repeated calls for the same id are no-ops. An empty id is ignored.
// The background call is detached from ctx cancellation.
func (l *LikeTracker) Like(ctx context.Context, id, query string) bool {
	if id == "" {
		return false
	}

	l.mu.Lock()
	if l.liked[id] {
		l.mu.Unlock()
		return false
	}
	l.liked[id] = true
	l.mu.Unlock()

	if l.gateway == nil {
		logger.Warn("No like gateway configured, %s liked locally only", id)
		return true
	}

	req := domain.LikeRequest{DocumentID: id, Query: query}
	callCtx := context.WithoutCancel(ctx)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if err := l.gateway.RegisterLike(callCtx, req); err != nil {
			logger.Error("like for %s (query %q) not registered: %v", id, query, err)
			return
		}
		logger.Info("Like sent for %s", id)
	}()

	return true
}

// Liked reports whether id has been liked.
func (l *LikeTracker) Liked(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.liked[id]
}

// Count returns the number of liked ids.
func (l *LikeTracker) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.liked)
}

// Wait blocks until every like call started so far has returned.
func (l *LikeTracker) Wait() {
	l.wg.Wait()
}
