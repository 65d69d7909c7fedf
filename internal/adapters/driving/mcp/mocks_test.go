package mcp

import (
	"context"
	"sync"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
	"github.com/nekrasovka/libsearch/internal/core/services"
)

// stubGateway implements driven.SearchGateway and driven.LikeGateway.
type stubGateway struct {
	mu    sync.Mutex
	resp  *domain.SearchResponse
	err   error
	reqs  []domain.SearchRequest
	likes []domain.LikeRequest
}

func (g *stubGateway) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reqs = append(g.reqs, req)
	return g.resp, g.err
}

func (g *stubGateway) RegisterLike(_ context.Context, req domain.LikeRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.likes = append(g.likes, req)
	return nil
}

// stubFormatter strips a fixed highlight tag.
type stubFormatter struct{}

func (stubFormatter) Segments(markup string) []domain.Segment {
	return []domain.Segment{{Text: markup}}
}

func (stubFormatter) PlainText(markup string) string {
	return "plain:" + markup
}

func newTestPorts(gw *stubGateway) (*Ports, *services.LikeTracker) {
	likes := services.NewLikeTracker(gw)
	return &Ports{
		Sessions: func() driving.SearchSession {
			return services.NewSession(services.SessionOptions{Gateway: gw, Likes: likes})
		},
		Likes:     likes,
		Formatter: stubFormatter{},
	}, likes
}

func intPtr(v int) *int { return &v }
