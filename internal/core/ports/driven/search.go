package driven

import (
	"context"

	"github.com/nekrasovka/libsearch/internal/core/domain"
)

// SearchGateway calls the remote search endpoint.
type SearchGateway interface {
	// Search runs one query. Any failure is reported as an error
	// wrapping domain.ErrSearchFailed.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}

// LikeGateway calls the remote register-like endpoint.
type LikeGateway interface {
	// RegisterLike sends one like. Failures wrap domain.ErrLikeFailed.
	RegisterLike(ctx context.Context, req domain.LikeRequest) error
}
