package services

import (
	"context"
	"errors"
	"html"
	"strings"
	"sync"

	"github.com/nekrasovka/libsearch/internal/core/domain"
)

// tagStripper is a minimal MarkupTextExtractor for tests.
type tagStripper struct {
	err error
}

func (t *tagStripper) Text(fragment string) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	var b strings.Builder
	inTag := false
	for _, r := range fragment {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(b.String()), nil
}

// prefixSanitizer marks fragments so tests can see it ran.
type prefixSanitizer struct{}

func (prefixSanitizer) Sanitize(fragment string) string {
	return "<!--clean-->" + fragment
}

// MockSearchGateway implements driven.SearchGateway for testing.
type MockSearchGateway struct {
	mu       sync.Mutex
	calls    []domain.SearchRequest
	SearchFn func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}

func (m *MockSearchGateway) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	if m.SearchFn != nil {
		return m.SearchFn(ctx, req)
	}
	return &domain.SearchResponse{}, nil
}

func (m *MockSearchGateway) Calls() []domain.SearchRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SearchRequest(nil), m.calls...)
}

// MockLikeGateway implements driven.LikeGateway for testing.
type MockLikeGateway struct {
	mu      sync.Mutex
	calls   []domain.LikeRequest
	Err     error
	Block   chan struct{}
	started chan struct{}
}

func (m *MockLikeGateway) RegisterLike(_ context.Context, req domain.LikeRequest) error {
	if m.started != nil {
		m.started <- struct{}{}
	}
	if m.Block != nil {
		<-m.Block
	}
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	return m.Err
}

func (m *MockLikeGateway) Calls() []domain.LikeRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.LikeRequest(nil), m.calls...)
}

var errBoom = errors.New("connection refused")

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// MockSettingsStore implements driven.SettingsStore for testing.
type MockSettingsStore struct {
	settings *domain.AppSettings
	saved    []domain.AppSettings
	loadErr  error
}

func (m *MockSettingsStore) Load() (domain.AppSettings, error) {
	if m.loadErr != nil {
		return domain.AppSettings{}, m.loadErr
	}
	if m.settings == nil {
		return domain.DefaultAppSettings(), nil
	}
	return *m.settings, nil
}

func (m *MockSettingsStore) Save(settings domain.AppSettings) error {
	m.saved = append(m.saved, settings)
	m.settings = &settings
	return nil
}

func (m *MockSettingsStore) Path() string { return "/tmp/libsearch/config.toml" }

func (m *MockSettingsStore) Exists() bool { return m.settings != nil }
