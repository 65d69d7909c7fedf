package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekrasovka/libsearch/internal/core/domain"
)

func newCatalogue(t *testing.T, likes *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "books-2024", r.URL.Query().Get("index"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"total": map[string]any{"value": 1},
			"results": []map[string]any{{
				"id":            "doc-1",
				"title":         "Облако в штанах",
				"path_index":    "books",
				"matched_pages": []map[string]any{{"page": 2, "snippet": "<em>облако</em> в штанах"}},
			}},
		})
	})
	mux.HandleFunc("/like", func(w http.ResponseWriter, _ *http.Request) {
		likes.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenSettings_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	svc, err := OpenSettings(path, "http://127.0.0.1:9999")
	require.NoError(t, err)
	assert.Equal(t, path, svc.Path())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", settings.Server.BaseURL)
}

func TestBuild_SessionAndLikes(t *testing.T) {
	var likes atomic.Int32
	srv := newCatalogue(t, &likes)

	settings := domain.DefaultAppSettings()
	settings.Server.BaseURL = srv.URL
	settings.Server.Index = "books-2024"
	settings.Display.Sanitize = true

	c := Build(settings)
	session := c.NewSession()
	session.SetQuery("облако")
	require.NoError(t, session.Search(context.Background()))

	view := session.View()
	require.Len(t, view.Results, 1)
	assert.Equal(t, "doc-1", view.Results[0].Key)
	assert.Equal(t, "2", view.Results[0].Snippets[0].Page)

	assert.True(t, session.Like(context.Background(), "doc-1"))
	c.Likes().Wait()
	assert.Equal(t, int32(1), likes.Load())
	assert.True(t, c.Likes().Liked("doc-1"))
}

func TestBuild_YearControlFeedsSession(t *testing.T) {
	c := Build(domain.DefaultAppSettings())
	session := c.NewSession()
	years := c.YearControl(session)

	years.SetStart(1917)
	years.SetEnd(1930)

	assert.Equal(t, domain.YearRange{Start: 1917, End: 1930}, session.Years())
}

func TestBuild_Formatter(t *testing.T) {
	c := Build(domain.DefaultAppSettings())

	segs := c.Formatter().Segments("a <em>b</em>")

	require.Len(t, segs, 2)
	assert.True(t, segs[1].Highlight)
	assert.Equal(t, "a b", c.Formatter().PlainText("a <em>b</em>"))
	assert.NotNil(t, c.Actions())
}
