package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nekrasovka/libsearch/internal/app"
	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// catalogue is a fake search service.
type catalogue struct {
	mu       sync.Mutex
	status   int
	response map[string]any
	queries  []map[string]string
	likes    []map[string]string
}

func (c *catalogue) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.queries = append(c.queries, map[string]string{
			"q":          r.URL.Query().Get("q"),
			"index":      r.URL.Query().Get("index"),
			"start_year": r.URL.Query().Get("start_year"),
			"end_year":   r.URL.Query().Get("end_year"),
		})
		status, resp := c.status, c.response
		c.mu.Unlock()

		if status != 0 {
			http.Error(w, "backend down", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	})
	mux.HandleFunc("/like", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
		c.mu.Lock()
		c.likes = append(c.likes, body)
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func sampleResponse() map[string]any {
	return map[string]any{
		"total":              map[string]any{"value": 12},
		"original_query":     "маяковский",
		"corrected_variants": []string{"маяковского"},
		"results": []map[string]any{
			{
				"id":          "doc-1",
				"title":       "Облако в штанах",
				"book_name":   "Собрание сочинений",
				"book_year":   1915,
				"score":       "0.873",
				"lang":        "ru",
				"filter_name": "Поэзия",
				"matched_by":  "both",
				"path_index":  "books",
				"pdf_url":     "https://library.example/doc-1.pdf",
				"matched_pages": []map[string]any{
					{"page": 7, "snippet": "Вашу мысль, <em>мечтающую</em> на размягченном мозгу"},
				},
			},
			{
				"path_index": "newspapers",
				"matched_pages": []map[string]any{
					{"snippet": "газета"},
				},
			},
		},
	}
}

// setupTestCLI wires the commands to a fake catalogue and a settings
// file in a temporary directory.
func setupTestCLI(t *testing.T, cat *catalogue) (string, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(cat.handler())
	cfg := filepath.Join(t.TempDir(), "config.toml")

	prev := wiring
	SetWiring(Wiring{
		Settings: func(path, url string) (driving.SettingsService, error) {
			if path == "" {
				path = cfg
			}
			if url == "" {
				url = srv.URL
			}
			return app.OpenSettings(path, url)
		},
		Build: func(settings domain.AppSettings) (*Services, error) {
			c := app.Build(settings)
			return &Services{
				Sessions:  c.NewSession,
				Likes:     c.Likes(),
				Years:     c.YearControl,
				Formatter: c.Formatter(),
				Actions:   c.Actions(),
			}, nil
		},
		Watch: app.WatchSettings,
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	t.Cleanup(func() {
		srv.Close()
		wiring = prev
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	})
	return cfg, buf
}

// resetFlags restores every flag in the tree to its default.
// Flag values outlive a single Execute call.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
