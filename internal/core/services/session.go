package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
	"github.com/nekrasovka/libsearch/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SearchSession = (*Session)(nil)

// errNoGateway is reported when a session has no search gateway.
var errNoGateway = errors.New("search gateway not configured")

// SessionOptions configures a new Session.
type SessionOptions struct {
	// Index is sent with every search.
	Index string

	// Years is the initial year range. Zero ends default to the bounds.
	Years domain.YearRange

	// Gateway performs searches. Required for Search and Execute.
	Gateway driven.SearchGateway

	// Likes tracks likes. A local-only tracker is used when nil.
	Likes *LikeTracker

	// Truncator builds snippet previews. A truncator without an
	// extractor is used when nil.
	Truncator *SnippetTruncator
}

// Session orchestrates one interactive search session.
//
// Each search is identified by a ticket. Only the most recently issued
// ticket may apply its outcome; responses to older tickets are dropped.
// On success the result set, facets, filtered view and snippet state are
// recomputed together. On failure the previous results are kept.
type Session struct {
	mu sync.Mutex

	index string
	query string
	years domain.YearRange

	loading   bool
	err       error
	results   []domain.Document
	total     *int
	corrected []string
	seq       uint64

	selection *Selection
	facets    []string
	visible   []int
	keys      []string
	snippets  map[string][]*Snippet

	gateway   driven.SearchGateway
	likes     *LikeTracker
	truncator *SnippetTruncator
}

// NewSession creates an idle session with no results.
func NewSession(opts SessionOptions) *Session {
	if opts.Index == "" {
		opts.Index = domain.DefaultIndex
	}
	if opts.Likes == nil {
		opts.Likes = NewLikeTracker(nil)
	}
	if opts.Truncator == nil {
		opts.Truncator = NewSnippetTruncator(nil, nil)
	}

	return &Session{
		index:     opts.Index,
		years:     opts.Years.Clamp(),
		results:   []domain.Document{},
		selection: NewSelection(),
		facets:    []string{},
		visible:   []int{},
		keys:      []string{},
		snippets:  make(map[string][]*Snippet),
		gateway:   opts.Gateway,
		likes:     opts.Likes,
		truncator: opts.Truncator,
	}
}

// SetQuery replaces the query used by the next search.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// Query returns the current query.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SetYears replaces the year range used by the next search.
func (s *Session) SetYears(years domain.YearRange) domain.YearRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.years = years.Clamp()
	return s.years
}

// Years returns the current year range.
func (s *Session) Years() domain.YearRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.years
}

// Begin starts a search: loading is set, the error cleared and the
// request captured under a new ticket.
func (s *Session) Begin() driving.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.loading = true
	s.err = nil

	return driving.Ticket{
		Seq: s.seq,
		Request: domain.SearchRequest{
			Index: s.index,
			Query: s.query,
			Years: s.years,
		},
	}
}

// Execute calls the gateway for ticket and applies the outcome.
func (s *Session) Execute(ctx context.Context, ticket driving.Ticket) error {
	logger.Section("Search")
	logger.Debug("Ticket %d: q=%q years=%d-%d", ticket.Seq,
		ticket.Request.Query, ticket.Request.Years.Start, ticket.Request.Years.End)

	if s.gateway == nil {
		s.Complete(ticket, nil, errNoGateway)
		return errNoGateway
	}

	resp, err := s.gateway.Search(ctx, ticket.Request)
	s.Complete(ticket, resp, err)
	return err
}

// Search runs a search with the current query and year range.
func (s *Session) Search(ctx context.Context) error {
	return s.Execute(ctx, s.Begin())
}

// Complete applies the outcome of ticket. It reports false, changing
// nothing, when a newer search has begun since ticket was issued.
func (s *Session) Complete(ticket driving.Ticket, resp *domain.SearchResponse, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.Seq != s.seq {
		logger.Debug("Dropping response for ticket %d, latest is %d", ticket.Seq, s.seq)
		return false
	}
	s.loading = false

	if err != nil {
		logger.Debug("Search failed: %v", err)
		s.err = err
		return true
	}

	if resp == nil {
		resp = &domain.SearchResponse{}
	}
	results := resp.Results
	if results == nil {
		results = []domain.Document{}
	}
	total := resp.Total

	s.results = results
	s.total = &total
	s.corrected = resp.CorrectedVariants
	s.recompute()

	logger.Debug("Search complete: %d results, total=%d, facets=%v", len(results), total, s.facets)
	return true
}

// ToggleType flips a facet in the selection.
func (s *Session) ToggleType(pathIndex string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.selection.Toggle(pathIndex)
	s.refilter()
	return selected
}

// SelectedTypes returns the selected facets in selection order.
func (s *Session) SelectedTypes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Values()
}

// Like likes the visible result with key, using the current query.
func (s *Session) Like(ctx context.Context, key string) bool {
	s.mu.Lock()
	doc, ok := s.visibleByKey(key)
	query := s.query
	s.mu.Unlock()

	if !ok {
		return false
	}
	return s.likes.Like(ctx, doc.ID, query)
}

// ToggleSnippet flips the expanded state of one matched page.
func (s *Session) ToggleSnippet(key string, page int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	snippets, ok := s.snippets[key]
	if !ok || page < 0 || page >= len(snippets) {
		return false
	}
	return snippets[page].Toggle()
}

// Loading reports whether the latest search is still running.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the failure of the latest search, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Results returns a copy of the full, unfiltered result set.
func (s *Session) Results() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Document, len(s.results))
	copy(out, s.results)
	return out
}

// Total returns the reported total, nil before the first success.
func (s *Session) Total() *int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Facets returns a copy of the facet universe of the current results.
func (s *Session) Facets() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.facets))
	copy(out, s.facets)
	return out
}

// View returns a render snapshot.
func (s *Session) View() driving.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := driving.SessionView{
		Query:             s.query,
		Years:             s.years,
		Loading:           s.loading,
		Err:               errorMessage(s.err),
		CorrectedVariants: s.corrected,
		Facets:            make([]driving.Facet, 0, len(s.facets)),
		Results:           make([]driving.ResultView, 0, len(s.visible)),
	}
	if s.total != nil {
		total := *s.total
		view.Total = &total
	}

	for _, f := range s.facets {
		view.Facets = append(view.Facets, driving.Facet{Name: f, Selected: s.selection.Has(f)})
	}

	for _, i := range s.visible {
		doc := s.results[i]
		key := s.keys[i]
		rv := driving.ResultView{
			Key:      key,
			Document: doc,
			Liked:    doc.ID != "" && s.likes.Liked(doc.ID),
			Likeable: doc.ID != "",
			Snippets: make([]driving.SnippetView, 0, len(doc.MatchedPages)),
		}
		for j, sn := range s.snippets[key] {
			rv.Snippets = append(rv.Snippets, driving.SnippetView{
				Page:        doc.MatchedPages[j].PageLabel(),
				Markup:      sn.Markup(),
				Truncated:   sn.Truncated(),
				Expanded:    sn.Expanded(),
				ToggleLabel: sn.ToggleLabel(),
			})
		}
		view.Results = append(view.Results, rv)
	}

	return view
}

// recompute derives facets and the filtered view from the results
// (caller must hold lock).
func (s *Session) recompute() {
	s.keys = resultKeys(s.results)
	s.facets = DeriveFacets(s.results)
	s.refilter()
}

// refilter recomputes the visible set and reconciles snippet state
// (caller must hold lock). Snippet state survives only for results that
// stay visible under the same key.
func (s *Session) refilter() {
	s.visible = MatchingPositions(s.results, s.selection)

	next := make(map[string][]*Snippet, len(s.visible))
	for _, i := range s.visible {
		doc := &s.results[i]
		key := s.keys[i]
		prev := s.snippets[key]

		snippets := make([]*Snippet, len(doc.MatchedPages))
		for j, page := range doc.MatchedPages {
			if j < len(prev) && prev[j].source == page.Snippet {
				snippets[j] = prev[j]
				continue
			}
			snippets[j] = s.truncator.NewSnippet(page.Snippet)
			if j < len(prev) && prev[j].expanded && snippets[j].Truncated() {
				snippets[j].expanded = true
			}
		}
		next[key] = snippets
	}
	s.snippets = next
}

// visibleByKey finds a visible result (caller must hold lock).
func (s *Session) visibleByKey(key string) (domain.Document, bool) {
	for _, i := range s.visible {
		if s.keys[i] == key {
			return s.results[i], true
		}
	}
	return domain.Document{}, false
}

// resultKeys assigns every result a key unique within results.
// A result's ID is its key unless an earlier result has the same ID;
// repeats and results without an ID are keyed by position.
func resultKeys(results []domain.Document) []string {
	keys := make([]string, len(results))
	seen := make(map[string]bool, len(results))
	for i := range results {
		key := results[i].Key(i)
		for seen[key] {
			key = fmt.Sprintf("%s#%d", key, i)
		}
		seen[key] = true
		keys[i] = key
	}
	return keys
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return domain.ErrSearchFailed.Error()
}
