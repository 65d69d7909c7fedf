package driving

import (
	"context"

	"github.com/nekrasovka/libsearch/internal/core/domain"
)

// Ticket identifies one search invocation. Only the ticket issued last
// may change session state when it completes.
type Ticket struct {
	// Seq increases with every Begin call.
	Seq uint64

	// Request is the request captured when the search began.
	Request domain.SearchRequest
}

// SearchSession holds the state of one interactive search session:
// the query form, the last result set, facet selection, likes and
// snippet expansion. Implementations are safe for concurrent use.
type SearchSession interface {
	// SetQuery replaces the query used by the next search.
	SetQuery(query string)

	// Query returns the current query.
	Query() string

	// SetYears replaces the year range used by the next search.
	// The range is clamped and the stored value returned.
	SetYears(years domain.YearRange) domain.YearRange

	// Years returns the current year range.
	Years() domain.YearRange

	// Begin marks the session as loading and captures the request.
	Begin() Ticket

	// Execute runs the captured request and applies its outcome.
	// The returned error is the search failure, if any, even when the
	// outcome was discarded because a newer search began.
	Execute(ctx context.Context, ticket Ticket) error

	// Search is Begin followed by Execute.
	Search(ctx context.Context) error

	// ToggleType flips a facet in the selection and reports whether it
	// is now selected.
	ToggleType(pathIndex string) bool

	// Like marks the visible result with the given key as liked.
	// It reports whether a like was newly registered.
	Like(ctx context.Context, key string) bool

	// ToggleSnippet flips the expanded state of one matched page of a
	// visible result. It reports whether the state changed.
	ToggleSnippet(key string, page int) bool

	// View returns a snapshot of everything needed to render the session.
	View() SessionView
}

// SessionView is an immutable snapshot of a search session.
type SessionView struct {
	Query   string
	Years   domain.YearRange
	Loading bool

	// Err is the human-readable failure of the last search, or empty.
	Err string

	// Total is nil until a search has succeeded.
	Total *int

	// CorrectedVariants are alternative spellings the service searched.
	CorrectedVariants []string

	// Facets is the facet universe in first-seen order.
	Facets []Facet

	// Results are the visible results after facet filtering.
	Results []ResultView
}

// Facet is one filterable path_index value.
type Facet struct {
	Name     string
	Selected bool
}

// ResultView is one rendered result.
type ResultView struct {
	// Key identifies the result for Like and ToggleSnippet.
	Key string

	Document domain.Document

	// Liked is true once the result has been liked in this session.
	Liked bool

	// Likeable is false for results without a document ID.
	Likeable bool

	Snippets []SnippetView
}

// SnippetView is the render state of one matched page.
type SnippetView struct {
	// Page is the page label ("?" when unknown).
	Page string

	// Markup is the fragment to render: the preview, or the full
	// fragment when expanded.
	Markup string

	// Truncated reports whether a toggle should be offered.
	Truncated bool

	Expanded bool

	// ToggleLabel describes what activating the toggle does.
	ToggleLabel string
}
