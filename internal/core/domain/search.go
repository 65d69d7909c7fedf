package domain

// Publication year bounds accepted by the search form.
const (
	// MinYear is the earliest selectable publication year.
	MinYear = 1500

	// MaxYear is the latest selectable publication year.
	MaxYear = 2025
)

// DefaultIndex is the index searched when none is configured.
const DefaultIndex = "my-books-index"

// YearRange is a closed publication-year interval.
type YearRange struct {
	Start int
	End   int
}

// FullYearRange returns the widest allowed range.
func FullYearRange() YearRange {
	return YearRange{Start: MinYear, End: MaxYear}
}

// Clamp returns r with both ends inside [MinYear, MaxYear] and Start <= End.
// Zero ends are treated as absent and replaced by the matching bound.
// When the ends cross, Start is lowered to End, the same rule the start
// handle of the year selector follows.
func (r YearRange) Clamp() YearRange {
	if r.Start == 0 {
		r.Start = MinYear
	}
	if r.End == 0 {
		r.End = MaxYear
	}
	r.End = clampInt(r.End, MinYear, MaxYear)
	r.Start = clampInt(r.Start, MinYear, r.End)
	return r
}

// Valid reports whether r satisfies MinYear <= Start <= End <= MaxYear.
func (r YearRange) Valid() bool {
	return MinYear <= r.Start && r.Start <= r.End && r.End <= MaxYear
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SearchRequest is one call to the search service.
type SearchRequest struct {
	// Index is the index identifier.
	Index string

	// Query is forwarded verbatim, including the empty string.
	Query string

	// Years restricts results by publication year.
	Years YearRange
}

// SearchResponse is the decoded answer of the search service.
type SearchResponse struct {
	// Results are in ranking order. Never nil after decoding.
	Results []Document

	// Total is the reported number of matches, 0 when absent.
	Total int

	// OriginalQuery echoes the query as received by the service.
	OriginalQuery string

	// CorrectedVariants are the spellings the service also searched for.
	CorrectedVariants []string
}

// LikeRequest registers a like for a document.
type LikeRequest struct {
	DocumentID string
	Query      string
}
