package driven

import "github.com/nekrasovka/libsearch/internal/core/domain"

// MarkupTextExtractor converts a marked-up fragment to the text a reader
// would see once it is rendered.
type MarkupTextExtractor interface {
	// Text returns the visible text of fragment with all markup removed
	// and character references decoded.
	Text(fragment string) (string, error)
}

// MarkupSanitizer removes unsafe markup from fragments received from
// an untrusted search service.
type MarkupSanitizer interface {
	// Sanitize returns fragment with disallowed elements and attributes removed.
	Sanitize(fragment string) string
}

// MarkupSegmenter splits a fragment into plain and highlighted runs so a
// terminal can render the highlights without interpreting markup.
type MarkupSegmenter interface {
	// Segments returns the visible text of fragment in document order.
	// Adjacent runs with the same highlight state are merged.
	Segments(fragment string) []domain.Segment
}
