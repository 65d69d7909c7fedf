package driving

import (
	"context"

	"github.com/nekrasovka/libsearch/internal/core/domain"
)

// ResultActionService provides actions on search results for external actors.
// This is used by the TUI and CLI adapters.
type ResultActionService interface {
	// CopyToClipboard copies the visible text of a snippet to the system clipboard.
	CopyToClipboard(ctx context.Context, fragment string) error

	// OpenDocument opens the document's PDF, page or cover in the default application.
	OpenDocument(ctx context.Context, doc *domain.Document) error
}

// SnippetFormatter turns snippet markup into runs a terminal can style.
type SnippetFormatter interface {
	// Segments splits markup into plain and highlighted runs.
	Segments(markup string) []domain.Segment

	// PlainText returns the visible text of markup.
	PlainText(markup string) string
}
