package services

import (
	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// Ensure SnippetFormatter implements the interface.
var _ driving.SnippetFormatter = (*SnippetFormatter)(nil)

// SnippetFormatter prepares snippet markup for terminal output.
// Without a segmenter or extractor the markup is passed through as plain text.
type SnippetFormatter struct {
	segmenter driven.MarkupSegmenter
	extractor driven.MarkupTextExtractor
}

// NewSnippetFormatter creates a formatter.
func NewSnippetFormatter(segmenter driven.MarkupSegmenter, extractor driven.MarkupTextExtractor) *SnippetFormatter {
	return &SnippetFormatter{segmenter: segmenter, extractor: extractor}
}

// Segments splits markup into plain and highlighted runs.
func (f *SnippetFormatter) Segments(markup string) []domain.Segment {
	if markup == "" {
		return nil
	}
	if f.segmenter == nil {
		return []domain.Segment{{Text: markup}}
	}
	return f.segmenter.Segments(markup)
}

// PlainText returns the visible text of markup.
func (f *SnippetFormatter) PlainText(markup string) string {
	if f.extractor == nil {
		return markup
	}
	text, err := f.extractor.Text(markup)
	if err != nil {
		return markup
	}
	return text
}
