package services

import (
	"html"
	"unicode/utf8"

	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
)

// SnippetPreviewLength is the number of characters of visible text kept
// in a collapsed snippet.
const SnippetPreviewLength = 300

const ellipsis = "…"

// Toggle labels for truncated snippets.
const (
	LabelExpand   = "Show full"
	LabelCollapse = "Hide"
)

// Preview is the collapsed form of a snippet.
type Preview struct {
	// Markup is the original fragment when it is short enough, otherwise
	// the first SnippetPreviewLength characters of its text plus an ellipsis.
	Markup string

	// Truncated is true when Markup is shortened.
	Truncated bool
}

// SnippetTruncator builds bounded previews of marked-up snippets.
type SnippetTruncator struct {
	extractor driven.MarkupTextExtractor
	sanitizer driven.MarkupSanitizer
}

// NewSnippetTruncator creates a truncator. The sanitizer is optional.
func NewSnippetTruncator(extractor driven.MarkupTextExtractor, sanitizer driven.MarkupSanitizer) *SnippetTruncator {
	return &SnippetTruncator{
		extractor: extractor,
		sanitizer: sanitizer,
	}
}

// Truncate computes the preview of fragment.
// The shortened preview is plain text: the fragment's inner structure
// is not carried over.
func (t *SnippetTruncator) Truncate(fragment string) Preview {
	text := t.text(fragment)
	if utf8.RuneCountInString(text) <= SnippetPreviewLength {
		return Preview{Markup: fragment}
	}

	short := string([]rune(text)[:SnippetPreviewLength]) + ellipsis
	return Preview{
		Markup:    "<span>" + html.EscapeString(short) + "</span>",
		Truncated: true,
	}
}

// NewSnippet creates the collapsed display state for fragment.
func (t *SnippetTruncator) NewSnippet(fragment string) *Snippet {
	source := fragment
	if t.sanitizer != nil {
		fragment = t.sanitizer.Sanitize(fragment)
	}
	return &Snippet{
		source:   source,
		fragment: fragment,
		preview:  t.Truncate(fragment),
	}
}

// text extracts the visible text, falling back to the raw fragment.
func (t *SnippetTruncator) text(fragment string) string {
	if fragment == "" || t.extractor == nil {
		return fragment
	}
	text, err := t.extractor.Text(fragment)
	if err != nil {
		return fragment
	}
	return text
}

// Snippet is the display state of one matched page.
// Snippets start collapsed. Toggling only has an effect on truncated
// snippets, since the preview of a short snippet is already complete.
type Snippet struct {
	source   string
	fragment string
	preview  Preview
	expanded bool
}

// Toggle flips the expanded state and reports whether it changed.
func (s *Snippet) Toggle() bool {
	if !s.preview.Truncated {
		return false
	}
	s.expanded = !s.expanded
	return true
}

// Expanded reports whether the full fragment is shown.
func (s *Snippet) Expanded() bool {
	return s.expanded
}

// Truncated reports whether the preview is shortened.
func (s *Snippet) Truncated() bool {
	return s.preview.Truncated
}

// ShowToggle reports whether the expand affordance should be rendered.
func (s *Snippet) ShowToggle() bool {
	return s.preview.Truncated
}

// ToggleLabel describes what activating the toggle does.
func (s *Snippet) ToggleLabel() string {
	if !s.preview.Truncated {
		return ""
	}
	if s.expanded {
		return LabelCollapse
	}
	return LabelExpand
}

// Fragment returns the full fragment.
func (s *Snippet) Fragment() string {
	return s.fragment
}

// Markup returns what to render in the current state.
func (s *Snippet) Markup() string {
	if s.expanded {
		return s.fragment
	}
	return s.preview.Markup
}
