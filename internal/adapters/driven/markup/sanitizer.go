package markup

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
)

// Ensure Sanitizer implements the interface.
var _ driven.MarkupSanitizer = (*Sanitizer)(nil)

// Sanitizer strips unsafe elements and attributes from fragments.
// It keeps the formatting a search highlighter produces.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer using the bluemonday UGC policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize returns fragment with disallowed markup removed.
func (s *Sanitizer) Sanitize(fragment string) string {
	return s.policy.Sanitize(fragment)
}
