// Package facets provides the result-type filter bar.
package facets

import (
	"fmt"
	"strings"

	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/styles"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// MaxKeyed is the number of facets reachable with number keys.
const MaxKeyed = 9

// Bar lists the result types of the current results with their number key.
type Bar struct {
	facets []driving.Facet
	styles *styles.Styles
}

// NewBar creates an empty facet bar.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{styles: s}
}

// SetFacets replaces the facets.
func (b *Bar) SetFacets(facets []driving.Facet) {
	b.facets = facets
}

// Facets returns the current facets.
func (b *Bar) Facets() []driving.Facet {
	return b.facets
}

// Name returns the facet at index, or "" when there is none.
func (b *Bar) Name(index int) string {
	if index < 0 || index >= len(b.facets) || index >= MaxKeyed {
		return ""
	}
	return b.facets[index].Name
}

// View renders the bar, or nothing when there are no facets.
func (b *Bar) View() string {
	if len(b.facets) == 0 {
		return ""
	}

	parts := make([]string, 0, len(b.facets))
	for i, f := range b.facets {
		label := f.Name
		if i < MaxKeyed {
			label = fmt.Sprintf("%d %s", i+1, f.Name)
		}
		if f.Selected {
			parts = append(parts, b.styles.FacetOn.Render(label))
		} else {
			parts = append(parts, b.styles.FacetOff.Render(label))
		}
	}
	return b.styles.Title.Render("Types ") + strings.Join(parts, " ")
}
