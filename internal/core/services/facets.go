package services

import "github.com/nekrasovka/libsearch/internal/core/domain"

// DeriveFacets returns the distinct non-empty PathIndex values of results
// in first-seen order.
func DeriveFacets(results []domain.Document) []string {
	seen := make(map[string]struct{}, len(results))
	facets := make([]string, 0)
	for i := range results {
		p := results[i].PathIndex
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		facets = append(facets, p)
	}
	return facets
}

// ApplyFilter returns the results whose PathIndex is selected, in their
// original order. An empty selection returns results unchanged.
func ApplyFilter(results []domain.Document, selected *Selection) []domain.Document {
	if selected.Len() == 0 {
		return results
	}
	positions := MatchingPositions(results, selected)
	filtered := make([]domain.Document, 0, len(positions))
	for _, i := range positions {
		filtered = append(filtered, results[i])
	}
	return filtered
}

// MatchingPositions returns the indexes into results that ApplyFilter keeps.
func MatchingPositions(results []domain.Document, selected *Selection) []int {
	positions := make([]int, 0, len(results))
	for i := range results {
		if selected.Len() == 0 || selected.Has(results[i].PathIndex) {
			positions = append(positions, i)
		}
	}
	return positions
}

// Selection is the set of selected facets, in the order they were chosen.
// Entries that no longer appear in the facet universe are kept; they
// simply match nothing. A nil Selection is empty.
type Selection struct {
	order []string
	set   map[string]struct{}
}

// NewSelection creates a selection holding types.
func NewSelection(types ...string) *Selection {
	s := &Selection{set: make(map[string]struct{})}
	for _, t := range types {
		if !s.Has(t) {
			s.Toggle(t)
		}
	}
	return s
}

// Toggle adds or removes t and reports whether it is now selected.
func (s *Selection) Toggle(t string) bool {
	if _, ok := s.set[t]; ok {
		delete(s.set, t)
		for i, v := range s.order {
			if v == t {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.set[t] = struct{}{}
	s.order = append(s.order, t)
	return true
}

// Has reports whether t is selected.
func (s *Selection) Has(t string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[t]
	return ok
}

// Len returns the number of selected types.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Values returns the selected types in selection order.
func (s *Selection) Values() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
