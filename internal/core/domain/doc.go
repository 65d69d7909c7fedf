// Package domain defines the core entities of the library search client.
//
// This package is the innermost layer of the hexagon. It defines:
//
//   - Document: a ranked search result with matched pages
//   - YearRange: the clamped publication-year filter
//   - SearchRequest / SearchResponse: one exchange with the search service
//   - AppSettings: client configuration
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
