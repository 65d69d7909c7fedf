// Package services implements the driving port interfaces.
// Services contain the client-side state logic that sits between the
// search service's responses and the rendered view:
//
//   - SnippetTruncator: bounded previews of matched-page snippets
//   - DeriveFacets / ApplyFilter: the facet universe and filtered view
//   - LikeTracker: optimistic, idempotent likes
//   - YearRangeControl: the clamped two-handle year selector
//   - Session: orchestrates searches and composes the view
//   - SnippetFormatter: highlight runs and plain text for terminals
//   - ResultActionService: open documents, copy snippet text
//   - SettingsService: effective settings over the settings store
//
// Services are pure Go and reach the network only through driven ports.
package services
