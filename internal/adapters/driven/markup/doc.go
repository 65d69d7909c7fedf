// Package markup provides adapters for the marked-up snippets returned by
// the search service.
//
// Adapters:
//   - HTML: text extraction and highlight segmentation (golang.org/x/net/html)
//   - Sanitizer: optional fragment cleaning (bluemonday UGC policy)
package markup
