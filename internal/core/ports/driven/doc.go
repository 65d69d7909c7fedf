// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SearchGateway: the remote search endpoint
//   - MarkupTextExtractor: plain-text extraction for snippet previews
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LikeGateway: without it likes are tracked locally only
//   - MarkupSanitizer: without it snippets are rendered as received
//   - MarkupSegmenter: without it snippets render as one plain run
//   - SettingsStore: without it defaults are used
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
