package mcp

import (
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sessions creates one search session per tool call.
	Sessions driving.SessionFactory

	// Likes registers likes.
	Likes driving.LikeService

	// Formatter turns snippet markup into plain text. Optional: markup is
	// returned as-is when nil.
	Formatter driving.SnippetFormatter
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Sessions == nil {
		return ErrMissingSessionFactory
	}
	if p.Likes == nil {
		return ErrMissingLikeService
	}
	return nil
}
