// Package mcp provides an MCP (Model Context Protocol) server adapter for libsearch.
// It lets AI assistants run library searches and register likes.
package mcp

import "errors"

// ErrMissingSessionFactory is returned when no session factory is provided.
var ErrMissingSessionFactory = errors.New("mcp: session factory is required")

// ErrMissingLikeService is returned when the like service is not provided.
var ErrMissingLikeService = errors.New("mcp: like service is required")
