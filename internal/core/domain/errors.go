package domain

import "errors"

// Domain errors represent failures of the two remote collaborators.
var (
	// ErrSearchFailed covers transport errors, non-success statuses and
	// malformed responses from the search endpoint.
	ErrSearchFailed = errors.New("search failed")

	// ErrLikeFailed covers transport errors and non-success statuses
	// from the like endpoint. It is logged, never shown.
	ErrLikeFailed = errors.New("like failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required collaborator is missing.
	ErrNotConfigured = errors.New("not configured")
)
