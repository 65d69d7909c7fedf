package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoSearchSession indicates that no search session was provided.
	ErrNoSearchSession = errors.New("search session is required")

	// ErrNoActionService indicates that result actions are unavailable.
	ErrNoActionService = errors.New("result actions not available")
)
