package cli

import "errors"

// errEmptyDocumentID is returned by like for a blank id.
var errEmptyDocumentID = errors.New("document id is empty")

// errNotWired is returned when a command runs before SetWiring.
var errNotWired = errors.New("services not configured")
