package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMissingSearchSession,
		ErrMissingYearControl,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingSearchSession_Message(t *testing.T) {
	assert.Contains(t, ErrMissingSearchSession.Error(), "search session")
}

func TestErrMissingYearControl_Message(t *testing.T) {
	assert.Contains(t, ErrMissingYearControl.Error(), "year range")
}
