package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrSearchFailed", ErrSearchFailed},
		{"ErrLikeFailed", ErrLikeFailed},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotConfigured", ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: unexpected status 500", ErrSearchFailed)

	assert.True(t, errors.Is(wrapped, ErrSearchFailed))
	assert.False(t, errors.Is(wrapped, ErrLikeFailed))
	assert.Equal(t, "search failed: unexpected status 500", wrapped.Error())
}
