// Package tui provides an interactive terminal user interface for libsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session runs searches and holds their results.
	Session driving.SearchSession

	// Years is the year range selector feeding the session.
	Years driving.YearRangeControl

	// ResultAction provides actions on search results. Optional.
	ResultAction driving.ResultActionService

	// Formatter renders snippet highlights. Optional.
	Formatter driving.SnippetFormatter
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	session driving.SearchSession,
	years driving.YearRangeControl,
	resultAction driving.ResultActionService,
	formatter driving.SnippetFormatter,
) *Ports {
	return &Ports{
		Session:      session,
		Years:        years,
		ResultAction: resultAction,
		Formatter:    formatter,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Session == nil {
		return ErrMissingSearchSession
	}
	if p.Years == nil {
		return ErrMissingYearControl
	}
	return nil
}
