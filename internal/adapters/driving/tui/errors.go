package tui

import "errors"

// ErrMissingSearchSession is returned when the search session is not provided.
var ErrMissingSearchSession = errors.New("tui: search session is required")

// ErrMissingYearControl is returned when the year range control is not provided.
var ErrMissingYearControl = errors.New("tui: year range control is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
