package domain

import (
	"fmt"
	"net/url"
	"time"
)

// ServerSettings describes the remote search service.
type ServerSettings struct {
	// BaseURL is prefixed to the /search and /like paths.
	BaseURL string

	// Index is sent as the index query parameter.
	Index string

	// Timeout bounds each outbound call. Zero means no timeout.
	Timeout time.Duration

	// LikeRate caps outbound calls per second. Zero disables throttling.
	LikeRate float64
}

// DisplaySettings controls how results are rendered.
type DisplaySettings struct {
	// Sanitize passes snippets through the markup sanitizer before use.
	// Off by default: the search service is trusted.
	Sanitize bool
}

// LogSettings controls the operational log.
type LogSettings struct {
	// File receives log output while the TUI owns the terminal.
	// Empty means logs are discarded in the TUI.
	File string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Server ServerSettings

	// Years is the initial year range of a session.
	Years YearRange

	Display DisplaySettings

	Log LogSettings
}

// DefaultAppSettings returns settings pointing at a local search service.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			BaseURL: "http://localhost:8076",
			Index:   DefaultIndex,
			Timeout: 30 * time.Second,
		},
		Years: FullYearRange(),
	}
}

// Validate checks settings that would otherwise fail on first use.
func (s AppSettings) Validate() error {
	if s.Server.BaseURL == "" {
		return fmt.Errorf("%w: server.base_url is empty", ErrInvalidInput)
	}
	u, err := url.Parse(s.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server.base_url %q is not an absolute URL", ErrInvalidInput, s.Server.BaseURL)
	}
	if s.Server.Timeout < 0 {
		return fmt.Errorf("%w: server.timeout is negative", ErrInvalidInput)
	}
	if s.Server.LikeRate < 0 {
		return fmt.Errorf("%w: server.like_rate is negative", ErrInvalidInput)
	}
	return nil
}
