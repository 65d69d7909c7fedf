// Package app assembles the application: it connects the driven adapters
// to the core services according to the effective settings.
package app

import (
	"context"

	"github.com/nekrasovka/libsearch/internal/adapters/driven/config/file"
	"github.com/nekrasovka/libsearch/internal/adapters/driven/markup"
	"github.com/nekrasovka/libsearch/internal/adapters/driven/remote"
	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
	"github.com/nekrasovka/libsearch/internal/core/services"
	"github.com/nekrasovka/libsearch/internal/logger"
)

// OpenSettings returns the settings service for configPath, or for the
// default location when configPath is empty. A non-empty baseURL
// overrides server.base_url.
func OpenSettings(configPath, baseURL string) (*services.SettingsService, error) {
	var store *file.SettingsStore
	if configPath != "" {
		store = file.NewSettingsStoreAt(configPath)
	} else {
		var err error
		store, err = file.NewSettingsStore("")
		if err != nil {
			return nil, err
		}
	}

	svc := services.NewSettingsService(store)
	svc.OverrideBaseURL(baseURL)
	return svc, nil
}

// WatchSettings calls onChange whenever the settings file at path changes,
// until ctx is done.
func WatchSettings(ctx context.Context, path string, onChange func()) error {
	return file.Watch(ctx, path, onChange)
}

// Container holds the long-lived services of one process.
type Container struct {
	settings  domain.AppSettings
	client    *remote.Client
	likes     *services.LikeTracker
	truncator *services.SnippetTruncator
	formatter *services.SnippetFormatter
	actions   *services.ResultActionService
}

// Build creates the services for settings.
func Build(settings domain.AppSettings, opts ...remote.Option) *Container {
	html := markup.NewHTML()

	var sanitizer driven.MarkupSanitizer
	if settings.Display.Sanitize {
		sanitizer = markup.NewSanitizer()
	}

	client := remote.NewFromSettings(settings.Server, opts...)
	logger.Debug("Search service: %s (index %s)", client.BaseURL(), settings.Server.Index)

	return &Container{
		settings:  settings,
		client:    client,
		likes:     services.NewLikeTracker(client),
		truncator: services.NewSnippetTruncator(html, sanitizer),
		formatter: services.NewSnippetFormatter(html, html),
		actions:   services.NewResultActionService(html),
	}
}

// NewSession creates a search session sharing the container's likes.
func (c *Container) NewSession() driving.SearchSession {
	return services.NewSession(services.SessionOptions{
		Index:     c.settings.Server.Index,
		Years:     c.settings.Years,
		Gateway:   c.client,
		Likes:     c.likes,
		Truncator: c.truncator,
	})
}

// YearControl creates a year range control that feeds session.
func (c *Container) YearControl(session driving.SearchSession) driving.YearRangeControl {
	return services.NewYearRangeControl(session.Years(), func(r domain.YearRange) {
		session.SetYears(r)
	})
}

// Likes returns the shared like tracker.
func (c *Container) Likes() driving.LikeService {
	return c.likes
}

// Formatter returns the snippet formatter.
func (c *Container) Formatter() driving.SnippetFormatter {
	return c.formatter
}

// Actions returns the result action service.
func (c *Container) Actions() driving.ResultActionService {
	return c.actions
}
