package driving

import "github.com/nekrasovka/libsearch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: file values over defaults,
	// with command-line overrides applied.
	Get() (domain.AppSettings, error)

	// Save validates and persists settings.
	Save(settings domain.AppSettings) error

	// Init writes the default settings file unless one already exists.
	// It reports whether a file was created.
	Init() (bool, error)

	// Path returns the settings file path.
	Path() string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
