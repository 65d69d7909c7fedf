package driven

import "github.com/nekrasovka/libsearch/internal/core/domain"

// SettingsStore provides access to persisted application settings.
// Implementations handle the file format and fill in defaults.
type SettingsStore interface {
	// Load reads settings. A missing file yields domain.DefaultAppSettings.
	Load() (domain.AppSettings, error)

	// Save persists settings.
	Save(settings domain.AppSettings) error

	// Path returns the settings file path.
	Path() string

	// Exists reports whether the settings file is present.
	Exists() bool
}
