package services

import (
	"fmt"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	store driven.SettingsStore

	// baseURL overrides server.base_url when set.
	baseURL string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// OverrideBaseURL makes Get report url as the server base URL.
// An empty url removes the override.
func (s *SettingsService) OverrideBaseURL(url string) {
	s.baseURL = url
}

// Get returns the effective settings.
func (s *SettingsService) Get() (domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()
	if s.store != nil {
		loaded, err := s.store.Load()
		if err != nil {
			return domain.AppSettings{}, fmt.Errorf("loading settings: %w", err)
		}
		settings = loaded
	}

	if s.baseURL != "" {
		settings.Server.BaseURL = s.baseURL
	}
	settings.Years = settings.Years.Clamp()

	if err := settings.Validate(); err != nil {
		return domain.AppSettings{}, err
	}
	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings domain.AppSettings) error {
	if s.store == nil {
		return fmt.Errorf("settings store %w", domain.ErrNotConfigured)
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	settings.Years = settings.Years.Clamp()
	return s.store.Save(settings)
}

// Init writes the default settings file unless one already exists.
func (s *SettingsService) Init() (bool, error) {
	if s.store == nil {
		return false, fmt.Errorf("settings store %w", domain.ErrNotConfigured)
	}
	if s.store.Exists() {
		return false, nil
	}
	if err := s.store.Save(domain.DefaultAppSettings()); err != nil {
		return false, err
	}
	return true, nil
}

// Path returns the settings file path, or empty without a store.
func (s *SettingsService) Path() string {
	if s.store == nil {
		return ""
	}
	return s.store.Path()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
