package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekrasovka/libsearch/internal/core/domain"
)

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(&MockSettingsStore{})

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), settings)
	assert.Equal(t, domain.DefaultAppSettings(), svc.GetDefaults())
}

func TestSettingsService_BaseURLOverride(t *testing.T) {
	stored := domain.DefaultAppSettings()
	stored.Server.BaseURL = "http://catalogue.local:9000"
	svc := NewSettingsService(&MockSettingsStore{settings: &stored})

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://catalogue.local:9000", settings.Server.BaseURL)

	svc.OverrideBaseURL("http://127.0.0.1:8076")
	settings, err = svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8076", settings.Server.BaseURL)
}

func TestSettingsService_GetInvalid(t *testing.T) {
	svc := NewSettingsService(&MockSettingsStore{})
	svc.OverrideBaseURL("not a url")

	_, err := svc.Get()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_LoadError(t *testing.T) {
	svc := NewSettingsService(&MockSettingsStore{loadErr: errors.New("permission denied")})

	_, err := svc.Get()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading settings")
}

func TestSettingsService_Save(t *testing.T) {
	store := &MockSettingsStore{}
	svc := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Years = domain.YearRange{Start: 1950, End: 1900}
	require.NoError(t, svc.Save(settings))

	require.Len(t, store.saved, 1)
	assert.Equal(t, domain.YearRange{Start: 1900, End: 1900}, store.saved[0].Years)

	settings.Server.Timeout = -1
	assert.ErrorIs(t, svc.Save(settings), domain.ErrInvalidInput)
	assert.Len(t, store.saved, 1)
}

func TestSettingsService_Init(t *testing.T) {
	store := &MockSettingsStore{}
	svc := NewSettingsService(store)

	created, err := svc.Init()
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Init()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, store.saved, 1)
	assert.Equal(t, "/tmp/libsearch/config.toml", svc.Path())
}

func TestSettingsService_NoStore(t *testing.T) {
	svc := NewSettingsService(nil)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), settings)

	_, err = svc.Init()
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	assert.Empty(t, svc.Path())
}
