package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// Setting keys in dot notation.
const (
	KeyBaseURL   = "server.base_url"
	KeyIndex     = "server.index"
	KeyTimeout   = "server.timeout"
	KeyLikeRate  = "server.like_rate"
	KeyStartYear = "search.start_year"
	KeyEndYear   = "search.end_year"
	KeySanitize  = "display.sanitize"
	KeyLogFile   = "log.file"
)

// SettingsStore is a file-based implementation of driven.SettingsStore using TOML.
// Settings are stored in config.toml within the libsearch config directory.
// Keys missing from the file keep their default values.
type SettingsStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewSettingsStore creates a new TOML-based settings store.
// If configDir is empty, defaults to ~/.libsearch/config.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".libsearch")
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}, nil
}

// NewSettingsStoreAt creates a store backed by an explicit file path.
func NewSettingsStoreAt(path string) *SettingsStore {
	return &SettingsStore{filePath: path, data: make(map[string]any)}
}

// Path returns the configuration file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}

// Exists reports whether the configuration file is present.
func (s *SettingsStore) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Load reads the file and overlays it on the default settings.
// A missing file yields the defaults.
func (s *SettingsStore) Load() (domain.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := domain.DefaultAppSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]any)
			return settings, nil
		}
		return settings, err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return settings, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, s.filePath, err)
	}
	if loaded == nil {
		loaded = make(map[string]any)
	}

	// Flatten nested tables into dot-notation keys for easier access
	s.data = flattenMap(loaded, "")

	if err := s.apply(&settings); err != nil {
		return settings, err
	}
	return settings, nil
}

// Save writes settings to the file, creating the directory if needed.
func (s *SettingsStore) Save(settings domain.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := map[string]any{
		"server": map[string]any{
			"base_url":  settings.Server.BaseURL,
			"index":     settings.Server.Index,
			"timeout":   settings.Server.Timeout.String(),
			"like_rate": settings.Server.LikeRate,
		},
		"search": map[string]any{
			"start_year": settings.Years.Start,
			"end_year":   settings.Years.End,
		},
		"display": map[string]any{
			"sanitize": settings.Display.Sanitize,
		},
		"log": map[string]any{
			"file": settings.Log.File,
		},
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}

	// Write with restricted permissions
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return err
	}
	s.data = flattenMap(doc, "")
	return nil
}

// apply overlays the flattened file values on settings (caller must hold lock).
func (s *SettingsStore) apply(settings *domain.AppSettings) error {
	if v, ok := s.getString(KeyBaseURL); ok {
		settings.Server.BaseURL = v
	}
	if v, ok := s.getString(KeyIndex); ok && v != "" {
		settings.Server.Index = v
	}
	if raw, ok := s.data[KeyTimeout]; ok {
		d, err := parseDuration(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, KeyTimeout, err)
		}
		settings.Server.Timeout = d
	}
	if v, ok := s.getFloat(KeyLikeRate); ok {
		settings.Server.LikeRate = v
	}
	if v, ok := s.getInt(KeyStartYear); ok {
		settings.Years.Start = v
	}
	if v, ok := s.getInt(KeyEndYear); ok {
		settings.Years.End = v
	}
	settings.Years = settings.Years.Clamp()
	if v, ok := s.data[KeySanitize].(bool); ok {
		settings.Display.Sanitize = v
	}
	if v, ok := s.getString(KeyLogFile); ok {
		settings.Log.File = v
	}
	return nil
}

func (s *SettingsStore) getString(key string) (string, bool) {
	v, ok := s.data[key].(string)
	return v, ok
}

// getInt reads an integer. TOML integers are parsed as int64.
func (s *SettingsStore) getInt(key string) (int, bool) {
	switch v := s.data[key].(type) {
	case int64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

func (s *SettingsStore) getFloat(key string) (float64, bool) {
	switch v := s.data[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// parseDuration accepts "30s" style strings or a whole number of seconds.
func parseDuration(raw any) (time.Duration, error) {
	switch v := raw.(type) {
	case string:
		return time.ParseDuration(v)
	case int64:
		return time.Duration(v) * time.Second, nil
	default:
		return 0, fmt.Errorf("unsupported value %v", raw)
	}
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}
