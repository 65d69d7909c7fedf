// Package cli provides the cobra command tree for libsearch.
// It is a driving adapter: commands reach the application core only
// through the services supplied with SetWiring.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
	"github.com/nekrasovka/libsearch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
	baseURL    string
)

// Services holds the driving ports the commands use.
type Services struct {
	// Sessions creates independent search sessions.
	Sessions driving.SessionFactory

	// Likes registers likes. Shared by every session.
	Likes driving.LikeService

	// Years creates the year range control bound to a session.
	Years func(session driving.SearchSession) driving.YearRangeControl

	// Formatter splits snippet markup into styled runs.
	Formatter driving.SnippetFormatter

	// Actions opens documents and copies snippets. Optional.
	Actions driving.ResultActionService
}

// Wiring connects the commands to the application core.
type Wiring struct {
	// Settings opens the settings service for the given config file
	// ("" for the default location) with an optional base URL override.
	Settings func(configPath, baseURL string) (driving.SettingsService, error)

	// Build creates the services for the effective settings.
	Build func(settings domain.AppSettings) (*Services, error)

	// Watch calls onChange when the settings file at path changes.
	// Optional: long-running commands reload settings only when set.
	Watch func(ctx context.Context, path string, onChange func()) error
}

// wiring holds the current wiring.
var wiring Wiring

// SetWiring sets the functions used to build services.
func SetWiring(w Wiring) {
	wiring = w
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "libsearch",
	Short: "Search a digital library catalogue",
	Long: `libsearch is a client for a library search service.

It sends full-text queries with a publication-year range, shows ranked
books with highlighted page snippets, filters them by document type and
lets you mark results as relevant.

Run without arguments to start the interactive terminal UI.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default ~/.libsearch/config.toml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "search service URL, overrides server.base_url")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// settingsService opens the settings service for the current flags.
func settingsService() (driving.SettingsService, error) {
	if wiring.Settings == nil {
		return nil, errNotWired
	}
	return wiring.Settings(configPath, baseURL)
}

// loadSettings returns the effective settings for the current flags.
func loadSettings() (domain.AppSettings, error) {
	svc, err := settingsService()
	if err != nil {
		return domain.AppSettings{}, err
	}
	return svc.Get()
}

// buildServices loads settings and builds the services from them.
func buildServices() (domain.AppSettings, *Services, error) {
	settings, err := loadSettings()
	if err != nil {
		return domain.AppSettings{}, nil, err
	}
	if wiring.Build == nil {
		return domain.AppSettings{}, nil, errNotWired
	}
	svc, err := wiring.Build(settings)
	if err != nil {
		return domain.AppSettings{}, nil, fmt.Errorf("building services: %w", err)
	}
	if svc == nil || svc.Sessions == nil {
		return domain.AppSettings{}, nil, errNotWired
	}
	return settings, svc, nil
}
