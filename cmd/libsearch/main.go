package main

import (
	"os"

	"github.com/nekrasovka/libsearch/internal/adapters/driving/cli"
	"github.com/nekrasovka/libsearch/internal/app"
	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetWiring(cli.Wiring{
		Settings: func(configPath, baseURL string) (driving.SettingsService, error) {
			return app.OpenSettings(configPath, baseURL)
		},
		Build: func(settings domain.AppSettings) (*cli.Services, error) {
			return newServices(app.Build(settings)), nil
		},
		Watch: app.WatchSettings,
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServices(c *app.Container) *cli.Services {
	return &cli.Services{
		Sessions:  c.NewSession,
		Likes:     c.Likes(),
		Years:     c.YearControl,
		Formatter: c.Formatter(),
		Actions:   c.Actions(),
	}
}
