package cli

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the settings file",
	Long: `Settings live in ~/.libsearch/config.toml unless --config is given.

Keys:
  server.base_url    search service URL
  server.index       index sent with every search
  server.timeout     per-call timeout, e.g. "30s"
  server.like_rate   outbound calls per second, 0 = unlimited
  search.start_year  initial start of the year range
  search.end_year    initial end of the year range
  display.sanitize   sanitize snippet markup before display
  log.file           log file used while the TUI is open`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return err
	}

	cmd.Printf("Settings file: %s\n\n", svc.Path())
	cmd.Println("Server:")
	cmd.Printf("  base_url:   %s\n", settings.Server.BaseURL)
	cmd.Printf("  index:      %s\n", settings.Server.Index)
	cmd.Printf("  timeout:    %s\n", settings.Server.Timeout)
	if settings.Server.LikeRate > 0 {
		cmd.Printf("  like_rate:  %g/s\n", settings.Server.LikeRate)
	} else {
		cmd.Println("  like_rate:  unlimited")
	}
	cmd.Println()
	cmd.Println("Search:")
	cmd.Printf("  years:      %d-%d\n", settings.Years.Start, settings.Years.End)
	cmd.Println()
	cmd.Println("Display:")
	cmd.Printf("  sanitize:   %t\n", settings.Display.Sanitize)
	cmd.Println()
	cmd.Println("Log:")
	if settings.Log.File != "" {
		cmd.Printf("  file:       %s\n", settings.Log.File)
	} else {
		cmd.Println("  file:       (discarded in TUI)")
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	cmd.Println(svc.Path())
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	created, err := svc.Init()
	if err != nil {
		return err
	}
	if !created {
		cmd.Printf("Settings file already exists: %s\n", svc.Path())
		return nil
	}
	cmd.Printf("Wrote default settings to %s\n", svc.Path())
	return nil
}
