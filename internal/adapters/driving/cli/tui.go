package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui"
	"github.com/nekrasovka/libsearch/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for libsearch.

Controls:
  Enter    - Search / Result actions
  Tab      - Move between query and results
  ↑/k, ↓/j - Navigate results
  [ ] { }  - Move the start / end year
  0        - Reset years
  1-9      - Toggle document types
  l        - Like result
  e        - Expand snippet
  n        - New search
  ?        - Toggle help
  q        - Quit

Logs go to log.file from the settings while the UI is open.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	settings, svc, err := buildServices()
	if err != nil {
		return err
	}
	if svc.Years == nil {
		return errNotWired
	}

	restore, err := redirectLogs(settings.Log.File)
	if err != nil {
		return err
	}
	defer restore()

	session := svc.Sessions()
	ports := tui.NewPorts(session, svc.Years(session), svc.Actions, svc.Formatter)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	runErr := app.Run()
	if svc.Likes != nil {
		svc.Likes.Wait()
	}
	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	return nil
}

// redirectLogs sends log output to path, or discards it when path is
// empty, until the returned function is called.
func redirectLogs(path string) (func(), error) {
	if path == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	f, err := logger.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return func() {
		logger.SetOutput(os.Stderr)
		logger.SetTimestamps(false)
		f.Close() //nolint:errcheck
	}, nil
}
