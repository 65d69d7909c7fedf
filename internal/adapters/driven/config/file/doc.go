// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - SettingsStore: TOML-based settings storage at ~/.libsearch/config.toml
//   - Watch: change notifications for the settings file
package file
