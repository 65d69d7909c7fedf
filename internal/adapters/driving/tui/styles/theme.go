// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is used for facets and section headers.
	Secondary lipgloss.Color

	// Background is the status bar background.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Highlight marks query matches inside snippets.
	Highlight lipgloss.Color

	// Liked marks liked results.
	Liked lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#B45309"), // Amber
		Secondary:  lipgloss.Color("#0E7490"), // Teal
		Background: lipgloss.Color("#1C1917"), // Stone
		Foreground: lipgloss.Color("#E7E5E4"),
		Muted:      lipgloss.Color("#78716C"),
		Highlight:  lipgloss.Color("#FDE047"), // Marker yellow
		Liked:      lipgloss.Color("#F43F5E"), // Rose
		Warning:    lipgloss.Color("#FBBF24"),
		Error:      lipgloss.Color("#EF4444"),
		Border:     lipgloss.Color("#44403C"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style

	// Highlight renders matched words in snippets.
	Highlight lipgloss.Style

	// Badge renders one result attribute (year, score, language...).
	Badge lipgloss.Style

	// Liked renders the liked marker.
	Liked lipgloss.Style

	// FacetOn and FacetOff render selected and unselected facets.
	FacetOn  lipgloss.Style
	FacetOff lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	Border     lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		Badge: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Padding(0, 1),

		Liked: lipgloss.NewStyle().
			Foreground(theme.Liked),

		FacetOn: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Secondary).
			Padding(0, 1),

		FacetOff: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Padding(0, 1),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Background).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
