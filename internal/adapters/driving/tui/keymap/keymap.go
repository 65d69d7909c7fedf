// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Back   key.Binding
	Search key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding

	// Browse leaves the query input without searching.
	Browse key.Binding

	// NewSearch focuses an empty query input.
	NewSearch key.Binding

	// EditQuery focuses the query input keeping its text.
	EditQuery key.Binding

	// Actions opens the action menu on a result.
	Actions key.Binding

	// Like likes the selected result.
	Like key.Binding

	// Expand toggles the focused snippet between preview and full text.
	Expand key.Binding

	// NextSnippet moves the snippet focus within the selected result.
	NextSnippet key.Binding

	// StartEarlier, StartLater, EndEarlier and EndLater move the year handles.
	StartEarlier key.Binding
	StartLater   key.Binding
	EndEarlier   key.Binding
	EndLater     key.Binding

	// ResetYears returns the year range to its bounds.
	ResetYears key.Binding

	// Facet toggles the facet with the pressed number.
	Facet key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Browse: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "filters"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new search"),
		),
		EditQuery: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit query"),
		),
		Actions: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "actions"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Expand: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand"),
		),
		NextSnippet: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		StartEarlier: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "from -1"),
		),
		StartLater: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "from +1"),
		),
		EndEarlier: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "to -1"),
		),
		EndLater: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "to +1"),
		),
		ResetYears: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all years"),
		),
		Facet: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle type"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Browse, k.Help}
}

// ResultsHelp returns keybindings for the results view.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.Like, k.Expand, k.Actions, k.Facet, k.Help}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Browse, k.NewSearch, k.EditQuery},
		{k.Up, k.Down, k.Actions, k.Like, k.Expand, k.NextSnippet},
		{k.StartEarlier, k.StartLater, k.EndEarlier, k.EndLater, k.ResetYears, k.Facet},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}

// FacetIndex returns the zero-based facet position for a number key,
// or -1 for any other key.
func FacetIndex(keyStr string) int {
	if len(keyStr) != 1 || keyStr[0] < '1' || keyStr[0] > '9' {
		return -1
	}
	return int(keyStr[0] - '1')
}
