// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/styles"
)

// Placeholder is shown while the query is empty.
const Placeholder = "Author, title or phrase (empty finds everything)"

// minWidth is the narrowest input field.
const minWidth = 20

// QueryInput wraps a bubbles textinput for the library query.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewQueryInput creates a focused query input.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "› "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	return &QueryInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init starts the cursor blinking.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text input.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders the labelled input.
func (q *QueryInput) View() string {
	label := q.styles.Title.Render("Search ")
	field := q.styles.InputField.Render(q.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the query as typed.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue replaces the query.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (q *QueryInput) Focus() tea.Cmd {
	return q.textinput.Focus()
}

// Blur removes focus from the input.
func (q *QueryInput) Blur() {
	q.textinput.Blur()
}

// Focused reports whether the input has focus.
func (q *QueryInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth fits the input into width columns.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	// Account for label, prompt and border
	inputWidth := width - 14
	if inputWidth < minWidth {
		inputWidth = minWidth
	}
	q.textinput.Width = inputWidth
}

// Width returns the current width.
func (q *QueryInput) Width() int {
	return q.width
}

// Reset clears the input.
func (q *QueryInput) Reset() {
	q.textinput.Reset()
}
