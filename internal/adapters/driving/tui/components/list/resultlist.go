// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/styles"
	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

const (
	likedMarker  = "♥"
	indent       = "    "
	badgeDivider = " · "
)

// ResultList displays search results in a navigable list.
// The selected result is shown with all its matched pages; the others
// with their first one on a single line.
type ResultList struct {
	results   []driving.ResultView
	selected  int
	snippet   int
	styles    *styles.Styles
	formatter driving.SnippetFormatter
	width     int
	height    int
}

// NewResultList creates a new result list component.
// A nil formatter renders snippet markup as is.
func NewResultList(s *styles.Styles, formatter driving.SnippetFormatter) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles:    s,
		formatter: formatter,
		width:     80,
		height:    10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "tab":
			r.NextSnippet()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)*3)

	// Each collapsed result takes three lines; keep the selection in view.
	visibleCount := (r.height - 6) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}
	if end < len(r.results) {
		lines = append(lines, r.styles.Muted.Render(indent+"…"))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats one result with badges and snippets.
func (r *ResultList) renderResult(index int, result *driving.ResultView) string {
	selected := index == r.selected
	doc := &result.Document

	indicator := "  "
	if selected {
		indicator = "> "
	}

	title := runewidth.Truncate(doc.DisplayTitle(), r.textWidth()-4, "…")
	var titleLine string
	if selected {
		titleLine = r.styles.Selected.Render(indicator + title)
	} else {
		titleLine = r.styles.Normal.Render(indicator + title)
	}
	if result.Liked {
		titleLine += " " + r.styles.Liked.Render(likedMarker)
	}

	lines := []string{titleLine}

	if badges := doc.Badges(); len(badges) > 0 {
		lines = append(lines, indent+r.styles.Muted.Render(strings.Join(badges, badgeDivider)))
	}

	if selected {
		if doc.Description != "" {
			desc := lipgloss.NewStyle().Width(r.textWidth()).Render(doc.Description)
			lines = append(lines, indentBlock(r.styles.Normal.Render(desc)))
		}
		for j := range result.Snippets {
			lines = append(lines, r.renderSnippet(&result.Snippets[j], j == r.snippet))
		}
		return strings.Join(lines, "\n")
	}

	if len(result.Snippets) > 0 {
		first := result.Snippets[0]
		text := runewidth.Truncate(r.plain(first.Markup), r.textWidth()-8, "…")
		lines = append(lines, indent+r.styles.Muted.Render("p. "+first.Page+" "+text))
	}
	return strings.Join(lines, "\n")
}

// renderSnippet renders one matched page with highlighted matches.
func (r *ResultList) renderSnippet(sn *driving.SnippetView, focused bool) string {
	var b strings.Builder
	for _, seg := range r.segments(sn.Markup) {
		if seg.Highlight {
			b.WriteString(r.styles.Highlight.Render(seg.Text))
		} else {
			b.WriteString(r.styles.Normal.Render(seg.Text))
		}
	}

	body := lipgloss.NewStyle().Width(r.textWidth()).Render(b.String())

	marker := "  "
	if focused {
		marker = "› "
	}
	header := marker + r.styles.Subtitle.Render("p. "+sn.Page)
	if sn.Truncated {
		header += " " + r.styles.Muted.Render("[e] "+sn.ToggleLabel)
	}
	return header + "\n" + indentBlock(body)
}

func (r *ResultList) segments(markup string) []domain.Segment {
	if r.formatter == nil {
		if markup == "" {
			return nil
		}
		return []domain.Segment{{Text: markup}}
	}
	return r.formatter.Segments(markup)
}

func (r *ResultList) plain(markup string) string {
	var b strings.Builder
	for _, seg := range r.segments(markup) {
		b.WriteString(seg.Text)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func (r *ResultList) textWidth() int {
	w := r.width - len(indent) - 2
	if w < 20 {
		w = 20
	}
	return w
}

func indentBlock(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}

// SetResults replaces the results. The selection follows the previously
// selected result when it is still present.
func (r *ResultList) SetResults(results []driving.ResultView) {
	prevKey := ""
	if cur := r.SelectedResult(); cur != nil {
		prevKey = cur.Key
	}

	r.results = results
	r.selected = 0
	r.snippet = 0
	for i := range results {
		if results[i].Key == prevKey && prevKey != "" {
			r.selected = i
			break
		}
	}
	r.clampSnippet()
}

// Results returns the current results.
func (r *ResultList) Results() []driving.ResultView {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
		r.snippet = 0
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *driving.ResultView {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// SnippetIndex returns the focused matched page of the selected result.
func (r *ResultList) SnippetIndex() int {
	return r.snippet
}

// NextSnippet moves the focus to the next matched page, wrapping around.
func (r *ResultList) NextSnippet() {
	cur := r.SelectedResult()
	if cur == nil || len(cur.Snippets) == 0 {
		return
	}
	r.snippet = (r.snippet + 1) % len(cur.Snippets)
}

func (r *ResultList) clampSnippet() {
	cur := r.SelectedResult()
	if cur == nil || r.snippet >= len(cur.Snippets) {
		r.snippet = 0
	}
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
		r.snippet = 0
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
		r.snippet = 0
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
