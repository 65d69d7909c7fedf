// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/components/facets"
	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/components/input"
	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/components/list"
	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/components/status"
	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/components/yearrange"
	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/keymap"
	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/messages"
	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/styles"
	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// Result action labels.
const (
	ActionOpen   = "Open document"
	ActionCopy   = "Copy snippet text"
	ActionCancel = "Cancel"
)

// Deps are the services the search view drives.
type Deps struct {
	Session   driving.SearchSession
	Years     driving.YearRangeControl
	Actions   driving.ResultActionService
	Formatter driving.SnippetFormatter
}

// ActionMenu represents a simple action selection overlay.
type ActionMenu struct {
	actions  []string
	selected int
	result   driving.ResultView
	snippet  int
}

// View is the search screen: query input, year range, type facets,
// results and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	years     *yearrange.Selector
	facets    *facets.Bar
	list      *list.ResultList
	statusbar *status.Bar

	session driving.SearchSession
	actions driving.ResultActionService
	ctx     context.Context

	// lastSeq is the ticket of the most recent search issued by the view.
	lastSeq uint64

	snapshot   driving.SessionView
	width      int
	height     int
	ready      bool
	focusInput bool // true = input mode (typing), false = results mode (navigating)
	actionMenu *ActionMenu
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, deps Deps) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQueryInput(s),
		years:      yearrange.NewSelector(deps.Years, s, km),
		facets:     facets.NewBar(s),
		list:       list.NewResultList(s, deps.Formatter),
		statusbar:  status.NewBar(s, km),
		session:    deps.Session,
		actions:    deps.Actions,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
	v.refresh()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		if msg.Seq != v.lastSeq {
			return v, nil
		}
		v.refresh()
		return v, nil

	case messages.ActionCompleted:
		if msg.Err != nil {
			v.notice(msg.Action + ": " + msg.Err.Error())
		} else {
			v.notice(msg.Action + ": done")
		}
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.actionMenu != nil {
		return v.handleActionMenuKey(msg)
	}
	if v.focusInput {
		return v.handleInputKey(msg)
	}
	return v.handleResultsKey(msg)
}

// handleInputKey processes keys while the query input has focus.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter:
		// An empty query is a valid search.
		return v, v.Submit(v.input.Value())
	case tea.KeyTab, tea.KeyEsc:
		v.blurInput()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleResultsKey processes keys while navigating filters and results.
func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case msg.Type == tea.KeyEsc:
		v.focusInput = true
		return v, v.input.Focus()
	case keymap.Matches(k, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(k, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case keymap.Matches(k, v.keymap.Actions):
		v.openActionMenu()
		return v, nil
	case keymap.Matches(k, v.keymap.NewSearch):
		v.input.SetValue("")
		v.focusInput = true
		return v, v.input.Focus()
	case keymap.Matches(k, v.keymap.EditQuery):
		v.focusInput = true
		return v, v.input.Focus()
	case keymap.Matches(k, v.keymap.Like):
		v.likeSelected()
		return v, nil
	case keymap.Matches(k, v.keymap.Expand):
		v.toggleSnippet()
		return v, nil
	case keymap.Matches(k, v.keymap.Facet):
		v.toggleFacet(keymap.FacetIndex(k))
		return v, nil
	}

	if v.years.HandleKey(k) {
		return v, nil
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// Submit starts a search for query with the current year range.
// The returned command runs it and reports completion.
func (v *View) Submit(query string) tea.Cmd {
	if v.session == nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoSearchSession} }
	}

	v.session.SetQuery(query)
	ticket := v.session.Begin()
	v.lastSeq = ticket.Seq
	v.blurInput()
	v.refresh()

	session, ctx := v.session, v.ctx
	return func() tea.Msg {
		err := session.Execute(ctx, ticket)
		return messages.SearchCompleted{Seq: ticket.Seq, Err: err}
	}
}

func (v *View) blurInput() {
	v.focusInput = false
	v.input.Blur()
}

func (v *View) likeSelected() {
	cur := v.list.SelectedResult()
	if cur == nil || v.session == nil {
		return
	}
	if !cur.Likeable {
		v.notice("This result cannot be liked")
		return
	}
	if v.session.Like(v.ctx, cur.Key) {
		v.notice("Liked")
	}
	v.refresh()
}

func (v *View) toggleSnippet() {
	cur := v.list.SelectedResult()
	if cur == nil || v.session == nil {
		return
	}
	if v.session.ToggleSnippet(cur.Key, v.list.SnippetIndex()) {
		v.refresh()
	}
}

func (v *View) toggleFacet(index int) {
	name := v.facets.Name(index)
	if name == "" || v.session == nil {
		return
	}
	v.session.ToggleType(name)
	v.refresh()
}

// refresh copies the session snapshot into the components.
func (v *View) refresh() {
	if v.session == nil {
		return
	}
	snap := v.session.View()
	v.snapshot = snap

	v.facets.SetFacets(snap.Facets)
	v.list.SetResults(snap.Results)
	v.statusbar.SetCounts(snap.Total, len(snap.Results))

	switch {
	case snap.Loading:
		v.statusbar.SetState(status.StateSearching)
	case snap.Err != "":
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(snap.Err)
	case snap.Total != nil:
		if v.statusbar.State() != status.StateResults {
			v.statusbar.SetMessage("")
		}
		v.statusbar.SetState(status.StateResults)
	default:
		v.statusbar.SetState(status.StateReady)
	}
}

// notice shows a transient message without leaving the current state.
func (v *View) notice(text string) {
	if v.statusbar.State() == status.StateError {
		v.statusbar.SetState(status.StateResults)
		if v.snapshot.Total == nil {
			v.statusbar.SetState(status.StateReady)
		}
	}
	v.statusbar.SetMessage(text)
}

func (v *View) openActionMenu() {
	cur := v.list.SelectedResult()
	if cur == nil {
		return
	}

	actions := make([]string, 0, 3)
	if cur.Document.OpenableURL() != "" {
		actions = append(actions, ActionOpen)
	}
	if len(cur.Document.MatchedPages) > 0 {
		actions = append(actions, ActionCopy)
	}
	actions = append(actions, ActionCancel)

	v.actionMenu = &ActionMenu{
		actions: actions,
		result:  *cur,
		snippet: v.list.SnippetIndex(),
	}
}

// handleActionMenuKey processes keyboard input when action menu is visible.
func (v *View) handleActionMenuKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.actionMenu.selected > 0 {
			v.actionMenu.selected--
		}
	case "down", "j":
		if v.actionMenu.selected < len(v.actionMenu.actions)-1 {
			v.actionMenu.selected++
		}
	case "enter":
		menu := v.actionMenu
		v.actionMenu = nil
		return v, v.executeAction(menu.actions[menu.selected], menu.result, menu.snippet)
	case "esc":
		v.actionMenu = nil
	}
	return v, nil
}

// executeAction returns a command performing action on result.
func (v *View) executeAction(action string, result driving.ResultView, snippet int) tea.Cmd {
	if action == ActionCancel {
		return nil
	}
	if v.actions == nil {
		return func() tea.Msg { return messages.ActionCompleted{Action: action, Err: ErrNoActionService} }
	}

	svc, ctx := v.actions, v.ctx
	doc := result.Document
	switch action {
	case ActionOpen:
		return func() tea.Msg {
			return messages.ActionCompleted{Action: action, Err: svc.OpenDocument(ctx, &doc)}
		}
	case ActionCopy:
		if snippet < 0 || snippet >= len(doc.MatchedPages) {
			snippet = 0
		}
		fragment := doc.MatchedPages[snippet].Snippet
		return func() tea.Msg {
			return messages.ActionCompleted{Action: action, Err: svc.CopyToClipboard(ctx, fragment)}
		}
	}
	return nil
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 14)
	sections = append(sections, v.styles.Title.Render("Library search"), "")
	sections = append(sections, v.input.View())
	sections = append(sections, v.years.View())
	if bar := v.facets.View(); bar != "" {
		sections = append(sections, bar)
	}
	if len(v.snapshot.CorrectedVariants) > 0 {
		sections = append(sections, v.styles.Muted.Render(
			"Also searched: "+strings.Join(v.snapshot.CorrectedVariants, ", ")))
	}
	sections = append(sections, "", v.list.View())

	if v.actionMenu != nil {
		sections = append(sections, "", v.renderActionMenu())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderActionMenu renders the action menu overlay.
func (v *View) renderActionMenu() string {
	lines := make([]string, 0, len(v.actionMenu.actions)+1)
	lines = append(lines, v.styles.Subtitle.Render(v.actionMenu.result.Document.DisplayTitle()))
	for i, action := range v.actionMenu.actions {
		if i == v.actionMenu.selected {
			lines = append(lines, v.styles.Selected.Render("> "+action))
		} else {
			lines = append(lines, v.styles.Normal.Render("  "+action))
		}
	}
	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.years.SetWidth(width)
	v.list.SetDimensions(width, height-12) // header, input, years, facets, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the text in the query input.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the text in the query input.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Results returns the results currently shown.
func (v *View) Results() []driving.ResultView {
	return v.list.Results()
}

// SelectedResult returns the selected result, or nil.
func (v *View) SelectedResult() *driving.ResultView {
	return v.list.SelectedResult()
}

// Years returns the selected year range.
func (v *View) Years() domain.YearRange {
	return v.years.Range()
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// ActionMenuVisible reports whether the action menu is open.
func (v *View) ActionMenuVisible() bool {
	return v.actionMenu != nil
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset returns the view to input mode with an empty query.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.actionMenu = nil
	v.refresh()
}
