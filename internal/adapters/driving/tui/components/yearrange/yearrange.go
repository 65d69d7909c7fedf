// Package yearrange provides the two-handle publication-year selector.
package yearrange

import (
	"fmt"
	"strings"

	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/keymap"
	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/styles"
	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// Step is how far one key press moves a handle.
const Step = 1

const (
	trackWidthMin = 10
	trackWidthMax = 60
)

// Selector renders a YearRangeControl as a track with two handles and
// maps key presses onto it.
type Selector struct {
	control driving.YearRangeControl
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	width   int
}

// NewSelector creates a selector over control.
func NewSelector(control driving.YearRangeControl, s *styles.Styles, km *keymap.KeyMap) *Selector {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Selector{control: control, styles: s, keymap: km, width: 80}
}

// HandleKey applies a year key. It reports whether the key was consumed.
func (y *Selector) HandleKey(keyStr string) bool {
	if y.control == nil {
		return false
	}
	switch {
	case keymap.Matches(keyStr, y.keymap.StartEarlier):
		y.control.NudgeStart(-Step)
	case keymap.Matches(keyStr, y.keymap.StartLater):
		y.control.NudgeStart(Step)
	case keymap.Matches(keyStr, y.keymap.EndEarlier):
		y.control.NudgeEnd(-Step)
	case keymap.Matches(keyStr, y.keymap.EndLater):
		y.control.NudgeEnd(Step)
	case keymap.Matches(keyStr, y.keymap.ResetYears):
		y.control.Reset()
	default:
		return false
	}
	return true
}

// Range returns the selected range.
func (y *Selector) Range() domain.YearRange {
	if y.control == nil {
		return domain.FullYearRange()
	}
	return y.control.Range()
}

// View renders "Years 1917 ──●━━━●── 1930".
func (y *Selector) View() string {
	r := y.Range()
	label := y.styles.Title.Render("Years ")
	from := y.styles.Normal.Render(fmt.Sprintf("%d", r.Start))
	to := y.styles.Normal.Render(fmt.Sprintf("%d", r.End))
	bounds := y.styles.Muted.Render(fmt.Sprintf("(%d–%d)", domain.MinYear, domain.MaxYear))
	return label + from + " " + y.track(r) + " " + to + " " + bounds
}

// track draws the range on a line scaled to the available width.
func (y *Selector) track(r domain.YearRange) string {
	w := y.width - 30
	if w < trackWidthMin {
		w = trackWidthMin
	}
	if w > trackWidthMax {
		w = trackWidthMax
	}

	start, end := Position(r.Start, w), Position(r.End, w)

	var b strings.Builder
	for i := 0; i < w; i++ {
		switch {
		case i == start || i == end:
			b.WriteString(y.styles.Title.Render("●"))
		case i > start && i < end:
			b.WriteString(y.styles.Subtitle.Render("━"))
		default:
			b.WriteString(y.styles.Muted.Render("─"))
		}
	}
	return b.String()
}

// Position maps year onto a track of width cells.
func Position(year, width int) int {
	if width <= 1 {
		return 0
	}
	span := domain.MaxYear - domain.MinYear
	return (year - domain.MinYear) * (width - 1) / span
}

// SetWidth sets the available width.
func (y *Selector) SetWidth(width int) {
	y.width = width
}
