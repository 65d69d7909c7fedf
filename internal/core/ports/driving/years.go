package driving

import "github.com/nekrasovka/libsearch/internal/core/domain"

// YearRangeControl is the two-handle year selector driven by a UI.
type YearRangeControl interface {
	// Range returns the current range.
	Range() domain.YearRange

	// SetStart moves the start handle, clamped to [MinYear, End].
	SetStart(year int)

	// SetEnd moves the end handle, clamped to [Start, MaxYear].
	SetEnd(year int)

	// NudgeStart moves the start handle by delta years.
	NudgeStart(delta int)

	// NudgeEnd moves the end handle by delta years.
	NudgeEnd(delta int)

	// Reset returns both handles to the bounds.
	Reset()
}
