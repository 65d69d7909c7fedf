package services

import (
	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

// Ensure YearRangeControl implements the interface.
var _ driving.YearRangeControl = (*YearRangeControl)(nil)

// YearRangeControl is a two-handle publication-year selector bounded by
// domain.MinYear and domain.MaxYear.
//
// Handles keep their identity: moving one towards the other stops at the
// other's position instead of swapping. Every change that alters the range
// is reported synchronously to the change handler. The control never
// starts a search itself.
//
// YearRangeControl is not safe for concurrent use; it belongs to the UI loop.
type YearRangeControl struct {
	years    domain.YearRange
	onChange func(domain.YearRange)
}

// NewYearRangeControl creates a control starting at initial.
// Zero ends default to the bounds; out-of-range values are clamped.
func NewYearRangeControl(initial domain.YearRange, onChange func(domain.YearRange)) *YearRangeControl {
	return &YearRangeControl{
		years:    initial.Clamp(),
		onChange: onChange,
	}
}

// OnChange replaces the change handler.
func (c *YearRangeControl) OnChange(fn func(domain.YearRange)) {
	c.onChange = fn
}

// Range returns the current range.
func (c *YearRangeControl) Range() domain.YearRange {
	return c.years
}

// Start returns the start handle's position.
func (c *YearRangeControl) Start() int {
	return c.years.Start
}

// End returns the end handle's position.
func (c *YearRangeControl) End() int {
	return c.years.End
}

// SetStart moves the start handle, clamped to [MinYear, End].
func (c *YearRangeControl) SetStart(year int) {
	c.apply(domain.YearRange{
		Start: clampYear(year, domain.MinYear, c.years.End),
		End:   c.years.End,
	})
}

// SetEnd moves the end handle, clamped to [Start, MaxYear].
func (c *YearRangeControl) SetEnd(year int) {
	c.apply(domain.YearRange{
		Start: c.years.Start,
		End:   clampYear(year, c.years.Start, domain.MaxYear),
	})
}

// NudgeStart moves the start handle by delta years.
func (c *YearRangeControl) NudgeStart(delta int) {
	c.SetStart(c.years.Start + delta)
}

// NudgeEnd moves the end handle by delta years.
func (c *YearRangeControl) NudgeEnd(delta int) {
	c.SetEnd(c.years.End + delta)
}

// Reset returns both handles to the bounds.
func (c *YearRangeControl) Reset() {
	c.apply(domain.FullYearRange())
}

func (c *YearRangeControl) apply(next domain.YearRange) {
	if next == c.years {
		return
	}
	c.years = next
	if c.onChange != nil {
		c.onChange(next)
	}
}

func clampYear(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
