package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullYearRange(t *testing.T) {
	r := FullYearRange()

	assert.Equal(t, MinYear, r.Start)
	assert.Equal(t, MaxYear, r.End)
	assert.True(t, r.Valid())
}

func TestYearRange_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   YearRange
		want YearRange
	}{
		{"zero defaults to bounds", YearRange{}, YearRange{MinYear, MaxYear}},
		{"inside is unchanged", YearRange{1917, 1930}, YearRange{1917, 1930}},
		{"below min", YearRange{1000, 1600}, YearRange{MinYear, 1600}},
		{"above max", YearRange{1900, 2100}, YearRange{1900, MaxYear}},
		{"crossed lowers start", YearRange{1950, 1900}, YearRange{1900, 1900}},
		{"end below min", YearRange{1600, 1000}, YearRange{MinYear, MinYear}},
		{"start above max", YearRange{3000, 0}, YearRange{MaxYear, MaxYear}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp()
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestYearRange_Valid(t *testing.T) {
	assert.True(t, YearRange{1500, 1500}.Valid())
	assert.False(t, YearRange{1499, 1600}.Valid())
	assert.False(t, YearRange{1900, 1800}.Valid())
	assert.False(t, YearRange{1900, 2026}.Valid())
}
