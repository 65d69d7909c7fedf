package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/keymap"
	"github.com/nekrasovka/libsearch/internal/adapters/driving/tui/styles"
)

func intPtr(v int) *int { return &v }

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.Shown())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())
	updated, cmd := bar.Update(tea.KeyMsg{})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestBar_ViewStates(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		message string
		want    string
	}{
		{"ready", StateReady, "", "Ready"},
		{"ready notice", StateReady, "Copied", "Copied"},
		{"searching", StateSearching, "", "Searching..."},
		{"error", StateError, "search failed", "Error: search failed"},
		{"error bare", StateError, "", "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestBar_TotalText(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetCounts(intPtr(2), 2)
	assert.Equal(t, "Found 2 matches", bar.TotalText())

	bar.SetCounts(intPtr(40), 10)
	assert.Equal(t, "Found 40 matches (10 shown)", bar.TotalText())

	bar.SetCounts(nil, 0)
	assert.Equal(t, "0 shown", bar.TotalText())
}

func TestBar_ResultsView(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)
	bar.SetState(StateResults)
	bar.SetCounts(intPtr(2), 2)
	bar.SetMessage("Liked")

	view := bar.View()

	assert.Contains(t, view, "Found 2 matches")
	assert.Contains(t, view, "Liked")
	assert.Contains(t, view, "like")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("x")
	bar.SetCounts(intPtr(1), 1)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 0, bar.Shown())
}

func TestBar_Width(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(42)

	assert.Equal(t, 42, bar.Width())
}
