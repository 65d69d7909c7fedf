package markup

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekrasovka/libsearch/internal/core/domain"
)

func TestHTML_Text(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{"empty", "", ""},
		{"plain", "просто текст", "просто текст"},
		{"highlight", "<em>Маяковский</em> и Брик", "Маяковский и Брик"},
		{"entities", "Tom &amp; Jerry &lt;3", "Tom & Jerry <3"},
		{"nested", "<p>a <b>b <i>c</i></b></p>", "a b c"},
		{"script skipped", "x<script>alert(1)</script>y", "xy"},
		{"style skipped", "<style>p{}</style>text", "text"},
		{"whitespace kept", "a  \n b", "a  \n b"},
		{"unclosed tag", "<em>open", "open"},
	}

	h := NewHTML()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Text(tt.fragment)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTML_TextLengthCountsVisibleCharacters(t *testing.T) {
	fragment := "<em>" + strings.Repeat("я", 300) + "</em>"

	got, err := NewHTML().Text(fragment)

	require.NoError(t, err)
	assert.Equal(t, 300, utf8.RuneCountInString(got))
}

func TestHTML_Segments(t *testing.T) {
	got := NewHTML().Segments("В поэме <em>Маяковский</em> пишет <b>о</b><em>блако</em>.")

	assert.Equal(t, []domain.Segment{
		{Text: "В поэме "},
		{Text: "Маяковский", Highlight: true},
		{Text: " пишет "},
		{Text: "облако", Highlight: true},
		{Text: "."},
	}, got)
}

func TestHTML_SegmentsPreview(t *testing.T) {
	got := NewHTML().Segments("<span>a &lt;em&gt; b…</span>")

	assert.Equal(t, []domain.Segment{{Text: "a <em> b…"}}, got)
}

func TestHTML_SegmentsLineBreak(t *testing.T) {
	got := NewHTML().Segments("one<br>two")

	assert.Equal(t, []domain.Segment{{Text: "one\ntwo"}}, got)
}

func TestHTML_SegmentsEmpty(t *testing.T) {
	assert.Nil(t, NewHTML().Segments(""))
}
