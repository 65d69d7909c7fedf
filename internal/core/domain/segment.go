package domain

// Segment is a run of visible snippet text.
type Segment struct {
	Text string

	// Highlight is set for text inside a match marker such as <em>.
	Highlight bool
}
