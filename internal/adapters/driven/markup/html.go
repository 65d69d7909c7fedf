package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
)

// Ensure HTML implements the interfaces.
var (
	_ driven.MarkupTextExtractor = (*HTML)(nil)
	_ driven.MarkupSegmenter     = (*HTML)(nil)
)

// HTML reads snippet fragments as HTML body content.
type HTML struct{}

// NewHTML creates an HTML markup adapter.
func NewHTML() *HTML {
	return &HTML{}
}

// bodyContext is the parent element fragments are parsed into.
var bodyContext = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

// Text returns the text content of fragment: every text node in order,
// with character references decoded and whitespace left as is.
func (h *HTML) Text(fragment string) (string, error) {
	if fragment == "" {
		return "", nil
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), bodyContext)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		extractText(n, &buf)
	}
	return buf.String(), nil
}

// Segments splits fragment into plain and highlighted runs.
// Unparseable input is returned as one plain run.
func (h *HTML) Segments(fragment string) []domain.Segment {
	if fragment == "" {
		return nil
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), bodyContext)
	if err != nil {
		return []domain.Segment{{Text: fragment}}
	}

	var segs []domain.Segment
	for _, n := range nodes {
		segs = collectSegments(n, false, segs)
	}
	return segs
}

// extractText recursively extracts text content from HTML nodes.
func extractText(n *html.Node, buf *strings.Builder) {
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && invisible(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, buf)
	}
}

func collectSegments(n *html.Node, highlight bool, segs []domain.Segment) []domain.Segment {
	switch n.Type {
	case html.TextNode:
		if n.Data == "" {
			return segs
		}
		if last := len(segs) - 1; last >= 0 && segs[last].Highlight == highlight {
			segs[last].Text += n.Data
			return segs
		}
		return append(segs, domain.Segment{Text: n.Data, Highlight: highlight})
	case html.ElementNode:
		if invisible(n) {
			return segs
		}
		if n.DataAtom == atom.Br {
			return collectSegments(&html.Node{Type: html.TextNode, Data: "\n"}, highlight, segs)
		}
		highlight = highlight || isHighlight(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		segs = collectSegments(c, highlight, segs)
	}
	return segs
}

// isHighlight reports whether n marks a query match.
func isHighlight(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Em, atom.Mark, atom.B, atom.Strong:
		return true
	}
	return false
}

func invisible(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Template:
		return true
	}
	return false
}
