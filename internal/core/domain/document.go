package domain

import (
	"fmt"
	"strconv"
)

// MatchedBy reports which query branch produced a result.
type MatchedBy string

// Known matched-by values.
const (
	// MatchedFlat means the document matched on top-level fields.
	MatchedFlat MatchedBy = "flat"

	// MatchedNested means the document matched on nested page text.
	MatchedNested MatchedBy = "nested"

	// MatchedBoth means the document matched on both branches.
	MatchedBoth MatchedBy = "both"
)

// Label returns the short badge text for the value.
// An empty value has no label.
func (m MatchedBy) Label() string {
	switch m {
	case MatchedBoth:
		return "Flat+Nested"
	case MatchedNested:
		return "Nested"
	case "":
		return ""
	default:
		return "Flat"
	}
}

// CoverPage is the page chosen as the book cover.
type CoverPage struct {
	// Page is the page number, if known.
	Page *int

	// Image is the cover image URL.
	Image string
}

// MatchedPage is a page whose text matched the query.
type MatchedPage struct {
	// Page is the page number, if known.
	Page *int

	// Image is the page scan URL, if any.
	Image string

	// Snippet is the highlighted excerpt as marked-up text.
	Snippet string
}

// PageLabel returns the page number or "?" when it is unknown.
func (p MatchedPage) PageLabel() string {
	if p.Page == nil || *p.Page == 0 {
		return "?"
	}
	return strconv.Itoa(*p.Page)
}

// Document is a single search result as returned by the search service.
// Every field except MatchedPages is optional and may be zero.
// Documents are never modified after decoding.
type Document struct {
	// ID is the opaque document identifier. It may be empty.
	ID string

	// Title is the human-readable title.
	Title string

	// BookName is the catalogue name of the containing book.
	BookName string

	// Description is a short abstract.
	Description string

	// BookYear is the publication year.
	BookYear *int

	// Score is the relevance score.
	Score *float64

	// Lang is the document language code.
	Lang string

	// FilterName is a display label for the collection.
	FilterName string

	// MatchedBy reports which query branch matched.
	MatchedBy MatchedBy

	// PathIndex is the facet value used for post-hoc filtering.
	PathIndex string

	// CoverPage is the cover image, if any.
	CoverPage *CoverPage

	// MatchedPages are the pages that matched, in ranking order.
	MatchedPages []MatchedPage

	// PDFURL links to the scanned PDF.
	PDFURL string

	// URL links to the document's web page or preview image.
	URL string
}

// Key returns the identifier used to track per-result state.
// Documents without an ID fall back to their position in the result list.
func (d *Document) Key(position int) string {
	if d.ID != "" {
		return d.ID
	}
	return fmt.Sprintf("#%d", position)
}

// DisplayTitle returns the title or a placeholder when it is missing.
func (d *Document) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return "Untitled"
}

// CoverImage returns the cover image URL or an empty string.
func (d *Document) CoverImage() string {
	if d.CoverPage == nil {
		return ""
	}
	return d.CoverPage.Image
}

// Badges returns the short labels shown above a result, in display order.
// Absent fields produce no badge.
func (d *Document) Badges() []string {
	badges := make([]string, 0, 5)
	if d.BookYear != nil && *d.BookYear != 0 {
		badges = append(badges, strconv.Itoa(*d.BookYear))
	}
	if d.Score != nil {
		badges = append(badges, strconv.FormatFloat(*d.Score, 'f', 2, 64))
	}
	if d.Lang != "" {
		badges = append(badges, d.Lang)
	}
	if d.FilterName != "" {
		badges = append(badges, d.FilterName)
	}
	if label := d.MatchedBy.Label(); label != "" {
		badges = append(badges, label)
	}
	return badges
}

// OpenableURL returns the best link for opening the document externally.
func (d *Document) OpenableURL() string {
	switch {
	case d.PDFURL != "":
		return d.PDFURL
	case d.URL != "":
		return d.URL
	default:
		return d.CoverImage()
	}
}
