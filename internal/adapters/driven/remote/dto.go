package remote

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/nekrasovka/libsearch/internal/core/domain"
)

// searchResponse is the wire format of GET /search.
type searchResponse struct {
	Results           []documentDTO `json:"results"`
	Total             totalDTO      `json:"total"`
	OriginalQuery     string        `json:"original_query"`
	CorrectedVariants []string      `json:"corrected_variants"`
}

// totalDTO accepts {"value": N} or a bare number.
type totalDTO struct {
	Value int
}

func (t *totalDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Value flexInt `json:"value"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Value.Set {
			t.Value = obj.Value.Value
		}
		return nil
	}
	var n flexInt
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	t.Value = n.Value
	return nil
}

type documentDTO struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	BookName     string           `json:"book_name"`
	Description  string           `json:"description"`
	BookYear     flexInt          `json:"book_year"`
	Score        flexFloat        `json:"score"`
	Lang         string           `json:"lang"`
	FilterName   string           `json:"filter_name"`
	MatchedBy    string           `json:"matched_by"`
	PathIndex    string           `json:"path_index"`
	CoverPage    *coverPageDTO    `json:"cover_page"`
	MatchedPages []matchedPageDTO `json:"matched_pages"`
	PDFURL       string           `json:"pdf_url"`
	URL          string           `json:"url"`
}

type coverPageDTO struct {
	Page  flexInt `json:"page"`
	Image string  `json:"image"`
}

type matchedPageDTO struct {
	Page    flexInt `json:"page"`
	Image   string  `json:"image"`
	Snippet string  `json:"snippet"`
}

// flexInt decodes a number or a numeric string. Anything else is absent.
type flexInt struct {
	Value int
	Set   bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	*f = flexInt{}
	s, ok := numericText(data)
	if !ok {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = flexInt{Value: n, Set: true}
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == float64(int(v)) {
		*f = flexInt{Value: int(v), Set: true}
	}
	return nil
}

func (f flexInt) ptr() *int {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

// flexFloat decodes a number or a numeric string. Anything else is absent.
type flexFloat struct {
	Value float64
	Set   bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = flexFloat{}
	s, ok := numericText(data)
	if !ok {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = flexFloat{Value: v, Set: true}
	}
	return nil
}

func (f flexFloat) ptr() *float64 {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

// numericText returns the text of a JSON number or string literal.
func numericText(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return "", false
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	if data[0] == '-' || (data[0] >= '0' && data[0] <= '9') {
		return string(data), true
	}
	return "", false
}

func (r searchResponse) toDomain() *domain.SearchResponse {
	out := &domain.SearchResponse{
		Results:           make([]domain.Document, 0, len(r.Results)),
		Total:             r.Total.Value,
		OriginalQuery:     r.OriginalQuery,
		CorrectedVariants: r.CorrectedVariants,
	}
	for _, d := range r.Results {
		out.Results = append(out.Results, d.toDomain())
	}
	return out
}

func (d documentDTO) toDomain() domain.Document {
	doc := domain.Document{
		ID:          d.ID,
		Title:       d.Title,
		BookName:    d.BookName,
		Description: d.Description,
		BookYear:    d.BookYear.ptr(),
		Score:       d.Score.ptr(),
		Lang:        d.Lang,
		FilterName:  d.FilterName,
		MatchedBy:   domain.MatchedBy(d.MatchedBy),
		PathIndex:   d.PathIndex,
		PDFURL:      d.PDFURL,
		URL:         d.URL,
	}
	if d.CoverPage != nil {
		doc.CoverPage = &domain.CoverPage{Page: d.CoverPage.Page.ptr(), Image: d.CoverPage.Image}
	}
	if len(d.MatchedPages) > 0 {
		doc.MatchedPages = make([]domain.MatchedPage, 0, len(d.MatchedPages))
		for _, p := range d.MatchedPages {
			doc.MatchedPages = append(doc.MatchedPages, domain.MatchedPage{
				Page:    p.Page.ptr(),
				Image:   p.Image,
				Snippet: p.Snippet,
			})
		}
	}
	return doc
}

// likeRequest is the wire format of POST /like.
type likeRequest struct {
	DocID string `json:"doc_id"`
	Query string `json:"query"`
}
