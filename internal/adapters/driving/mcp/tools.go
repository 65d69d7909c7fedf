package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nekrasovka/libsearch/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query     string   `json:"query" jsonschema:"the search query, sent verbatim"`
	StartYear int      `json:"start_year,omitempty" jsonschema:"earliest publication year (default 1500)"`
	EndYear   int      `json:"end_year,omitempty" jsonschema:"latest publication year (default 2025)"`
	Types     []string `json:"types,omitempty" jsonschema:"keep only results whose path_index is one of these"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Total             *int           `json:"total,omitempty"`
	StartYear         int            `json:"start_year"`
	EndYear           int            `json:"end_year"`
	CorrectedVariants []string       `json:"corrected_variants,omitempty"`
	Facets            []string       `json:"facets"`
	Results           []ResultOutput `json:"results"`
	Count             int            `json:"count"`
}

// ResultOutput represents a single search result.
type ResultOutput struct {
	DocumentID  string       `json:"document_id,omitempty"`
	Title       string       `json:"title"`
	BookName    string       `json:"book_name,omitempty"`
	Description string       `json:"description,omitempty"`
	Year        *int         `json:"year,omitempty"`
	Score       *float64     `json:"score,omitempty"`
	Lang        string       `json:"lang,omitempty"`
	Collection  string       `json:"collection,omitempty"`
	MatchedBy   string       `json:"matched_by,omitempty"`
	Type        string       `json:"type,omitempty"`
	PDFURL      string       `json:"pdf_url,omitempty"`
	URL         string       `json:"url,omitempty"`
	CoverImage  string       `json:"cover_image,omitempty"`
	Pages       []PageOutput `json:"pages,omitempty"`
}

// PageOutput is one matched page.
type PageOutput struct {
	Page string `json:"page"`
	Text string `json:"text"`
}

// LikeInput is the input schema for the like tool.
type LikeInput struct {
	DocumentID string `json:"document_id" jsonschema:"the id of a document returned by search"`
	Query      string `json:"query,omitempty" jsonschema:"the query that found the document"`
}

// LikeOutput is the output schema for the like tool.
type LikeOutput struct {
	DocumentID   string `json:"document_id"`
	Liked        bool   `json:"liked"`
	AlreadyLiked bool   `json:"already_liked"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the library catalogue by text and publication years",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "like",
		Description: "Mark a search result as relevant to a query",
	}, s.handleLike)
}

// handleSearch runs one search in a fresh session.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	session := s.ports.Sessions()
	session.SetQuery(input.Query)
	session.SetYears(domain.YearRange{Start: input.StartYear, End: input.EndYear})

	if err := session.Search(ctx); err != nil {
		return nil, SearchOutput{}, err
	}
	selected := make(map[string]bool, len(input.Types))
	for _, t := range input.Types {
		if t = strings.TrimSpace(t); t != "" && !selected[t] {
			selected[t] = true
			session.ToggleType(t)
		}
	}

	view := session.View()
	output := SearchOutput{
		Total:             view.Total,
		StartYear:         view.Years.Start,
		EndYear:           view.Years.End,
		CorrectedVariants: view.CorrectedVariants,
		Facets:            make([]string, 0, len(view.Facets)),
		Results:           make([]ResultOutput, 0, len(view.Results)),
		Count:             len(view.Results),
	}
	for _, f := range view.Facets {
		output.Facets = append(output.Facets, f.Name)
	}

	docs := make([]domain.Document, 0, len(view.Results))
	for i := range view.Results {
		output.Results = append(output.Results, s.documentOutput(view.Results[i].Document))
		docs = append(docs, view.Results[i].Document)
	}
	s.remember(docs)

	return nil, output, nil
}

// handleLike registers a like for a document.
func (s *Server) handleLike(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LikeInput,
) (*mcp.CallToolResult, LikeOutput, error) {
	id := strings.TrimSpace(input.DocumentID)
	if id == "" {
		return nil, LikeOutput{}, fmt.Errorf("%w: document_id is required", domain.ErrInvalidInput)
	}

	already := s.ports.Likes.Liked(id)
	s.ports.Likes.Like(ctx, id, input.Query)

	return nil, LikeOutput{
		DocumentID:   id,
		Liked:        true,
		AlreadyLiked: already,
	}, nil
}

// documentOutput converts a document, stripping snippet markup.
func (s *Server) documentOutput(doc domain.Document) ResultOutput {
	out := ResultOutput{
		DocumentID:  doc.ID,
		Title:       doc.DisplayTitle(),
		BookName:    doc.BookName,
		Description: doc.Description,
		Year:        doc.BookYear,
		Score:       doc.Score,
		Lang:        doc.Lang,
		Collection:  doc.FilterName,
		MatchedBy:   string(doc.MatchedBy),
		Type:        doc.PathIndex,
		PDFURL:      doc.PDFURL,
		URL:         doc.URL,
		CoverImage:  doc.CoverImage(),
	}
	for _, page := range doc.MatchedPages {
		out.Pages = append(out.Pages, PageOutput{
			Page: page.PageLabel(),
			Text: s.plainText(page.Snippet),
		})
	}
	return out
}

func (s *Server) plainText(markup string) string {
	if s.ports.Formatter == nil {
		return markup
	}
	return s.ports.Formatter.PlainText(markup)
}
