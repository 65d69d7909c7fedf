package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nekrasovka/libsearch/internal/core/ports/driving"
)

var (
	searchFrom  int
	searchTo    int
	searchTypes []string
	searchJSON  bool
	searchFull  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the library catalogue",
	Long: `Sends one query to the search service and prints the ranked results.

The query is sent verbatim; an omitted query searches with an empty string.
Results can be narrowed to a publication-year range and, after the search,
to one or more document types.

Examples:
  libsearch search "Маяковский" --from 1917 --to 1930
  libsearch search "облако" --type books --type newspapers
  libsearch search "облако" --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchFrom, "from", 0, "earliest publication year (default from settings)")
	searchCmd.Flags().IntVar(&searchTo, "to", 0, "latest publication year (default from settings)")
	searchCmd.Flags().StringArrayVarP(&searchTypes, "type", "t", nil, "show only this document type (repeatable)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchFull, "full", false, "print whole snippets instead of previews")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	settings, svc, err := buildServices()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	years := settings.Years
	if cmd.Flags().Changed("from") {
		years.Start = searchFrom
	}
	if cmd.Flags().Changed("to") {
		years.End = searchTo
	}

	session := svc.Sessions()
	session.SetQuery(query)
	session.SetYears(years)

	if err := session.Search(cmd.Context()); err != nil {
		return err
	}
	selected := make(map[string]bool, len(searchTypes))
	for _, t := range searchTypes {
		if t = strings.TrimSpace(t); t != "" && !selected[t] {
			selected[t] = true
			session.ToggleType(t)
		}
	}

	view := session.View()
	if searchJSON {
		return outputSearchJSON(cmd, view)
	}

	printer := newResultPrinter(cmd.OutOrStdout(), svc.Formatter, searchFull)
	printer.print(view)
	return nil
}

// jsonResult is the JSON form of one result.
type jsonResult struct {
	Key         string     `json:"key"`
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	BookName    string     `json:"book_name,omitempty"`
	Description string     `json:"description,omitempty"`
	Year        *int       `json:"year,omitempty"`
	Score       *float64   `json:"score,omitempty"`
	Lang        string     `json:"lang,omitempty"`
	Collection  string     `json:"collection,omitempty"`
	MatchedBy   string     `json:"matched_by,omitempty"`
	Type        string     `json:"type,omitempty"`
	PDFURL      string     `json:"pdf_url,omitempty"`
	URL         string     `json:"url,omitempty"`
	Cover       string     `json:"cover,omitempty"`
	Pages       []jsonPage `json:"pages,omitempty"`
}

type jsonPage struct {
	Page    string `json:"page"`
	Snippet string `json:"snippet"`
}

// jsonOutput is the JSON form of a search.
type jsonOutput struct {
	Query             string       `json:"query"`
	StartYear         int          `json:"start_year"`
	EndYear           int          `json:"end_year"`
	Total             *int         `json:"total"`
	CorrectedVariants []string     `json:"corrected_variants,omitempty"`
	Types             []string     `json:"types"`
	SelectedTypes     []string     `json:"selected_types,omitempty"`
	Results           []jsonResult `json:"results"`
}

func outputSearchJSON(cmd *cobra.Command, view driving.SessionView) error {
	out := jsonOutput{
		Query:             view.Query,
		StartYear:         view.Years.Start,
		EndYear:           view.Years.End,
		Total:             view.Total,
		CorrectedVariants: view.CorrectedVariants,
		Types:             make([]string, 0, len(view.Facets)),
		Results:           make([]jsonResult, 0, len(view.Results)),
	}
	for _, f := range view.Facets {
		out.Types = append(out.Types, f.Name)
		if f.Selected {
			out.SelectedTypes = append(out.SelectedTypes, f.Name)
		}
	}
	for i := range view.Results {
		doc := view.Results[i].Document
		r := jsonResult{
			Key:         view.Results[i].Key,
			ID:          doc.ID,
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
			Cover:       doc.CoverImage(),
		}
		for _, p := range doc.MatchedPages {
			r.Pages = append(r.Pages, jsonPage{Page: p.PageLabel(), Snippet: p.Snippet})
		}
		out.Results = append(out.Results, r)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// resultPrinter writes search results as text.
type resultPrinter struct {
	w         io.Writer
	formatter driving.SnippetFormatter
	full      bool
	highlight lipgloss.Style
	muted     lipgloss.Style
	color     bool
}

func newResultPrinter(w io.Writer, formatter driving.SnippetFormatter, full bool) *resultPrinter {
	return &resultPrinter{
		w:         w,
		formatter: formatter,
		full:      full,
		highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		color:     isTerminal(w),
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *resultPrinter) print(view driving.SessionView) {
	if view.Total != nil {
		line := fmt.Sprintf("Found %d matches", *view.Total)
		if len(view.Results) != *view.Total {
			line += fmt.Sprintf(" (%d shown)", len(view.Results))
		}
		fmt.Fprintln(p.w, line)
	}
	if len(view.CorrectedVariants) > 0 {
		fmt.Fprintf(p.w, "Also searched: %s\n", strings.Join(view.CorrectedVariants, ", "))
	}
	if len(view.Facets) > 0 {
		names := make([]string, 0, len(view.Facets))
		for _, f := range view.Facets {
			mark := "[ ]"
			if f.Selected {
				mark = "[x]"
			}
			names = append(names, mark+" "+f.Name)
		}
		fmt.Fprintf(p.w, "Types: %s\n", strings.Join(names, "  "))
	}

	if len(view.Results) == 0 {
		fmt.Fprintln(p.w, "No results found.")
		return
	}

	fmt.Fprintln(p.w)
	for i := range view.Results {
		p.printResult(i+1, &view.Results[i])
	}
}

func (p *resultPrinter) printResult(n int, rv *driving.ResultView) {
	doc := rv.Document
	fmt.Fprintf(p.w, "[%d] %s\n", n, doc.DisplayTitle())

	badges := doc.Badges()
	if doc.PathIndex != "" {
		badges = append(badges, doc.PathIndex)
	}
	if len(badges) > 0 {
		fmt.Fprintf(p.w, "    %s\n", p.dim(strings.Join(badges, " | ")))
	}
	if doc.BookName != "" && doc.BookName != doc.Title {
		fmt.Fprintf(p.w, "    Book: %s\n", doc.BookName)
	}
	if doc.Description != "" {
		fmt.Fprintf(p.w, "    %s\n", doc.Description)
	}

	for j, sn := range rv.Snippets {
		markup := sn.Markup
		if p.full {
			markup = doc.MatchedPages[j].Snippet
		}
		fmt.Fprintf(p.w, "    p. %s: %s\n", sn.Page, p.render(markup))
	}

	if link := doc.OpenableURL(); link != "" {
		fmt.Fprintf(p.w, "    %s\n", p.dim(link))
	}
	if rv.Likeable {
		fmt.Fprintf(p.w, "    %s\n", p.dim("id: "+doc.ID))
	}
	fmt.Fprintln(p.w)
}

// render flattens markup, styling highlights on a terminal.
func (p *resultPrinter) render(markup string) string {
	if p.formatter == nil {
		return markup
	}
	var b strings.Builder
	for _, seg := range p.formatter.Segments(markup) {
		text := strings.ReplaceAll(seg.Text, "\n", " ")
		if seg.Highlight && p.color {
			text = p.highlight.Render(text)
		}
		b.WriteString(text)
	}
	return b.String()
}

func (p *resultPrinter) dim(s string) string {
	if !p.color {
		return s
	}
	return p.muted.Render(s)
}
