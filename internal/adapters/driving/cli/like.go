package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var likeQuery string

var likeCmd = &cobra.Command{
	Use:   "like <doc-id>",
	Short: "Mark a document as relevant to a query",
	Long: `Sends one like for a document to the search service.

The document id is printed under each result by the search command.
Failures are written to the log; the command still succeeds.

Example:
  libsearch like 5f2c9a --query "Маяковский"`,
	Args: cobra.ExactArgs(1),
	RunE: runLike,
}

func init() {
	likeCmd.Flags().StringVarP(&likeQuery, "query", "q", "", "the query that found the document")
	rootCmd.AddCommand(likeCmd)
}

func runLike(cmd *cobra.Command, args []string) error {
	id := strings.TrimSpace(args[0])
	if id == "" {
		return errEmptyDocumentID
	}

	_, svc, err := buildServices()
	if err != nil {
		return err
	}
	if svc.Likes == nil {
		return errNotWired
	}

	svc.Likes.Like(cmd.Context(), id, likeQuery)
	svc.Likes.Wait()

	cmd.Printf("Liked %s\n", id)
	return nil
}
