package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	searchAuthor string
	searchOut    string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the corpus for lines matching a phrase",
	Long: `Search scans every corpus file for lines containing the query, or
sharing at least 70% of its words when no exact match exists. Useful
for locating where a quote actually lives before pinning it to a
claim.

Example:
  corrobora search "batch effects remain a major concern"
  corrobora search --author Soneson2014 "confounding"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchAuthor, "author", "", "restrict the search to sources matching this author-year")
	searchCmd.Flags().StringVar(&searchOut, "json", "", "write results to a JSON file instead of stdout")
}

func runSearch(cmd *cobra.Command, args []string) error {
	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	matches, err := eng.SearchQuotes(args[0], searchAuthor)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d matching lines\n", len(matches))
		for _, m := range matches {
			fmt.Fprintf(os.Stderr, "  %.2f  %s:%d\n", m.Similarity, m.SourceFile, m.LineNumber)
		}
	}
	return emit(searchOut, matches)
}
