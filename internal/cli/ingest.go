package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corrobora/corrobora/internal/ingest"
)

var (
	ingestAuthors string
	ingestYear    int
	ingestTitle   string
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Convert a document into a corpus text file",
	Long: `Ingest extracts plain text from a PDF, HTML, or text document and
writes it into the corpus directory under the standard
"Authors - Year - Title.txt" naming, so verification can resolve it
by author-year.

Example:
  corrobora ingest paper.pdf --authors "Soneson et al." --year 2014 --title "Batch Effect Confounding"`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&ingestAuthors, "authors", "", "author segment of the corpus filename (required)")
	ingestCmd.Flags().IntVar(&ingestYear, "year", 0, "publication year (required)")
	ingestCmd.Flags().StringVar(&ingestTitle, "title", "", "title segment of the corpus filename (required)")

	ingestCmd.MarkFlagRequired("authors")
	ingestCmd.MarkFlagRequired("year")
	ingestCmd.MarkFlagRequired("title")
}

func runIngest(cmd *cobra.Command, args []string) error {
	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	name, err := eng.Ingest(ingest.Request{
		Path:    args[0],
		Authors: ingestAuthors,
		Year:    ingestYear,
		Title:   ingestTitle,
	})
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Ingested %s\n", args[0])
	}
	fmt.Println(name)
	return nil
}
