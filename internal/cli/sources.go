package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	sourcesCoverage bool
	sourcesShow     string
	sourcesOut      string
)

// sourcesCmd represents the sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the source corpus",
	Long: `Sources lists the corpus files, reports which cited sources resolve
to a file, or prints the extracted text of one source.

Example:
  corrobora sources
  corrobora sources --coverage
  corrobora sources --show Soneson2014`,
	RunE: runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)

	sourcesCmd.Flags().BoolVar(&sourcesCoverage, "coverage", false, "cross-check cited sources against the corpus")
	sourcesCmd.Flags().StringVar(&sourcesShow, "show", "", "print the text of the source matching this author-year")
	sourcesCmd.Flags().StringVar(&sourcesOut, "json", "", "write results to a JSON file instead of stdout")
}

func runSources(cmd *cobra.Command, args []string) error {
	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	switch {
	case sourcesShow != "":
		name, text, err := eng.SourceText(sourcesShow)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Resolved %s to %s\n", sourcesShow, name)
		}
		fmt.Println(text)
		return nil

	case sourcesCoverage:
		if err := eng.LoadClaims(); err != nil {
			return fmt.Errorf("load claims: %w", err)
		}
		statuses, err := eng.SourceCoverage()
		if err != nil {
			return err
		}
		if verbose {
			available := 0
			for _, s := range statuses {
				if s.Available {
					available++
				}
			}
			fmt.Fprintf(os.Stderr, "✓ %d/%d cited sources available in the corpus\n", available, len(statuses))
			for _, s := range statuses {
				mark := "✗"
				if s.Available {
					mark = "✓"
				}
				fmt.Fprintf(os.Stderr, "  %s %s (%d claims)\n", mark, s.Source, s.ClaimCount)
			}
		}
		return emit(sourcesOut, statuses)

	default:
		files, err := eng.SourceFiles()
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %d corpus files\n", len(files))
		}
		return emit(sourcesOut, files)
	}
}
