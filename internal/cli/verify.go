package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/corrobora/corrobora/internal/engine"
)

var (
	quoteText     string
	quoteSource   string
	verifyClaimID string
	verifyAll     bool
	verifyOut     string
	verifyTimeout time.Duration
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify quoted evidence against the source corpus",
	Long: `Verify locates quoted passages inside extracted source documents,
tolerating small wording differences. A quote counts as verified when
it matches exactly or a sliding window of the document reaches the
accept threshold.

Example:
  corrobora verify --quote "batch effects remain" --source Soneson2014
  corrobora verify --claim C_12
  corrobora verify --all --json verification.json`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&quoteText, "quote", "", "quoted text to verify")
	verifyCmd.Flags().StringVar(&quoteSource, "source", "", "author-year designator of the source (e.g., Soneson2014)")
	verifyCmd.Flags().StringVar(&verifyClaimID, "claim", "", "verify every quote of one claim")
	verifyCmd.Flags().BoolVar(&verifyAll, "all", false, "verify every quote of every claim")
	verifyCmd.Flags().StringVar(&verifyOut, "json", "", "write results to a JSON file instead of stdout")
	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 5*time.Minute, "overall timeout for --all runs")
}

func runVerify(cmd *cobra.Command, args []string) error {
	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	switch {
	case verifyAll:
		return runVerifyAll(eng)

	case verifyClaimID != "":
		if err := eng.LoadClaims(); err != nil {
			return fmt.Errorf("load claims: %w", err)
		}
		results, err := eng.VerifyClaim(verifyClaimID)
		if err != nil {
			return err
		}
		if verbose {
			verified := 0
			for _, r := range results {
				if r.Result.Verified {
					verified++
				}
			}
			fmt.Fprintf(os.Stderr, "✓ Verified %d/%d quotes of %s\n", verified, len(results), verifyClaimID)
		}
		return emit(verifyOut, results)

	case quoteText != "":
		if quoteSource == "" {
			return fmt.Errorf("--source is required with --quote")
		}
		result, err := eng.VerifyQuote(quoteText, quoteSource)
		if err != nil {
			return err
		}
		if verbose {
			if result.Verified {
				fmt.Fprintf(os.Stderr, "✓ Verified in %s (similarity %.2f)\n", result.SourceFile, result.Similarity)
			} else {
				fmt.Fprintf(os.Stderr, "✗ Not verified (similarity %.2f)\n", result.Similarity)
			}
		}
		return emit(verifyOut, result)

	default:
		return fmt.Errorf("nothing to verify: pass --quote with --source, --claim, or --all")
	}
}

func runVerifyAll(eng *engine.Engine) error {
	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	if err := eng.LoadClaims(); err != nil {
		return fmt.Errorf("load claims: %w", err)
	}

	report, err := eng.VerifyAll(ctx)
	if err != nil {
		return fmt.Errorf("verify all: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Checked %d quotes\n", len(report.Results))
		fmt.Fprintf(os.Stderr, "✓ Verified:   %d\n", report.Verified)
		fmt.Fprintf(os.Stderr, "✗ Failed:     %d\n", report.Failed)
		fmt.Fprintf(os.Stderr, "? Unresolved: %d\n", report.Unresolved)
	}

	return emit(verifyOut, report)
}

// emit writes a result to the requested JSON file, or stdout by default
func emit(path string, v interface{}) error {
	if path != "" {
		if err := writeJSON(path, v); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", path)
		}
		return nil
	}
	return printJSON(v)
}
