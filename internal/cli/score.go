package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	scoreClaimID string
	scoreIDs     []string
	scoreAll     bool
	weakOnly     bool
	minSources   int
	scoreOut     string
	scoreTimeout time.Duration
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score how strongly claims are corroborated",
	Long: `Score embeds claims and partitions semantically similar claims from
other sources into supporting and contradictory sets. The strength
score grows with the number of independent supporters, linearly up to
three and logarithmically beyond.

Needs an embedding provider (see 'corrobora config show').

Example:
  corrobora score --claim C_12
  corrobora score --all
  corrobora score --ids C_1,C_2,C_3 --json strength.json
  corrobora score --weak --min-sources 2`,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVar(&scoreClaimID, "claim", "", "score one claim")
	scoreCmd.Flags().StringSliceVar(&scoreIDs, "ids", nil, "score a comma-separated list of claims")
	scoreCmd.Flags().BoolVar(&scoreAll, "all", false, "score every loaded claim")
	scoreCmd.Flags().BoolVar(&weakOnly, "weak", false, "list only weakly corroborated claims")
	scoreCmd.Flags().IntVar(&minSources, "min-sources", 2, "independent supporters required before a claim stops counting as weak")
	scoreCmd.Flags().StringVar(&scoreOut, "json", "", "write results to a JSON file instead of stdout")
	scoreCmd.Flags().DurationVar(&scoreTimeout, "timeout", 5*time.Minute, "overall timeout")
}

func runScore(cmd *cobra.Command, args []string) error {
	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), scoreTimeout)
	defer cancel()

	if err := eng.LoadClaims(); err != nil {
		return fmt.Errorf("load claims: %w", err)
	}

	switch {
	case weakOnly:
		weak, err := eng.WeakClaims(ctx, minSources)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %d claims below %d independent supporters\n", len(weak), minSources)
		}
		return emit(scoreOut, weak)

	case scoreClaimID != "":
		strength, err := eng.ScoreClaim(ctx, scoreClaimID)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s: strength %.3f (%d supporting, %d contradictory)\n",
				strength.ClaimID, strength.StrengthScore,
				len(strength.SupportingClaims), len(strength.ContradictoryClaims))
		}
		return emit(scoreOut, strength)

	case scoreAll || len(scoreIDs) > 0:
		ids := scoreIDs
		if scoreAll {
			all, err := eng.Claims()
			if err != nil {
				return err
			}
			ids = make([]string, len(all))
			for i, claim := range all {
				ids[i] = claim.ID
			}
		}
		results, err := eng.ScoreClaims(ctx, ids)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Scored %d claims\n", len(results))
		}
		return emit(scoreOut, results)

	default:
		return fmt.Errorf("nothing to score: pass --claim, --ids, --all, or --weak")
	}
}
