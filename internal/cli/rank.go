package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/corrobora/corrobora/internal/model"
)

var (
	rankQuestion string
	rankSection  string
	rankPapers   string
	rankTop      int
	rankOut      string
	rankTimeout  time.Duration
)

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidate papers by relevance to a question or outline section",
	Long: `Rank orders a set of candidate papers by semantic similarity to a
research question, with a small boost for heavily cited work. Papers
come from a JSON file of metadata records (title, abstract, citation
count, word or page count).

Example:
  corrobora rank --question "How do batch effects confound classifiers?" --papers candidates.json
  corrobora rank --section 3.2 --papers candidates.json --top 10`,
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVar(&rankQuestion, "question", "", "research question to rank against")
	rankCmd.Flags().StringVar(&rankSection, "section", "", "outline section ID to rank against")
	rankCmd.Flags().StringVar(&rankPapers, "papers", "", "JSON file with candidate paper metadata (required)")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "keep only the N most relevant papers (0 keeps all)")
	rankCmd.Flags().StringVar(&rankOut, "json", "", "write results to a JSON file instead of stdout")
	rankCmd.Flags().DurationVar(&rankTimeout, "timeout", 5*time.Minute, "overall timeout")

	rankCmd.MarkFlagRequired("papers")
}

func runRank(cmd *cobra.Command, args []string) error {
	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	papers, err := loadPapers(rankPapers)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), rankTimeout)
	defer cancel()

	var ranked []model.RankedPaper
	switch {
	case rankSection != "":
		if err := eng.LoadOutline(); err != nil {
			return fmt.Errorf("load outline: %w", err)
		}
		ranked, err = eng.RankForSection(ctx, rankSection, papers)
	case rankQuestion != "":
		ranked, err = eng.RankPapers(ctx, rankQuestion, papers)
	default:
		return fmt.Errorf("nothing to rank against: pass --question or --section")
	}
	if err != nil {
		return err
	}

	if rankTop > 0 && rankTop < len(ranked) {
		ranked = ranked[:rankTop]
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Ranked %d papers\n", len(ranked))
		for i, paper := range ranked {
			fmt.Fprintf(os.Stderr, "  %2d. %.3f  %s (~%d min)\n",
				i+1, paper.RelevanceScore, paper.Paper.Title, paper.EstimatedReadingTime)
		}
	}
	return emit(rankOut, ranked)
}

// loadPapers reads candidate paper metadata from a JSON file.
func loadPapers(path string) ([]model.PaperMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read papers file: %w", err)
	}
	var papers []model.PaperMetadata
	if err := json.Unmarshal(data, &papers); err != nil {
		return nil, fmt.Errorf("parse papers file %s: %w", path, err)
	}
	return papers, nil
}
