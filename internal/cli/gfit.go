package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborsight/crewfit/internal/profile"
)

var gfitCmd = &cobra.Command{
	Use:   "gfit <competencies.json>",
	Short: "Aggregate SME competency scores into a global fit score",
	Long: `Reads a JSON map of competency key to {score, weight?, data_quality?}
and prints the weighted G_fit aggregate with its per-competency
contributions and formula snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		eng, zl, err := newEngine()
		if err != nil {
			return err
		}
		defer func() { _ = zl.Sync() }()

		var competencies map[string]profile.CompetencyScore
		if err := readJSONFile(args[0], &competencies); err != nil {
			return err
		}

		scores := make(map[string]float64, len(competencies))
		weights := make(map[string]float64)
		quality := make(map[string]float64)
		for key, c := range competencies {
			if err := profile.Validate(&c); err != nil {
				return fmt.Errorf("competency %q: %w", key, err)
			}
			scores[key] = c.Score
			if c.Weight != nil {
				weights[key] = *c.Weight
			}
			if c.DataQuality != nil {
				quality[key] = *c.DataQuality
			}
		}

		return printJSON(eng.GlobalFit(scores, weights, quality))
	},
}

func init() {
	rootCmd.AddCommand(gfitCmd)
}
