package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score <request.json>",
	Short: "Compute the recruitment success prediction for a candidate",
	Long: `Reads a JSON request holding the candidate snapshot, the current
crew, and optional vessel/captain data, and prints the combined
Y_success prediction with its audited factor breakdown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		eng, zl, err := newEngine()
		if err != nil {
			return err
		}
		defer func() { _ = zl.Sync() }()

		req, err := readScoreRequest(args[0])
		if err != nil {
			return err
		}

		zl.Debug("scoring candidate", zap.Int("crew_size", len(req.Crew)))
		return printJSON(eng.ScoreRecruitment(req.toInput()))
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
