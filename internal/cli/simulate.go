package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <request.json>",
	Short: "Simulate the team impact of hiring a candidate",
	Long: `Reads the same JSON request as 'score' and prints the what-if
impact report: the predicted success score plus before/after team
metric deltas and their derived flags.`,
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

		zl.Debug("simulating impact", zap.Int("crew_size", len(req.Crew)))
		return printJSON(eng.SimulateImpact(req.toInput()))
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
