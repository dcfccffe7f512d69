// Package cli implements the crewfit command line: a local evaluation tool
// that runs the scoring engine over JSON input files. It is not a network
// service; routing, persistence and authentication live in the calling
// platform.
package cli

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/harborsight/crewfit/internal/calibration"
	"github.com/harborsight/crewfit/internal/engine"
	apperrors "github.com/harborsight/crewfit/internal/errors"
	"github.com/harborsight/crewfit/internal/logger"
)

const app = "crewfit"

var (
	// Used for flags.
	calibrationFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "crewfit scores crew-recruitment decisions for yachts",
		Long: `crewfit computes compatibility and performance predictions for
crew-recruitment decisions: individual/team/environment/leadership fit,
percentile benchmarks and what-if hiring impact reports.`,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&calibrationFile, "calibration", "", "calibration file overriding the built-in thresholds and model betas")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Fatalf("binding debug flag: %v", err)
	}
	if err := viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json")); err != nil {
		log.Fatalf("binding json flag: %v", err)
	}
	if err := viper.BindEnv("calibration", "CREWFIT_CALIBRATION"); err != nil {
		log.Fatalf("binding CREWFIT_CALIBRATION environment variable: %v", err)
	}
}

// newEngine builds the logger, loads calibration and wires the engine.
func newEngine() (*engine.Engine, *zap.Logger, error) {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, nil, apperrors.NewInternalError("building logger", err)
	}

	path := calibrationFile
	if path == "" {
		path = viper.GetString("calibration")
	}

	cfg, err := calibration.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if path != "" {
		zl.Debug("loaded calibration", zap.String("path", path), zap.String("model", cfg.Model.Version))
	}

	return engine.New(cfg, engine.WithLogger(zl)), zl, nil
}
