// Package calibration centralizes every tunable constant of the scoring
// engine: fallback values, degradation penalties, threshold cutoffs and the
// versioned beta weights of the master combiner. Keeping them in one place
// keeps tuning testable in isolation and lets operators recalibrate from a
// config file without a rebuild.
package calibration

import (
	"math"

	"github.com/spf13/viper"

	apperrors "github.com/harborsight/crewfit/internal/errors"
)

// Thresholds holds the named cutoffs and penalties used by the scoring
// components. Zero values are never meaningful; always start from Default().
type Thresholds struct {
	// F_env (JD-R model)
	JDRRatioCap      float64 `mapstructure:"jdr_ratio_cap"`
	BurnoutRiskRatio float64 `mapstructure:"burnout_risk_ratio"`
	ComfortRatio     float64 `mapstructure:"comfort_ratio"`
	ResilienceLow    float64 `mapstructure:"resilience_low"`

	// F_lmx distance bands (normalized distance in [0,1])
	ExcellentDistance float64 `mapstructure:"excellent_distance"`
	HighDistance      float64 `mapstructure:"high_distance"`
	CriticalDistance  float64 `mapstructure:"critical_distance"`
	DimensionGap      float64 `mapstructure:"dimension_gap"`

	// data_quality penalties for missing optional inputs
	GCAMissingPenalty     float64 `mapstructure:"gca_missing_penalty"`
	BigFiveMissingPenalty float64 `mapstructure:"big_five_missing_penalty"`
	VesselMissingPenalty  float64 `mapstructure:"vessel_missing_penalty"`
	CaptainMissingPenalty float64 `mapstructure:"captain_missing_penalty"`

	// Trait scorer reliability checks
	ExtremeAnswerBias     float64 `mapstructure:"extreme_answer_bias"`
	MinSecondsPerQuestion float64 `mapstructure:"min_seconds_per_question"`
}

// Betas are the master combiner weights, externally recalibratable.
type Betas struct {
	PInd  float64 `mapstructure:"p_ind"`
	FTeam float64 `mapstructure:"f_team"`
	FEnv  float64 `mapstructure:"f_env"`
	FLmx  float64 `mapstructure:"f_lmx"`
}

// Sum returns the total of all betas.
func (b Betas) Sum() float64 { return b.PInd + b.FTeam + b.FEnv + b.FLmx }

// Normalized returns the betas scaled to sum to 1. A zero or negative sum
// falls back to the equal-weighted default.
func (b Betas) Normalized() Betas {
	s := b.Sum()
	if s <= 0 {
		return DefaultModel().Betas
	}
	return Betas{PInd: b.PInd / s, FTeam: b.FTeam / s, FEnv: b.FEnv / s, FLmx: b.FLmx / s}
}

// Model names one recalibration of the combiner betas.
type Model struct {
	Version string `mapstructure:"version"`
	Betas   Betas  `mapstructure:"betas"`
}

// Config is the full engine calibration.
type Config struct {
	Thresholds Thresholds `mapstructure:"thresholds"`
	Model      Model      `mapstructure:"model"`
}

// Default returns the canonical calibration.
func Default() *Config {
	return &Config{
		Thresholds: DefaultThresholds(),
		Model:      DefaultModel(),
	}
}

// DefaultThresholds returns the canonical threshold set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		JDRRatioCap:      2.0,
		BurnoutRiskRatio: 0.8,
		ComfortRatio:     1.2,
		ResilienceLow:    40,

		ExcellentDistance: 0.20,
		HighDistance:      0.45,
		CriticalDistance:  0.65,
		DimensionGap:      0.30,

		GCAMissingPenalty:     0.35,
		BigFiveMissingPenalty: 0.25,
		VesselMissingPenalty:  0.40,
		CaptainMissingPenalty: 0.30,

		ExtremeAnswerBias:     0.70,
		MinSecondsPerQuestion: 2.0,
	}
}

// DefaultModel returns the equal-weighted combiner model.
func DefaultModel() Model {
	return Model{
		Version: "equal-v1",
		Betas:   Betas{PInd: 0.25, FTeam: 0.25, FEnv: 0.25, FLmx: 0.25},
	}
}

// Load reads a calibration file, layering it over the defaults so a partial
// file only overrides what it names. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, apperrors.NewConfigurationError("reading calibration file", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.NewConfigurationError("decoding calibration file", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	t := c.Thresholds
	switch {
	case c.Model.Betas.Sum() <= 0:
		return apperrors.NewConfigurationError("model betas must have a positive sum", nil)
	case t.JDRRatioCap <= 0:
		return apperrors.NewConfigurationError("jdr_ratio_cap must be positive", nil)
	case t.BurnoutRiskRatio > t.ComfortRatio:
		return apperrors.NewConfigurationError("burnout_risk_ratio must not exceed comfort_ratio", nil)
	case t.HighDistance > t.CriticalDistance:
		return apperrors.NewConfigurationError("high_distance must not exceed critical_distance", nil)
	}
	for _, p := range []float64{t.GCAMissingPenalty, t.BigFiveMissingPenalty, t.VesselMissingPenalty, t.CaptainMissingPenalty} {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return apperrors.NewConfigurationError("penalties must be in [0,1]", nil)
		}
	}
	return nil
}
