// Package fit computes the per-candidate fit factors: individual
// performance (P_ind), environment fit (F_env), leadership fit (F_lmx) and
// the profile-vs-position global fit (G_fit). Every function is pure and
// degrades gracefully: missing optional inputs lower data_quality and add a
// flag instead of erroring.
package fit

import (
	"github.com/harborsight/crewfit/internal/calibration"
)

// Flags shared across factors.
const (
	FlagGCAMissing        = "GCA_MISSING"
	FlagBigFiveMissing    = "BIG_FIVE_MISSING"
	FlagNoVesselParams    = "NO_VESSEL_PARAMS"
	FlagLowResilience     = "LOW_RESILIENCE"
	FlagBurnoutRisk       = "BURNOUT_RISK"
	FlagCaptainIncomplete = "CAPTAIN_DATA_INCOMPLETE"
	FlagLMXCritical       = "LMX_CRITICAL"
	FlagNoSMEScores       = "NO_SME_SCORES"
	FlagZeroWeights       = "ZERO_WEIGHTS"
)

// FactorDetail records where one formula input came from, for audit.
type FactorDetail struct {
	Value    float64 `json:"value"`
	Source   string  `json:"source"`
	Fallback bool    `json:"fallback"`
}

// Scorer evaluates the fit factors under one calibration. The preference
// and experience policies are injectable so their mappings can be
// recalibrated without touching the distance and weighting machinery.
type Scorer struct {
	cfg   calibration.Thresholds
	prefs PreferencePolicy
	exp   ExperiencePolicy
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithPreferencePolicy overrides the Big-Five leadership-preference mapping.
func WithPreferencePolicy(p PreferencePolicy) Option {
	return func(s *Scorer) { s.prefs = p }
}

// WithExperiencePolicy overrides the P_ind experience adjustment.
func WithExperiencePolicy(p ExperiencePolicy) Option {
	return func(s *Scorer) { s.exp = p }
}

// NewScorer builds a Scorer with the default policies.
func NewScorer(cfg calibration.Thresholds, opts ...Option) *Scorer {
	s := &Scorer{
		cfg:   cfg,
		prefs: BigFivePreferencePolicy{},
		exp:   NoExperienceBonus{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
