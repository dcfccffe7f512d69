package fit

import (
	"fmt"

	"github.com/harborsight/crewfit/internal/profile"
	"github.com/harborsight/crewfit/internal/stats"
)

// Equilibrium statuses for the JD-R ratio.
const (
	EquilibriumBurnoutRisk = "BURNOUT_RISK"
	EquilibriumBalanced    = "BALANCED"
	EquilibriumComfortable = "COMFORTABLE"
)

// Resilience source tags.
const (
	SourceSnapshotResilience = "snapshot.resilience"
	SourceEmotionalStability = "big_five.emotional_stability"
	SourceFallbackMedian     = "fallback_median"
)

// FEnvResult is the environment-fit prediction for one candidate on one
// vessel, per the Job Demands-Resources model.
type FEnvResult struct {
	Score           float64      `json:"score"`
	JDRRatio        float64      `json:"jdr_ratio"`
	CappedRatio     float64      `json:"capped_ratio"`
	Resources       float64      `json:"resources"`
	Demands         float64      `json:"demands"`
	Resilience      FactorDetail `json:"resilience"`
	Equilibrium     string       `json:"equilibrium"`
	DataQuality     float64      `json:"data_quality"`
	Flags           []string     `json:"flags"`
	FormulaSnapshot string       `json:"formula_snapshot"`
}

// FEnv scores how well a candidate tolerates a vessel's demand/resource
// balance: score = min(R/D, cap) * resilience. A nil vessel degrades (zeroed
// environment, NO_VESSEL_PARAMS flag) rather than erroring; a resilience of
// 0 forces the score to 0 regardless of how comfortable the vessel is.
func (s *Scorer) FEnv(snap profile.Snapshot, vessel *profile.VesselParams) FEnvResult {
	res := FEnvResult{
		DataQuality: 1.0,
		Flags:       []string{},
	}

	if vessel == nil {
		vessel = &profile.VesselParams{}
		res.Flags = append(res.Flags, FlagNoVesselParams)
		res.DataQuality -= s.cfg.VesselMissingPenalty
	}

	res.Resources = (vessel.SalaryIndex + vessel.RestDaysRatio + vessel.PrivateCabinRatio) / 3
	res.Demands = (vessel.CharterIntensity + vessel.ManagementPressure) / 2

	switch {
	case res.Demands > 0:
		res.JDRRatio = res.Resources / res.Demands
	case res.Resources > 0:
		// All resources, no demands: as comfortable as the model can say.
		res.JDRRatio = s.cfg.JDRRatioCap
	default:
		// No environment signal either way; the score rides on resilience.
		res.JDRRatio = 1.0
	}
	res.CappedRatio = stats.Clamp(res.JDRRatio, 0, s.cfg.JDRRatioCap)

	res.Resilience = s.resolveResilience(snap)
	if res.Resilience.Value < s.cfg.ResilienceLow {
		res.Flags = append(res.Flags, FlagLowResilience)
	}

	switch {
	case res.JDRRatio < s.cfg.BurnoutRiskRatio:
		res.Equilibrium = EquilibriumBurnoutRisk
		res.Flags = append(res.Flags, FlagBurnoutRisk)
	case res.JDRRatio >= s.cfg.ComfortRatio:
		res.Equilibrium = EquilibriumComfortable
	default:
		res.Equilibrium = EquilibriumBalanced
	}

	res.DataQuality = stats.Clamp(res.DataQuality, 0, 1)
	res.Score = stats.ClampScore(res.CappedRatio * (res.Resilience.Value / 100) * 100)

	res.FormulaSnapshot = fmt.Sprintf("F_env = min(%.2f, %.2f) * (%.1f/100) * 100 = %.1f",
		res.JDRRatio, s.cfg.JDRRatioCap, res.Resilience.Value, res.Score)

	return res
}

// resolveResilience walks the fallback chain: explicit resilience, then
// emotional stability, then its inverse-neuroticism derivation, then the
// population median.
func (s *Scorer) resolveResilience(snap profile.Snapshot) FactorDetail {
	if snap.Resilience != nil {
		return FactorDetail{Value: *snap.Resilience, Source: SourceSnapshotResilience}
	}
	if snap.BigFive != nil {
		if snap.BigFive.EmotionalStability != nil {
			return FactorDetail{Value: *snap.BigFive.EmotionalStability, Source: SourceEmotionalStability}
		}
		if snap.BigFive.Neuroticism != nil {
			return FactorDetail{Value: 100 - *snap.BigFive.Neuroticism, Source: SourceEmotionalStability, Fallback: true}
		}
	}
	return FactorDetail{Value: fallbackTraitMedian, Source: SourceFallbackMedian, Fallback: true}
}
