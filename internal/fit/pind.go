package fit

import (
	"fmt"

	"github.com/harborsight/crewfit/internal/profile"
	"github.com/harborsight/crewfit/internal/stats"
)

const (
	gcaWeight   = 0.60
	conscWeight = 0.40

	fallbackTraitMedian = 50.0
)

// PIndResult is the individual-performance prediction for one candidate.
type PIndResult struct {
	Score             float64      `json:"score"`
	GCA               FactorDetail `json:"gca"`
	Conscientiousness FactorDetail `json:"conscientiousness"`
	ExperienceYears   *float64     `json:"experience_years,omitempty"`
	DataQuality       float64      `json:"data_quality"`
	Flags             []string     `json:"flags"`
	FormulaSnapshot   string       `json:"formula_snapshot"`
}

// PInd combines cognitive ability and conscientiousness into one
// performance score: P_ind = 0.60*GCA + 0.40*Conscientiousness, rounded to
// one decimal. Missing sources fall back to the population median and cost
// data quality.
func (s *Scorer) PInd(snap profile.Snapshot, experienceYears *float64) PIndResult {
	res := PIndResult{
		ExperienceYears: experienceYears,
		DataQuality:     1.0,
		Flags:           []string{},
	}

	if snap.GCAScore != nil {
		res.GCA = FactorDetail{Value: *snap.GCAScore, Source: "snapshot.gca_score"}
	} else {
		res.GCA = FactorDetail{Value: fallbackTraitMedian, Source: "fallback_median", Fallback: true}
		res.Flags = append(res.Flags, FlagGCAMissing)
		res.DataQuality -= s.cfg.GCAMissingPenalty
	}

	if snap.BigFive != nil && snap.BigFive.Conscientiousness != nil {
		res.Conscientiousness = FactorDetail{Value: *snap.BigFive.Conscientiousness, Source: "big_five.conscientiousness"}
	} else {
		res.Conscientiousness = FactorDetail{Value: fallbackTraitMedian, Source: "fallback_median", Fallback: true}
		res.Flags = append(res.Flags, FlagBigFiveMissing)
		res.DataQuality -= s.cfg.BigFiveMissingPenalty
	}
	res.DataQuality = stats.Clamp(res.DataQuality, 0, 1)

	raw := gcaWeight*res.GCA.Value + conscWeight*res.Conscientiousness.Value
	raw = s.exp.Adjust(raw, experienceYears)
	res.Score = stats.ClampScore(stats.Round1(raw))

	res.FormulaSnapshot = fmt.Sprintf("P_ind = %.2f*%.1f + %.2f*%.1f = %.1f",
		gcaWeight, res.GCA.Value, conscWeight, res.Conscientiousness.Value, res.Score)

	return res
}
