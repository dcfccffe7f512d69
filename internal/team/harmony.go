// Package team aggregates crew trait vectors into performance and cohesion
// metrics, and simulates how those metrics move when a candidate joins.
package team

import (
	"github.com/harborsight/crewfit/internal/profile"
	"github.com/harborsight/crewfit/internal/stats"
)

const (
	// neutralTrait stands in for a trait vector with no data at all.
	neutralTrait = 50.0

	// frictionSigmaFloor is the conscientiousness spread tolerated before
	// the friction penalty kicks in.
	frictionSigmaFloor = 10.0
	frictionSlope      = 2.0

	cohesionBaseline = 20.0

	harmonyTraitCount = 4
)

// FlagInsufficientCrew marks a crew too small to carry any team signal.
const FlagInsufficientCrew = "INSUFFICIENT_CREW"

// HarmonyResult holds the team-level aggregates. All trait metrics are in
// [0,100]; DataQuality is the fraction of trait values actually present.
type HarmonyResult struct {
	Performance            float64 `json:"performance"`
	Cohesion               float64 `json:"cohesion"`
	MinAgreeableness       float64 `json:"min_agreeableness"`
	SigmaConscientiousness float64 `json:"sigma_conscientiousness"`
	MeanEmotionalStability float64 `json:"mean_emotional_stability"`
	MeanGCA                float64 `json:"mean_gca"`
	FrictionPenalty        float64 `json:"friction_penalty"`
	DataQuality            float64 `json:"data_quality"`
	CrewSize               int     `json:"crew_size"`
}

// Harmony aggregates a crew of snapshots. Fewer than two members carry no
// team signal, so the result stays all-zero rather than erroring.
func Harmony(crew []profile.Snapshot) HarmonyResult {
	if len(crew) < 2 {
		return HarmonyResult{CrewSize: len(crew)}
	}

	gca := traitVector(crew, func(s profile.Snapshot) *float64 { return s.GCAScore })
	consc := traitVector(crew, bigFiveTrait(func(b *profile.BigFive) *float64 { return b.Conscientiousness }))
	agree := traitVector(crew, bigFiveTrait(func(b *profile.BigFive) *float64 { return b.Agreeableness }))
	emoStab := traitVector(crew, bigFiveTrait(func(b *profile.BigFive) *float64 { return b.EmotionalStability }))

	res := HarmonyResult{
		MinAgreeableness:       stats.Min(agree, neutralTrait),
		SigmaConscientiousness: stats.StdDev(consc),
		MeanEmotionalStability: stats.Mean(emoStab, neutralTrait),
		MeanGCA:                stats.Mean(gca, neutralTrait),
		CrewSize:               len(crew),
	}

	res.Performance = stats.ClampScore(0.6*res.MeanGCA + 0.4*stats.Mean(consc, neutralTrait))

	// A single highly disagreeable member or a wide spread in standards
	// depresses cohesion disproportionately.
	res.FrictionPenalty = frictionSlope * (res.SigmaConscientiousness - frictionSigmaFloor)
	if res.FrictionPenalty < 0 {
		res.FrictionPenalty = 0
	}
	res.Cohesion = stats.ClampScore(
		0.4*res.MinAgreeableness + 0.4*res.MeanEmotionalStability - res.FrictionPenalty + cohesionBaseline)

	present := len(gca) + len(consc) + len(agree) + len(emoStab)
	res.DataQuality = float64(present) / float64(harmonyTraitCount*len(crew))

	return res
}

func traitVector(crew []profile.Snapshot, get func(profile.Snapshot) *float64) []float64 {
	out := make([]float64, 0, len(crew))
	for _, s := range crew {
		if p := get(s); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func bigFiveTrait(get func(*profile.BigFive) *float64) func(profile.Snapshot) *float64 {
	return func(s profile.Snapshot) *float64 {
		if s.BigFive == nil {
			return nil
		}
		return get(s.BigFive)
	}
}
