package fit

import (
	"fmt"
	"math"

	"github.com/harborsight/crewfit/internal/profile"
	"github.com/harborsight/crewfit/internal/stats"
)

// Compatibility labels on the normalized captain-crew distance.
const (
	CompatibilityExcellent = "EXCELLENT"
	CompatibilityGood      = "GOOD"
	CompatibilityTension   = "TENSION"
	CompatibilityCritical  = "CRITICAL"
)

// Per-dimension gap directions.
const (
	GapCaptainMore = "CAPTAIN_MORE"
	GapCrewMore    = "CREW_MORE"
)

// Crew preference source tags.
const (
	SourceLeadershipPrefs = "leadership_preferences"
	SourceDerivedBigFive  = "derived_big_five"
	SourceFallbackNeutral = "fallback_neutral"
)

var lmxDimensionNames = [3]string{"autonomy", "feedback", "structure"}

// Equal weights over the three dimensions give d_max = 1: vectors at
// opposite corners of the unit cube are exactly distance 1 apart.
const lmxDimensionWeight = 1.0 / 3.0

// Dimension is the gap analysis for one leadership dimension.
type Dimension struct {
	Name      string  `json:"name"`
	Captain   float64 `json:"captain"`
	Crew      float64 `json:"crew"`
	Gap       float64 `json:"gap"`
	Direction string  `json:"direction,omitempty"`
}

// FLmxResult is the leadership-fit prediction between a captain's style and
// one crew member's preference.
type FLmxResult struct {
	Score           float64      `json:"score"`
	Distance        float64      `json:"distance"`
	Compatibility   string       `json:"compatibility"`
	Dimensions      [3]Dimension `json:"dimensions"`
	CaptainVector   [3]float64   `json:"captain_vector"`
	CrewVector      [3]float64   `json:"crew_vector"`
	CrewSource      string       `json:"crew_source"`
	DataQuality     float64      `json:"data_quality"`
	Flags           []string     `json:"flags"`
	FormulaSnapshot string       `json:"formula_snapshot"`
}

// FLmx measures leadership fit as the weighted Euclidean distance between
// the captain's style vector and the crew member's preference vector.
// Identical vectors score 100; maximally opposed ones score 0.
func (s *Scorer) FLmx(snap profile.Snapshot, captain *profile.CaptainVector) FLmxResult {
	res := FLmxResult{
		DataQuality: 1.0,
		Flags:       []string{},
	}

	if captain != nil {
		res.CaptainVector = [3]float64{captain.AutonomyGiven, captain.FeedbackStyle, captain.StructureImposed}
	} else {
		res.CaptainVector = [3]float64{0.5, 0.5, 0.5}
		res.Flags = append(res.Flags, FlagCaptainIncomplete)
		res.DataQuality -= s.cfg.CaptainMissingPenalty
	}

	res.CrewVector, res.CrewSource = s.resolveCrewPreferences(snap)

	var sum float64
	for i := range res.CaptainVector {
		gap := res.CaptainVector[i] - res.CrewVector[i]
		sum += lmxDimensionWeight * gap * gap

		dim := Dimension{
			Name:    lmxDimensionNames[i],
			Captain: res.CaptainVector[i],
			Crew:    res.CrewVector[i],
			Gap:     gap,
		}
		switch {
		case gap > s.cfg.DimensionGap:
			dim.Direction = GapCaptainMore
		case gap < -s.cfg.DimensionGap:
			dim.Direction = GapCrewMore
		}
		res.Dimensions[i] = dim
	}
	res.Distance = math.Sqrt(sum)

	switch {
	case res.Distance > s.cfg.CriticalDistance:
		res.Compatibility = CompatibilityCritical
		res.Flags = append(res.Flags, FlagLMXCritical)
	case res.Distance > s.cfg.HighDistance:
		res.Compatibility = CompatibilityTension
	case res.Distance <= s.cfg.ExcellentDistance:
		res.Compatibility = CompatibilityExcellent
	default:
		res.Compatibility = CompatibilityGood
	}

	res.DataQuality = stats.Clamp(res.DataQuality, 0, 1)
	res.Score = stats.ClampScore((1 - res.Distance) * 100)

	res.FormulaSnapshot = fmt.Sprintf("F_lmx = (1 - %.3f/1.0) * 100 = %.1f", res.Distance, res.Score)

	return res
}

func (s *Scorer) resolveCrewPreferences(snap profile.Snapshot) ([3]float64, string) {
	if lp := snap.LeadershipPreferences; lp != nil {
		return [3]float64{lp.Autonomy, lp.Feedback, lp.Structure}, SourceLeadershipPrefs
	}
	if prefs, ok := s.prefs.Derive(snap.BigFive); ok {
		return prefs, SourceDerivedBigFive
	}
	return [3]float64{0.5, 0.5, 0.5}, SourceFallbackNeutral
}
