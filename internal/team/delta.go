package team

import "github.com/harborsight/crewfit/internal/profile"

// Delta flags.
const (
	FlagJerkFilterTriggered = "JERK_FILTER_TRIGGERED"
	FlagFaultlineRisk       = "FAULTLINE_RISK"
	FlagCohesionDrop        = "COHESION_DROP"
	FlagCohesionBoost       = "COHESION_BOOST"
)

const (
	faultlineSigmaRise = 5.0
	cohesionDropLimit  = -10.0
	cohesionBoostFloor = 5.0
)

// Delta reports how team metrics move when a candidate is appended to the
// crew. Positive values mean the metric rises with the candidate aboard.
type Delta struct {
	Before HarmonyResult `json:"before"`
	After  HarmonyResult `json:"after"`

	Cohesion               float64 `json:"cohesion"`
	MinAgreeableness       float64 `json:"min_agreeableness"`
	SigmaConscientiousness float64 `json:"sigma_conscientiousness"`
	MeanEmotionalStability float64 `json:"mean_emotional_stability"`
	Performance            float64 `json:"performance"`

	Flags []string `json:"flags"`
}

// ComputeDelta runs Harmony on the crew as-is and again with the candidate
// appended, and derives the directional flags.
func ComputeDelta(crew []profile.Snapshot, candidate profile.Snapshot) Delta {
	before := Harmony(crew)
	after := Harmony(append(append([]profile.Snapshot(nil), crew...), candidate))

	d := Delta{
		Before:                 before,
		After:                  after,
		Cohesion:               after.Cohesion - before.Cohesion,
		MinAgreeableness:       after.MinAgreeableness - before.MinAgreeableness,
		SigmaConscientiousness: after.SigmaConscientiousness - before.SigmaConscientiousness,
		MeanEmotionalStability: after.MeanEmotionalStability - before.MeanEmotionalStability,
		Performance:            after.Performance - before.Performance,
		Flags:                  []string{},
	}

	if isNewAgreeablenessMinimum(candidate, before) {
		d.Flags = append(d.Flags, FlagJerkFilterTriggered)
	}
	if d.SigmaConscientiousness > faultlineSigmaRise {
		d.Flags = append(d.Flags, FlagFaultlineRisk)
	}
	if d.Cohesion < cohesionDropLimit {
		d.Flags = append(d.Flags, FlagCohesionDrop)
	}
	if d.Cohesion > cohesionBoostFloor {
		d.Flags = append(d.Flags, FlagCohesionBoost)
	}

	return d
}

func isNewAgreeablenessMinimum(candidate profile.Snapshot, before HarmonyResult) bool {
	if candidate.BigFive == nil || candidate.BigFive.Agreeableness == nil {
		return false
	}
	if before.CrewSize < 2 {
		return false
	}
	return *candidate.BigFive.Agreeableness < before.MinAgreeableness
}
