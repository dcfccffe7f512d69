package predict

import (
	"github.com/harborsight/crewfit/internal/team"
)

// Confidence labels on data completeness.
const (
	ConfidenceHigh   = "HIGH - reliable prediction"
	ConfidenceMedium = "MEDIUM - partial data"
	ConfidenceLow    = "LOW - complete the profile first"
)

const (
	confidenceHighFloor   = 0.85
	confidenceMediumFloor = 0.60
)

// ImpactReport is the before/after what-if analysis of hiring a candidate.
type ImpactReport struct {
	YSuccessPredicted float64 `json:"y_success_predicted"`
	PInd              float64 `json:"p_ind"`
	FTeam             float64 `json:"f_team"`
	FEnv              float64 `json:"f_env"`
	FLmx              float64 `json:"f_lmx"`

	FTeamDelta           float64 `json:"f_team_delta"`
	JerkFilterDelta      float64 `json:"jerk_filter_delta"`
	FaultlineRiskDelta   float64 `json:"faultline_risk_delta"`
	EmotionalBufferDelta float64 `json:"emotional_buffer_delta"`
	PerformanceDelta     float64 `json:"performance_delta"`

	Flags            []string         `json:"flags"`
	DataCompleteness float64          `json:"data_completeness"`
	ConfidenceLabel  string           `json:"confidence_label"`
	Score            RecruitmentScore `json:"score"`
	TeamDelta        team.Delta       `json:"team_delta"`
}

// SimulateImpact runs the combiner for the candidate-in-context, replays
// harmony with the candidate aboard, and folds both into one report.
func (c *Combiner) SimulateImpact(in Input) ImpactReport {
	score := c.Score(in)
	delta := team.ComputeDelta(in.Crew, in.Candidate)

	report := ImpactReport{
		YSuccessPredicted: score.YSuccess,
		PInd:              score.PInd,
		FTeam:             score.FTeam,
		FEnv:              score.FEnv,
		FLmx:              score.FLmx,

		FTeamDelta:           delta.Cohesion,
		JerkFilterDelta:      delta.MinAgreeableness,
		FaultlineRiskDelta:   delta.SigmaConscientiousness,
		EmotionalBufferDelta: delta.MeanEmotionalStability,
		PerformanceDelta:     delta.Performance,

		Flags:            append(append([]string{}, score.Flags...), delta.Flags...),
		DataCompleteness: score.Completeness,
		Score:            score,
		TeamDelta:        delta,
	}
	report.ConfidenceLabel = confidenceFor(report.DataCompleteness)

	return report
}

func confidenceFor(completeness float64) string {
	switch {
	case completeness >= confidenceHighFloor:
		return ConfidenceHigh
	case completeness >= confidenceMediumFloor:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
