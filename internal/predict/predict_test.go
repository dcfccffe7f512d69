package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborsight/crewfit/internal/calibration"
	"github.com/harborsight/crewfit/internal/fit"
	"github.com/harborsight/crewfit/internal/profile"
	"github.com/harborsight/crewfit/internal/team"
)

func fullSnapshot(gca, consc, agree, emoStab float64) profile.Snapshot {
	return profile.Snapshot{
		GCAScore:   profile.Ptr(gca),
		Resilience: profile.Ptr(emoStab),
		BigFive: &profile.BigFive{
			Conscientiousness:  profile.Ptr(consc),
			Agreeableness:      profile.Ptr(agree),
			EmotionalStability: profile.Ptr(emoStab),
		},
		LeadershipPreferences: &profile.LeadershipPreferences{Autonomy: 0.5, Feedback: 0.5, Structure: 0.5},
	}
}

func fullInput() Input {
	return Input{
		Candidate: fullSnapshot(80, 70, 65, 75),
		Crew: []profile.Snapshot{
			fullSnapshot(75, 68, 70, 72),
			fullSnapshot(65, 72, 60, 68),
		},
		Vessel: &profile.VesselParams{
			CharterIntensity:   0.5,
			ManagementPressure: 0.5,
			SalaryIndex:        0.6,
			RestDaysRatio:      0.6,
			PrivateCabinRatio:  0.6,
		},
		Captain: &profile.CaptainVector{AutonomyGiven: 0.5, FeedbackStyle: 0.5, StructureImposed: 0.5},
	}
}

func newTestCombiner() *Combiner {
	cfg := calibration.Default()
	return NewCombiner(fit.NewScorer(cfg.Thresholds), cfg.Model)
}

func TestScoreCombinesFactors(t *testing.T) {
	score := newTestCombiner().Score(fullInput())

	// Equal betas: Y_success is the plain mean of the four factors.
	expected := (score.PInd + score.FTeam + score.FEnv + score.FLmx) / 4
	assert.InDelta(t, expected, score.YSuccess, 0.05) // rounded to one decimal

	assert.Equal(t, "equal-v1", score.ModelVersion)
	assert.Equal(t, 1.0, score.Completeness)
	assert.Empty(t, score.Flags)
	assert.Contains(t, score.FormulaSnapshot, "Y_success = ")
	assert.Contains(t, score.FormulaSnapshot, "[model equal-v1]")
}

func TestScoreFactorValues(t *testing.T) {
	score := newTestCombiner().Score(fullInput())

	// The team factor is the crew's cohesion, never the candidate's own score.
	harmony := team.Harmony(fullInput().Crew)
	assert.Equal(t, harmony.Cohesion, score.FTeam)

	assert.Equal(t, 76.0, score.PInd) // 0.6*80 + 0.4*70
	assert.Equal(t, 100.0, score.FLmx)
	assert.InDelta(t, 90.0, score.FEnv, 1e-9) // 1.2 * 0.75 * 100
}

func TestScoreCustomBetas(t *testing.T) {
	cfg := calibration.Default()
	cfg.Model = calibration.Model{
		Version: "pind-heavy-v2",
		Betas:   calibration.Betas{PInd: 1, FTeam: 0, FEnv: 0, FLmx: 0},
	}
	combiner := NewCombiner(fit.NewScorer(cfg.Thresholds), cfg.Model)

	score := combiner.Score(fullInput())

	assert.Equal(t, score.PInd, score.YSuccess)
	assert.Equal(t, "pind-heavy-v2", score.ModelVersion)
}

func TestScoreDegradedInputs(t *testing.T) {
	in := Input{Candidate: profile.Snapshot{}}

	score := newTestCombiner().Score(in)

	assert.GreaterOrEqual(t, score.YSuccess, 0.0)
	assert.LessOrEqual(t, score.YSuccess, 100.0)
	assert.Less(t, score.Completeness, 1.0)
	assert.Contains(t, score.Flags, fit.FlagGCAMissing)
	assert.Contains(t, score.Flags, fit.FlagBigFiveMissing)
	assert.Contains(t, score.Flags, fit.FlagNoVesselParams)
	assert.Contains(t, score.Flags, fit.FlagCaptainIncomplete)
	assert.Contains(t, score.Flags, team.FlagInsufficientCrew)
}

func TestScoreFlagsInsufficientCrew(t *testing.T) {
	tests := []struct {
		name string
		crew []profile.Snapshot
	}{
		{name: "no crew", crew: nil},
		{name: "single member", crew: fullInput().Crew[:1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fullInput()
			in.Crew = tt.crew

			score := newTestCombiner().Score(in)

			// The missing team signal is named, not just priced into completeness.
			assert.Contains(t, score.Flags, team.FlagInsufficientCrew)
			assert.InDelta(t, 0.75, score.Completeness, 1e-9)
		})
	}
}

func TestScoreIdempotent(t *testing.T) {
	combiner := newTestCombiner()
	in := fullInput()

	first := combiner.Score(in)
	second := combiner.Score(in)

	assert.Equal(t, first, second)
}

func TestSimulateImpactFoldsDeltas(t *testing.T) {
	in := fullInput()
	report := newTestCombiner().SimulateImpact(in)

	delta := team.ComputeDelta(in.Crew, in.Candidate)
	assert.Equal(t, delta.Cohesion, report.FTeamDelta)
	assert.Equal(t, delta.MinAgreeableness, report.JerkFilterDelta)
	assert.Equal(t, delta.SigmaConscientiousness, report.FaultlineRiskDelta)
	assert.Equal(t, delta.MeanEmotionalStability, report.EmotionalBufferDelta)
	assert.Equal(t, delta.Performance, report.PerformanceDelta)

	score := newTestCombiner().Score(in)
	assert.Equal(t, score.YSuccess, report.YSuccessPredicted)
	assert.Equal(t, score.Completeness, report.DataCompleteness)
}

func TestSimulateImpactJerkFilterFlag(t *testing.T) {
	in := fullInput()
	in.Candidate = fullSnapshot(80, 70, 10, 75) // new agreeableness minimum

	report := newTestCombiner().SimulateImpact(in)

	assert.Contains(t, report.Flags, team.FlagJerkFilterTriggered)
}

func TestConfidenceLabels(t *testing.T) {
	tests := []struct {
		completeness float64
		expected     string
	}{
		{1.0, ConfidenceHigh},
		{0.85, ConfidenceHigh},
		{0.70, ConfidenceMedium},
		{0.60, ConfidenceMedium},
		{0.40, ConfidenceLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, confidenceFor(tt.completeness), "completeness=%v", tt.completeness)
	}
}

func TestSimulateImpactLowConfidenceOnEmptyProfile(t *testing.T) {
	report := newTestCombiner().SimulateImpact(Input{Candidate: profile.Snapshot{}})

	require.Less(t, report.DataCompleteness, 0.60)
	assert.Equal(t, ConfidenceLow, report.ConfidenceLabel)
}
