package team

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harborsight/crewfit/internal/profile"
)

func snapshot(gca, consc, agree, emoStab float64) profile.Snapshot {
	return profile.Snapshot{
		GCAScore: profile.Ptr(gca),
		BigFive: &profile.BigFive{
			Conscientiousness:  profile.Ptr(consc),
			Agreeableness:      profile.Ptr(agree),
			EmotionalStability: profile.Ptr(emoStab),
		},
	}
}

func TestHarmonyTooFewMembers(t *testing.T) {
	tests := []struct {
		name string
		crew []profile.Snapshot
	}{
		{name: "empty crew", crew: nil},
		{name: "single member", crew: []profile.Snapshot{snapshot(80, 70, 60, 70)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Harmony(tt.crew)
			assert.Equal(t, 0.0, res.Performance)
			assert.Equal(t, 0.0, res.Cohesion)
			assert.Equal(t, 0.0, res.MinAgreeableness)
			assert.Equal(t, 0.0, res.SigmaConscientiousness)
			assert.Equal(t, 0.0, res.MeanEmotionalStability)
			assert.Equal(t, 0.0, res.MeanGCA)
			assert.Equal(t, 0.0, res.DataQuality)
		})
	}
}

func TestHarmonyFullCrew(t *testing.T) {
	crew := []profile.Snapshot{
		snapshot(80, 70, 60, 70),
		snapshot(60, 60, 80, 60),
	}

	res := Harmony(crew)

	assert.InDelta(t, 70.0, res.MeanGCA, 1e-9)
	assert.InDelta(t, 68.0, res.Performance, 1e-9) // 0.6*70 + 0.4*65
	assert.InDelta(t, 60.0, res.MinAgreeableness, 1e-9)
	assert.InDelta(t, 5.0, res.SigmaConscientiousness, 1e-9)
	assert.InDelta(t, 65.0, res.MeanEmotionalStability, 1e-9)
	assert.InDelta(t, 0.0, res.FrictionPenalty, 1e-9) // sigma below the floor
	assert.InDelta(t, 70.0, res.Cohesion, 1e-9)       // 0.4*60 + 0.4*65 + 20
	assert.Equal(t, 1.0, res.DataQuality)
	assert.Equal(t, 2, res.CrewSize)
}

func TestHarmonyFrictionPenalty(t *testing.T) {
	// Conscientiousness spread of sigma 30 costs (30-10)*2 = 40 cohesion.
	crew := []profile.Snapshot{
		snapshot(70, 90, 70, 70),
		snapshot(70, 30, 70, 70),
	}

	res := Harmony(crew)

	assert.InDelta(t, 30.0, res.SigmaConscientiousness, 1e-9)
	assert.InDelta(t, 40.0, res.FrictionPenalty, 1e-9)
	// 0.4*70 + 0.4*70 - 40 + 20 = 36
	assert.InDelta(t, 36.0, res.Cohesion, 1e-9)
}

func TestHarmonyIgnoresMissingTraits(t *testing.T) {
	crew := []profile.Snapshot{
		snapshot(80, 70, 60, 70),
		{BigFive: &profile.BigFive{Agreeableness: profile.Ptr(90)}}, // no gca, consc, emostab
	}

	res := Harmony(crew)

	// Vectors only carry the values actually present.
	assert.InDelta(t, 80.0, res.MeanGCA, 1e-9)
	assert.InDelta(t, 60.0, res.MinAgreeableness, 1e-9)
	assert.InDelta(t, 70.0, res.MeanEmotionalStability, 1e-9)
	// 5 of 8 trait slots filled.
	assert.InDelta(t, 0.625, res.DataQuality, 1e-9)
}

func TestHarmonyAllTraitsMissing(t *testing.T) {
	crew := []profile.Snapshot{{}, {}}

	res := Harmony(crew)

	// Empty vectors default to the neutral 50.
	assert.InDelta(t, 50.0, res.MeanGCA, 1e-9)
	assert.InDelta(t, 50.0, res.Performance, 1e-9)
	assert.InDelta(t, 60.0, res.Cohesion, 1e-9) // 0.4*50 + 0.4*50 + 20
	assert.Equal(t, 0.0, res.DataQuality)
}

func TestHarmonyCohesionClamped(t *testing.T) {
	crew := []profile.Snapshot{
		snapshot(100, 100, 100, 100),
		snapshot(100, 100, 100, 100),
	}

	res := Harmony(crew)

	// 0.4*100 + 0.4*100 + 20 = 100, at the clamp boundary.
	assert.Equal(t, 100.0, res.Cohesion)
}
