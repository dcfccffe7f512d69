package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harborsight/crewfit/internal/profile"
)

func balancedVessel() *profile.VesselParams {
	return &profile.VesselParams{
		CharterIntensity:   0.5,
		ManagementPressure: 0.5,
		SalaryIndex:        0.6,
		RestDaysRatio:      0.6,
		PrivateCabinRatio:  0.6,
	}
}

func TestFEnvComfortableVessel(t *testing.T) {
	snap := profile.Snapshot{Resilience: profile.Ptr(80)}

	res := newTestScorer().FEnv(snap, balancedVessel())

	assert.InDelta(t, 1.2, res.JDRRatio, 1e-9) // 0.6 resources / 0.5 demands
	assert.Equal(t, EquilibriumComfortable, res.Equilibrium)
	assert.InDelta(t, 96.0, res.Score, 1e-9) // 1.2 * 0.8 * 100
	assert.Equal(t, 1.0, res.DataQuality)
	assert.Empty(t, res.Flags)
}

func TestFEnvZeroResilienceForcesZeroScore(t *testing.T) {
	snap := profile.Snapshot{Resilience: profile.Ptr(0)}

	res := newTestScorer().FEnv(snap, balancedVessel())

	assert.Equal(t, 0.0, res.Score)
	assert.Contains(t, res.Flags, FlagLowResilience)
}

func TestFEnvMissingVesselParams(t *testing.T) {
	snap := profile.Snapshot{Resilience: profile.Ptr(70)}

	res := newTestScorer().FEnv(snap, nil)

	assert.Contains(t, res.Flags, FlagNoVesselParams)
	assert.InDelta(t, 0.60, res.DataQuality, 1e-9)
	// No environment signal: the neutral ratio lets resilience carry.
	assert.InDelta(t, 1.0, res.JDRRatio, 1e-9)
	assert.InDelta(t, 70.0, res.Score, 1e-9)
}

func TestFEnvRatioCapped(t *testing.T) {
	vessel := &profile.VesselParams{
		CharterIntensity:   0.1,
		ManagementPressure: 0.3,
		SalaryIndex:        0.9,
		RestDaysRatio:      0.9,
		PrivateCabinRatio:  0.9,
	}
	snap := profile.Snapshot{Resilience: profile.Ptr(80)}

	res := newTestScorer().FEnv(snap, vessel)

	assert.InDelta(t, 4.5, res.JDRRatio, 1e-9)
	assert.InDelta(t, 2.0, res.CappedRatio, 1e-9)
	assert.Equal(t, 100.0, res.Score) // 2.0 * 0.8 * 100 clamped
}

func TestFEnvBurnoutRisk(t *testing.T) {
	vessel := &profile.VesselParams{
		CharterIntensity:   0.9,
		ManagementPressure: 0.9,
		SalaryIndex:        0.2,
		RestDaysRatio:      0.2,
		PrivateCabinRatio:  0.2,
	}
	snap := profile.Snapshot{Resilience: profile.Ptr(70)}

	res := newTestScorer().FEnv(snap, vessel)

	assert.Equal(t, EquilibriumBurnoutRisk, res.Equilibrium)
	assert.Contains(t, res.Flags, FlagBurnoutRisk)
}

func TestFEnvZeroDemandsGuard(t *testing.T) {
	vessel := &profile.VesselParams{SalaryIndex: 0.9, RestDaysRatio: 0.9, PrivateCabinRatio: 0.9}
	snap := profile.Snapshot{Resilience: profile.Ptr(50)}

	res := newTestScorer().FEnv(snap, vessel)

	// Division-by-zero guard: all resources, no demands means the cap.
	assert.InDelta(t, 2.0, res.JDRRatio, 1e-9)
	assert.Equal(t, EquilibriumComfortable, res.Equilibrium)
}

func TestFEnvResilienceFallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		snap     profile.Snapshot
		value    float64
		source   string
		fallback bool
	}{
		{
			name:   "explicit resilience wins",
			snap:   profile.Snapshot{Resilience: profile.Ptr(85), BigFive: &profile.BigFive{EmotionalStability: profile.Ptr(30)}},
			value:  85,
			source: SourceSnapshotResilience,
		},
		{
			name:   "emotional stability next",
			snap:   profile.Snapshot{BigFive: &profile.BigFive{EmotionalStability: profile.Ptr(65), Neuroticism: profile.Ptr(90)}},
			value:  65,
			source: SourceEmotionalStability,
		},
		{
			name:     "derived from neuroticism",
			snap:     profile.Snapshot{BigFive: &profile.BigFive{Neuroticism: profile.Ptr(30)}},
			value:    70,
			source:   SourceEmotionalStability,
			fallback: true,
		},
		{
			name:     "median fallback",
			snap:     profile.Snapshot{},
			value:    50,
			source:   SourceFallbackMedian,
			fallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestScorer().FEnv(tt.snap, balancedVessel())
			assert.Equal(t, tt.value, res.Resilience.Value)
			assert.Equal(t, tt.source, res.Resilience.Source)
			assert.Equal(t, tt.fallback, res.Resilience.Fallback)
		})
	}
}
