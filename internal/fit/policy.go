package fit

import "github.com/harborsight/crewfit/internal/profile"

// PreferencePolicy derives a crew member's leadership preference vector
// (autonomy, feedback, structure, each in [0,1]) from Big-Five traits when
// no explicit preference record exists. The mapping is an extension point:
// coefficients are not yet confirmed against field data, so swapping the
// policy must not touch the distance machinery.
type PreferencePolicy interface {
	Derive(bf *profile.BigFive) (prefs [3]float64, ok bool)
}

// BigFivePreferencePolicy is the default trait-to-preference mapping:
// openness drives the appetite for autonomy, neuroticism the need for
// feedback (low emotional stability as a proxy when neuroticism is absent)
// and conscientiousness the taste for structure. Missing traits contribute
// the neutral 0.5.
type BigFivePreferencePolicy struct{}

func (BigFivePreferencePolicy) Derive(bf *profile.BigFive) ([3]float64, bool) {
	if bf == nil {
		return [3]float64{}, false
	}

	autonomy := scaled(bf.Openness)

	feedback := 0.5
	if bf.Neuroticism != nil {
		feedback = *bf.Neuroticism / 100
	} else if bf.EmotionalStability != nil {
		feedback = (100 - *bf.EmotionalStability) / 100
	}

	structure := scaled(bf.Conscientiousness)

	return [3]float64{autonomy, feedback, structure}, true
}

func scaled(p *float64) float64 {
	return profile.Value(p, 50) / 100
}

// ExperiencePolicy adjusts P_ind for sea-time experience. The adjustment is
// a declared extension point: the default records the years but leaves the
// score untouched until the coefficient is calibrated.
type ExperiencePolicy interface {
	Adjust(score float64, experienceYears *float64) float64
}

// NoExperienceBonus is the default experience policy.
type NoExperienceBonus struct{}

func (NoExperienceBonus) Adjust(score float64, _ *float64) float64 { return score }
