package profile

// BigFive holds the five-factor personality scores for one individual.
// Every field is optional: a nil pointer means the trait was never measured
// and scoring components fall back per their documented defaults. All values
// are percentages in [0,100].
type BigFive struct {
	Openness           *float64 `json:"openness,omitempty" validate:"omitempty,min=0,max=100"`
	Conscientiousness  *float64 `json:"conscientiousness,omitempty" validate:"omitempty,min=0,max=100"`
	Agreeableness      *float64 `json:"agreeableness,omitempty" validate:"omitempty,min=0,max=100"`
	EmotionalStability *float64 `json:"emotional_stability,omitempty" validate:"omitempty,min=0,max=100"`
	Neuroticism        *float64 `json:"neuroticism,omitempty" validate:"omitempty,min=0,max=100"`
}

// LeadershipPreferences describes how an individual prefers to be led.
// Each dimension is normalized to [0,1].
type LeadershipPreferences struct {
	Autonomy  float64 `json:"autonomy" validate:"min=0,max=1"`
	Feedback  float64 `json:"feedback" validate:"min=0,max=1"`
	Structure float64 `json:"structure" validate:"min=0,max=1"`
}

// Snapshot is the per-individual psychometric aggregate rebuilt by the
// external aggregation step after every test submission. The engine only
// ever reads it.
type Snapshot struct {
	GCAScore              *float64               `json:"gca_score,omitempty" validate:"omitempty,min=0,max=100"`
	GCASubScores          map[string]float64     `json:"gca_sub_scores,omitempty" validate:"omitempty,dive,min=0,max=100"`
	BigFive               *BigFive               `json:"big_five,omitempty"`
	Resilience            *float64               `json:"resilience,omitempty" validate:"omitempty,min=0,max=100"`
	LeadershipPreferences *LeadershipPreferences `json:"leadership_preferences,omitempty"`
}

// VesselParams holds the normalized environment parameters for one vessel,
// split into job demands and job resources (JD-R model). All fields in [0,1].
type VesselParams struct {
	CharterIntensity   float64 `json:"charter_intensity" validate:"min=0,max=1"`
	ManagementPressure float64 `json:"management_pressure" validate:"min=0,max=1"`
	SalaryIndex        float64 `json:"salary_index" validate:"min=0,max=1"`
	RestDaysRatio      float64 `json:"rest_days_ratio" validate:"min=0,max=1"`
	PrivateCabinRatio  float64 `json:"private_cabin_ratio" validate:"min=0,max=1"`
}

// CaptainVector describes a captain's leadership style on the same three
// dimensions crew preferences use. All fields in [0,1].
type CaptainVector struct {
	AutonomyGiven    float64 `json:"autonomy_given" validate:"min=0,max=1"`
	FeedbackStyle    float64 `json:"feedback_style" validate:"min=0,max=1"`
	StructureImposed float64 `json:"structure_imposed" validate:"min=0,max=1"`
}

// CompetencyScore is one SME-weighted competency rating feeding G_fit.
type CompetencyScore struct {
	Score       float64  `json:"score" validate:"min=0,max=100"`
	Weight      *float64 `json:"weight,omitempty" validate:"omitempty,min=0"`
	DataQuality *float64 `json:"data_quality,omitempty" validate:"omitempty,min=0,max=1"`
}

// Value dereferences an optional score, returning def when unset.
func Value(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// Ptr returns a pointer to v. Convenience for building snapshots.
func Ptr(v float64) *float64 { return &v }
