// Package predict merges the four fit factors into one success prediction
// and simulates the team impact of hiring a specific candidate.
package predict

import (
	"fmt"

	"github.com/harborsight/crewfit/internal/calibration"
	"github.com/harborsight/crewfit/internal/fit"
	"github.com/harborsight/crewfit/internal/profile"
	"github.com/harborsight/crewfit/internal/stats"
	"github.com/harborsight/crewfit/internal/team"
)

// Input bundles everything the combiner needs for one candidate-in-context
// evaluation.
type Input struct {
	Candidate       profile.Snapshot
	Crew            []profile.Snapshot
	Vessel          *profile.VesselParams
	Captain         *profile.CaptainVector
	ExperienceYears *float64
}

// Factors are the audited sub-results behind a recruitment score.
type Factors struct {
	PInd    fit.PIndResult     `json:"p_ind"`
	Harmony team.HarmonyResult `json:"harmony"`
	FEnv    fit.FEnvResult     `json:"f_env"`
	FLmx    fit.FLmxResult     `json:"f_lmx"`
}

// RecruitmentScore is the combined success prediction (Y_success).
type RecruitmentScore struct {
	YSuccess     float64 `json:"y_success"`
	PInd         float64 `json:"p_ind"`
	FTeam        float64 `json:"f_team"`
	FEnv         float64 `json:"f_env"`
	FLmx         float64 `json:"f_lmx"`
	Completeness float64 `json:"completeness"`

	ModelVersion    string   `json:"model_version"`
	Flags           []string `json:"flags"`
	FormulaSnapshot string   `json:"formula_snapshot"`
	Factors         Factors  `json:"factors"`
}

// Combiner evaluates candidates under one calibrated model.
type Combiner struct {
	scorer *fit.Scorer
	model  calibration.Model
}

// NewCombiner builds a Combiner. The model betas are normalized once here so
// every downstream formula sees weights that sum to 1.
func NewCombiner(scorer *fit.Scorer, model calibration.Model) *Combiner {
	model.Betas = model.Betas.Normalized()
	return &Combiner{scorer: scorer, model: model}
}

// Score produces the recruitment score for a candidate against the current
// crew, vessel and captain. The team factor is the cohesion of the crew the
// candidate would join; completeness aggregates the four components' data
// qualities and never equals a raw factor score.
func (c *Combiner) Score(in Input) RecruitmentScore {
	pind := c.scorer.PInd(in.Candidate, in.ExperienceYears)
	harmony := team.Harmony(in.Crew)
	fenv := c.scorer.FEnv(in.Candidate, in.Vessel)
	flmx := c.scorer.FLmx(in.Candidate, in.Captain)

	b := c.model.Betas
	res := RecruitmentScore{
		PInd:         pind.Score,
		FTeam:        harmony.Cohesion,
		FEnv:         fenv.Score,
		FLmx:         flmx.Score,
		ModelVersion: c.model.Version,
		Flags:        []string{},
		Factors:      Factors{PInd: pind, Harmony: harmony, FEnv: fenv, FLmx: flmx},
	}

	res.YSuccess = stats.ClampScore(stats.Round1(
		b.PInd*res.PInd + b.FTeam*res.FTeam + b.FEnv*res.FEnv + b.FLmx*res.FLmx))

	res.Completeness = (pind.DataQuality + harmony.DataQuality + fenv.DataQuality + flmx.DataQuality) / 4

	res.Flags = append(res.Flags, pind.Flags...)
	res.Flags = append(res.Flags, fenv.Flags...)
	res.Flags = append(res.Flags, flmx.Flags...)
	if harmony.CrewSize < 2 {
		res.Flags = append(res.Flags, team.FlagInsufficientCrew)
	}

	res.FormulaSnapshot = fmt.Sprintf(
		"Y_success = %.2f*%.1f + %.2f*%.1f + %.2f*%.1f + %.2f*%.1f = %.1f [model %s]",
		b.PInd, res.PInd, b.FTeam, res.FTeam, b.FEnv, res.FEnv, b.FLmx, res.FLmx,
		res.YSuccess, c.model.Version)

	return res
}
