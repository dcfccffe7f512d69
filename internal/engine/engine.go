// Package engine is the orchestrating facade over every scoring component.
// It wires calibration and policies once so callers get a single object
// exposing all operations. The engine holds no state between invocations
// and performs no I/O; concurrent callers need no coordination.
package engine

import (
	"go.uber.org/zap"

	"github.com/harborsight/crewfit/internal/benchmark"
	"github.com/harborsight/crewfit/internal/calibration"
	"github.com/harborsight/crewfit/internal/fit"
	"github.com/harborsight/crewfit/internal/logger"
	"github.com/harborsight/crewfit/internal/predict"
	"github.com/harborsight/crewfit/internal/profile"
	"github.com/harborsight/crewfit/internal/team"
	"github.com/harborsight/crewfit/internal/traits"
)

// Engine evaluates candidates, crews and tests under one calibration.
type Engine struct {
	cfg      *calibration.Config
	scorer   *fit.Scorer
	combiner *predict.Combiner
	log      *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger; the default is a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithFitOptions forwards options (policies) to the fit scorer.
func WithFitOptions(opts ...fit.Option) Option {
	return func(e *Engine) {
		e.scorer = fit.NewScorer(e.cfg.Thresholds, opts...)
	}
}

// New builds an Engine. A nil config means the canonical calibration.
func New(cfg *calibration.Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = calibration.Default()
	}
	e := &Engine{
		cfg:    cfg,
		scorer: fit.NewScorer(cfg.Thresholds),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = logger.OrNop(e.log)
	e.combiner = predict.NewCombiner(e.scorer, cfg.Model)
	return e
}

// ScoreTraits converts raw test responses into the per-trait report.
func (e *Engine) ScoreTraits(responses []traits.Response, questions map[string]traits.Question, kind traits.TestKind, scaleMax int) traits.Report {
	rt := traits.ReliabilityThresholds{
		ExtremeAnswerBias:     e.cfg.Thresholds.ExtremeAnswerBias,
		MinSecondsPerQuestion: e.cfg.Thresholds.MinSecondsPerQuestion,
	}
	report := traits.Score(responses, questions, kind, scaleMax, rt)
	e.log.Debug("scored test",
		zap.String("kind", string(kind)),
		zap.Float64("global_score", report.GlobalScore),
		zap.Bool("reliable", report.Reliability.IsReliable))
	return report
}

// Benchmark ranks a trait score against a peer pool.
func (e *Engine) Benchmark(score float64, pool []float64, polarity benchmark.Polarity) benchmark.Result {
	return benchmark.Compare(score, pool, polarity)
}

// Harmony aggregates the crew's team metrics.
func (e *Engine) Harmony(crew []profile.Snapshot) team.HarmonyResult {
	return team.Harmony(crew)
}

// HarmonyDelta simulates the team metrics with the candidate appended.
func (e *Engine) HarmonyDelta(crew []profile.Snapshot, candidate profile.Snapshot) team.Delta {
	return team.ComputeDelta(crew, candidate)
}

// PInd scores individual performance for one snapshot.
func (e *Engine) PInd(snap profile.Snapshot, experienceYears *float64) fit.PIndResult {
	res := e.scorer.PInd(snap, experienceYears)
	e.log.Debug("scored factor", logger.ScoreFields("p_ind", res.Score, res.DataQuality, res.Flags)...)
	return res
}

// FEnv scores environment fit for one snapshot on one vessel.
func (e *Engine) FEnv(snap profile.Snapshot, vessel *profile.VesselParams) fit.FEnvResult {
	res := e.scorer.FEnv(snap, vessel)
	e.log.Debug("scored factor", logger.ScoreFields("f_env", res.Score, res.DataQuality, res.Flags)...)
	return res
}

// FLmx scores leadership fit between a snapshot and a captain.
func (e *Engine) FLmx(snap profile.Snapshot, captain *profile.CaptainVector) fit.FLmxResult {
	res := e.scorer.FLmx(snap, captain)
	e.log.Debug("scored factor", logger.ScoreFields("f_lmx", res.Score, res.DataQuality, res.Flags)...)
	return res
}

// GlobalFit aggregates SME competency scores into G_fit.
func (e *Engine) GlobalFit(scores map[string]float64, weights map[string]float64, quality map[string]float64) fit.GlobalFitResult {
	res := e.scorer.GFit(scores, weights, quality)
	e.log.Debug("scored factor", logger.ScoreFields("g_fit", res.GFit, res.DataQuality, res.Flags)...)
	return res
}

// ScoreRecruitment produces the combined success prediction for a candidate
// in the context of the current crew, vessel and captain.
func (e *Engine) ScoreRecruitment(in predict.Input) predict.RecruitmentScore {
	res := e.combiner.Score(in)
	e.log.Info("scored recruitment",
		zap.Float64("y_success", res.YSuccess),
		zap.Float64("completeness", res.Completeness),
		zap.String("model", res.ModelVersion),
		zap.Strings("flags", res.Flags))
	return res
}

// SimulateImpact produces the before/after what-if report for hiring the
// candidate.
func (e *Engine) SimulateImpact(in predict.Input) predict.ImpactReport {
	res := e.combiner.SimulateImpact(in)
	e.log.Info("simulated impact",
		zap.Float64("y_success_predicted", res.YSuccessPredicted),
		zap.Float64("f_team_delta", res.FTeamDelta),
		zap.String("confidence", res.ConfidenceLabel),
		zap.Strings("flags", res.Flags))
	return res
}

// ModelVersion reports the combiner model in use.
func (e *Engine) ModelVersion() string { return e.cfg.Model.Version }
