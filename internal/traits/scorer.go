// Package traits converts raw test responses into per-trait percentage
// scores with a reliability verdict.
package traits

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harborsight/crewfit/internal/stats"
)

// TestKind selects the scoring rule for a test.
type TestKind string

const (
	KindCognitive TestKind = "cognitive"
	KindLikert    TestKind = "likert"
)

// Likert scales always start at 1; only the maximum is configurable.
const likertMinScale = 1

// Reliability reasons.
const (
	ReasonDesirabilityBias = "DESIRABILITY_BIAS"
	ReasonTooFast          = "SUSPICIOUSLY_FAST"
)

// Level labels for cognitive tests.
const (
	LevelExcellent   = "Excellent"
	LevelStandard    = "Standard"
	LevelToReinforce = "To reinforce"
)

// Level labels for Likert tests.
const (
	LevelHigh   = "High"
	LevelMedium = "Medium"
	LevelLow    = "Low"
)

// Response is one raw answer. Value is a string answer for cognitive
// questions and a numeric Likert value otherwise; it arrives as any because
// upstream JSON carries both shapes.
type Response struct {
	QuestionID   string  `json:"question_id"`
	Value        any     `json:"value"`
	SecondsSpent float64 `json:"seconds_spent,omitempty"`
}

// Question describes how one question is scored.
type Question struct {
	Trait         string `json:"trait"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Reverse       bool   `json:"reverse,omitempty"`
}

// TraitScore is the scored outcome for one trait.
type TraitScore struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// Reliability is the test-level trustworthiness verdict.
type Reliability struct {
	IsReliable bool     `json:"is_reliable"`
	Reasons    []string `json:"reasons"`
}

// Meta carries timing aggregates for the test.
type Meta struct {
	TotalTime float64 `json:"total_time"`
	AvgTime   float64 `json:"avg_time"`
}

// Report is the full output of scoring one test submission.
type Report struct {
	Traits      map[string]TraitScore `json:"traits"`
	GlobalScore float64               `json:"global_score"`
	Reliability Reliability           `json:"reliability"`
	Meta        Meta                  `json:"meta"`
}

// Thresholds for the reliability checks; injectable so calibration owns the
// canonical values.
type ReliabilityThresholds struct {
	ExtremeAnswerBias     float64
	MinSecondsPerQuestion float64
}

type accumulator struct {
	points      float64
	maxPossible float64
}

// Score converts raw responses into the trait report. Responses referencing
// unknown question ids are skipped; an all-unknown submission yields an
// empty trait map with a zero global score, never an error.
func Score(responses []Response, questions map[string]Question, kind TestKind, scaleMax int, rt ReliabilityThresholds) Report {
	acc := make(map[string]*accumulator)

	var totalTime float64
	var timedCount int
	var extremeCount, likertCount int

	for _, resp := range responses {
		q, ok := questions[resp.QuestionID]
		if !ok {
			continue
		}

		a := acc[q.Trait]
		if a == nil {
			a = &accumulator{}
			acc[q.Trait] = a
		}

		switch kind {
		case KindCognitive:
			if answersMatch(resp.Value, q.CorrectAnswer) {
				a.points++
			}
			a.maxPossible++
		case KindLikert:
			raw, ok := toFloat(resp.Value)
			if !ok {
				continue
			}
			likertCount++
			if raw <= likertMinScale || raw >= float64(scaleMax) {
				extremeCount++
			}
			value := raw
			if q.Reverse {
				value = float64(likertMinScale+scaleMax) - raw
			}
			a.points += value
			a.maxPossible += float64(scaleMax)
		}

		if resp.SecondsSpent > 0 {
			totalTime += resp.SecondsSpent
			timedCount++
		}
	}

	report := Report{
		Traits:      make(map[string]TraitScore, len(acc)),
		Reliability: Reliability{IsReliable: true, Reasons: []string{}},
	}

	var sum float64
	for trait, a := range acc {
		score := 0.0
		if a.maxPossible > 0 {
			score = stats.ClampScore(a.points / a.maxPossible * 100)
		}
		report.Traits[trait] = TraitScore{Score: score, Level: levelFor(kind, score)}
		sum += score
	}
	if len(report.Traits) > 0 {
		report.GlobalScore = sum / float64(len(report.Traits))
	}

	if likertCount > 0 && float64(extremeCount)/float64(likertCount) > rt.ExtremeAnswerBias {
		report.Reliability.IsReliable = false
		report.Reliability.Reasons = append(report.Reliability.Reasons, ReasonDesirabilityBias)
	}

	if timedCount > 0 {
		report.Meta.TotalTime = totalTime
		report.Meta.AvgTime = totalTime / float64(timedCount)
		if report.Meta.AvgTime < rt.MinSecondsPerQuestion {
			report.Reliability.IsReliable = false
			report.Reliability.Reasons = append(report.Reliability.Reasons, ReasonTooFast)
		}
	}

	return report
}

// answersMatch compares a raw answer against the expected one, ignoring
// case and surrounding whitespace.
func answersMatch(value any, correct string) bool {
	given := strings.TrimSpace(strings.ToLower(fmt.Sprintf("%v", value)))
	want := strings.TrimSpace(strings.ToLower(correct))
	return want != "" && given == want
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func levelFor(kind TestKind, score float64) string {
	if kind == KindCognitive {
		switch {
		case score >= 80:
			return LevelExcellent
		case score >= 50:
			return LevelStandard
		default:
			return LevelToReinforce
		}
	}
	switch {
	case score > 70:
		return LevelHigh
	case score > 30:
		return LevelMedium
	default:
		return LevelLow
	}
}
