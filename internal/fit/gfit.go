package fit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harborsight/crewfit/internal/stats"
)

// Contribution is one competency's share of G_fit, in audit order.
type Contribution struct {
	Competency string  `json:"competency"`
	Score      float64 `json:"score"`
	Weight     float64 `json:"weight"`
	Weighted   float64 `json:"weighted"`
	Quality    float64 `json:"quality"`
}

// GlobalFitResult is the weighted profile-vs-position fit over the SME
// competency scores.
type GlobalFitResult struct {
	GFit            float64        `json:"g_fit"`
	Contributions   []Contribution `json:"contributions"`
	KCompetencies   int            `json:"k_competencies"`
	DataQuality     float64        `json:"data_quality"`
	Flags           []string       `json:"flags"`
	FormulaSnapshot string         `json:"formula_snapshot"`
}

// GFit computes the weighted mean of SME competency scores. Custom weights
// are restricted to the competencies present and renormalized to sum to 1;
// a zero-sum weight map falls back to uniform. Contributions and the formula
// snapshot are ordered by competency key so identical inputs always produce
// identical output.
func (s *Scorer) GFit(scores map[string]float64, weights map[string]float64, quality map[string]float64) GlobalFitResult {
	if len(scores) == 0 {
		return GlobalFitResult{
			Contributions:   []Contribution{},
			Flags:           []string{FlagNoSMEScores},
			FormulaSnapshot: "G_fit = 0.0 (no SME scores)",
		}
	}

	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := GlobalFitResult{
		Contributions: make([]Contribution, 0, len(keys)),
		KCompetencies: len(keys),
		Flags:         []string{},
	}

	normalized, fellBack := normalizeWeights(keys, weights)
	if fellBack {
		res.Flags = append(res.Flags, FlagZeroWeights)
	}

	var total, qualitySum float64
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		q := 1.0
		if quality != nil {
			if v, ok := quality[k]; ok {
				q = stats.Clamp(v, 0, 1)
			}
		}
		c := Contribution{
			Competency: k,
			Score:      scores[k],
			Weight:     normalized[k],
			Weighted:   normalized[k] * scores[k],
			Quality:    q,
		}
		total += c.Weighted
		qualitySum += q
		res.Contributions = append(res.Contributions, c)
		parts = append(parts, fmt.Sprintf("%.2f*%.1f", c.Weight, c.Score))
	}

	res.GFit = stats.ClampScore(total)
	res.DataQuality = qualitySum / float64(len(keys))
	res.FormulaSnapshot = fmt.Sprintf("G_fit = (%s) = %.1f", strings.Join(parts, " + "), res.GFit)

	return res
}

// normalizeWeights restricts custom weights to the present competencies and
// scales them to sum to 1. Missing or zero-sum weights mean uniform 1/K;
// the second return reports the explicit-but-zero fallback.
func normalizeWeights(keys []string, weights map[string]float64) (map[string]float64, bool) {
	out := make(map[string]float64, len(keys))
	uniform := 1.0 / float64(len(keys))

	if len(weights) == 0 {
		for _, k := range keys {
			out[k] = uniform
		}
		return out, false
	}

	var sum float64
	for _, k := range keys {
		sum += weights[k]
	}
	if sum <= 0 {
		for _, k := range keys {
			out[k] = uniform
		}
		return out, true
	}

	for _, k := range keys {
		out[k] = weights[k] / sum
	}
	return out, false
}
