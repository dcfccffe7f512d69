// Package benchmark ranks an individual's trait score against a peer pool,
// adjusted for the trait's polarity.
package benchmark

import (
	"math"

	"github.com/harborsight/crewfit/internal/stats"
)

// Polarity states which direction of a trait is desirable.
type Polarity string

const (
	// PolarityHigh rewards high scores (e.g. conscientiousness).
	PolarityHigh Polarity = "high"
	// PolarityLow rewards low scores (e.g. neuroticism).
	PolarityLow Polarity = "low"
	// PolarityModerate rewards proximity to the pool median.
	PolarityModerate Polarity = "moderate"
)

// Qualitative bands on the polarity-adjusted percentile.
const (
	LabelSectorReference    = "sector reference"
	LabelDominantProfile    = "dominant profile"
	LabelWithinStandards    = "within standards"
	LabelRoomForImprovement = "room for improvement"
	LabelNeedsDevelopment   = "needs development"
	LabelInsufficientData   = "insufficient data"
)

const FlagInsufficientPool = "INSUFFICIENT_POOL"

// Result is the outcome of one benchmarking comparison. PoolMedian is the
// reference point moderate-polarity traits are scored against.
type Result struct {
	Percentile float64  `json:"percentile"`
	Adjusted   float64  `json:"adjusted"`
	PoolMedian float64  `json:"pool_median"`
	Label      string   `json:"label"`
	PoolSize   int      `json:"pool_size"`
	Flags      []string `json:"flags"`
}

// Compare computes the percentile of score within pool and maps it, through
// the trait's polarity, to a qualitative label. An empty pool carries no
// signal: the result keeps zero percentiles and the insufficient-data label.
func Compare(score float64, pool []float64, polarity Polarity) Result {
	if len(pool) == 0 {
		return Result{
			Label: LabelInsufficientData,
			Flags: []string{FlagInsufficientPool},
		}
	}

	percentile := stats.Percentile(score, pool)

	var adjusted float64
	switch polarity {
	case PolarityLow:
		adjusted = 100 - percentile
	case PolarityModerate:
		adjusted = 100 - 2*math.Abs(percentile-50)
	default:
		adjusted = percentile
	}
	adjusted = stats.ClampScore(adjusted)

	return Result{
		Percentile: percentile,
		Adjusted:   adjusted,
		PoolMedian: stats.Median(pool),
		Label:      labelFor(adjusted),
		PoolSize:   len(pool),
		Flags:      []string{},
	}
}

func labelFor(adjusted float64) string {
	switch {
	case adjusted >= 90:
		return LabelSectorReference
	case adjusted >= 75:
		return LabelDominantProfile
	case adjusted >= 45:
		return LabelWithinStandards
	case adjusted >= 25:
		return LabelRoomForImprovement
	default:
		return LabelNeedsDevelopment
	}
}
