package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or def when the slice is empty.
func Mean(xs []float64, def float64) float64 {
	if len(xs) == 0 {
		return def
	}
	s := 0.0
	for _, v := range xs {
		s += v
	}
	return s / float64(len(xs))
}

// Min returns the smallest value, or def when the slice is empty.
func Min(xs []float64, def float64) float64 {
	if len(xs) == 0 {
		return def
	}
	m := xs[0]
	for _, v := range xs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// StdDev returns the population standard deviation, 0 for fewer than
// two values.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := Mean(xs, 0)
	ss := 0.0
	for _, v := range xs {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// Median returns the middle value of the sample, 0 when empty.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	mid := len(cp) / 2
	if len(cp)%2 == 1 {
		return cp[mid]
	}
	return 0.5 * (cp[mid-1] + cp[mid])
}

// Percentile returns the fraction of pool values strictly below x, scaled
// to 0-100. The pool must be non-empty; callers handle the empty case.
func Percentile(x float64, pool []float64) float64 {
	if len(pool) == 0 {
		return 0
	}
	below := 0
	for _, v := range pool {
		if v < x {
			below++
		}
	}
	return 100 * float64(below) / float64(len(pool))
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampScore bounds a score to the canonical [0,100] range.
func ClampScore(x float64) float64 { return Clamp(x, 0, 100) }

// Round1 rounds to one decimal place.
func Round1(x float64) float64 { return math.Round(x*10) / 10 }
