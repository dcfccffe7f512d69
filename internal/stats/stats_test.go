package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		def      float64
		expected float64
	}{
		{
			name:     "mean of empty slice returns default",
			input:    []float64{},
			def:      50,
			expected: 50,
		},
		{
			name:     "mean of single element",
			input:    []float64{42},
			def:      0,
			expected: 42,
		},
		{
			name:     "mean of several values",
			input:    []float64{10, 20, 30},
			def:      0,
			expected: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mean(tt.input, tt.def))
		})
	}
}

func TestMin(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		def      float64
		expected float64
	}{
		{
			name:     "min of empty slice returns default",
			input:    []float64{},
			def:      50,
			expected: 50,
		},
		{
			name:     "min of unsorted values",
			input:    []float64{70, 30, 90},
			def:      0,
			expected: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Min(tt.input, tt.def))
		})
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{
			name:     "stddev of empty slice",
			input:    []float64{},
			expected: 0,
		},
		{
			name:     "stddev of single element",
			input:    []float64{42},
			expected: 0,
		},
		{
			name:     "stddev of identical values",
			input:    []float64{5, 5, 5},
			expected: 0,
		},
		{
			name:     "population stddev of two values",
			input:    []float64{70, 60},
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, StdDev(tt.input), 1e-9)
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{
			name:     "median of empty slice",
			input:    []float64{},
			expected: 0,
		},
		{
			name:     "median of odd length slice",
			input:    []float64{9, 1, 5},
			expected: 5,
		},
		{
			name:     "median of even length slice",
			input:    []float64{1, 2, 3, 4},
			expected: 2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Median(tt.input))
		})
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		pool     []float64
		expected float64
	}{
		{
			name:     "empty pool",
			score:    50,
			pool:     []float64{},
			expected: 0,
		},
		{
			name:     "score below whole pool",
			score:    5,
			pool:     []float64{10, 20, 30},
			expected: 0,
		},
		{
			name:     "score above whole pool",
			score:    95,
			pool:     []float64{10, 20, 30},
			expected: 100,
		},
		{
			name:     "strictly-below counting excludes ties",
			score:    20,
			pool:     []float64{10, 20, 30, 40},
			expected: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percentile(tt.score, tt.pool))
		})
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, ClampScore(-3))
	assert.Equal(t, 100.0, ClampScore(140))
	assert.Equal(t, 55.5, ClampScore(55.5))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 76.0, Round1(76.0))
	assert.Equal(t, 76.5, Round1(76.46))
	assert.Equal(t, 0.1, Round1(0.05))
}
