// Package stats computes descriptive statistics over an ordered sequence of finite
// reals: mean, median, mode, population variance and standard deviation.
//
// Every result is canonicalized with numeric.Canonicalize, so whole results are
// reported as integers. The functions expect a non-empty sequence; Describe
// enforces the stronger preconditions of a full statistics run.
package stats

import (
	"math"
	"slices"

	"github.com/hyp3rd/textstats/pkg/numeric"
)

// Mean returns the arithmetic mean of values.
func Mean(values []float64) numeric.Number {
	return numeric.Canonicalize(mean(values))
}

// Median returns the middle value of the sorted values, or the average of the two
// middle values when their count is even. values is not modified.
func Median(values []float64) numeric.Number {
	if len(values) == 0 {
		return numeric.Number{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return numeric.Canonicalize((sorted[mid-1] + sorted[mid]) / 2)
	}

	return numeric.Canonicalize(sorted[mid])
}

// Mode returns the most frequent value. When several values share the highest
// frequency, the one appearing first in values wins. The boolean is false when
// every value is unique, in which case there is no mode.
func Mode(values []float64) (numeric.Number, bool) {
	counts := make(map[float64]int, len(values))
	order := make([]float64, 0, len(values))

	for _, value := range values {
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}

		counts[value]++
	}

	maxCount := 0
	for _, count := range counts {
		maxCount = max(maxCount, count)
	}

	if maxCount <= 1 {
		return numeric.Number{}, false
	}

	for _, value := range order {
		if counts[value] == maxCount {
			return numeric.Canonicalize(value), true
		}
	}

	return numeric.Number{}, false
}

// Variance returns the population variance of values, the mean of the squared
// deviations from the mean.
func Variance(values []float64) numeric.Number {
	return numeric.Canonicalize(variance(values, mean(values)))
}

// StdDev returns the square root of the canonical variance.
func StdDev(variance numeric.Number) numeric.Number {
	return numeric.Canonicalize(math.Sqrt(variance.Float64()))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, value := range values {
		sum += value
	}

	return sum / float64(len(values))
}

func variance(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, value := range values {
		deviation := value - mean
		sum += deviation * deviation
	}

	return sum / float64(len(values))
}
