// SPDX-License-Identifier: MIT
// Package matrix: summary statistics.
//
// Summarize implements the fixed statistics-expansion operator set. The
// operator list and its order are part of the public column-naming
// contract (name_mean, name_max, name_min, name_median, name_std,
// name_sum) and must not change.
package matrix

import (
	"math"
	"sort"
)

// Summary holds the six fixed summary operators over one sequence.
type Summary struct {
	Mean   float64
	Max    float64
	Min    float64
	Median float64
	Std    float64
	Sum    float64
}

// Summarize computes the fixed summary over xs.
// An empty sequence yields all-NaN: downstream filtering treats the
// resulting columns as degenerate rather than erroring.
// Std is the population standard deviation.
// Complexity: O(n log n) due to the median sort.
func Summarize(xs []float64) Summary {
	n := len(xs)
	if n == 0 {
		nan := math.NaN()

		return Summary{Mean: nan, Max: nan, Min: nan, Median: nan, Std: nan, Sum: nan}
	}

	var sum float64
	maxV, minV := xs[0], xs[0]
	for _, x := range xs {
		sum += x
		if x > maxV {
			maxV = x
		}
		if x < minV {
			minV = x
		}
	}
	mean := sum / float64(n)

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}

	return Summary{
		Mean:   mean,
		Max:    maxV,
		Min:    minV,
		Median: Median(xs),
		Std:    math.Sqrt(sq / float64(n)),
		Sum:    sum,
	}
}

// Median returns the middle value of xs (mean of the two middle values for
// even lengths), NaN for empty input. xs is not mutated.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Mean returns the arithmetic mean of xs, NaN for empty input.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// Std returns the population standard deviation of xs, NaN for empty input.
func Std(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	mean := Mean(xs)
	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(len(xs)))
}
