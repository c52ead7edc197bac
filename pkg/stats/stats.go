// Package stats holds the post-processing step of a Monte Carlo run:
// collapsing the retained sample sequence into summary statistics.
package stats

import "gonum.org/v1/gonum/floats"

// MeanAndVariance returns the arithmetic mean and the population variance
// (second central moment, 1/N weighting) of xs.
//
// The 1/N form is intentional: downstream consumers compare these figures
// against reference runs that use the population definition, so the N-1
// sample-variance form must not be substituted here. A single sample yields
// variance 0, and an empty input yields (0, 0).
func MeanAndVariance(xs []float64) (mean, variance float64) {
	n := len(xs)
	if n == 0 {
		return 0, 0
	}

	mean = floats.Sum(xs) / float64(n)

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	variance = sq / float64(n)

	return mean, variance
}
