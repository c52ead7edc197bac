package dist

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/ja7ad/sensorcal/pkg/stats"
)

// Value is a probability distribution represented by equally probable
// support points. A 1-point Value is an ordinary scalar.
//
// Values are immutable: arithmetic returns new Values and Points returns a
// copy of the backing slice.
type Value struct {
	points []float64
}

// Scalar wraps a plain float64 as a 1-point Value.
func Scalar(x float64) Value {
	return Value{points: []float64{x}}
}

// FromSamples builds an empirical distribution from a retained sample
// sequence, giving each sample probability 1/len(xs). The slice is copied.
func FromSamples(xs []float64) (Value, error) {
	if len(xs) == 0 {
		return Value{}, ErrEmpty
	}
	points := make([]float64, len(xs))
	copy(points, xs)
	return Value{points: points}, nil
}

// Len returns the number of support points.
func (v Value) Len() int { return len(v.points) }

// Points returns a copy of the support points in their internal order.
func (v Value) Points() []float64 {
	out := make([]float64, len(v.points))
	copy(out, v.points)
	return out
}

// Mean returns the expected value: the unweighted mean of the support points.
// For a 1-point Value this is the scalar itself.
func (v Value) Mean() float64 {
	if len(v.points) == 0 {
		return 0
	}
	return stat.Mean(v.points, nil)
}

// Variance returns the population variance of the support points.
func (v Value) Variance() float64 {
	_, variance := stats.MeanAndVariance(v.points)
	return variance
}

// ProbabilityGT returns P(X > threshold): the fraction of support points
// strictly greater than threshold.
func (v Value) ProbabilityGT(threshold float64) float64 {
	if len(v.points) == 0 {
		return 0
	}
	gt := 0
	for _, x := range v.points {
		if x > threshold {
			gt++
		}
	}
	return float64(gt) / float64(len(v.points))
}

// Div returns v / o, elementwise over support points.
func (v Value) Div(o Value) Value {
	return combine(v, o, func(x, y float64) float64 { return x / y })
}

// Scale returns v * k.
func (v Value) Scale(k float64) Value {
	out := make([]float64, len(v.points))
	for i, x := range v.points {
		out[i] = x * k
	}
	return Value{points: out}
}

// Shift returns v + k.
func (v Value) Shift(k float64) Value {
	out := make([]float64, len(v.points))
	for i, x := range v.points {
		out[i] = x + k
	}
	return Value{points: out}
}

// combine applies op pointwise, broadcasting 1-point operands. Values of
// different multi-point sizes never meet through a single provider, so a
// mismatch is a programming error.
func combine(a, b Value, op func(x, y float64) float64) Value {
	switch {
	case len(a.points) == len(b.points):
		out := make([]float64, len(a.points))
		for i := range a.points {
			out[i] = op(a.points[i], b.points[i])
		}
		return Value{points: out}
	case len(a.points) == 1:
		out := make([]float64, len(b.points))
		for i := range b.points {
			out[i] = op(a.points[0], b.points[i])
		}
		return Value{points: out}
	case len(b.points) == 1:
		out := make([]float64, len(a.points))
		for i := range a.points {
			out[i] = op(a.points[i], b.points[0])
		}
		return Value{points: out}
	default:
		panic(fmt.Sprintf("dist: size mismatch %d vs %d", len(a.points), len(b.points)))
	}
}
