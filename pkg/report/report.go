// Package report formats calibration outcomes: the human-readable
// tail-probability text, structured JSON records, CSV snapshots of output
// distributions, and the raw Monte Carlo sample dump.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/ja7ad/sensorcal/pkg/types"
)

// ErrBadProbability indicates a provider returned a probability outside
// [0, 1]. Surfaced as a fault, never clamped.
var ErrBadProbability = errors.New("report: probability out of range")

// Distribution is the probability-query capability the reporter needs from
// an output value. dist.Value satisfies it in both execution modes.
type Distribution interface {
	Mean() float64
	ProbabilityGT(threshold float64) float64
}

// Relative thresholds reported for each output, as fractions of the
// representative value.
var thresholds = [4]struct {
	t     float64
	label string
}{
	{0.05, "  5%"},
	{0.50, " 50%"},
	{1.00, "100%"},
	{2.00, "200%"},
}

// Tails writes the representative value of v followed by its eight
// tail probabilities: for each threshold t, the probability the true output
// is at least t·v smaller (1 - P(X > v·(1-t))) and at least t·v greater
// (P(X > v·(1+t))). The formulas only ever multiply by v, so v = 0 needs no
// special casing.
func Tails(w io.Writer, v Distribution, label, unit string) error {
	mean := v.Mean()

	fmt.Fprintf(w, "%s: %.2f %s.\n", label, mean, unit)
	fmt.Fprintln(w)

	for _, th := range thresholds {
		p := types.Probability(v.ProbabilityGT(mean * (1 - th.t)))
		if !p.Valid() {
			return fmt.Errorf("%w: got %v for %q at threshold -%s", ErrBadProbability, float64(p), label, th.label)
		}
		fmt.Fprintf(w, "\tProbability that calibrated sensor output is %s or more smaller than %.2f, is %s\n",
			th.label, mean, p.Complement())
	}
	fmt.Fprintln(w)
	for _, th := range thresholds {
		p := types.Probability(v.ProbabilityGT(mean * (1 + th.t)))
		if !p.Valid() {
			return fmt.Errorf("%w: got %v for %q at threshold +%s", ErrBadProbability, float64(p), label, th.label)
		}
		fmt.Fprintf(w, "\tProbability that calibrated sensor output is %s or more greater than %.2f, is %s\n",
			th.label, mean, p)
	}

	return nil
}
