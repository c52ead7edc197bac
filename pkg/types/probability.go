package types

import (
	"fmt"
	"math"
)

// Probability is a float64 wrapper for a probability mass in [0, 1].
type Probability float64

// Valid reports whether p is a well-formed probability. NaN and values
// outside [0, 1] indicate a provider fault and must not be clamped away.
func (p Probability) Valid() bool {
	f := float64(p)
	return !math.IsNaN(f) && f >= 0 && f <= 1
}

// Complement returns 1 - p.
func (p Probability) Complement() Probability { return 1 - p }

// String formats p with six decimals, the precision used by the reporter.
func (p Probability) String() string { return fmt.Sprintf("%.6f", float64(p)) }
