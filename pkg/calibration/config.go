package calibration

import (
	"fmt"

	"github.com/ja7ad/sensorcal/pkg/dist"
)

// Range is a closed uniform-distribution interval for an input voltage.
type Range struct {
	Low  float64
	High float64
}

func (r Range) zero() bool { return r.Low == 0 && r.High == 0 }

// Default input ranges, from the sensor's electrical specification.
var (
	DefaultVrhRange     = Range{Low: 2.3, High: 2.7}
	DefaultVtRange      = Range{Low: 2.3, High: 2.7}
	DefaultVsupplyRange = Range{Low: 4.8, High: 5.4}
)

// Config describes a single calibration run.
// Zero-valued fields take defaults; see NewRunner.
type Config struct {
	// Input voltage ranges (Volt).
	Vrh     Range
	Vt      Range
	Vsupply Range

	// Output selects the channel(s) to compute. Default: AllOutputs.
	Output OutputChannel

	// MonteCarlo switches from single-pass distributional arithmetic to
	// explicit repeated sampling with Iterations independent draws.
	MonteCarlo bool

	// Iterations is the Monte Carlo draw count N. Default 1; values above 1
	// are only valid with MonteCarlo set.
	Iterations int

	// Resolution is the native-mode ensemble size. Default dist.DefaultResolution.
	Resolution int

	// Seed fixes the pseudo-random state of the chosen provider.
	Seed uint64
}

// merge fills defaulted fields, leaving cfg itself untouched.
func merge(cfg *Config) Config {
	merged := Config{Output: AllOutputs, Iterations: 1, Resolution: dist.DefaultResolution}
	merged.Vrh = DefaultVrhRange
	merged.Vt = DefaultVtRange
	merged.Vsupply = DefaultVsupplyRange

	if cfg == nil {
		return merged
	}

	if !cfg.Vrh.zero() {
		merged.Vrh = cfg.Vrh
	}
	if !cfg.Vt.zero() {
		merged.Vt = cfg.Vt
	}
	if !cfg.Vsupply.zero() {
		merged.Vsupply = cfg.Vsupply
	}
	merged.Output = cfg.Output
	merged.MonteCarlo = cfg.MonteCarlo
	if cfg.Iterations > 0 {
		merged.Iterations = cfg.Iterations
	}
	if cfg.Resolution > 0 {
		merged.Resolution = cfg.Resolution
	}
	merged.Seed = cfg.Seed

	return merged
}

// validate runs every configuration check before any sampling work starts.
func (c Config) validate() error {
	if c.Output < 0 || c.Output > AllOutputs {
		return fmt.Errorf("%w: %d", ErrBadOutput, int(c.Output))
	}
	for _, r := range []struct {
		name string
		Range
	}{
		{"vrh", c.Vrh},
		{"vt", c.Vt},
		{"vsupply", c.Vsupply},
	} {
		if r.Low > r.High {
			return fmt.Errorf("%w: %s [%g, %g]", ErrBadRange, r.name, r.Low, r.High)
		}
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: %d", ErrBadIterations, c.Iterations)
	}
	if c.Iterations > 1 && !c.MonteCarlo {
		return fmt.Errorf("%w: %d iterations without Monte Carlo mode", ErrBadIterations, c.Iterations)
	}
	if c.MonteCarlo && c.Output == AllOutputs {
		return ErrAllWithMonteCarlo
	}
	return nil
}
