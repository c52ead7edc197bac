package calibration

import "errors"

var (
	// ErrBadOutput indicates an output selector outside the known channels.
	ErrBadOutput = errors.New("calibration: bad output selector")

	// ErrBadRange indicates a configured voltage range with low > high.
	ErrBadRange = errors.New("calibration: bad voltage range")

	// ErrBadIterations indicates an iteration count below 1, or a count
	// above 1 without Monte Carlo mode.
	ErrBadIterations = errors.New("calibration: bad iteration count")

	// ErrAllWithMonteCarlo indicates AllOutputs combined with Monte Carlo
	// mode; repeated sampling tracks a single output only.
	ErrAllWithMonteCarlo = errors.New("calibration: all outputs incompatible with Monte Carlo mode")

	// ErrNonPositiveSupply indicates a supply voltage at or below zero,
	// which the configured ranges should make impossible.
	ErrNonPositiveSupply = errors.New("calibration: supply voltage must be positive")
)
