package dist

import "errors"

var (
	// ErrBadRange indicates a uniform range with low > high or a non-finite bound.
	ErrBadRange = errors.New("dist: bad uniform range")

	// ErrBadResolution indicates a native provider resolution below 1.
	ErrBadResolution = errors.New("dist: resolution must be >= 1")

	// ErrEmpty indicates an attempt to build a Value from zero samples.
	ErrEmpty = errors.New("dist: empty sample sequence")
)
