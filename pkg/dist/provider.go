package dist

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultResolution is the native-provider ensemble size used when a
// configuration does not specify one.
const DefaultResolution = 4096

// Provider produces distributional values for configured uniform ranges.
//
// The native backend returns values that carry a full distribution; the
// Monte Carlo backend returns independent scalar draws and leaves the
// empirical reconstruction to the caller (FromSamples).
type Provider interface {
	Uniform(low, high float64) (Value, error)
}

// nativeProvider emits R-point ensembles with exact uniform marginals.
type nativeProvider struct {
	resolution int
	rng        *rand.Rand
}

// Native returns the single-pass distributional provider. resolution is the
// number of support points per value; seed fixes the pairing permutations.
func Native(resolution int, seed uint64) (Provider, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadResolution, resolution)
	}
	return &nativeProvider{
		resolution: resolution,
		rng:        rand.New(rand.NewPCG(seed, 0)),
	}, nil
}

func (p *nativeProvider) Uniform(low, high float64) (Value, error) {
	if err := checkRange(low, high); err != nil {
		return Value{}, err
	}

	// Equiprobable midpoints give an exact uniform marginal; the random
	// point order decorrelates this value from every other drawn value.
	r := p.resolution
	points := make([]float64, r)
	for i, j := range p.rng.Perm(r) {
		points[j] = low + (high-low)*(float64(i)+0.5)/float64(r)
	}
	return Value{points: points}, nil
}

// monteCarloProvider emits independent scalar draws.
type monteCarloProvider struct {
	src rand.Source
}

// MonteCarlo returns the explicit-sampling provider seeded with seed.
func MonteCarlo(seed uint64) Provider {
	return &monteCarloProvider{src: rand.NewPCG(seed, 0)}
}

func (p *monteCarloProvider) Uniform(low, high float64) (Value, error) {
	if err := checkRange(low, high); err != nil {
		return Value{}, err
	}
	u := distuv.Uniform{Min: low, Max: high, Src: p.src}
	return Scalar(u.Rand()), nil
}

func checkRange(low, high float64) error {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return fmt.Errorf("%w: [%v, %v]", ErrBadRange, low, high)
	}
	if low > high {
		return fmt.Errorf("%w: low %v > high %v", ErrBadRange, low, high)
	}
	return nil
}
