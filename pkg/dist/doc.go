// Package dist provides the distributional values that feed the calibration
// model in pkg/calibration, and the providers that produce them.
//
// A Value is an ordered set of equally probable support points. Two shapes
// occur in practice:
//
//   - a 1-point Value, which behaves like a plain scalar; and
//   - an R-point Value, which represents a full probability distribution
//     (R is the provider resolution).
//
// Arithmetic (Div, Scale, Shift) operates elementwise over support points,
// with 1-point Values broadcast against multi-point ones, so the same
// calibration code runs unchanged in both execution modes. Probability
// queries (ProbabilityGT) count the fraction of mass strictly above a
// threshold.
//
//   - Provider interface:
//     Uniform(low, high float64) (Value, error)
//
//   - Backends:
//
//   - Native(resolution, seed): single-pass distributional arithmetic. Each
//     Uniform call returns an R-point Value whose support points are the
//     equiprobable midpoints of the range, in an order permuted per call.
//     The permutation is what makes elementwise combination of two
//     independently drawn Values sample their joint distribution
//     independently (Latin-hypercube pairing); without it, dividing two
//     ascending ensembles would correlate them point for point.
//
//   - MonteCarlo(seed): explicit sampling. Each Uniform call returns a
//     1-point Value drawn pseudo-randomly from the range; successive calls
//     are independent and identically distributed. The caller loops N times
//     and rebuilds a distribution from the retained outputs via FromSamples.
//
// Both backends are deterministic for a fixed seed, which is what the tests
// rely on.
//
// Example: propagating a ratio of uniforms
//
//	p, _ := dist.Native(4096, 1)
//	num, _ := p.Uniform(2.3, 2.7)
//	den, _ := p.Uniform(4.8, 5.4)
//	out := num.Div(den).Scale(125).Shift(-12.5)
//	fmt.Printf("mean=%.2f P(>55)=%.4f\n", out.Mean(), out.ProbabilityGT(55))
package dist
