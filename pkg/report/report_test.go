package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/sensorcal/pkg/dist"
)

// faultyDist returns an out-of-range probability to exercise the fault path.
type faultyDist struct{}

func (faultyDist) Mean() float64                   { return 1 }
func (faultyDist) ProbabilityGT(_ float64) float64 { return 1.5 }

func TestTails_PointMass(t *testing.T) {
	var buf bytes.Buffer
	err := Tails(&buf, dist.Scalar(50.0), "Calibrated Relative Humidity", "%")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Calibrated Relative Humidity: 50.00 %.")

	// A point mass at 50: P(X > 47.5) = 1, so "5% or more smaller" is 0;
	// P(X > 52.5) = 0, so "5% or more greater" is 0.
	assert.Contains(t, out, "  5% or more smaller than 50.00, is 0.000000")
	assert.Contains(t, out, "  5% or more greater than 50.00, is 0.000000")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 11, "1 value line + 2 blanks + 8 probability lines")
}

func TestTails_EmpiricalDistribution(t *testing.T) {
	// Mean 100; one sample 5% below, none 5% above.
	v, err := dist.FromSamples([]float64{94, 100, 106}) // mean 100
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Tails(&buf, v, "Calibrated Temperature (in Celsius)", "Celsius"))
	out := buf.String()

	// P(X > 95) = 2/3 -> smaller prob = 1/3. P(X > 105) = 1/3.
	assert.Contains(t, out, "  5% or more smaller than 100.00, is 0.333333")
	assert.Contains(t, out, "  5% or more greater than 100.00, is 0.333333")
	// 200% smaller threshold is -100; all mass above it.
	assert.Contains(t, out, "200% or more smaller than 100.00, is 0.000000")
}

func TestTails_ZeroValue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tails(&buf, dist.Scalar(0), "x", "u"))
	// All thresholds collapse to 0; strictly-greater query returns 0 mass.
	assert.Contains(t, buf.String(), "or more greater than 0.00, is 0.000000")
}

func TestTails_ProviderFault(t *testing.T) {
	var buf bytes.Buffer
	err := Tails(&buf, faultyDist{}, "x", "u")
	require.ErrorIs(t, err, ErrBadProbability)
}

func tailProbs(t *testing.T, v Distribution) (smaller, greater [4]float64) {
	t.Helper()
	mean := v.Mean()
	for i, th := range []float64{0.05, 0.50, 1.00, 2.00} {
		smaller[i] = 1 - v.ProbabilityGT(mean*(1-th))
		greater[i] = v.ProbabilityGT(mean*(1+th))
	}
	return
}

func TestTails_MonotonicInThreshold(t *testing.T) {
	// A wider downward excursion is a stronger event, so its probability
	// cannot exceed a narrower one; likewise upward. Checked against both
	// the native ensemble and an empirical sample distribution.
	p, err := dist.Native(2048, 9)
	require.NoError(t, err)
	native, err := p.Uniform(40, 60)
	require.NoError(t, err)

	empirical, err := dist.FromSamples([]float64{41, 45, 48, 50, 52, 55, 59})
	require.NoError(t, err)

	for name, v := range map[string]Distribution{"native": native, "empirical": empirical} {
		smaller, greater := tailProbs(t, v)
		for i := 1; i < 4; i++ {
			require.LessOrEqual(t, smaller[i], smaller[i-1], "%s smaller tail, threshold %d", name, i)
			require.LessOrEqual(t, greater[i], greater[i-1], "%s greater tail, threshold %d", name, i)
		}
	}
}
