package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanAndVariance_ConstantSequence(t *testing.T) {
	mean, variance := MeanAndVariance([]float64{5.0, 5.0, 5.0})
	assert.Equal(t, 5.0, mean)
	assert.Equal(t, 0.0, variance)
}

func TestMeanAndVariance_PopulationForm(t *testing.T) {
	// (1+0+1)/3, not /2: the population definition.
	mean, variance := MeanAndVariance([]float64{1.0, 2.0, 3.0})
	assert.InDelta(t, 2.0, mean, 1e-12)
	assert.InDelta(t, 2.0/3.0, variance, 1e-9)
}

func TestMeanAndVariance_SingleSample(t *testing.T) {
	mean, variance := MeanAndVariance([]float64{42.5})
	assert.Equal(t, 42.5, mean)
	assert.Equal(t, 0.0, variance)
}

func TestMeanAndVariance_Empty(t *testing.T) {
	mean, variance := MeanAndVariance(nil)
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 0.0, variance)
}

func TestMeanAndVariance_NonNegative(t *testing.T) {
	seqs := [][]float64{
		{0.1, -0.1, 0.3, 7.5},
		{-3, -3, -3, -2.999},
		{1e9, 1e9 + 1},
		{0},
	}
	for i, xs := range seqs {
		_, variance := MeanAndVariance(xs)
		require.GreaterOrEqual(t, variance, 0.0, "seq %d", i)
	}
}
