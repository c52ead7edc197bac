package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/sensorcal/pkg/calibration"
)

func TestParseRange(t *testing.T) {
	r, err := parseRange("2.3..2.7")
	require.NoError(t, err)
	assert.Equal(t, calibration.Range{Low: 2.3, High: 2.7}, r)

	r, err = parseRange("")
	require.NoError(t, err)
	assert.Equal(t, calibration.Range{}, r, "empty keeps the default")

	for _, bad := range []string{"2.3", "2.3..", "..2.7", "a..b", "2.3-2.7"} {
		_, err := parseRange(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestVariables_MonteCarloCarriesSamples(t *testing.T) {
	runner, err := calibration.NewRunner(&calibration.Config{
		Output:     calibration.RelativeHumidity,
		MonteCarlo: true,
		Iterations: 25,
		Seed:       4,
	})
	require.NoError(t, err)
	out, err := runner.Run()
	require.NoError(t, err)

	vars := variables(out, calibration.RelativeHumidity, true)
	require.Len(t, vars, 1)
	assert.Equal(t, "outputDistributions[0]", vars[0].Symbol)
	assert.Equal(t, out.Samples, vars[0].Values)
	assert.Equal(t, 25, vars[0].Size)
}

func TestVariables_NativeAllOutputs(t *testing.T) {
	runner, err := calibration.NewRunner(&calibration.Config{Seed: 4, Resolution: 64})
	require.NoError(t, err)
	out, err := runner.Run()
	require.NoError(t, err)

	vars := variables(out, calibration.AllOutputs, false)
	require.Len(t, vars, 3)
	for _, v := range vars {
		assert.Equal(t, 64, v.Size)
	}
}
