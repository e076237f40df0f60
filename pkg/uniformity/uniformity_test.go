package uniformity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spread(n int) []float64 {
	ri := make([]float64, n)
	for i := range ri {
		ri[i] = (float64(i) + 0.5) / float64(n)
	}
	return ri
}

func TestAcceptsEvenSpread(t *testing.T) {
	results, err := Run(spread(1000), 10, DefaultAlpha)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Passed, r.String())
	}
	assert.InDelta(t, 0.5, results[0].Statistic, 1e-12)
	assert.InDelta(t, 0.0, results[2].Statistic, 1e-12)
}

func TestRejectsConstantSequence(t *testing.T) {
	ri := make([]float64, 200)
	for i := range ri {
		ri[i] = 0.9
	}
	results, err := Run(ri, 10, DefaultAlpha)
	require.NoError(t, err)
	for _, r := range results {
		assert.False(t, r.Passed, r.String())
	}
}

func TestVarianceBounds(t *testing.T) {
	res, err := VarianceTest(spread(1000), 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 0.0762, res.Lower, 1e-3)
	assert.InDelta(t, 0.0908, res.Upper, 1e-3)
}

func TestInputChecks(t *testing.T) {
	_, err := MeanTest(nil, DefaultAlpha)
	assert.Error(t, err)
	_, err = VarianceTest([]float64{0.5}, DefaultAlpha)
	assert.Error(t, err)
	_, err = ChiSquareTest(spread(10), 1, DefaultAlpha)
	assert.Error(t, err)
	_, err = MeanTest(spread(10), 1.5)
	assert.Error(t, err)
}
