package distribution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prng-go/pkg/pseudorandom"
)

const Tolerance = 1e-9

func TestUniformIdentityRange(t *testing.T) {
	ri := []float64{0.12345, 0.5, 0.99999, 0.00001}
	ni, err := Uniform(ri, UniformParams{Low: 0, High: 1})
	require.NoError(t, err)
	require.Len(t, ni, len(ri))
	for i := range ri {
		assert.InDelta(t, ri[i], ni[i], Tolerance)
	}
}

func TestUniformScalesAndTruncates(t *testing.T) {
	ni, err := NewUniformParams(10, 20).Map([]float64{0.123456, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 11.23456, ni[0], Tolerance)
	assert.InDelta(t, 15.0, ni[1], Tolerance)

	ni, err = Uniform(nil, UniformParams{Low: 1, High: 2})
	require.NoError(t, err)
	assert.Empty(t, ni)
}

func TestUniformRejectsInvertedRange(t *testing.T) {
	_, err := Uniform([]float64{0.5}, UniformParams{Low: 10, High: 5})
	var perr *pseudorandom.ParameterError
	require.ErrorAs(t, err, &perr)
}

func TestNormalInverseQuantiles(t *testing.T) {
	ri := []float64{0.5, 0.8413447460685429, 0.15865525393145707}
	ni, err := NormalInvParams{Intervals: 3, Mean: 10, StdDev: 2}.Map(ri)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, ni[0], Tolerance)
	assert.InDelta(t, 12.0, ni[1], Tolerance)
	assert.InDelta(t, 8.0, ni[2], Tolerance)
}

func TestNormalInverseHistogram(t *testing.T) {
	ri := []float64{0.5, 0.8413447460685429, 0.15865525393145707}
	res, err := NormalInverse(ri, NormalInvParams{Intervals: 3, Mean: 0, StdDev: 1})
	require.NoError(t, err)

	require.Len(t, res.Intervals, 3)
	assert.InDelta(t, -1.0, res.Intervals[0], Tolerance)
	assert.InDelta(t, 0.0, res.Intervals[1], Tolerance)
	assert.InDelta(t, 1.0, res.Intervals[2], Tolerance)
	assert.Equal(t, []int{1, 1, 1}, res.Frequencies)
	assert.Equal(t, ri, res.Ri)
}

func TestNormalInverseDegenerateValues(t *testing.T) {
	res, err := NormalInverse([]float64{0, 0.5, 1, 1.5}, NormalInvParams{Intervals: 2, Mean: 0, StdDev: 1})
	require.NoError(t, err)

	assert.True(t, math.IsInf(res.Ni[0], -1))
	assert.True(t, math.IsInf(res.Ni[2], 1))
	assert.True(t, math.IsNaN(res.Ni[3]))
	assert.Equal(t, []float64{0, 0}, res.Intervals)
	assert.Equal(t, []int{2, 1}, res.Frequencies)
}

func TestNormalInverseValidation(t *testing.T) {
	var verr *ValidationError

	_, err := NormalInverse([]float64{0.2, 0.4}, NormalInvParams{Intervals: 1, Mean: 0, StdDev: 1})
	require.ErrorAs(t, err, &verr)

	_, err = NormalInverse(nil, NormalInvParams{Intervals: 5, Mean: 0, StdDev: 1})
	require.ErrorAs(t, err, &verr)

	_, err = NormalInverse([]float64{2, -1}, NormalInvParams{Intervals: 5, Mean: 0, StdDev: 1})
	require.ErrorAs(t, err, &verr)

	var perr *pseudorandom.ParameterError
	_, err = NormalInverse([]float64{0.3}, NormalInvParams{Intervals: 5, Mean: 0, StdDev: 0})
	require.ErrorAs(t, err, &perr)

	_, err = NormalInverse([]float64{0.3}, NormalInvParams{Intervals: MaxIntervals + 1, Mean: 0, StdDev: 1})
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "intervals", perr.Param)

	res, err := NormalInverse([]float64{0.3, 0.6}, NormalInvParams{Intervals: MaxIntervals, Mean: 0, StdDev: 1})
	require.NoError(t, err)
	assert.Len(t, res.Frequencies, MaxIntervals)
}

func TestFrequenciesAllNaN(t *testing.T) {
	_, err := Frequencies([]float64{math.NaN(), math.NaN()}, []float64{0, 1})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestNormalInverseProperties(t *testing.T) {
	series, err := pseudorandom.LinearCongruential(pseudorandom.LinearCongruentialParams{
		Seed: 7, K: 5, C: 3, G: 10, Min: 0, Max: 1, Iterations: 800,
	})
	require.NoError(t, err)

	for _, amount := range []int{2, 5, 12, 40} {
		res, err := NormalInverse(series.Ri, NormalInvParams{Intervals: amount, Mean: 5, StdDev: 1.5})
		require.NoError(t, err)

		require.Len(t, res.Intervals, amount)
		require.Len(t, res.Frequencies, amount)

		total := 0
		for _, f := range res.Frequencies {
			require.GreaterOrEqual(t, f, 0)
			total += f
		}
		assert.Equal(t, len(res.Ni), total)

		for i := 1; i < len(res.Intervals); i++ {
			assert.GreaterOrEqual(t, res.Intervals[i], res.Intervals[i-1])
		}
	}
}

func TestMapperFactory(t *testing.T) {
	m := NewMapper(true, 0, 0, 4, 0, 1)
	assert.Equal(t, KindNormalInverse, m.Kind())
	assert.Equal(t, "pseudoRandomNumbersNormalDistribution.json", m.Kind().FileName())

	m = NewMapper(false, 0, 100, 0, 0, 0)
	assert.Equal(t, KindUniform, m.Kind())
	ni, err := m.Map([]float64{0.25})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, ni[0], Tolerance)
}
