package presenter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prng-go/internal/config"
	"prng-go/internal/metrics"
	"prng-go/pkg/distribution"
	"prng-go/pkg/pseudorandom"
	"prng-go/pkg/readseries"
)

func newTestPresenter(t *testing.T, charts bool) (*Presenter, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New(config.StaticGetter{
		"log":    {"level": "error"},
		"output": {"dir": dir, "charts": charts},
	})
	var buf bytes.Buffer
	return New(cfg, metrics.New(), &buf), &buf, dir
}

func lcParams(n int) pseudorandom.LinearCongruentialParams {
	return pseudorandom.LinearCongruentialParams{Seed: 5, K: 3, C: 7, G: 10, Min: 0, Max: 1, Iterations: n}
}

func TestValidateGenerator(t *testing.T) {
	cases := []struct {
		name  string
		gen   pseudorandom.Generator
		param string
	}{
		{"short seed", pseudorandom.MiddleSquareParams{Seed: 42, Min: 0, Max: 1, Iterations: 1}, "seed"},
		{"ms min above max", &pseudorandom.MiddleSquareParams{Seed: 1234, Min: 2, Max: 1, Iterations: 1}, "min"},
		{"lc seed not below g", pseudorandom.LinearCongruentialParams{Seed: 10, K: 1, C: 1, G: 10, Max: 1, Iterations: 1}, "g"},
		{"lc c not below g", &pseudorandom.LinearCongruentialParams{Seed: 1, K: 1, C: 12, G: 10, Max: 1, Iterations: 1}, "g"},
		{"mc t not below g", pseudorandom.MultiplicativeCongruentialParams{Seed: 1, T: 10, G: 10, Max: 1, Iterations: 1}, "g"},
		{"mc zero iterations", &pseudorandom.MultiplicativeCongruentialParams{Seed: 1, T: 1, G: 10, Max: 1}, "iterations"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateGenerator(tc.gen)
			var paramErr *pseudorandom.ParameterError
			require.True(t, errors.As(err, &paramErr), "got %v", err)
			assert.Equal(t, tc.param, paramErr.Param)
		})
	}

	assert.NoError(t, ValidateGenerator(lcParams(10)))
	assert.NoError(t, ValidateGenerator(pseudorandom.NewMiddleSquareParams(5735, 0, 1, 10)))
	assert.NoError(t, ValidateGenerator(pseudorandom.NewMultiplicativeCongruentialParams(5, 3, 10, 0, 1, 10)))
}

func TestRunGeneratorPersists(t *testing.T) {
	p, buf, dir := newTestPresenter(t, true)

	report, err := p.RunGenerator(lcParams(20), Options{Persist: true})
	require.NoError(t, err)
	assert.Equal(t, 20, report.Series.Len())

	folder := filepath.Join(dir, "NumbersGenerated")
	assert.Equal(t, filepath.Join(folder, "linearCongruentialNumbers.json"), report.File)
	for _, name := range []string{"linearCongruentialNumbers.json", "linearCongruentialNumbers.csv", "linearCongruentialNumbers.png"} {
		_, err := os.Stat(filepath.Join(folder, name))
		assert.NoError(t, err, name)
	}

	ri, err := readseries.ReadSeries(report.File)
	require.NoError(t, err)
	assert.Equal(t, report.Series.Ri, ri)

	csv, err := os.ReadFile(filepath.Join(folder, "linearCongruentialNumbers.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csv), "Xi,Ri,Ni\n"))
	assert.Len(t, strings.Split(strings.TrimSpace(string(csv)), "\n"), 21)

	assert.Contains(t, buf.String(), "Xi")
}

func TestRunGeneratorMiddleSquareCenters(t *testing.T) {
	p, _, _ := newTestPresenter(t, false)

	report, err := p.RunGenerator(pseudorandom.NewMiddleSquareParams(1009, 0, 1, 3), Options{})
	require.NoError(t, err)
	assert.Equal(t, []int64{180, 324, 1049}, report.Centers)
	assert.Empty(t, report.File)
}

func TestRunGeneratorChecks(t *testing.T) {
	p, buf, _ := newTestPresenter(t, false)

	report, err := p.RunGenerator(lcParams(500), Options{Check: true})
	require.NoError(t, err)
	require.Len(t, report.Checks, 3)
	assert.Equal(t, "mean", report.Checks[0].Name)
	assert.Contains(t, buf.String(), "chi-square")
}

func TestRunGeneratorRejectsBeforeRunning(t *testing.T) {
	p, buf, dir := newTestPresenter(t, false)

	params := lcParams(10)
	params.Seed = 11
	_, err := p.RunGenerator(params, Options{Persist: true})
	var paramErr *pseudorandom.ParameterError
	require.True(t, errors.As(err, &paramErr))

	_, err = os.Stat(filepath.Join(dir, "NumbersGenerated"))
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, buf.String())
}

func TestLoadSource(t *testing.T) {
	p, _, _ := newTestPresenter(t, false)

	_, err := p.LoadSource(pseudorandom.MethodMultiplicativeCongruential)
	assert.Equal(t, ErrNoSource, err)

	report, err := p.RunGenerator(pseudorandom.NewMultiplicativeCongruentialParams(5, 3, 10, 0, 1, 15), Options{Persist: true})
	require.NoError(t, err)

	ri, err := p.LoadSource(pseudorandom.MethodMultiplicativeCongruential)
	require.NoError(t, err)
	assert.Equal(t, report.Series.Ri, ri)

	require.NoError(t, SaveNumbers(nil, p.out.Path(pseudorandom.MethodMiddleSquare.FileName())))
	_, err = p.LoadSource(pseudorandom.MethodMiddleSquare)
	assert.Equal(t, ErrNoSource, err)
}

func TestLoadInputText(t *testing.T) {
	p, _, dir := newTestPresenter(t, false)

	file := filepath.Join(dir, "ri.txt")
	require.NoError(t, os.WriteFile(file, []byte("x r\n1 0.25\n2 0.5\n"), 0o644))

	ri, err := p.LoadInput(file)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.5}, ri)
}

func TestRunUniform(t *testing.T) {
	p, buf, dir := newTestPresenter(t, false)

	_, err := p.RunGenerator(lcParams(50), Options{Persist: true})
	require.NoError(t, err)
	ri, err := p.LoadSource(pseudorandom.MethodLinearCongruential)
	require.NoError(t, err)

	report, err := p.RunUniform(ri, *distribution.NewUniformParams(10, 20), Options{Persist: true})
	require.NoError(t, err)
	require.Len(t, report.Ni, 50)
	for _, v := range report.Ni {
		assert.True(t, v >= 10 && v < 20, "%v out of range", v)
	}

	persisted, err := readseries.ReadSeries(filepath.Join(dir, "NumbersGenerated", "uniformDistributionNumbers.json"))
	require.NoError(t, err)
	assert.Equal(t, report.Ni, persisted)
	assert.Contains(t, buf.String(), "Ni")

	_, err = p.RunUniform(nil, *distribution.NewUniformParams(0, 1), Options{})
	assert.Equal(t, ErrNoSource, err)

	_, err = p.RunUniform(ri, *distribution.NewUniformParams(2, 1), Options{})
	var paramErr *pseudorandom.ParameterError
	assert.True(t, errors.As(err, &paramErr))
}

func TestRunNormal(t *testing.T) {
	p, buf, dir := newTestPresenter(t, true)

	gen, err := p.RunGenerator(lcParams(400), Options{})
	require.NoError(t, err)

	report, err := p.RunNormal(gen.Series.Ri, *distribution.NewNormalInvParams(8, 0, 1), Options{Persist: true, Fit: true})
	require.NoError(t, err)
	require.Len(t, report.Intervals, 8)
	require.Len(t, report.Frequencies, 8)

	total := 0
	for _, f := range report.Frequencies {
		total += f
	}
	assert.Equal(t, 400, total)

	require.NotNil(t, report.Fit)
	assert.Greater(t, report.Fit.StdDev, 0.0)

	_, err = os.Stat(filepath.Join(dir, "NumbersGenerated", "pseudoRandomNumbersNormalDistribution.png"))
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "█")
	assert.Contains(t, buf.String(), "fit: mean=")

	_, err = p.RunNormal(gen.Series.Ri, *distribution.NewNormalInvParams(1, 0, 1), Options{})
	var validationErr *distribution.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestWithOutputDir(t *testing.T) {
	p, _, _ := newTestPresenter(t, false)
	dir := t.TempDir()

	report, err := p.WithOutputDir(dir).RunGenerator(lcParams(5), Options{Persist: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "NumbersGenerated", "linearCongruentialNumbers.json"), report.File)
}

func TestRunMapper(t *testing.T) {
	p, _, dir := newTestPresenter(t, false)
	folder := filepath.Join(dir, "NumbersGenerated")
	ri := []float64{0.1, 0.5, 0.9}

	require.NoError(t, p.RunMapper(ri, distribution.NewMapper(false, 0, 10, 0, 0, 0), Options{Persist: true}))
	ni, err := readseries.ReadSeries(filepath.Join(folder, "uniformDistributionNumbers.json"))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 5, 9}, ni, 1e-9)

	require.NoError(t, p.RunMapper(ri, distribution.NewMapper(true, 0, 0, 3, 0, 1), Options{Persist: true}))
	ni, err = readseries.ReadSeries(filepath.Join(folder, "pseudoRandomNumbersNormalDistribution.json"))
	require.NoError(t, err)
	require.Len(t, ni, 3)
	assert.InDelta(t, 0.0, ni[1], 1e-9)

	err = p.RunMapper(ri, distribution.NewMapper(true, 0, 0, distribution.MaxIntervals+1, 0, 1), Options{})
	var paramErr *pseudorandom.ParameterError
	assert.True(t, errors.As(err, &paramErr))
}
