package distribution

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"prng-go/pkg/pseudorandom"
)

// MaxIntervals bounds the histogram size.
const MaxIntervals = 100_000

// NormalInvParams represents the parameters of the normal-inverse transform:
// the histogram size, the mean and the standard deviation.
type NormalInvParams struct {
	Intervals int     `json:"intervals"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
}

// NewNormalInvParams creates a new NormalInvParams instance with the given parameters.
func NewNormalInvParams(intervals int, mean, stdDev float64) *NormalInvParams {
	return &NormalInvParams{
		Intervals: intervals,
		Mean:      mean,
		StdDev:    stdDev,
	}
}

// Validate checks if the parameters are valid.
// Interval counts below 2 are left to the histogram step, which reports a ValidationError.
func (p NormalInvParams) Validate() error {
	if p.StdDev <= 0 || math.IsNaN(p.StdDev) {
		return &pseudorandom.ParameterError{Param: "std_dev", Reason: "must be positive"}
	}
	if p.Intervals > MaxIntervals {
		return &pseudorandom.ParameterError{Param: "intervals", Reason: fmt.Sprintf("must be at most %d", MaxIntervals)}
	}
	return nil
}

// Result is the outcome of a normal-inverse run.
type Result struct {
	Ri          []float64 `json:"ri"`
	Ni          []float64 `json:"ni"`
	Intervals   []float64 `json:"intervals"`
	Frequencies []int     `json:"frequencies"`
}

// Map applies the normal quantile function to every Ri.
// Ri of 0 or 1 give ±Inf and values outside [0,1] give NaN; both are kept.
func (p NormalInvParams) Map(ri []float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	dist := distuv.Normal{Mu: p.Mean, Sigma: p.StdDev}
	ni := make([]float64, len(ri))
	for i, r := range ri {
		ni[i] = pseudorandom.Round(quantile(dist, r))
	}
	return ni, nil
}

func quantile(dist distuv.Normal, p float64) float64 {
	// distuv panics outside [0,1].
	if math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}
	return dist.Quantile(p)
}

// NormalInverse maps Ri through the normal quantile function and bins the
// result into p.Intervals equal-width intervals.
func NormalInverse(ri []float64, p NormalInvParams) (Result, error) {
	ni, err := p.Map(ri)
	if err != nil {
		return Result{}, err
	}
	intervals, err := Intervals(ni, p.Intervals)
	if err != nil {
		return Result{}, err
	}
	freq, err := Frequencies(ni, intervals)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Ri:          append([]float64(nil), ri...),
		Ni:          ni,
		Intervals:   intervals,
		Frequencies: freq,
	}, nil
}
