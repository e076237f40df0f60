package solver

import (
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

const penalty = 1e9

// Fit is the normal distribution that best reproduces a histogram.
type Fit struct {
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Residual float64 `json:"residual"`
}

// FitNormal minimises the euclidean distance between observed frequencies
// and the counts a normal(mean, sd) would put in the same intervals.
func FitNormal(intervals []float64, frequencies []int) (Fit, error) {
	if len(intervals) < 2 || len(intervals) != len(frequencies) {
		return Fit{}, errors.From(errors.New("need matching intervals and frequencies"), logan.F{
			"intervals":   len(intervals),
			"frequencies": len(frequencies),
		})
	}
	observed := FormObservedVector(frequencies)
	n := floats.Sum(observed.RawVector().Data)
	if n == 0 {
		return Fit{}, errors.New("histogram is empty")
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			if x[1] <= 0 {
				return penalty
			}
			var diff mat.VecDense
			diff.SubVec(ExpectedCounts(intervals, n, x[0], x[1]), observed)
			return mat.Norm(&diff, 2)
		},
	}

	settings := &optimize.Settings{
		MajorIterations: 1000,
		FuncEvaluations: 4000,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-9,
			Relative:   1e-9,
			Iterations: 50,
		},
	}

	mu, sigma := InitialGuess(intervals, frequencies)
	result, err := optimize.Minimize(problem, []float64{mu, sigma}, settings, &optimize.NelderMead{})
	if result == nil {
		if err == nil {
			err = errors.New("no result")
		}
		return Fit{}, errors.Wrap(err, "optimization failed")
	}
	// err may only report an evaluation limit here; result holds the best point.

	return Fit{
		Mean:     result.X[0],
		StdDev:   result.X[1],
		Residual: problem.Func(result.X),
	}, nil
}
