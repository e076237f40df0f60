package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ExpectedCounts returns how many of n normal(mu, sigma) draws fall into
// each bin of the interval layout used by the normal-inverse histogram:
// bin 0 also takes everything below intervals[1] and the last bin
// everything from the last boundary up.
func ExpectedCounts(intervals []float64, n, mu, sigma float64) *mat.VecDense {
	k := len(intervals)
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	res := mat.NewVecDense(k, nil)
	if k == 1 {
		res.SetVec(0, n)
		return res
	}

	prev := 0.0
	for j := 0; j < k; j++ {
		upper := 1.0
		if j < k-1 {
			upper = dist.CDF(intervals[j+1])
		}
		res.SetVec(j, n*(upper-prev))
		prev = upper
	}
	return res
}

// FormObservedVector converts frequencies to a vector.
func FormObservedVector(frequencies []int) *mat.VecDense {
	v := make([]float64, len(frequencies))
	for i, f := range frequencies {
		v[i] = float64(f)
	}
	return mat.NewVecDense(len(v), v)
}

// InitialGuess is the frequency weighted mean and standard deviation of the
// bin midpoints.
func InitialGuess(intervals []float64, frequencies []int) (mu, sigma float64) {
	k := len(intervals)
	width := 1.0
	if k > 1 {
		width = intervals[1] - intervals[0]
	}
	mids := make([]float64, k)
	weights := make([]float64, k)
	for j := range intervals {
		mids[j] = intervals[j] + width/2
		weights[j] = float64(frequencies[j])
	}

	total := floats.Sum(weights)
	if total == 0 {
		return intervals[0], width
	}
	mu = floats.Dot(mids, weights) / total

	variance := 0.0
	for j := range mids {
		d := mids[j] - mu
		variance += weights[j] * d * d
	}
	sigma = math.Sqrt(variance / total)
	if sigma == 0 || math.IsNaN(sigma) {
		sigma = math.Max(width, 1e-3)
	}
	return mu, sigma
}
