// Package uniformity holds acceptance checks for sequences of Ri values
// that are supposed to be uniform on [0,1).
package uniformity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultAlpha is the significance level used when none is given.
const DefaultAlpha = 0.05

// Result describes one check: the statistic and the acceptance region.
type Result struct {
	Name      string  `json:"name"`
	Statistic float64 `json:"statistic"`
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	Passed    bool    `json:"passed"`
}

func (r Result) String() string {
	verdict := "rejected"
	if r.Passed {
		verdict = "accepted"
	}
	return fmt.Sprintf("%s: %.5f in [%.5f, %.5f] %s", r.Name, r.Statistic, r.Lower, r.Upper, verdict)
}

func checkInput(ri []float64, min int, alpha float64) error {
	if len(ri) < min {
		return fmt.Errorf("need at least %d values, got %d", min, len(ri))
	}
	if alpha <= 0 || alpha >= 1 {
		return fmt.Errorf("alpha must be in (0,1), got %g", alpha)
	}
	return nil
}

// MeanTest accepts when the sample mean lies within z(1-α/2)/sqrt(12n) of 1/2.
func MeanTest(ri []float64, alpha float64) (Result, error) {
	if err := checkInput(ri, 1, alpha); err != nil {
		return Result{}, err
	}
	n := float64(len(ri))
	z := distuv.UnitNormal.Quantile(1 - alpha/2)
	half := z / math.Sqrt(12*n)
	mean := stat.Mean(ri, nil)

	res := Result{Name: "mean", Statistic: mean, Lower: 0.5 - half, Upper: 0.5 + half}
	res.Passed = mean >= res.Lower && mean <= res.Upper
	return res, nil
}

// VarianceTest accepts when the sample variance lies between the
// chi-square bounds scaled by 12(n-1).
func VarianceTest(ri []float64, alpha float64) (Result, error) {
	if err := checkInput(ri, 2, alpha); err != nil {
		return Result{}, err
	}
	df := float64(len(ri) - 1)
	chi := distuv.ChiSquared{K: df}
	variance := stat.Variance(ri, nil)

	res := Result{
		Name:      "variance",
		Statistic: variance,
		Lower:     chi.Quantile(alpha/2) / (12 * df),
		Upper:     chi.Quantile(1-alpha/2) / (12 * df),
	}
	res.Passed = variance >= res.Lower && variance <= res.Upper
	return res, nil
}

// ChiSquareTest splits [0,1) into bins equal intervals and compares the
// observed counts against n/bins.
func ChiSquareTest(ri []float64, bins int, alpha float64) (Result, error) {
	if err := checkInput(ri, 1, alpha); err != nil {
		return Result{}, err
	}
	if bins < 2 {
		return Result{}, fmt.Errorf("need at least 2 bins, got %d", bins)
	}

	observed := make([]float64, bins)
	for _, r := range ri {
		i := int(math.Floor(r * float64(bins)))
		if i < 0 {
			i = 0
		} else if i >= bins {
			i = bins - 1
		}
		observed[i]++
	}

	expected := float64(len(ri)) / float64(bins)
	statistic := 0.0
	for _, o := range observed {
		statistic += (o - expected) * (o - expected) / expected
	}

	chi := distuv.ChiSquared{K: float64(bins - 1)}
	res := Result{Name: "chi-square", Statistic: statistic, Lower: 0, Upper: chi.Quantile(1 - alpha)}
	res.Passed = statistic <= res.Upper
	return res, nil
}

// Run executes every check with the given significance level.
func Run(ri []float64, bins int, alpha float64) ([]Result, error) {
	checks := []func() (Result, error){
		func() (Result, error) { return MeanTest(ri, alpha) },
		func() (Result, error) { return VarianceTest(ri, alpha) },
		func() (Result, error) { return ChiSquareTest(ri, bins, alpha) },
	}
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		r, err := check()
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
