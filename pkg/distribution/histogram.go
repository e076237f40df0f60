package distribution

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Intervals returns amount boundaries starting at min(ni) and spaced by
// (max(ni)-min(ni))/(amount-1), so the last boundary equals max(ni).
// Non-finite values are left out of min and max.
func Intervals(ni []float64, amount int) ([]float64, error) {
	if len(ni) == 0 {
		return nil, &ValidationError{Reason: "ni values are empty"}
	}
	if amount <= 1 {
		return nil, &ValidationError{Reason: "intervals amount must be greater than 1"}
	}
	finite := finiteValues(ni)
	if len(finite) == 0 {
		return nil, &ValidationError{Reason: "ni values have no finite entries"}
	}

	lo, hi := floats.Min(finite), floats.Max(finite)
	length := (hi - lo) / float64(amount-1)

	intervals := make([]float64, amount)
	intervals[0] = lo
	for i := 1; i < amount; i++ {
		intervals[i] = intervals[i-1] + length
	}
	return intervals, nil
}

// Frequencies counts the non-NaN values of ni per interval.
// The bin is floor((v-min)/width), clamped to the valid range so that
// max(ni) and +Inf fall in the last bin and -Inf in the first.
func Frequencies(ni, intervals []float64) ([]int, error) {
	if len(ni) == 0 {
		return nil, &ValidationError{Reason: "ni values are empty"}
	}
	values := make([]float64, 0, len(ni))
	for _, v := range ni {
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, &ValidationError{Reason: "all ni values are NaN"}
	}
	amount := len(intervals)
	if amount == 0 {
		return nil, &ValidationError{Reason: "intervals are empty"}
	}

	width := 1.0
	if amount > 1 {
		width = intervals[1] - intervals[0]
	}
	lo := intervals[0]
	if finite := finiteValues(values); len(finite) > 0 {
		lo = floats.Min(finite)
	}

	freq := make([]int, amount)
	for _, v := range values {
		freq[binIndex(v, lo, width, amount)]++
	}
	return freq, nil
}

func binIndex(v, lo, width float64, amount int) int {
	switch {
	case math.IsInf(v, -1):
		return 0
	case math.IsInf(v, 1):
		return amount - 1
	case width == 0:
		return 0
	}
	f := math.Floor((v - lo) / width)
	if f >= float64(amount-1) {
		return amount - 1
	}
	if f < 0 {
		return 0
	}
	return int(f)
}

func finiteValues(v []float64) []float64 {
	res := make([]float64, 0, len(v))
	for _, x := range v {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			res = append(res, x)
		}
	}
	return res
}
