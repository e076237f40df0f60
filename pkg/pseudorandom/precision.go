package pseudorandom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Precision is the number of decimal places kept for Ri and Ni values.
const Precision = 5

var precisionScale = math.Pow10(Precision)

// Truncate drops every digit after the fifth decimal place.
// Products such as 0.29*1e5 land a hair below the integer they represent,
// so values within 1e-6 of an integer step are snapped before truncation.
func Truncate(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scaled := x * precisionScale
	if r := math.Round(scaled); math.Abs(scaled-r) < 1e-6 {
		scaled = r
	}
	return math.Trunc(scaled) / precisionScale
}

// Round rounds half away from zero to five decimal places.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return scalar.Round(x, Precision)
}

// Scale maps a normalized deviate r from [0,1) onto [min,max) without rounding.
func Scale(min, max, r float64) float64 {
	return min + (max-min)*r
}
