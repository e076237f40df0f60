package pseudorandom

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// MinSeedDigits is the shortest seed the middle-square method accepts.
	MinSeedDigits = 3
	// MaxSeedDigits keeps every extracted center inside int64.
	MaxSeedDigits = 18
)

// MiddleSquareParams configures a middle-square run.
type MiddleSquareParams struct {
	Seed       int64   `json:"seed"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Iterations int     `json:"iterations"`
}

// NewMiddleSquareParams creates a new MiddleSquareParams instance with the given parameters.
func NewMiddleSquareParams(seed int64, min, max float64, iterations int) *MiddleSquareParams {
	return &MiddleSquareParams{
		Seed:       seed,
		Min:        min,
		Max:        max,
		Iterations: iterations,
	}
}

// Validate checks if the parameters are valid.
func (p MiddleSquareParams) Validate() error {
	if p.Seed <= 0 {
		return paramErr("seed", "must be positive, got %d", p.Seed)
	}
	if n := digits(p.Seed); n < MinSeedDigits {
		return paramErr("seed", "must have at least %d digits, got %d", MinSeedDigits, n)
	} else if n > MaxSeedDigits {
		return paramErr("seed", "must have at most %d digits, got %d", MaxSeedDigits, n)
	}
	return ValidateRange(p.Min, p.Max, p.Iterations)
}

// MiddleSquareSeries is a middle-square run together with the raw centers
// extracted from each square.
type MiddleSquareSeries struct {
	Series
	Centers []int64 `json:"centers"`
}

// MiddleSquare squares the current state, keeps its middle digits as the
// next state and normalizes them by 10^L, where L is the seed length.
// Collapsing sequences are returned as they are.
func MiddleSquare(p MiddleSquareParams) (MiddleSquareSeries, error) {
	if err := p.Validate(); err != nil {
		return MiddleSquareSeries{}, err
	}

	l := digits(p.Seed)
	divisor := math.Pow10(l)
	res := MiddleSquareSeries{
		Series:  newSeries(p.Iterations),
		Centers: make([]int64, 0, p.Iterations),
	}

	state := p.Seed
	for i := 0; i < p.Iterations; i++ {
		c := center(state, l)
		r := Truncate(float64(c) / divisor)
		res.append(float64(state), r, Truncate(Scale(p.Min, p.Max, r)))
		res.Centers = append(res.Centers, c)
		state = c
	}
	return res, nil
}

// center returns the l digits of state² starting at index l/2 of its
// zero-padded 2l-digit decimal form.
func center(state int64, l int) int64 {
	sq := new(big.Int).Mul(big.NewInt(state), big.NewInt(state)).String()
	if pad := 2*l - len(sq); pad > 0 {
		sq = strings.Repeat("0", pad) + sq
	}
	start := l / 2
	v, _ := strconv.ParseInt(sq[start:start+l], 10, 64)
	return v
}

func digits(v int64) int {
	return len(strconv.FormatInt(v, 10))
}
