package pseudorandom

// MultiplicativeCongruentialParams configures a multiplicative congruential
// run. The multiplier is a = 8T+3 and the modulus is m = 2^G.
type MultiplicativeCongruentialParams struct {
	Seed       uint64  `json:"seed"`
	T          uint64  `json:"t"`
	G          uint    `json:"g"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Iterations int     `json:"iterations"`
}

// NewMultiplicativeCongruentialParams creates a new MultiplicativeCongruentialParams instance with the given parameters.
func NewMultiplicativeCongruentialParams(seed, t uint64, g uint, min, max float64, iterations int) *MultiplicativeCongruentialParams {
	return &MultiplicativeCongruentialParams{
		Seed:       seed,
		T:          t,
		G:          g,
		Min:        min,
		Max:        max,
		Iterations: iterations,
	}
}

// Validate checks if the parameters are valid.
func (p MultiplicativeCongruentialParams) Validate() error {
	if err := validateExponent(p.G); err != nil {
		return err
	}
	return ValidateRange(p.Min, p.Max, p.Iterations)
}

// MultiplicativeCongruential iterates X[i] = (a·X[i-1]) mod m.
// The seed itself is multiplied once to obtain X[0]; nothing is filtered.
func MultiplicativeCongruential(p MultiplicativeCongruentialParams) (Series, error) {
	if err := p.Validate(); err != nil {
		return Series{}, err
	}

	a := 8*p.T + 3
	mask := uint64(1)<<p.G - 1
	res := newSeries(p.Iterations)

	x := (a * p.Seed) & mask
	for i := 0; i < p.Iterations; i++ {
		if i > 0 {
			x = (a * x) & mask
		}
		r := Round(float64(x) / float64(mask))
		res.append(Round(float64(x)), r, Round(Scale(p.Min, p.Max, r)))
	}
	return res, nil
}
