package pseudorandom

const (
	// BatchSize is the number of raw values produced before each filter pass.
	BatchSize = 100
	// MaxModulusExponent bounds g so that m = 2^g fits the uint64 state.
	MaxModulusExponent = 63
	// maxIdleBatches stops parameter sets whose batches never yield a value.
	maxIdleBatches = 1000
)

// LinearCongruentialParams configures a linear congruential run.
// The multiplier is a = 1+2K and the modulus is m = 2^G.
type LinearCongruentialParams struct {
	Seed       uint64  `json:"seed"`
	K          uint64  `json:"k"`
	C          uint64  `json:"c"`
	G          uint    `json:"g"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Iterations int     `json:"iterations"`
}

// NewLinearCongruentialParams creates a new LinearCongruentialParams instance with the given parameters.
func NewLinearCongruentialParams(seed, k, c uint64, g uint, min, max float64, iterations int) *LinearCongruentialParams {
	return &LinearCongruentialParams{
		Seed:       seed,
		K:          k,
		C:          c,
		G:          g,
		Min:        min,
		Max:        max,
		Iterations: iterations,
	}
}

// Validate checks if the parameters are valid.
func (p LinearCongruentialParams) Validate() error {
	if err := validateExponent(p.G); err != nil {
		return err
	}
	return ValidateRange(p.Min, p.Max, p.Iterations)
}

func validateExponent(g uint) error {
	if g < 1 || g > MaxModulusExponent {
		return paramErr("g", "must be between 1 and %d, got %d", MaxModulusExponent, g)
	}
	return nil
}

// lcgState is the mutable part of a run: the seed advances and the
// modulus grows between batches.
type lcgState struct {
	a, c uint64
	seed uint64
	g    uint
	m    uint64
}

func (s *lcgState) setExponent(g uint) {
	s.g = g
	s.m = uint64(1) << g
}

// batch runs the recurrence n times from the current seed.
func (s *lcgState) batch(n int) (xs, rs []float64) {
	xs = make([]float64, n)
	rs = make([]float64, n)
	mask := s.m - 1
	x := s.seed
	for i := 0; i < n; i++ {
		// m is a power of two, so wrapping arithmetic masked by m-1 is mod m.
		x = (s.a*x + s.c) & mask
		xs[i] = Truncate(float64(x))
		rs[i] = Truncate(float64(x) / float64(mask))
	}
	return xs, rs
}

// advance moves the seed past the batch just produced and grows the
// modulus until it exceeds the seed again.
func (s *lcgState) advance() error {
	s.seed += BatchSize
	for s.m <= s.seed {
		if s.g+1 > MaxModulusExponent {
			return paramErr("g", "modulus growth past 2^%d", MaxModulusExponent)
		}
		s.setExponent(s.g + 1)
	}
	return nil
}

// filterBatch drops the first value of a batch and, from the rest, every
// value that repeats that first value or equals 0, 1 or is negative.
// The repeat check only looks at the current batch.
func filterBatch(xs, rs []float64) (keptX, keptR []float64) {
	if len(rs) == 0 {
		return nil, nil
	}
	first := rs[0]
	for i := 1; i < len(rs); i++ {
		r := rs[i]
		if r == first || r == 0 || r == 1 || r < 0 {
			continue
		}
		keptX = append(keptX, xs[i])
		keptR = append(keptR, Truncate(r))
	}
	return keptX, keptR
}

// LinearCongruential iterates X[i+1] = (a·X[i] + c) mod m in batches of
// BatchSize, filters each batch and collects exactly p.Iterations values
// with 0 < Ri < 1.
func LinearCongruential(p LinearCongruentialParams) (Series, error) {
	if err := p.Validate(); err != nil {
		return Series{}, err
	}

	st := &lcgState{a: 1 + 2*p.K, c: p.C, seed: p.Seed}
	st.setExponent(p.G)

	res := newSeries(p.Iterations)
	idle := 0
	for res.Len() < p.Iterations {
		xs, rs := filterBatch(st.batch(BatchSize))
		if need := p.Iterations - res.Len(); len(rs) > need {
			xs, rs = xs[:need], rs[:need]
		}
		for i, r := range rs {
			res.append(xs[i], r, Truncate(Scale(p.Min, p.Max, r)))
		}

		if len(rs) == 0 {
			idle++
			if idle >= maxIdleBatches {
				return Series{}, paramErr("k", "parameters produce a degenerate sequence: %d batches without a usable value", idle)
			}
		} else {
			idle = 0
		}

		if err := st.advance(); err != nil {
			return Series{}, err
		}
	}
	return res, nil
}
