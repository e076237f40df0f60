package pseudorandom

import "gonum.org/v1/gonum/mat"

// Series holds the parallel sequences produced by one generator run.
type Series struct {
	Xi []float64 `json:"xi"`
	Ri []float64 `json:"ri"`
	Ni []float64 `json:"ni"`
}

func newSeries(n int) Series {
	return Series{
		Xi: make([]float64, 0, n),
		Ri: make([]float64, 0, n),
		Ni: make([]float64, 0, n),
	}
}

func (s *Series) append(x, r, n float64) {
	s.Xi = append(s.Xi, x)
	s.Ri = append(s.Ri, r)
	s.Ni = append(s.Ni, n)
}

// Len returns the number of generated values.
func (s Series) Len() int {
	return len(s.Ri)
}

// Matrix lays the series out as a Len()x3 matrix with columns Xi, Ri, Ni.
func (s Series) Matrix() *mat.Dense {
	n := s.Len()
	if n == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		m.Set(i, 0, s.Xi[i])
		m.Set(i, 1, s.Ri[i])
		m.Set(i, 2, s.Ni[i])
	}
	return m
}
