package distribution

import "prng-go/pkg/pseudorandom"

// UniformParams maps Ri values linearly onto [Low, High).
type UniformParams struct {
	Low  float64 `json:"min"`
	High float64 `json:"max"`
}

// NewUniformParams creates a new UniformParams instance with the given bounds.
func NewUniformParams(low, high float64) *UniformParams {
	return &UniformParams{
		Low:  low,
		High: high,
	}
}

// Validate checks if the parameters are valid.
func (p UniformParams) Validate() error {
	if p.Low > p.High {
		return &pseudorandom.ParameterError{Param: "min", Reason: "min value must not exceed max value"}
	}
	return nil
}

// Map rescales every Ri onto [Low, High) and truncates to five decimals.
func (p UniformParams) Map(ri []float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ni := make([]float64, len(ri))
	for i, r := range ri {
		ni[i] = pseudorandom.Truncate(pseudorandom.Scale(p.Low, p.High, r))
	}
	return ni, nil
}

// Uniform is the functional form of UniformParams.Map.
func Uniform(ri []float64, p UniformParams) ([]float64, error) {
	return p.Map(ri)
}
