package distribution

// Kind names a distribution mapper.
type Kind string

const (
	KindUniform       Kind = "uniform"
	KindNormalInverse Kind = "normal-inverse"
)

// FileName is the fixed name the mapper's Ni sequence is persisted under.
func (k Kind) FileName() string {
	switch k {
	case KindUniform:
		return "uniformDistributionNumbers.json"
	case KindNormalInverse:
		return "pseudoRandomNumbersNormalDistribution.json"
	}
	return ""
}

// Mapper transforms a sequence of Ri values into Ni values.
type Mapper interface {
	Kind() Kind
	Map(ri []float64) ([]float64, error)
}

func (p UniformParams) Kind() Kind { return KindUniform }

func (p NormalInvParams) Kind() Kind { return KindNormalInverse }

// NewMapper picks the normal-inverse or uniform mapper.
func NewMapper(isnormal bool, low, high float64, intervals int, mean, stdDev float64) Mapper {
	if isnormal {
		return NewNormalInvParams(intervals, mean, stdDev)
	}
	return NewUniformParams(low, high)
}
