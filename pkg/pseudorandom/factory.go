package pseudorandom

// Method names a generator algorithm.
type Method string

const (
	MethodMiddleSquare               Method = "middle-square"
	MethodLinearCongruential         Method = "linear-congruential"
	MethodMultiplicativeCongruential Method = "multiplicative-congruential"
)

var fileNames = map[Method]string{
	MethodMiddleSquare:               "middleSquareNumbers.json",
	MethodLinearCongruential:         "linearCongruentialNumbers.json",
	MethodMultiplicativeCongruential: "multiplicativeCongruentialNumbers.json",
}

// Methods lists every generator in display order.
func Methods() []Method {
	return []Method{MethodMiddleSquare, MethodLinearCongruential, MethodMultiplicativeCongruential}
}

// ParseMethod accepts the canonical names plus short aliases.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "middle-square", "ms":
		return MethodMiddleSquare, nil
	case "linear-congruential", "linear", "lc":
		return MethodLinearCongruential, nil
	case "multiplicative-congruential", "multiplicative", "mc":
		return MethodMultiplicativeCongruential, nil
	}
	return "", paramErr("method", "unknown generator method %q", s)
}

// FileName is the fixed name the method's Ri sequence is persisted under.
func (m Method) FileName() string {
	return fileNames[m]
}

func (m Method) String() string {
	return string(m)
}

// Generator is a validated parameter set that can produce a Series.
type Generator interface {
	Method() Method
	Validate() error
	Generate() (Series, error)
}

func (p MiddleSquareParams) Method() Method { return MethodMiddleSquare }

func (p MiddleSquareParams) Generate() (Series, error) {
	res, err := MiddleSquare(p)
	return res.Series, err
}

func (p LinearCongruentialParams) Method() Method { return MethodLinearCongruential }

func (p LinearCongruentialParams) Generate() (Series, error) {
	return LinearCongruential(p)
}

func (p MultiplicativeCongruentialParams) Method() Method { return MethodMultiplicativeCongruential }

func (p MultiplicativeCongruentialParams) Generate() (Series, error) {
	return MultiplicativeCongruential(p)
}
