package presenter

import (
	"strconv"

	"prng-go/pkg/pseudorandom"
)

// ValidateGenerator applies the input checks of the command surface on top
// of the generator's own preconditions. Both report *pseudorandom.ParameterError.
func ValidateGenerator(g pseudorandom.Generator) error {
	switch p := g.(type) {
	case pseudorandom.MiddleSquareParams:
		return validateMiddleSquare(p)
	case *pseudorandom.MiddleSquareParams:
		return validateMiddleSquare(*p)
	case pseudorandom.LinearCongruentialParams:
		return validateLinear(p)
	case *pseudorandom.LinearCongruentialParams:
		return validateLinear(*p)
	case pseudorandom.MultiplicativeCongruentialParams:
		return validateMultiplicative(p)
	case *pseudorandom.MultiplicativeCongruentialParams:
		return validateMultiplicative(*p)
	}
	return g.Validate()
}

func validateMiddleSquare(p pseudorandom.MiddleSquareParams) error {
	if len(strconv.FormatInt(p.Seed, 10)) < pseudorandom.MinSeedDigits {
		return &pseudorandom.ParameterError{Param: "seed", Reason: "seed must have 3 digits or more"}
	}
	if err := checkMinMax(p.Min, p.Max); err != nil {
		return err
	}
	return p.Validate()
}

func validateLinear(p pseudorandom.LinearCongruentialParams) error {
	g := uint64(p.G)
	if p.Seed >= g || p.K >= g || p.C >= g {
		return &pseudorandom.ParameterError{Param: "g", Reason: "xo, k and c must be less than g"}
	}
	if err := checkMinMax(p.Min, p.Max); err != nil {
		return err
	}
	return p.Validate()
}

func validateMultiplicative(p pseudorandom.MultiplicativeCongruentialParams) error {
	g := uint64(p.G)
	if p.Seed >= g || p.T >= g {
		return &pseudorandom.ParameterError{Param: "g", Reason: "xo and t must be less than g"}
	}
	if err := checkMinMax(p.Min, p.Max); err != nil {
		return err
	}
	return p.Validate()
}

func checkMinMax(min, max float64) error {
	if min > max {
		return &pseudorandom.ParameterError{Param: "min", Reason: "min must be less than max"}
	}
	return nil
}
