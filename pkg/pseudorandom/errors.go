package pseudorandom

import "fmt"

// ParameterError reports a parameter that violates a generator precondition.
// It is returned before any value is produced.
type ParameterError struct {
	Param  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

func paramErr(param, format string, args ...interface{}) error {
	return &ParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// MaxIterations bounds how many values a single run may produce.
const MaxIterations = 10_000_000

// ValidateRange checks the common [min,max] and iteration count preconditions.
func ValidateRange(min, max float64, iterations int) error {
	if min > max {
		return paramErr("min", "min value %g must not exceed max value %g", min, max)
	}
	if iterations < 1 {
		return paramErr("iterations", "must be at least 1, got %d", iterations)
	}
	if iterations > MaxIterations {
		return paramErr("iterations", "must be at most %d, got %d", MaxIterations, iterations)
	}
	return nil
}
