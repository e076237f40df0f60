package distribution

// ValidationError is returned when a mapper input cannot be binned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}
