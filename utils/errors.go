package utils

// ValidationError carries a message safe to show to the user verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
