package services

import "errors"

// ErrNotFound marks an absent record. Absence is an expected outcome;
// callers map it to a 404 rather than treating it as a failure.
var ErrNotFound = errors.New("todo not found")

// ValidationError rejects malformed create input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
