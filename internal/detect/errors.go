package detect

import (
	"fmt"
)

var (
	ErrValidation       = &ValidationError{}
	ErrCapacityExceeded = &CapacityError{}
)

// ValidationError rejects malformed input: a bad clock string, a vertex
// outside the frame, an unknown id. The offending settings are left as
// they were.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(err error) bool {
	return err == ErrValidation
}

// CapacityError signals that a configured limit was hit, such as an
// eleventh zone or a fifth time range.
type CapacityError struct {
	Kind  string
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: limit of %d reached", e.Kind, e.Limit)
}

func (e *CapacityError) Is(err error) bool {
	return err == ErrCapacityExceeded
}
