package errs

import (
	"errors"
	"fmt"
)

var ErrStore = errors.New("store failure")

// StoreError wraps a persistence failure. Both ErrStore and the original
// cause remain reachable through errors.Is / errors.As.
type StoreError struct {
	Op    string
	Cause error
}

func NewStoreError(op string, cause error) *StoreError {
	return &StoreError{
		Op:    op,
		Cause: cause,
	}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrStore, e.Op, e.Cause)
}

func (e *StoreError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStore}
	}
	return []error{ErrStore, e.Cause}
}

// IsValidation reports whether err is one of the input validation failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrVersionIsInvalid)
}
