package errs

import (
	"errors"
	"fmt"
)

var (
	ErrBusinessRuleViolated   = errors.New("business rule violated")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrUnauthorized           = errors.New("unauthorized")
)

// BusinessRuleViolatedError is returned when a well-formed request conflicts
// with the current state of an aggregate.
type BusinessRuleViolatedError struct {
	Rule  string
	Cause error
}

func NewBusinessRuleViolatedError(rule string) *BusinessRuleViolatedError {
	return &BusinessRuleViolatedError{Rule: rule}
}

func NewBusinessRuleViolatedErrorWithCause(rule string, cause error) *BusinessRuleViolatedError {
	return &BusinessRuleViolatedError{
		Rule:  rule,
		Cause: cause,
	}
}

func (e *BusinessRuleViolatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrBusinessRuleViolated, e.Rule, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrBusinessRuleViolated, e.Rule)
}

func (e *BusinessRuleViolatedError) Unwrap() error {
	return ErrBusinessRuleViolated
}

// ConcurrentModificationError is returned when a versioned write lost the race
// against another writer. It also matches ErrBusinessRuleViolated.
type ConcurrentModificationError struct {
	ObjectName string
	ID         any
	Version    int
}

func NewConcurrentModificationError(objectName string, id any, version int) *ConcurrentModificationError {
	return &ConcurrentModificationError{
		ObjectName: objectName,
		ID:         id,
		Version:    version,
	}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s was changed after version %d",
		ErrConcurrentModification, e.ObjectName, sanitize(e.ID), e.Version)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

func (e *ConcurrentModificationError) Is(target error) bool {
	return target == ErrBusinessRuleViolated
}

// UnauthorizedError is raised by inbound adapters when the caller's tenant
// cannot be established.
type UnauthorizedError struct {
	Reason string
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
