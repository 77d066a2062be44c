package load

import (
	"fmt"
	"slices"

	"tms/internal/pkg/errs"
)

// Status is the position of a load in the dispatch lifecycle.
//
//	pending -> dispatched -> in_transit -> delivered -> completed
//	pending | dispatched | in_transit -> cancelled
type Status int

const (
	Unknown Status = iota
	Pending
	Dispatched
	InTransit
	Delivered
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Pending:    "pending",
	Dispatched: "dispatched",
	InTransit:  "in_transit",
	Delivered:  "delivered",
	Completed:  "completed",
	Cancelled:  "cancelled",
}

// transitions lists the edges reachable through TransitionTo. Dispatched is
// only entered through Dispatch, which requires an assignment.
var transitions = map[Status][]Status{
	Pending:    {Cancelled},
	Dispatched: {InTransit, Cancelled},
	InTransit:  {Delivered, Cancelled},
	Delivered:  {Completed},
	Completed:  {},
	Cancelled:  {},
}

// ParseStatus maps the wire name of a status to its value.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known load status", s))
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Dispatched, InTransit, Delivered, Completed, Cancelled}
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsActive reports whether the load still needs dispatch attention.
func (s Status) IsActive() bool {
	return s == Pending || s == Dispatched || s == InTransit
}

// IsBillable reports whether the load counts towards financial summaries.
func (s Status) IsBillable() bool {
	return s == Delivered || s == Completed
}

// RequiresAssignment reports whether a load in this status must carry a driver and truck.
func (s Status) RequiresAssignment() bool {
	return s == Dispatched || s == InTransit || s == Delivered || s == Completed
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// TransitionTo returns next when the edge s -> next is allowed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if next == Dispatched {
		return Unknown, errs.NewBusinessRuleViolatedErrorWithCause(
			"status transition is not allowed",
			fmt.Errorf("%s -> %s requires an assignment", s, next),
		)
	}

	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewBusinessRuleViolatedErrorWithCause(
			"status transition is not allowed",
			fmt.Errorf("%s -> %s", s, next),
		)
	}

	return next, nil
}

// Dispatch returns Dispatched when resources may be (re)assigned in status s.
func (s Status) Dispatch() (Status, error) {
	if s != Pending && s != Dispatched {
		return Unknown, errs.NewBusinessRuleViolatedErrorWithCause(
			"load cannot be assigned",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}
	return Dispatched, nil
}

// ValidateAssignment checks that the presence of an assignment matches the status.
func (s Status) ValidateAssignment(assigned bool) error {
	if s.RequiresAssignment() && !assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status without an assignment", s),
		)
	}
	if s == Pending && assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status with an assignment", s),
		)
	}
	return nil
}
