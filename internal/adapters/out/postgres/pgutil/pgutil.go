// Package pgutil holds the conversions shared by the gorm repositories.
package pgutil

import (
	"errors"
	"fmt"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = pq.ErrorCode("23505")

// AggregateTracker receives every aggregate written inside a unit of work.
type AggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// Wrap classifies a database error. Unique violations are reported as
// business rule violations, everything else as a store failure.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errs.NewBusinessRuleViolatedErrorWithCause(
			"record already exists",
			fmt.Errorf("%s violates %s", op, pqErr.Constraint),
		)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewBusinessRuleViolatedErrorWithCause("record already exists", err)
	}

	return errs.NewStoreError(op, err)
}

// NotFound maps gorm.ErrRecordNotFound to ObjectNotFound and wraps the rest.
func NotFound(op, param string, id kernel.UUID, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id.String())
	}
	return Wrap(op, err)
}

// Day converts a calendar date for a DATE column.
func Day(d kernel.Date) time.Time {
	return d.Time()
}

func DayPtr(d *kernel.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

// FromDay reads a DATE column; only the calendar fields are kept.
func FromDay(t time.Time) kernel.Date {
	return kernel.DateFromTime(t)
}

func FromDayPtr(t *time.Time) *kernel.Date {
	if t == nil {
		return nil
	}
	d := FromDay(*t)
	return &d
}
