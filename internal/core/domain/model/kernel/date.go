package kernel

import (
	"fmt"
	"time"

	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

const DateLayout = time.DateOnly

var (
	ErrDateIsNotConstructed      = errs.NewValueIsRequiredError("date must be created via NewDate, ParseDate or DateFromTime")
	ErrDateRangeIsNotConstructed = errs.NewValueIsRequiredError("date range must be created via NewDateRange")
)

// Date is a calendar day without a time zone.
type Date struct {
	t     time.Time
	guard guard.ConstructorGuard
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{
		t:     time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		guard: guard.NewConstructorGuard(),
	}
}

func DateFromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateFromTime(t), nil
}

func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) AddDays(days int) Date {
	return DateFromTime(d.t.AddDate(0, 0, days))
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DateRange is an inclusive [Start, End] window of days.
type DateRange struct {
	start Date
	end   Date
	guard guard.ConstructorGuard
}

func NewDateRange(start, end Date) (DateRange, error) {
	if err := start.Validate(); err != nil {
		return DateRange{}, err
	}
	if err := end.Validate(); err != nil {
		return DateRange{}, err
	}
	if start.After(end) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause(
			"date range",
			fmt.Errorf("start %s is after end %s", start, end),
		)
	}

	return DateRange{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

func (r DateRange) Validate() error {
	return r.guard.Validate(ErrDateRangeIsNotConstructed)
}

func (r DateRange) Start() Date {
	return r.start
}

func (r DateRange) End() Date {
	return r.end
}

// Contains reports whether d falls inside the window, bounds included.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}
