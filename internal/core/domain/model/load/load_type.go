package load

import (
	"fmt"

	"tms/internal/pkg/errs"
)

type Type string

const (
	FullTruckload Type = "ftl"
	LessThanTruck Type = "ltl"
	Partial       Type = "partial"
	Intermodal    Type = "intermodal"
)

type Mode string

const (
	ModeTruckload         Mode = "truckload"
	ModeLessThanTruckload Mode = "less_than_truckload"
	ModeIntermodal        Mode = "intermodal"
)

func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	switch t {
	case FullTruckload, LessThanTruck, Partial, Intermodal:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("load_type", fmt.Errorf("%q is not a known load type", string(t)))
	}
}

// DefaultMode is the transport mode implied by the load type.
func (t Type) DefaultMode() Mode {
	switch t {
	case LessThanTruck, Partial:
		return ModeLessThanTruckload
	case Intermodal:
		return ModeIntermodal
	default:
		return ModeTruckload
	}
}

func (m Mode) Validate() error {
	switch m {
	case ModeTruckload, ModeLessThanTruckload, ModeIntermodal:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%q is not a known mode", string(m)))
	}
}
