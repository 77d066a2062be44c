package errs_test

import (
	"errors"
	"testing"

	"tms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("uuid: nil value")

	tests := []struct {
		name     string
		err      error
		sentinel error
		want     string
	}{
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("load_id", "L-1"),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: L-1",
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("driver_id", "D-1", cause),
			sentinel: errs.ErrObjectNotFound,
			want:     "object not found: param is: driver_id, ID is: D-1 (cause: uuid: nil value)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("load_type"),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: load_type",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("truck_id", cause),
			sentinel: errs.ErrValueIsInvalid,
			want:     "value is invalid: truck_id (cause: uuid: nil value)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90),
			sentinel: errs.ErrValueIsOutOfRange,
			want:     "value is invalid: 91.5 is latitude, min value is -90, max value is 90",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("customer_id"),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: customer_id",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("company_id", cause),
			sentinel: errs.ErrValueIsRequired,
			want:     "value is required: company_id (cause: uuid: nil value)",
		},
		{
			name:     "version",
			err:      errs.NewVersionIsInvalidError("version", errors.New("negative")),
			sentinel: errs.ErrVersionIsInvalid,
			want:     "version is invalid: version (cause: negative)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestObjectNotFoundError_Fields(t *testing.T) {
	err := errs.NewObjectNotFoundError("invoice_id", 42)

	assert.Equal(t, "invoice_id", err.ParamName)
	assert.Equal(t, 42, err.ID)
	require.NoError(t, err.Cause)
	assert.Equal(t, "object not found: %!s(int=42)", err.Error())
}

func TestOutOfRange_SanitizesValue(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("commodity", "frozen\nfish", 0, 10)

	assert.Contains(t, err.Error(), "frozen fish")
	assert.NotContains(t, err.Error(), "\n")
}

func TestJoinedValidationErrors(t *testing.T) {
	err := errors.Join(
		errs.NewValueIsRequiredError("first_name"),
		errs.NewValueIsInvalidError("pay_type"),
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "first_name")
	assert.Contains(t, err.Error(), "pay_type")
}
