package errs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessRuleViolatedError(t *testing.T) {
	t.Run("NewBusinessRuleViolatedError", func(t *testing.T) {
		err := errs.NewBusinessRuleViolatedError("load is completed")

		assert.Equal(t, "load is completed", err.Rule)
		require.NoError(t, err.Cause)
		assert.Equal(t, "business rule violated: load is completed", err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolated, err.Unwrap())
	})

	t.Run("NewBusinessRuleViolatedErrorWithCause", func(t *testing.T) {
		cause := errors.New("driver is terminated")
		err := errs.NewBusinessRuleViolatedErrorWithCause("driver is not assignable", cause)

		assert.Equal(t,
			"business rule violated: driver is not assignable (cause: driver is terminated)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("load", "L-1", 3)

	assert.Equal(t, "concurrent modification: load L-1 was changed after version 3", err.Error())
	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("missing company header")

	assert.Equal(t, "unauthorized: missing company header", err.Error())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestStoreError(t *testing.T) {
	t.Run("keeps both sentinel and cause reachable", func(t *testing.T) {
		err := errs.NewStoreError("insert load", context.DeadlineExceeded)

		assert.Equal(t, "store failure: insert load (cause: context deadline exceeded)", err.Error())
		require.ErrorIs(t, err, errs.ErrStore)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("is not a domain error", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", errs.NewStoreError("update", errors.New("boom")))

		assert.False(t, errs.IsValidation(err))
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"required", errs.NewValueIsRequiredError("load_number"), true},
		{"invalid", errs.NewValueIsInvalidError("status"), true},
		{"out of range", errs.NewValueIsOutOfRangeError("latitude", 91, -90, 90), true},
		{"joined", errors.Join(errors.New("x"), errs.NewValueIsRequiredError("y")), true},
		{"not found", errs.NewObjectNotFoundError("load", "1"), false},
		{"business", errs.NewBusinessRuleViolatedError("rule"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.IsValidation(tt.err))
		})
	}
}
