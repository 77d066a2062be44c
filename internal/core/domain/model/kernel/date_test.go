package kernel_test

import (
	"testing"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := kernel.ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", d.String())
	assert.True(t, d.IsEqual(kernel.NewDate(2024, time.January, 15)))

	_, err = kernel.ParseDate("15/01/2024")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDateFromTime_DropsClock(t *testing.T) {
	d := kernel.DateFromTime(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2024-03-01", d.String())
	assert.Equal(t, "2024-03-02", d.AddDays(1).String())
}

func TestNewDateRange(t *testing.T) {
	jan1 := kernel.NewDate(2024, time.January, 1)
	jan31 := kernel.NewDate(2024, time.January, 31)

	t.Run("valid", func(t *testing.T) {
		r, err := kernel.NewDateRange(jan1, jan31)
		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.Contains(jan1))
		assert.True(t, r.Contains(jan31))
		assert.True(t, r.Contains(kernel.NewDate(2024, time.January, 15)))
		assert.False(t, r.Contains(kernel.NewDate(2024, time.February, 1)))
		assert.False(t, r.Contains(kernel.NewDate(2023, time.December, 31)))
	})

	t.Run("single day", func(t *testing.T) {
		r, err := kernel.NewDateRange(jan1, jan1)
		require.NoError(t, err)
		assert.True(t, r.Contains(jan1))
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := kernel.NewDateRange(jan31, jan1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := kernel.NewDateRange(kernel.Date{}, jan1)
		require.ErrorIs(t, err, kernel.ErrDateIsNotConstructed)
	})
}
