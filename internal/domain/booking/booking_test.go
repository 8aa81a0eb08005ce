//go:build unit

package booking_test

import (
	"testing"
	"time"

	"car-rental/internal/domain/booking"
	"car-rental/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*builder.BookingBuilder)
		errIs  error
	}{
		{name: "valid booking is pending"},
		{name: "end equal to start", mutate: func(b *builder.BookingBuilder) { b.WithWindow(start, start) }, errIs: booking.ErrInvalidWindow},
		{name: "end before start", mutate: func(b *builder.BookingBuilder) { b.WithWindow(start, start.Add(-time.Hour)) }, errIs: booking.ErrInvalidWindow},
		{name: "zero total cost", mutate: func(b *builder.BookingBuilder) { b.TotalCost = 0 }, errIs: booking.ErrInvalidTotalCost},
		{name: "missing user", mutate: func(b *builder.BookingBuilder) { b.WithUserID(0) }, errIs: booking.ErrInvalidUser},
		{name: "missing car", mutate: func(b *builder.BookingBuilder) { b.WithCarID(0) }, errIs: booking.ErrInvalidCar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := builder.NewBookingBuilder().With(tt.mutate).BuildDomain()
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusPending, b.Status)
			assert.False(t, b.IsConfirmed())
		})
	}
}

func TestWindowElapsed(t *testing.T) {
	end := time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)
	w, err := booking.NewWindow(end.Add(-96*time.Hour), end)
	require.NoError(t, err)

	assert.False(t, w.Elapsed(end.Add(-time.Second)))
	assert.False(t, w.Elapsed(end), "end_date equal to now is not strictly before now")
	assert.True(t, w.Elapsed(end.Add(time.Second)))
}

func TestConfirm(t *testing.T) {
	b := builder.NewBookingBuilder().BuildStored()

	require.NoError(t, b.Confirm())
	assert.True(t, b.IsConfirmed())
	assert.ErrorIs(t, b.Confirm(), booking.ErrAlreadyConfirmed)
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusPending.IsValid())
	assert.True(t, booking.StatusConfirmed.IsValid())
	assert.False(t, booking.Status("canceled").IsValid())
}
