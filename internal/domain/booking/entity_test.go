//go:build unit

package booking_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"
	"court-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	testCases := []struct {
		status   booking.Status
		terminal bool
		occupies bool
	}{
		{status: booking.StatusConfirmed, terminal: false, occupies: true},
		{status: booking.StatusCancelled, terminal: true, occupies: false},
		{status: booking.StatusCompleted, terminal: true, occupies: true},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.True(t, tc.status.IsValid())
			assert.Equal(t, tc.terminal, tc.status.IsTerminal())
			assert.Equal(t, tc.occupies, tc.status.Occupies())
		})
	}

	_, err := booking.ParseStatus("Confirmed")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)

	st, err := booking.ParseStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCompleted, st)
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, jst)
	services := &booking.Services{
		Clock:           clock.NewMockClock(now),
		PriceCalculator: booking.NewHourlyPriceCalculator(),
	}
	res, err := resource.NewResource(uuid.New(), "Ace Arena", []string{"tennis"},
		interval.MustTimeOfDay(6, 0), interval.MustTimeOfDay(22, 0), 3000)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		date      string
		start     string
		end       string
		wantPrice int64
		errIs     error
	}{
		{name: "ninety minutes later today", date: "2025-03-01", start: "13:00", end: "14:30", wantPrice: 4500},
		{name: "starts exactly now", date: "2025-03-01", start: "12:00", end: "13:00", errIs: booking.ErrPastInterval},
		{name: "yesterday", date: "2025-02-28", start: "18:00", end: "19:00", errIs: booking.ErrPastInterval},
		{name: "runs past closing", date: "2025-03-02", start: "21:30", end: "22:30", errIs: booking.ErrOutsideOperatingHours},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := interval.Parse(tc.date, tc.start, tc.end)
			require.NoError(t, err)

			actual, err := booking.NewBooking(services, res, iv, jst)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusConfirmed, actual.Status())
			assert.Equal(t, res.ID(), actual.ResourceID())
			assert.Equal(t, iv, actual.Interval())
			assert.Equal(t, tc.wantPrice, actual.PriceCents())
			assert.Equal(t, now, actual.CreatedAt())
		})
	}
}

func TestBooking_WithStatus(t *testing.T) {
	iv, err := interval.Parse("2025-03-02", "10:00", "11:00")
	require.NoError(t, err)
	created := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	b := booking.ReconstructBooking(uuid.New(), uuid.New(), iv, booking.StatusConfirmed, 1000, created, created)

	later := created.Add(time.Hour)
	cancelled := b.WithStatus(booking.StatusCancelled, later)

	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, booking.StatusCancelled, cancelled.Status())
	assert.Equal(t, b.Interval(), cancelled.Interval())
	assert.Equal(t, later, cancelled.UpdatedAt())
	assert.Equal(t, created, cancelled.CreatedAt())
}

func TestOccupying(t *testing.T) {
	iv, err := interval.Parse("2025-03-02", "10:00", "11:00")
	require.NoError(t, err)
	mk := func(s booking.Status) *booking.Booking {
		return booking.ReconstructBooking(uuid.New(), uuid.New(), iv, s, 0, time.Time{}, time.Time{})
	}
	confirmed, cancelled, completed := mk(booking.StatusConfirmed), mk(booking.StatusCancelled), mk(booking.StatusCompleted)

	assert.Equal(t, []*booking.Booking{confirmed, completed}, booking.Occupying([]*booking.Booking{confirmed, cancelled, completed}))
}

func TestConflictError(t *testing.T) {
	var err error = &booking.ConflictError{ResourceID: uuid.New(), ConflictingID: uuid.New()}

	assert.ErrorIs(t, err, booking.ErrConflict)
	assert.NotErrorIs(t, err, booking.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "booking conflicts")
}
