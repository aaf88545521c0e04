//go:build unit

package converter_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRow_RoundTrip(t *testing.T) {
	iv, err := interval.Parse("2025-03-01", "23:00", "24:00")
	require.NoError(t, err)
	created := time.Date(2025, time.February, 20, 8, 0, 0, 0, time.UTC)
	original := booking.ReconstructBooking(uuid.New(), uuid.New(), iv, booking.StatusCompleted, 4500, created, created.Add(time.Hour))

	row := converter.BookingToRow(original)
	assert.Equal(t, int32(1380), row.StartMinute)
	assert.Equal(t, int32(1440), row.EndMinute)
	assert.Equal(t, "completed", row.Status)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), row.BookingDate.Time)

	restored, err := converter.BookingFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.ResourceID(), restored.ResourceID())
	assert.Equal(t, iv, restored.Interval())
	assert.Equal(t, booking.StatusCompleted, restored.Status())
	assert.Equal(t, int64(4500), restored.PriceCents())
	assert.True(t, created.Equal(restored.CreatedAt()))
}

func TestBookingFromRow_Corrupt(t *testing.T) {
	valid := converter.BookingRow{
		ID:          uuid.New(),
		ResourceID:  uuid.New(),
		BookingDate: pgtype.Date{Time: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		StartMinute: 600,
		EndMinute:   660,
		Status:      "confirmed",
	}

	testCases := []struct {
		name   string
		mutate func(*converter.BookingRow)
		errIs  error
	}{
		{name: "null date", mutate: func(r *converter.BookingRow) { r.BookingDate = pgtype.Date{} }},
		{name: "inverted interval", mutate: func(r *converter.BookingRow) { r.EndMinute = 500 }, errIs: interval.ErrInvalidInterval},
		{name: "unknown status", mutate: func(r *converter.BookingRow) { r.Status = "pending" }, errIs: booking.ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := valid
			tc.mutate(&row)

			got, err := converter.BookingFromRow(row)
			require.Error(t, err)
			assert.Nil(t, got)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestResourceFromRow(t *testing.T) {
	row := converter.ResourceRow{
		ID:                uuid.New(),
		Name:              "Elite Sports Complex",
		Categories:        []string{"Tennis", "Padel"},
		OpensAt:           360,
		ClosesAt:          1320,
		PricePerHourCents: 3000,
	}

	res := converter.ResourceFromRow(row)
	assert.Equal(t, row.ID, res.ID())
	assert.Equal(t, "06:00", res.OpensAt().String())
	assert.Equal(t, "22:00", res.ClosesAt().String())
	assert.Equal(t, []string{"Tennis", "Padel"}, res.Categories())
}
