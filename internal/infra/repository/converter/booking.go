package converter

import (
	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var errInvalidBookingDate = errs.New("booking row has no valid date")

type BookingRow struct {
	ID          uuid.UUID          `db:"id"`
	ResourceID  uuid.UUID          `db:"resource_id"`
	BookingDate pgtype.Date        `db:"booking_date"`
	StartMinute int32              `db:"start_minute"`
	EndMinute   int32              `db:"end_minute"`
	Status      string             `db:"status"`
	PriceCents  int64              `db:"price_cents"`
	CreatedAt   pgtype.Timestamptz `db:"created_at"`
	UpdatedAt   pgtype.Timestamptz `db:"updated_at"`
}

func BookingToRow(b *booking.Booking) BookingRow {
	iv := b.Interval()
	return BookingRow{
		ID:          b.ID(),
		ResourceID:  b.ResourceID(),
		BookingDate: pgconv.DateToPgtype(iv.Date().At(0, nil)),
		StartMinute: int32(iv.Start().Minutes()), // #nosec G115 -- bounded by MinutesPerDay
		EndMinute:   int32(iv.End().Minutes()),   // #nosec G115 -- bounded by MinutesPerDay
		Status:      b.Status().String(),
		PriceCents:  b.PriceCents(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row BookingRow) (*booking.Booking, error) {
	day, ok := pgconv.DateFromPgtype(row.BookingDate)
	if !ok {
		return nil, errs.Wrapf(errInvalidBookingDate, "booking %s", row.ID)
	}

	iv, err := interval.New(
		interval.DateOf(day),
		interval.TimeOfDay(row.StartMinute),
		interval.TimeOfDay(row.EndMinute),
	)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.ResourceID,
		iv,
		status,
		row.PriceCents,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
