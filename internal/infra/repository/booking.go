package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, resource_id, booking_date, start_minute, end_minute, status, price_cents, created_at, updated_at`

const (
	findBookingsByResourceAndDateSQL = `SELECT ` + bookingColumns + `
FROM bookings
WHERE resource_id = $1 AND booking_date = $2
ORDER BY start_minute, created_at`

	insertBookingSQL = `INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + bookingColumns

	updateBookingStatusSQL = `UPDATE bookings
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2
RETURNING ` + bookingColumns

	getBookingSQL          = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	getBookingForUpdateSQL = getBookingSQL + ` FOR UPDATE`
	bookingExistsSQL       = `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`
)

var _ shared.BookingStore = (*BookingRepository)(nil)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date interval.Date) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, findBookingsByResourceAndDateSQL, resourceID, pgconv.DateToPgtype(date.At(0, nil)))
	if err != nil {
		return nil, wrapPgErr("failed to find bookings by resource and date", err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.BookingRow])
	if err != nil {
		return nil, wrapPgErr("failed to scan bookings", err)
	}

	result := make([]*booking.Booking, 0, len(collected))
	for _, row := range collected {
		b, err := converter.BookingFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt booking row", err)
		}
		result = append(result, b)
	}
	return result, nil
}

// Insert relies on the bookings_no_overlap exclusion constraint; a violation
// comes back as infra.KindConflict.
func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	row := converter.BookingToRow(b)
	return r.queryOne(ctx, "failed to insert booking", insertBookingSQL,
		row.ID, row.ResourceID, row.BookingDate, row.StartMinute, row.EndMinute,
		row.Status, row.PriceCents, row.CreatedAt, row.UpdatedAt,
	)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (*booking.Booking, error) {
	updated, err := r.queryOne(ctx, "failed to update booking status", updateBookingStatusSQL,
		id, from.String(), to.String(), pgconv.TimeToPgtype(at))
	if err == nil {
		return updated, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	// No row matched: either the booking is gone or its status moved on.
	var exists bool
	if err := r.db.QueryRow(ctx, bookingExistsSQL, id).Scan(&exists); err != nil {
		return nil, wrapPgErr("failed to check booking existence", err)
	}
	if exists {
		return nil, infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *BookingRepository) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.queryOne(ctx, "failed to get booking", getBookingSQL, id)
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.queryOne(ctx, "failed to lock booking", getBookingForUpdateSQL, id)
}

func (r *BookingRepository) queryOne(ctx context.Context, msg, sql string, args ...any) (*booking.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapPgErr(msg, err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.BookingRow])
	if err != nil {
		return nil, wrapPgErr(msg, err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return b, nil
}
