//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/infra/memstore"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	date := interval.NewDate(2025, time.March, 1)
	court := builder.NewResourceBuilder().BuildDomain()
	store := memstore.NewStore()

	cancelled := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ResourceID = court.ID()
		b.Date = date
		b.Status = booking.StatusCancelled
	}).BuildDomain()
	confirmed := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ResourceID = court.ID()
		b.Date = date
		b.Start = interval.MustTimeOfDay(12, 0)
		b.End = interval.MustTimeOfDay(13, 30)
	}).BuildDomain()
	for _, b := range []*booking.Booking{confirmed, cancelled} {
		_, err := store.Bookings().Insert(ctx, b)
		require.NoError(t, err)
	}

	q := queries.NewBookingQueries(store, memstore.NewCatalog(court))

	t.Run("get by id", func(t *testing.T) {
		view, err := q.GetByID(ctx, confirmed.ID())
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01", view.Date)
		assert.Equal(t, "12:00", view.Start)
		assert.Equal(t, "13:30", view.End)
		assert.Equal(t, "confirmed", view.Status)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("list includes cancelled, ordered by start", func(t *testing.T) {
		views, err := q.ListByResourceAndDate(ctx, court.ID(), date)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, cancelled.ID(), views[0].ID)
		assert.Equal(t, confirmed.ID(), views[1].ID)
	})

	t.Run("list for unknown resource", func(t *testing.T) {
		_, err := q.ListByResourceAndDate(ctx, uuid.New(), date)
		assert.ErrorIs(t, err, errs.ErrResourceNotFound)
	})
}
