//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/infra"
	"court-booking/internal/infra/memstore"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = interval.NewDate(2025, time.March, 1)

func newBooking(t *testing.T, resourceID uuid.UUID, start, end string, status booking.Status) *booking.Booking {
	t.Helper()
	iv, err := interval.Parse(day.String(), start, end)
	require.NoError(t, err)
	return booking.ReconstructBooking(uuid.New(), resourceID, iv, status, 0, time.Time{}, time.Time{})
}

func TestStore_Insert(t *testing.T) {
	ctx := context.Background()
	court := uuid.New()

	testCases := []struct {
		name     string
		existing *booking.Booking
		insert   *booking.Booking
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "overlap with confirmed",
			existing: newBooking(t, court, "09:00", "10:00", booking.StatusConfirmed),
			insert:   newBooking(t, court, "09:30", "10:30", booking.StatusConfirmed),
			wantKind: infra.KindConflict,
		},
		{
			name:     "overlap with completed",
			existing: newBooking(t, court, "09:00", "10:00", booking.StatusCompleted),
			insert:   newBooking(t, court, "09:00", "10:00", booking.StatusConfirmed),
			wantKind: infra.KindConflict,
		},
		{
			name:     "touching is allowed",
			existing: newBooking(t, court, "09:00", "10:00", booking.StatusConfirmed),
			insert:   newBooking(t, court, "10:00", "11:00", booking.StatusConfirmed),
		},
		{
			name:     "cancelled does not block",
			existing: newBooking(t, court, "09:00", "10:00", booking.StatusCancelled),
			insert:   newBooking(t, court, "09:00", "10:00", booking.StatusConfirmed),
		},
		{
			name:     "other resource does not block",
			existing: newBooking(t, uuid.New(), "09:00", "10:00", booking.StatusConfirmed),
			insert:   newBooking(t, court, "09:00", "10:00", booking.StatusConfirmed),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memstore.NewStore()
			_, err := store.Bookings().Insert(ctx, tc.existing)
			require.NoError(t, err)

			_, err = store.Bookings().Insert(ctx, tc.insert)
			if tc.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.wantKind), err.Error())
				return
			}
			require.NoError(t, err)

			got, err := store.Bookings().FindByResourceAndDate(ctx, court, day)
			require.NoError(t, err)
			assert.NotEmpty(t, got)
		})
	}
}

func TestStore_FindByResourceAndDate_Ordered(t *testing.T) {
	ctx := context.Background()
	court := uuid.New()
	store := memstore.NewStore()
	late := newBooking(t, court, "15:00", "16:00", booking.StatusConfirmed)
	early := newBooking(t, court, "08:00", "09:00", booking.StatusCancelled)
	for _, b := range []*booking.Booking{late, early} {
		_, err := store.Bookings().Insert(ctx, b)
		require.NoError(t, err)
	}

	got, err := store.Bookings().FindByResourceAndDate(ctx, court, day)
	require.NoError(t, err)
	assert.Equal(t, []*booking.Booking{early, late}, got)

	got, err = store.Bookings().FindByResourceAndDate(ctx, court, day.AddDays(1))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()
	b := newBooking(t, uuid.New(), "09:00", "10:00", booking.StatusConfirmed)
	_, err := store.Bookings().Insert(ctx, b)
	require.NoError(t, err)
	at := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	updated, err := store.Bookings().UpdateStatus(ctx, b.ID(), booking.StatusConfirmed, booking.StatusCancelled, at)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, updated.Status())
	assert.Equal(t, at, updated.UpdatedAt())

	_, err = store.Bookings().UpdateStatus(ctx, b.ID(), booking.StatusConfirmed, booking.StatusCancelled, at)
	assert.True(t, infra.IsKind(err, infra.KindConflict), "stale compare-and-swap must fail")

	_, err = store.Bookings().UpdateStatus(ctx, uuid.New(), booking.StatusConfirmed, booking.StatusCancelled, at)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	_, err = store.Bookings().Get(ctx, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestStore_Within_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	court := uuid.New()
	store := memstore.NewStore()
	boom := errors.New("boom")

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.LockSlot(ctx, court, day))
		_, err := tx.Bookings().Insert(ctx, newBooking(t, court, "09:00", "10:00", booking.StatusConfirmed))
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Bookings().FindByResourceAndDate(ctx, court, day)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Within_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := memstore.NewStore().Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
