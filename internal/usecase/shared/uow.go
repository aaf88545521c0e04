package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=shared

type UnitOfWork interface {
	// Within: transactional unit with store-level retry on transient failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Bookings: non-transactional reads
	Bookings() BookingStore
}

type Tx interface {
	Bookings() BookingStore
	// LockSlot serializes check-and-insert for one resource and date until
	// the unit of work ends.
	LockSlot(ctx context.Context, resourceID uuid.UUID, date interval.Date) error
}

type BookingStore interface {
	FindByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date interval.Date) ([]*booking.Booking, error)
	// Insert fails with infra.KindConflict when b overlaps an occupying booking.
	Insert(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	// UpdateStatus is a compare-and-swap: it fails with infra.KindConflict when
	// the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (*booking.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type ResourceCatalog interface {
	ListAll(ctx context.Context) ([]*resource.Resource, error)
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
}

// CatalogNotifier tells every instance that the resource catalog changed.
type CatalogNotifier interface {
	NotifyChanged(ctx context.Context) error
}
