package queries

import (
	"context"

	"court-booking/internal/domain/interval"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queries

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date interval.Date) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	uow     shared.UnitOfWork
	catalog shared.ResourceCatalog
}

func NewBookingQueries(uow shared.UnitOfWork, catalog shared.ResourceCatalog) BookingQueries {
	return &bookingQueriesImpl{uow: uow, catalog: catalog}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.uow.Bookings().Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrBookingNotFound, "booking %s", id)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return NewBookingView(b), nil
}

// ListByResourceAndDate returns every booking of the day, cancelled ones included.
func (q *bookingQueriesImpl) ListByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date interval.Date) ([]*BookingView, error) {
	if _, err := findResource(ctx, q.catalog, resourceID); err != nil {
		return nil, err
	}

	rows, err := q.uow.Bookings().FindByResourceAndDate(ctx, resourceID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*BookingView, len(rows))
	for i, b := range rows {
		views[i] = NewBookingView(b)
	}
	return views, nil
}
