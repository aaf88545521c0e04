package queries

import (
	"context"

	"court-booking/internal/domain/availability"
	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queries

const MaxSlotMinutes = interval.MinutesPerDay

var ErrInvalidSlotLength = errs.New("slot length must be between 1 and 1440 minutes")

type AvailabilityQueries interface {
	// AvailableSlots lists free slots; slotMinutes <= 0 selects the default length.
	AvailableSlots(ctx context.Context, resourceID uuid.UUID, date interval.Date, slotMinutes int) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow                shared.UnitOfWork
	catalog            shared.ResourceCatalog
	defaultSlotMinutes int
}

func NewAvailabilityQueries(uow shared.UnitOfWork, catalog shared.ResourceCatalog, defaultSlotMinutes int) AvailabilityQueries {
	if defaultSlotMinutes <= 0 {
		defaultSlotMinutes = 60
	}
	return &availabilityQueriesImpl{
		uow:                uow,
		catalog:            catalog,
		defaultSlotMinutes: defaultSlotMinutes,
	}
}

func (q *availabilityQueriesImpl) AvailableSlots(
	ctx context.Context,
	resourceID uuid.UUID,
	date interval.Date,
	slotMinutes int,
) (*AvailabilityView, error) {
	if slotMinutes <= 0 {
		slotMinutes = q.defaultSlotMinutes
	}
	if slotMinutes > MaxSlotMinutes {
		return nil, errs.Mark(errs.Wrapf(ErrInvalidSlotLength, "got %d", slotMinutes), errs.ErrValidation)
	}

	res, err := findResource(ctx, q.catalog, resourceID)
	if err != nil {
		return nil, err
	}

	existing, err := q.uow.Bookings().FindByResourceAndDate(ctx, resourceID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view := &AvailabilityView{
		ResourceID:   res.ID(),
		ResourceName: res.Name(),
		Date:         date.String(),
		SlotMinutes:  slotMinutes,
		Slots:        []SlotView{},
	}
	for slot := range availability.Generate(res, date, existing, slotMinutes) {
		view.Slots = append(view.Slots, newSlotView(slot))
	}
	return view, nil
}

func findResource(ctx context.Context, catalog shared.ResourceCatalog, id uuid.UUID) (*resource.Resource, error) {
	res, err := catalog.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrResourceNotFound, "resource %s", id)
		}
		return nil, errs.Mark(err, errs.ErrCatalogUnavailable)
	}
	return res, nil
}
