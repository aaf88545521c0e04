package commands

import (
	"context"
	"log/slog"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commands

type CreateBookingInput struct {
	ResourceID uuid.UUID
	Interval   interval.Interval
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*booking.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Complete(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog shared.ResourceCatalog
	clock   clock.Clock
	policy  booking.Policy
	prices  booking.PriceCalculator
	logger  *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog shared.ResourceCatalog,
	clk clock.Clock,
	policy booking.Policy,
	prices booking.PriceCalculator,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		catalog: catalog,
		clock:   clk,
		policy:  policy,
		prices:  prices,
		logger:  logger,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*booking.Booking, error) {
	now := c.clock.Now()
	if !in.Interval.StartAt(c.policy.Location).After(now) {
		c.logger.Warn("booking rejected: interval not in the future",
			"resource_id", in.ResourceID, "interval", in.Interval.String())
		return nil, booking.ErrPastInterval
	}

	res, err := c.findResource(ctx, in.ResourceID)
	if err != nil {
		return nil, err
	}

	candidate, err := booking.NewBooking(
		&booking.Services{Clock: c.clock, PriceCalculator: c.prices},
		res, in.Interval, c.policy.Location,
	)
	if err != nil {
		c.logger.Warn("booking rejected", "resource_id", res.ID(), "interval", in.Interval.String(), "error", err)
		return nil, err
	}

	var created *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockSlot(ctx, res.ID(), in.Interval.Date()); err != nil {
			return err
		}

		existing, err := tx.Bookings().FindByResourceAndDate(ctx, res.ID(), in.Interval.Date())
		if err != nil {
			return err
		}
		if holder, found := interval.FirstConflict(in.Interval, booking.Occupying(existing), booking.IntervalOf); found {
			return &booking.ConflictError{ResourceID: res.ID(), ConflictingID: holder.ID()}
		}

		saved, err := tx.Bookings().Insert(ctx, candidate)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return &booking.ConflictError{ResourceID: res.ID()}
			}
			return err
		}
		created = saved
		return nil
	})
	if err != nil {
		if errs.Is(err, booking.ErrConflict) {
			c.logger.Warn("booking rejected: conflict",
				"resource_id", res.ID(), "interval", in.Interval.String(), "error", err)
			return nil, err
		}
		return nil, storeFailure(err)
	}

	c.logger.Info("booking created",
		"booking_id", created.ID(),
		"resource_id", created.ResourceID(),
		"interval", created.Interval().String(),
		"price_cents", created.PriceCents())
	return created, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return c.transition(ctx, id, booking.ActionCancel)
}

func (c *bookingCommandsImpl) Complete(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return c.transition(ctx, id, booking.ActionComplete)
}

// transition runs the policy against a row-locked booking and persists the
// result with a compare-and-swap on the status it decided from.
func (c *bookingCommandsImpl) transition(ctx context.Context, id uuid.UUID, action booking.Action) (*booking.Booking, error) {
	now := c.clock.Now()

	var updated *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Bookings().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		to, err := c.policy.Apply(action, current, now)
		if err != nil {
			return err
		}

		saved, err := tx.Bookings().UpdateStatus(ctx, id, current.Status(), to, now)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return c.lostRace(ctx, tx, current, action)
			}
			return err
		}
		updated = saved
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Wrapf(errs.ErrBookingNotFound, "booking %s", id)
		case errs.Is(err, booking.ErrInvalidTransition), errs.Is(err, booking.ErrCancellationWindow):
			c.logger.Warn("booking transition rejected", "booking_id", id, "action", action, "error", err)
			return nil, err
		default:
			return nil, storeFailure(err)
		}
	}

	c.logger.Info("booking status changed",
		"booking_id", updated.ID(),
		"action", action,
		"status", updated.Status())
	return updated, nil
}

func (c *bookingCommandsImpl) lostRace(ctx context.Context, tx shared.Tx, seen *booking.Booking, action booking.Action) error {
	latest, err := tx.Bookings().Get(ctx, seen.ID())
	if err != nil {
		return err
	}
	return &booking.InvalidTransitionError{From: latest.Status(), Action: action}
}

func (c *bookingCommandsImpl) findResource(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	res, err := c.catalog.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrResourceNotFound, "resource %s", id)
		}
		return nil, errs.Mark(err, errs.ErrCatalogUnavailable)
	}
	return res, nil
}

func storeFailure(err error) error {
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
