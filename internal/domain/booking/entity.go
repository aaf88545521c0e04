package booking

import (
	"time"

	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"
	"court-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Booking struct {
	id         uuid.UUID
	resourceID uuid.UUID
	interval   interval.Interval
	status     Status
	priceCents int64
	createdAt  time.Time
	updatedAt  time.Time
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

// NewBooking creates a Confirmed booking. Conflict checks belong to the caller,
// which must hold the slot lock for res and iv.Date().
func NewBooking(services *Services, res *resource.Resource, iv interval.Interval, loc *time.Location) (*Booking, error) {
	now := services.Clock.Now()
	if !iv.StartAt(loc).After(now) {
		return nil, ErrPastInterval
	}
	if !res.Covers(iv) {
		return nil, ErrOutsideOperatingHours
	}

	price := services.PriceCalculator.CalculatePriceCents(res, iv)
	if price < 0 {
		return nil, resource.ErrNegativePrice
	}

	return &Booking{
		id:         uuid.New(),
		resourceID: res.ID(),
		interval:   iv,
		status:     StatusConfirmed,
		priceCents: price,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, resourceID uuid.UUID,
	iv interval.Interval,
	status Status,
	priceCents int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		resourceID: resourceID,
		interval:   iv,
		status:     status,
		priceCents: priceCents,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// WithStatus returns a copy carrying the new status. The interval is never touched.
func (b *Booking) WithStatus(s Status, at time.Time) *Booking {
	cp := *b
	cp.status = s
	cp.updatedAt = at
	return &cp
}

func (b *Booking) Occupies() bool {
	return b.status.Occupies()
}

func (b *Booking) HasEnded(now time.Time, loc *time.Location) bool {
	return !now.Before(b.interval.EndAt(loc))
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) ResourceID() uuid.UUID       { return b.resourceID }
func (b *Booking) Interval() interval.Interval { return b.interval }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) PriceCents() int64           { return b.priceCents }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }

// IntervalOf adapts a booking to interval.FirstConflict.
func IntervalOf(b *Booking) interval.Interval { return b.interval }

// Occupying filters bookings down to those that block their interval.
func Occupying(bookings []*Booking) []*Booking {
	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Occupies() {
			out = append(out, b)
		}
	}
	return out
}
