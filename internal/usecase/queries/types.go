package queries

import (
	"time"

	"court-booking/internal/domain/availability"
	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/resource"

	"github.com/google/uuid"
)

// ResourceView represents read-optimized resource data
type ResourceView struct {
	ID                uuid.UUID
	Name              string
	Categories        []string
	OpensAt           string
	ClosesAt          string
	PricePerHourCents int64
}

type BookingView struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	Date       string
	Start      string
	End        string
	Status     string
	PriceCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SlotView struct {
	Date       string
	Start      string
	End        string
	PriceCents int64
}

type AvailabilityView struct {
	ResourceID   uuid.UUID
	ResourceName string
	Date         string
	SlotMinutes  int
	Slots        []SlotView
}

func NewResourceView(r *resource.Resource) *ResourceView {
	return &ResourceView{
		ID:                r.ID(),
		Name:              r.Name(),
		Categories:        r.Categories(),
		OpensAt:           r.OpensAt().String(),
		ClosesAt:          r.ClosesAt().String(),
		PricePerHourCents: r.PricePerHourCents(),
	}
}

func NewBookingView(b *booking.Booking) *BookingView {
	iv := b.Interval()
	return &BookingView{
		ID:         b.ID(),
		ResourceID: b.ResourceID(),
		Date:       iv.Date().String(),
		Start:      iv.Start().String(),
		End:        iv.End().String(),
		Status:     b.Status().String(),
		PriceCents: b.PriceCents(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
}

func newSlotView(s availability.Slot) SlotView {
	return SlotView{
		Date:       s.Interval.Date().String(),
		Start:      s.Interval.Start().String(),
		End:        s.Interval.End().String(),
		PriceCents: s.PriceCents,
	}
}
