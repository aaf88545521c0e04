//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	reqdto "court-booking/internal/handler/dto/request"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	Date       interval.Date
	Start      interval.TimeOfDay
	End        interval.TimeOfDay
	Status     booking.Status
	PriceCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:         uuid.New(),
		ResourceID: uuid.New(),
		Date:       interval.DateOf(now).AddDays(7),
		Start:      interval.MustTimeOfDay(10, 0),
		End:        interval.MustTimeOfDay(11, 0),
		Status:     booking.StatusConfirmed,
		PriceCents: 3000,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Interval() interval.Interval {
	iv, err := interval.New(b.Date, b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return iv
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.ResourceID, b.Interval(), b.Status, b.PriceCents, b.CreatedAt, b.UpdatedAt)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain())
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ResourceID: b.ResourceID,
		Date:       b.Date.String(),
		Start:      b.Start.String(),
		End:        b.End.String(),
	}
}
