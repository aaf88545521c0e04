package response

import (
	"time"

	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resourceId"`
	Date       string    `json:"date"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}

type SlotResponse struct {
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
	PriceCents int64  `json:"priceCents"`
}

type AvailabilityResponse struct {
	ResourceID   uuid.UUID      `json:"resourceId"`
	ResourceName string         `json:"resourceName"`
	Date         string         `json:"date"`
	SlotMinutes  int            `json:"slotMinutes"`
	Slots        []SlotResponse `json:"slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := AvailabilityResponse{Slots: []SlotResponse{}}
	_ = copier.Copy(&res, v)
	if res.Slots == nil {
		res.Slots = []SlotResponse{}
	}
	return &res
}
