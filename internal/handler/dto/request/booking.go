package request

import (
	"court-booking/internal/domain/interval"
	"court-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceID uuid.UUID `json:"resourceId" binding:"required"`
	Date       string    `json:"date" binding:"required" example:"2025-03-01"`
	Start      string    `json:"start" binding:"required" example:"10:00"`
	End        string    `json:"end" binding:"required" example:"11:00"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	iv, err := interval.Parse(r.Date, r.Start, r.End)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{ResourceID: r.ResourceID, Interval: iv}, nil
}

type DateQuery struct {
	Date string `form:"date" binding:"required"`
}

type SlotsQuery struct {
	Date        string `form:"date" binding:"required"`
	SlotMinutes int    `form:"slotMinutes" binding:"omitempty,min=1,max=1440"`
}
