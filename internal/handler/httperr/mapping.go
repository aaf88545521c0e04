package httperr

import (
	"net/http"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"
	"court-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Codes clients can branch on. Generic failures use the snake-cased status text.
const (
	CodeBookingConflict   = "booking_conflict"
	CodeInvalidTransition = "invalid_transition"
	CodeCancellationClose = "cancellation_window_closed"
	CodePastInterval      = "past_interval"
	CodeOutsideHours      = "outside_operating_hours"
	CodeBookingNotFound   = "booking_not_found"
	CodeResourceNotFound  = "resource_not_found"
	CodeInvalidRequest    = "invalid_request"
)

// AbortWithDomainError maps use-case and domain errors onto HTTP statuses.
func AbortWithDomainError(c *gin.Context, err error) {
	abort(c, err, classify(err))
}

func classify(err error) Response {
	var (
		conflict   *booking.ConflictError
		transition *booking.InvalidTransitionError
		window     *booking.CancellationWindowError
	)

	switch {
	case errs.As(err, &conflict):
		detail := gin.H{"resourceId": conflict.ResourceID}
		if conflict.ConflictingID != uuid.Nil {
			detail["conflictingBookingId"] = conflict.ConflictingID
		}
		return coded(http.StatusConflict, CodeBookingConflict, "Interval conflicts with an existing booking", detail)
	case errs.As(err, &transition):
		return coded(http.StatusConflict, CodeInvalidTransition, "Booking cannot change status", gin.H{
			"from":   transition.From,
			"action": transition.Action,
		})
	case errs.As(err, &window):
		return coded(http.StatusUnprocessableEntity, CodeCancellationClose, "Cancellation window has closed", gin.H{
			"windowSeconds":    int64(window.Window.Seconds()),
			"remainingSeconds": int64(window.Remaining.Seconds()),
		})
	case errs.Is(err, booking.ErrPastInterval):
		return coded(http.StatusUnprocessableEntity, CodePastInterval, "Interval must start in the future", nil)
	case errs.Is(err, booking.ErrOutsideOperatingHours):
		return coded(http.StatusUnprocessableEntity, CodeOutsideHours, "Interval is outside operating hours", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		return coded(http.StatusNotFound, CodeBookingNotFound, "Booking not found", nil)
	case errs.Is(err, errs.ErrResourceNotFound):
		return coded(http.StatusNotFound, CodeResourceNotFound, "Resource not found", nil)
	case errs.Is(err, interval.ErrInvalidInterval),
		errs.Is(err, interval.ErrInvalidDate),
		errs.Is(err, interval.ErrInvalidTimeOfDay),
		errs.Is(err, resource.ErrInvalidHours),
		errs.Is(err, errs.ErrValidation):
		return coded(http.StatusBadRequest, CodeInvalidRequest, "Invalid request", nil)
	default:
		return NewResponse(http.StatusInternalServerError, "Internal error", nil)
	}
}

func coded(status int, code, msg string, detail any) Response {
	resp := NewResponse(status, msg, detail)
	resp.Error.Code = code
	return resp
}
