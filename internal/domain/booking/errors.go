package booking

import (
	"fmt"
	"time"

	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPastInterval       = errs.New("booking interval must start in the future")
	ErrConflict           = errs.New("booking conflicts with an existing booking")
	ErrInvalidTransition  = errs.New("invalid booking status transition")
	ErrCancellationWindow = errs.New("cancellation window has closed")

	ErrOutsideOperatingHours = errs.New("booking interval is outside the resource's operating hours")
)

// ConflictError carries the id of the booking already holding the interval.
type ConflictError struct {
	ResourceID    uuid.UUID
	ConflictingID uuid.UUID
}

func (e *ConflictError) Error() string {
	if e.ConflictingID == uuid.Nil {
		return fmt.Sprintf("%s: resource %s", ErrConflict, e.ResourceID)
	}
	return fmt.Sprintf("%s: resource %s, booking %s", ErrConflict, e.ResourceID, e.ConflictingID)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type InvalidTransitionError struct {
	From   Status
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s a %s booking", ErrInvalidTransition, e.Action, e.From)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// CancellationWindowError reports how long remains until the booking starts.
type CancellationWindowError struct {
	BookingID uuid.UUID
	Window    time.Duration
	Remaining time.Duration
}

func (e *CancellationWindowError) Error() string {
	return fmt.Sprintf("%s: booking %s starts in %s, cancellation requires more than %s",
		ErrCancellationWindow, e.BookingID, e.Remaining, e.Window)
}

func (e *CancellationWindowError) Is(target error) bool { return target == ErrCancellationWindow }
