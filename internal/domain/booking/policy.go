package booking

import (
	"time"
)

const DefaultGraceWindow = 24 * time.Hour

// Policy decides status transitions. It never persists anything.
type Policy struct {
	GraceWindow time.Duration
	Location    *time.Location
}

func NewPolicy(graceWindow time.Duration, loc *time.Location) Policy {
	if graceWindow <= 0 {
		graceWindow = DefaultGraceWindow
	}
	if loc == nil {
		loc = time.UTC
	}
	return Policy{GraceWindow: graceWindow, Location: loc}
}

// Cancel is allowed from Confirmed while the booking starts more than
// GraceWindow after now.
func (p Policy) Cancel(b *Booking, now time.Time) (Status, error) {
	to, ok := b.status.Next(ActionCancel)
	if !ok {
		return "", &InvalidTransitionError{From: b.status, Action: ActionCancel}
	}

	remaining := b.interval.StartAt(p.location()).Sub(now)
	if remaining <= p.GraceWindow {
		return "", &CancellationWindowError{
			BookingID: b.id,
			Window:    p.GraceWindow,
			Remaining: max(remaining, 0),
		}
	}
	return to, nil
}

// Complete is not time-gated: an operator may complete a future booking.
func (p Policy) Complete(b *Booking, _ time.Time) (Status, error) {
	to, ok := b.status.Next(ActionComplete)
	if !ok {
		return "", &InvalidTransitionError{From: b.status, Action: ActionComplete}
	}
	return to, nil
}

// Apply dispatches action to the matching decision.
func (p Policy) Apply(action Action, b *Booking, now time.Time) (Status, error) {
	switch action {
	case ActionCancel:
		return p.Cancel(b, now)
	case ActionComplete:
		return p.Complete(b, now)
	default:
		return "", &InvalidTransitionError{From: b.status, Action: action}
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
