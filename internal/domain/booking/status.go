package booking

import "court-booking/internal/pkg/errs"

var ErrInvalidStatus = errs.New("invalid booking status")

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type Action string

const (
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// transitions is the complete state machine. Terminal states have no entry.
var transitions = map[Status]map[Action]Status{
	StatusConfirmed: {
		ActionCancel:   StatusCancelled,
		ActionComplete: StatusCompleted,
	},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", errs.Wrapf(ErrInvalidStatus, "status %q", s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Occupies reports whether a booking in this status blocks its interval.
func (s Status) Occupies() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// Next returns the status reached by applying action, or false when the
// transition does not exist.
func (s Status) Next(action Action) (Status, bool) {
	to, ok := transitions[s][action]
	return to, ok
}

// OccupyingStatuses lists the statuses that take part in conflict checks.
func OccupyingStatuses() []Status {
	return []Status{StatusConfirmed, StatusCompleted}
}
