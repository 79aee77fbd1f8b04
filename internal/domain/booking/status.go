package booking

import (
	"fmt"
	"slices"

	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ActiveStatuses are the statuses that block a second booking of the same
// listing by the same user.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

// LandlordStatuses are the targets a landlord may set through a response.
var LandlordStatuses = []Status{StatusConfirmed, StatusRejected, StatusCompleted}

func InitialStatus() Status {
	return StatusPending
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) IsActive() bool {
	return slices.Contains(ActiveStatuses, s)
}

// ===============================
// Validations
// ===============================

func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

func CanCancel(current Status) error {
	if !CanTransition(current, StatusCancelled) {
		return httperr.Conflict(fmt.Sprintf("Cannot cancel booking with status: %s", current))
	}
	return nil
}

func CanRespond(current, to Status) error {
	if !slices.Contains(LandlordStatuses, to) {
		return httperr.BadRequest(fmt.Sprintf("Invalid status: %s", to))
	}
	if !CanTransition(current, to) {
		return httperr.Conflict(fmt.Sprintf("Cannot change booking status from %s to %s", current, to))
	}
	return nil
}
