package approval

import (
	"errors"
	"fmt"
)

// Status is the approval state shared by leave requests and employee
// onboarding records.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

var ErrInvalidStatus = errors.New("status must be one of Approved, Rejected, Pending")

// transitions lists the allowed targets per state. Every state can be
// revisited, so an approved record can be edited back to Pending.
var transitions = map[Status][]Status{
	StatusPending:  {StatusPending, StatusApproved, StatusRejected},
	StatusApproved: {StatusPending, StatusApproved, StatusRejected},
	StatusRejected: {StatusPending, StatusApproved, StatusRejected},
}

// Initial is the state every leave request and onboarding record starts in.
func Initial() Status {
	return StatusPending
}

// Parse accepts exactly "Approved", "Rejected" or "Pending".
func Parse(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidStatus, s)
	}
	return status, nil
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) String() string {
	return string(s)
}

// CanTransition reports whether a record in state from may move to state to.
func CanTransition(from, to Status) bool {
	for _, target := range transitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// Transition validates a move and returns the resulting state. A stored
// status outside the known set (empty, or legacy spellings such as
// "approved") is treated as Pending so the record can still be corrected.
func Transition(from, to Status) (Status, error) {
	if !from.Valid() {
		from = Initial()
	}
	if !to.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidStatus, to)
	}
	if !CanTransition(from, to) {
		return "", fmt.Errorf("cannot move from %s to %s: %w", from, to, ErrInvalidStatus)
	}
	return to, nil
}
