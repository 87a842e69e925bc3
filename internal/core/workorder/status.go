// Package workorder contains the pure business logic for the work-order
// lifecycle. This is part of the Functional Core - no I/O, only pure functions.
package workorder

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a work order. The string values are what
// the store persists.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in progress"
	StatusDone       Status = "done"
	StatusPaid       Status = "paid"
)

// ErrUnknownStatus is returned by ParseStatus for values outside the lifecycle.
var ErrUnknownStatus = errors.New("unknown work order status")

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusDone, StatusPaid}
}

// ParseStatus converts a stored or user-supplied value to a Status.
// "in_progress" is accepted as an alias for "in progress" on the command line.
func ParseStatus(s string) (Status, error) {
	switch s {
	case string(StatusPending):
		return StatusPending, nil
	case string(StatusInProgress), "in_progress", "in-progress":
		return StatusInProgress, nil
	case string(StatusDone):
		return StatusDone, nil
	case string(StatusPaid):
		return StatusPaid, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Rank is the position of the status in the lifecycle, or -1 if unknown.
func (s Status) Rank() int {
	for i, st := range Statuses() {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the four lifecycle states.
func (s Status) Valid() bool {
	return s.Rank() >= 0
}

// InitialStatus returns the status every new work order starts in.
func InitialStatus() Status {
	return StatusPending
}
