package workorder

import (
	"fmt"
	"time"
)

// TransitionResult contains the result of a status transition.
// It captures the new status and the timestamps that transition stamps.
type TransitionResult struct {
	NewStatus Status
	StartTime *time.Time // set when entering "in progress"
	EndTime   *time.Time // set when entering "done"
}

// Next returns the only status reachable from s, or false for "paid".
func Next(s Status) (Status, bool) {
	switch s {
	case StatusPending:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusDone, true
	case StatusDone:
		return StatusPaid, true
	}
	return "", false
}

// ApplyTransition moves a work order from current to target. Only the single
// forward step is allowed; anything else is rejected. now is passed in so
// that callers (and tests) control the clock.
func ApplyTransition(current, target Status, now time.Time) (TransitionResult, error) {
	next, ok := Next(current)
	if !ok || next != target {
		return TransitionResult{}, GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot move work order from %q to %q", current, target),
		}.Error()
	}

	result := TransitionResult{NewStatus: target}
	// Stored timestamps have one-second resolution.
	stamp := now.Truncate(time.Second)
	switch target {
	case StatusInProgress:
		result.StartTime = &stamp
	case StatusDone:
		result.EndTime = &stamp
	}
	return result, nil
}
