package workorder

import (
	"errors"
	"fmt"
)

// ErrTransitionRejected marks a lifecycle action whose precondition was not
// met. Nothing is written when it is returned.
var ErrTransitionRejected = errors.New("transition rejected")

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
// The error wraps ErrTransitionRejected.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrTransitionRejected, r.Reason)
}

// CreateContext provides context for work-order creation guards.
type CreateContext struct {
	WorkTypeID     int64
	WorkTypeExists bool
	ClientID       int64
	ClientExists   bool
}

// AssignContext provides context for assignment guards.
type AssignContext struct {
	WorkOrderID  int64
	Status       Status
	WorkerID     int64
	WorkerExists bool
}

// CompleteContext provides context for completion guards.
type CompleteContext struct {
	WorkOrderID int64
	Status      Status
	AssigneeID  int64 // 0 when unassigned
	WorkerID    int64 // the worker asking to complete
}

// PayContext provides context for payment guards.
type PayContext struct {
	WorkOrderID    int64
	Status         Status
	AssigneeID     int64
	WorkTypeExists bool
	Payment        float64
}

// CanCreate evaluates whether a work order can be filed.
// Rules:
// - Work type must exist
// - Client must exist
func CanCreate(ctx CreateContext) GuardResult {
	if !ctx.WorkTypeExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("work type %d not found", ctx.WorkTypeID),
		}
	}
	if !ctx.ClientExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("client %d not found", ctx.ClientID),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAssign evaluates whether a work order can be handed to a worker.
// Rules:
// - Worker must exist
// - Status must be "pending" (assignee is set exactly once)
func CanAssign(ctx AssignContext) GuardResult {
	if !ctx.WorkerExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("worker %d not found", ctx.WorkerID),
		}
	}
	if ctx.Status != StatusPending {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only assign pending work orders (work order %d is %s)", ctx.WorkOrderID, ctx.Status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanComplete evaluates whether a worker may mark a work order done.
// Rules:
// - Work order must be assigned to the requesting worker
// - Status must be "in progress" (end time is never overwritten)
func CanComplete(ctx CompleteContext) GuardResult {
	if ctx.AssigneeID == 0 || ctx.AssigneeID != ctx.WorkerID {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("work order %d is not assigned to worker %d", ctx.WorkOrderID, ctx.WorkerID),
		}
	}
	if ctx.Status != StatusInProgress {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only complete work orders in progress (work order %d is %s)", ctx.WorkOrderID, ctx.Status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanPay evaluates whether the assignee of a work order can be paid.
// Rules:
// - Status must be "done" (an already paid order is never paid twice)
// - Work order must have an assignee
// - Work type must exist and carry a non-negative fee
func CanPay(ctx PayContext) GuardResult {
	if ctx.Status != StatusDone {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only pay for done work orders (work order %d is %s)", ctx.WorkOrderID, ctx.Status),
		}
	}
	if ctx.AssigneeID == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("work order %d has no assignee", ctx.WorkOrderID),
		}
	}
	if !ctx.WorkTypeExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("work type for work order %d not found", ctx.WorkOrderID),
		}
	}
	if ctx.Payment < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("work type fee %.2f is negative", ctx.Payment),
		}
	}
	return GuardResult{Allowed: true}
}
