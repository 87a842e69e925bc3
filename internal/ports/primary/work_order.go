// Package primary defines the primary ports (driving adapters) for the application.
package primary

import (
	"context"
	"time"
)

// WorkOrderService defines the primary port for the work-order lifecycle:
// pending -> in progress -> done -> paid.
type WorkOrderService interface {
	// RequestWork files a new pending work order (customer flow).
	RequestWork(ctx context.Context, req RequestWorkRequest) (*RequestWorkResponse, error)

	// AssignWorkOrder hands a pending work order to a worker and starts the clock.
	AssignWorkOrder(ctx context.Context, req AssignWorkOrderRequest) error

	// CompleteWorkOrder lets the assignee mark an in-progress order done.
	CompleteWorkOrder(ctx context.Context, req CompleteWorkOrderRequest) error

	// PayWorkOrder credits the work-type fee to the assignee and marks the order paid.
	PayWorkOrder(ctx context.Context, workOrderID int64) (*PayWorkOrderResponse, error)

	// GetWorkOrder retrieves a work order by ID.
	GetWorkOrder(ctx context.Context, workOrderID int64) (*WorkOrder, error)

	// ListWorkOrders lists work orders with optional filters.
	ListWorkOrders(ctx context.Context, filters WorkOrderFilters) ([]*WorkOrder, error)

	// DeleteWorkOrder removes a work order. Unknown IDs are not an error.
	DeleteWorkOrder(ctx context.Context, workOrderID int64) error
}

// RequestWorkRequest identifies the work type by ID or, when WorkTypeID is
// zero, by its label. A nil ClientID files the order under the default client.
type RequestWorkRequest struct {
	WorkTypeID    int64
	WorkTypeLabel string
	ClientID      *int64
}

// RequestWorkResponse contains the result of filing a work order.
type RequestWorkResponse struct {
	WorkOrderID int64
	WorkOrder   *WorkOrder
}

// AssignWorkOrderRequest contains parameters for assigning a work order.
type AssignWorkOrderRequest struct {
	WorkOrderID int64
	WorkerID    int64
}

// CompleteWorkOrderRequest contains parameters for completing a work order.
// WorkerID is the worker asking; it must be the assignee.
type CompleteWorkOrderRequest struct {
	WorkOrderID int64
	WorkerID    int64
}

// PayWorkOrderResponse describes a settled payment.
type PayWorkOrderResponse struct {
	WorkOrderID int64
	WorkerID    int64
	Amount      float64
	NewBalance  float64
}

// WorkOrder represents a work order at the port boundary.
type WorkOrder struct {
	ID         int64
	Label      string
	Status     string
	StartTime  *time.Time
	EndTime    *time.Time
	AssigneeID int64 // 0 when unassigned
	WorkTypeID int64
	ClientID   int64
}

// WorkOrderFilters contains filter options for listing work orders.
type WorkOrderFilters struct {
	AssigneeID int64
	Status     string
}
