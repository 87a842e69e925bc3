// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/workdesk/internal/core/workorder"
	"github.com/example/workdesk/internal/ports/primary"
)

// WorkOrderAdapter translates CLI operations to WorkOrderService calls.
// The worker service is only used to put names next to assignee ids.
type WorkOrderAdapter struct {
	service primary.WorkOrderService
	workers primary.WorkerService
	out     io.Writer
}

// NewWorkOrderAdapter creates a new WorkOrderAdapter.
func NewWorkOrderAdapter(service primary.WorkOrderService, workers primary.WorkerService, out io.Writer) *WorkOrderAdapter {
	return &WorkOrderAdapter{
		service: service,
		workers: workers,
		out:     out,
	}
}

// Request files a new work order. A zero typeID means look up by label.
func (a *WorkOrderAdapter) Request(ctx context.Context, typeID int64, typeLabel string, clientID *int64) error {
	if typeID == 0 && typeLabel == "" {
		return fmt.Errorf("must specify --type or --type-id")
	}

	resp, err := a.service.RequestWork(ctx, primary.RequestWorkRequest{
		WorkTypeID:    typeID,
		WorkTypeLabel: typeLabel,
		ClientID:      clientID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Requested work order %d: %s (client %d)\n", resp.WorkOrderID, resp.WorkOrder.Label, resp.WorkOrder.ClientID)
	return nil
}

// List lists work orders with optional filters.
func (a *WorkOrderAdapter) List(ctx context.Context, assigneeID int64, status string) error {
	orders, err := a.service.ListWorkOrders(ctx, primary.WorkOrderFilters{
		AssigneeID: assigneeID,
		Status:     status,
	})
	if err != nil {
		return fmt.Errorf("failed to list work orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No work orders found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tASSIGNEE\tCLIENT")
	fmt.Fprintln(w, "--\t----\t------\t--------\t------")
	for _, o := range orders {
		assignee := "-"
		if o.AssigneeID != 0 {
			assignee = fmt.Sprintf("%d", o.AssigneeID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", o.ID, o.Label, o.Status, assignee, o.ClientID)
	}
	return w.Flush()
}

// Show displays a single work order. Once someone is assigned the worker's
// name is printed too, which is how the manager sees who to pay.
func (a *WorkOrderAdapter) Show(ctx context.Context, workOrderID int64) (*primary.WorkOrder, error) {
	order, err := a.service.GetWorkOrder(ctx, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}

	fmt.Fprintf(a.out, "\nWork order: %d\n", order.ID)
	fmt.Fprintf(a.out, "Type:     %s\n", order.Label)
	fmt.Fprintf(a.out, "Status:   %s\n", colorizeStatus(order.Status))
	fmt.Fprintf(a.out, "Client:   %d\n", order.ClientID)
	if order.AssigneeID != 0 {
		fmt.Fprintf(a.out, "Assignee: %s\n", a.workerLabel(ctx, order.AssigneeID))
	}
	fmt.Fprintf(a.out, "Started:  %s\n", formatTime(order.StartTime))
	fmt.Fprintf(a.out, "Finished: %s\n", formatTime(order.EndTime))
	if order.StartTime != nil && order.EndTime != nil {
		fmt.Fprintf(a.out, "Elapsed:  %s\n", workorder.FormatElapsed(workorder.Elapsed(*order.StartTime, *order.EndTime)))
	}
	fmt.Fprintln(a.out)

	return order, nil
}

// Assign hands a pending order to a worker.
func (a *WorkOrderAdapter) Assign(ctx context.Context, workOrderID, workerID int64) error {
	if err := a.service.AssignWorkOrder(ctx, primary.AssignWorkOrderRequest{
		WorkOrderID: workOrderID,
		WorkerID:    workerID,
	}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %d assigned to %s\n", workOrderID, a.workerLabel(ctx, workerID))
	return nil
}

// AssignByName resolves the worker by full name and assigns.
func (a *WorkOrderAdapter) AssignByName(ctx context.Context, workOrderID int64, fullName string) error {
	worker, err := a.workers.GetWorkerByName(ctx, fullName)
	if err != nil {
		return fmt.Errorf("failed to resolve worker: %w", err)
	}
	return a.Assign(ctx, workOrderID, worker.ID)
}

// Complete marks an in-progress order done on behalf of its assignee.
func (a *WorkOrderAdapter) Complete(ctx context.Context, workOrderID, workerID int64) error {
	if err := a.service.CompleteWorkOrder(ctx, primary.CompleteWorkOrderRequest{
		WorkOrderID: workOrderID,
		WorkerID:    workerID,
	}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %d marked as done\n", workOrderID)
	return nil
}

// Pay settles a done order.
func (a *WorkOrderAdapter) Pay(ctx context.Context, workOrderID int64) error {
	resp, err := a.service.PayWorkOrder(ctx, workOrderID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Work order %d paid: %.2f to %s (balance %.2f)\n",
		resp.WorkOrderID, resp.Amount, a.workerLabel(ctx, resp.WorkerID), resp.NewBalance)
	return nil
}

// Delete removes a work order.
func (a *WorkOrderAdapter) Delete(ctx context.Context, workOrderID int64) error {
	if err := a.service.DeleteWorkOrder(ctx, workOrderID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted work order %d\n", workOrderID)
	return nil
}

// workerLabel renders "Name (#id)", falling back to the bare id.
func (a *WorkOrderAdapter) workerLabel(ctx context.Context, workerID int64) string {
	if a.workers == nil {
		return fmt.Sprintf("worker %d", workerID)
	}
	w, err := a.workers.GetWorker(ctx, workerID)
	if err != nil {
		return fmt.Sprintf("worker %d", workerID)
	}
	return fmt.Sprintf("%s (#%d)", w.FullName, w.ID)
}
