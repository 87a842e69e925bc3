package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/workdesk/internal/core/workorder"
	"github.com/example/workdesk/internal/ctxutil"
	"github.com/example/workdesk/internal/ports/primary"
	"github.com/example/workdesk/internal/ports/secondary"
)

// WorkOrderServiceImpl implements the WorkOrderService interface.
// Every lifecycle step reads the current row, asks the workorder guards, then
// writes. Payment goes through a single Settle call so the balance credit and
// the status change commit together.
type WorkOrderServiceImpl struct {
	workOrderRepo   secondary.WorkOrderRepository
	workTypeRepo    secondary.WorkTypeRepository
	workerRepo      secondary.WorkerRepository
	clientRepo      secondary.ClientRepository
	defaultClientID int64
	logger          *slog.Logger
	now             func() time.Time
}

// NewWorkOrderService creates a new WorkOrderService with injected dependencies.
// Requests without a client are filed under defaultClientID.
func NewWorkOrderService(
	workOrderRepo secondary.WorkOrderRepository,
	workTypeRepo secondary.WorkTypeRepository,
	workerRepo secondary.WorkerRepository,
	clientRepo secondary.ClientRepository,
	defaultClientID int64,
	logger *slog.Logger,
) *WorkOrderServiceImpl {
	return &WorkOrderServiceImpl{
		workOrderRepo:   workOrderRepo,
		workTypeRepo:    workTypeRepo,
		workerRepo:      workerRepo,
		clientRepo:      clientRepo,
		defaultClientID: defaultClientID,
		logger:          logger,
		now:             time.Now,
	}
}

// RequestWork files a new pending work order.
func (s *WorkOrderServiceImpl) RequestWork(ctx context.Context, req primary.RequestWorkRequest) (*primary.RequestWorkResponse, error) {
	// Resolve the work type (by id, else by label)
	var (
		workType       *secondary.WorkTypeRecord
		workTypeExists bool
		err            error
	)
	switch {
	case req.WorkTypeID != 0:
		workType, workTypeExists, err = s.lookupWorkType(ctx, req.WorkTypeID)
		if err != nil {
			return nil, err
		}
	case req.WorkTypeLabel != "":
		workType, err = s.workTypeRepo.GetByLabel(ctx, req.WorkTypeLabel)
		if err != nil {
			return nil, err
		}
		workTypeExists = true
	default:
		return nil, fmt.Errorf("a work type id or label is required")
	}

	clientID := s.defaultClientID
	if req.ClientID != nil {
		clientID = *req.ClientID
	}
	clientExists, err := s.clientExists(ctx, clientID)
	if err != nil {
		return nil, err
	}

	guard := workorder.CanCreate(workorder.CreateContext{
		WorkTypeID:     req.WorkTypeID,
		WorkTypeExists: workTypeExists,
		ClientID:       clientID,
		ClientExists:   clientExists,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	// The label is copied now and does not follow later catalog edits
	record := &secondary.WorkOrderRecord{
		Label:      workType.Label,
		WorkTypeID: workType.ID,
		Status:     string(workorder.InitialStatus()),
		ClientID:   clientID,
	}

	id, err := s.workOrderRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	created, err := s.workOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created work order: %w", err)
	}

	s.logger.Info("work order requested",
		"work_order_id", id, "work_type_id", workType.ID, "client_id", clientID,
		"actor", ctxutil.ActorFromContext(ctx))

	return &primary.RequestWorkResponse{
		WorkOrderID: id,
		WorkOrder:   recordToWorkOrder(created),
	}, nil
}

// AssignWorkOrder moves a pending work order to "in progress".
func (s *WorkOrderServiceImpl) AssignWorkOrder(ctx context.Context, req primary.AssignWorkOrderRequest) error {
	order, status, err := s.load(ctx, req.WorkOrderID)
	if err != nil {
		return err
	}

	workerExists := true
	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		if !errors.Is(err, secondary.ErrNotFound) {
			return fmt.Errorf("failed to look up worker: %w", err)
		}
		workerExists = false
	}

	guard := workorder.CanAssign(workorder.AssignContext{
		WorkOrderID:  order.ID,
		Status:       status,
		WorkerID:     req.WorkerID,
		WorkerExists: workerExists,
	})
	if err := guard.Error(); err != nil {
		return err
	}

	result, err := workorder.ApplyTransition(status, workorder.StatusInProgress, s.now())
	if err != nil {
		return err
	}

	newStatus := string(result.NewStatus)
	if err := s.workOrderRepo.Update(ctx, order.ID, secondary.WorkOrderUpdate{
		Status:     &newStatus,
		AssigneeID: &req.WorkerID,
		StartTime:  result.StartTime,
	}); err != nil {
		return fmt.Errorf("failed to assign work order: %w", err)
	}

	s.logger.Info("work order assigned",
		"work_order_id", order.ID, "worker_id", req.WorkerID, "actor", ctxutil.ActorFromContext(ctx))
	return nil
}

// CompleteWorkOrder moves an in-progress work order to "done".
func (s *WorkOrderServiceImpl) CompleteWorkOrder(ctx context.Context, req primary.CompleteWorkOrderRequest) error {
	order, status, err := s.load(ctx, req.WorkOrderID)
	if err != nil {
		return err
	}

	guard := workorder.CanComplete(workorder.CompleteContext{
		WorkOrderID: order.ID,
		Status:      status,
		AssigneeID:  order.AssigneeID,
		WorkerID:    req.WorkerID,
	})
	if err := guard.Error(); err != nil {
		return err
	}

	result, err := workorder.ApplyTransition(status, workorder.StatusDone, s.now())
	if err != nil {
		return err
	}

	if order.StartTime != nil && !workorder.IsOrdered(*order.StartTime, *result.EndTime) {
		s.logger.Warn("work order finished before it started",
			"work_order_id", order.ID, "start_time", order.StartTime, "end_time", result.EndTime)
	}

	newStatus := string(result.NewStatus)
	if err := s.workOrderRepo.Update(ctx, order.ID, secondary.WorkOrderUpdate{
		Status:  &newStatus,
		EndTime: result.EndTime,
	}); err != nil {
		return fmt.Errorf("failed to complete work order: %w", err)
	}

	s.logger.Info("work order completed",
		"work_order_id", order.ID, "worker_id", req.WorkerID, "actor", ctxutil.ActorFromContext(ctx))
	return nil
}

// PayWorkOrder credits the work-type fee to the assignee and marks the order paid.
func (s *WorkOrderServiceImpl) PayWorkOrder(ctx context.Context, workOrderID int64) (*primary.PayWorkOrderResponse, error) {
	order, status, err := s.load(ctx, workOrderID)
	if err != nil {
		return nil, err
	}

	workType, workTypeExists, err := s.lookupWorkType(ctx, order.WorkTypeID)
	if err != nil {
		return nil, err
	}
	var payment float64
	if workTypeExists {
		payment = workType.Payment
	}

	guard := workorder.CanPay(workorder.PayContext{
		WorkOrderID:    order.ID,
		Status:         status,
		AssigneeID:     order.AssigneeID,
		WorkTypeExists: workTypeExists,
		Payment:        payment,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	if _, err := workorder.ApplyTransition(status, workorder.StatusPaid, s.now()); err != nil {
		return nil, err
	}

	if err := s.workOrderRepo.Settle(ctx, order.ID, order.AssigneeID, payment); err != nil {
		return nil, fmt.Errorf("failed to pay work order: %w", err)
	}

	worker, err := s.workerRepo.GetByID(ctx, order.AssigneeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paid worker: %w", err)
	}

	s.logger.Info("work order paid",
		"work_order_id", order.ID, "worker_id", worker.ID, "amount", payment, "balance", worker.Balance,
		"actor", ctxutil.ActorFromContext(ctx))

	return &primary.PayWorkOrderResponse{
		WorkOrderID: order.ID,
		WorkerID:    worker.ID,
		Amount:      payment,
		NewBalance:  worker.Balance,
	}, nil
}

// GetWorkOrder retrieves a work order by ID.
func (s *WorkOrderServiceImpl) GetWorkOrder(ctx context.Context, workOrderID int64) (*primary.WorkOrder, error) {
	record, err := s.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	return recordToWorkOrder(record), nil
}

// ListWorkOrders lists work orders with optional filters.
func (s *WorkOrderServiceImpl) ListWorkOrders(ctx context.Context, filters primary.WorkOrderFilters) ([]*primary.WorkOrder, error) {
	repoFilters := secondary.WorkOrderFilters{AssigneeID: filters.AssigneeID}
	if filters.Status != "" {
		status, err := workorder.ParseStatus(filters.Status)
		if err != nil {
			return nil, err
		}
		repoFilters.Status = string(status)
	}

	records, err := s.workOrderRepo.List(ctx, repoFilters)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	orders := make([]*primary.WorkOrder, len(records))
	for i, r := range records {
		orders[i] = recordToWorkOrder(r)
	}
	return orders, nil
}

// DeleteWorkOrder removes a work order.
func (s *WorkOrderServiceImpl) DeleteWorkOrder(ctx context.Context, workOrderID int64) error {
	if err := s.workOrderRepo.Delete(ctx, workOrderID); err != nil {
		return err
	}
	s.logger.Info("work order deleted", "work_order_id", workOrderID)
	return nil
}

// Helper methods

// load fetches a work order and parses its stored status.
func (s *WorkOrderServiceImpl) load(ctx context.Context, id int64) (*secondary.WorkOrderRecord, workorder.Status, error) {
	order, err := s.workOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	status, err := workorder.ParseStatus(order.Status)
	if err != nil {
		return nil, "", fmt.Errorf("work order %d: %w", id, err)
	}
	return order, status, nil
}

func (s *WorkOrderServiceImpl) lookupWorkType(ctx context.Context, id int64) (*secondary.WorkTypeRecord, bool, error) {
	workType, err := s.workTypeRepo.GetByID(ctx, id)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up work type: %w", err)
	}
	return workType, true, nil
}

func (s *WorkOrderServiceImpl) clientExists(ctx context.Context, id int64) (bool, error) {
	_, err := s.clientRepo.GetByID(ctx, id)
	if errors.Is(err, secondary.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up client: %w", err)
	}
	return true, nil
}

func recordToWorkOrder(r *secondary.WorkOrderRecord) *primary.WorkOrder {
	return &primary.WorkOrder{
		ID:         r.ID,
		Label:      r.Label,
		Status:     r.Status,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		AssigneeID: r.AssigneeID,
		WorkTypeID: r.WorkTypeID,
		ClientID:   r.ClientID,
	}
}

// Ensure WorkOrderServiceImpl implements the interface
var _ primary.WorkOrderService = (*WorkOrderServiceImpl)(nil)
