package app

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/example/workdesk/internal/core/workorder"
	"github.com/example/workdesk/internal/ports/primary"
	"github.com/example/workdesk/internal/ports/secondary"
)

// BoardServiceImpl implements the BoardService interface. Boards are
// projections recomputed from the store on every call.
type BoardServiceImpl struct {
	workOrderRepo secondary.WorkOrderRepository
	workerRepo    secondary.WorkerRepository
	logger        *slog.Logger
}

// NewBoardService creates a new BoardService with injected dependencies.
func NewBoardService(
	workOrderRepo secondary.WorkOrderRepository,
	workerRepo secondary.WorkerRepository,
	logger *slog.Logger,
) *BoardServiceImpl {
	return &BoardServiceImpl{
		workOrderRepo: workOrderRepo,
		workerRepo:    workerRepo,
		logger:        logger,
	}
}

// Snapshot builds the board for the requested view.
func (s *BoardServiceImpl) Snapshot(ctx context.Context, filters primary.BoardFilters) (*primary.Board, error) {
	board := &primary.Board{View: filters.View, Entries: []primary.BoardEntry{}}
	repoFilters := secondary.WorkOrderFilters{}

	switch filters.View {
	case primary.BoardViewCustomer, primary.BoardViewManager:
	case primary.BoardViewWorker:
		if filters.WorkerID == 0 {
			return nil, fmt.Errorf("worker board needs a worker id")
		}
		worker, err := s.workerRepo.GetByID(ctx, filters.WorkerID)
		if err != nil {
			return nil, err
		}
		board.Worker = recordToWorker(worker)
		repoFilters.AssigneeID = filters.WorkerID
	default:
		return nil, fmt.Errorf("unknown board view %q", filters.View)
	}

	orders, err := s.workOrderRepo.List(ctx, repoFilters)
	if err != nil {
		return nil, fmt.Errorf("failed to load work orders: %w", err)
	}

	workers, err := s.workersFor(ctx, orders)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		board.Entries = append(board.Entries, buildEntry(o, workers))
	}
	return board, nil
}

// Watch polls Snapshot every interval. fn sees the first board and then only
// boards that differ from the previous one. Each tick runs to completion
// before the next is taken.
func (s *BoardServiceImpl) Watch(ctx context.Context, filters primary.BoardFilters, interval time.Duration, fn func(*primary.Board) error) error {
	if interval <= 0 {
		return fmt.Errorf("poll interval must be positive (got %s)", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var previous *primary.Board
	for {
		board, err := s.Snapshot(ctx, filters)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if previous == nil || !reflect.DeepEqual(previous, board) {
			if err := fn(board); err != nil {
				return err
			}
			previous = board
		} else {
			s.logger.Debug("board unchanged", "view", filters.View)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// workersFor loads the assignees of in-progress orders, keyed by id.
func (s *BoardServiceImpl) workersFor(ctx context.Context, orders []*secondary.WorkOrderRecord) (map[int64]*secondary.WorkerRecord, error) {
	workers := make(map[int64]*secondary.WorkerRecord)
	for _, o := range orders {
		if o.AssigneeID == 0 || !workorder.ShowsAssignee(workorder.Status(o.Status)) {
			continue
		}
		if _, ok := workers[o.AssigneeID]; ok {
			continue
		}
		worker, err := s.workerRepo.GetByID(ctx, o.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load assignee of work order %d: %w", o.ID, err)
		}
		workers[o.AssigneeID] = worker
	}
	return workers, nil
}

func buildEntry(o *secondary.WorkOrderRecord, workers map[int64]*secondary.WorkerRecord) primary.BoardEntry {
	status := workorder.Status(o.Status)
	entry := primary.BoardEntry{
		WorkOrderID: o.ID,
		Label:       o.Label,
		Status:      o.Status,
		Bucket:      workorder.Category(status).String(),
		ClientID:    o.ClientID,
	}

	if workorder.ShowsAssignee(status) {
		if w, ok := workers[o.AssigneeID]; ok {
			entry.WorkerName = w.FullName
			entry.PostTitle = w.Post.Title
		}
	}

	if workorder.ShowsElapsed(status) && o.StartTime != nil && o.EndTime != nil {
		entry.HasElapsed = true
		entry.Elapsed = workorder.Elapsed(*o.StartTime, *o.EndTime)
	}

	return entry
}

// Ensure BoardServiceImpl implements the interface
var _ primary.BoardService = (*BoardServiceImpl)(nil)
