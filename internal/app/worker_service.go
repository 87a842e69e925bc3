package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/workdesk/internal/ports/primary"
	"github.com/example/workdesk/internal/ports/secondary"
)

// WorkerServiceImpl implements the WorkerService interface.
type WorkerServiceImpl struct {
	workerRepo secondary.WorkerRepository
	logger     *slog.Logger
}

// NewWorkerService creates a new WorkerService with injected dependencies.
func NewWorkerService(workerRepo secondary.WorkerRepository, logger *slog.Logger) *WorkerServiceImpl {
	return &WorkerServiceImpl{
		workerRepo: workerRepo,
		logger:     logger,
	}
}

// CreateWorker hires a worker. New workers start with a zero balance.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req primary.CreateWorkerRequest) (*primary.Worker, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("worker full name is required")
	}
	if req.PostID != 0 {
		if _, err := s.workerRepo.GetPost(ctx, req.PostID); err != nil {
			return nil, err
		}
	}

	id, err := s.workerRepo.Create(ctx, &secondary.WorkerRecord{
		FullName:       req.FullName,
		Sex:            req.Sex,
		PhoneNumber:    req.PhoneNumber,
		PassportNumber: req.PassportNumber,
		PassportSeries: req.PassportSeries,
		PostID:         req.PostID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	created, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created worker: %w", err)
	}

	s.logger.Info("worker created", "worker_id", id, "post_id", req.PostID)
	return recordToWorker(created), nil
}

// GetWorker retrieves a worker by ID.
func (s *WorkerServiceImpl) GetWorker(ctx context.Context, workerID int64) (*primary.Worker, error) {
	record, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return recordToWorker(record), nil
}

// GetWorkerByName retrieves a worker by full name.
func (s *WorkerServiceImpl) GetWorkerByName(ctx context.Context, fullName string) (*primary.Worker, error) {
	record, err := s.workerRepo.GetByName(ctx, fullName)
	if err != nil {
		return nil, err
	}
	return recordToWorker(record), nil
}

// ListWorkers lists every worker.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) ([]*primary.Worker, error) {
	records, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	workers := make([]*primary.Worker, len(records))
	for i, r := range records {
		workers[i] = recordToWorker(r)
	}
	return workers, nil
}

// UpdateWorker changes the supplied fields only. The balance is not editable
// here; it only grows through payment.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, workerID int64, req primary.UpdateWorkerRequest) error {
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return fmt.Errorf("worker full name is required")
	}
	if req.PostID != nil && *req.PostID != 0 {
		if _, err := s.workerRepo.GetPost(ctx, *req.PostID); err != nil {
			return err
		}
	}

	return s.workerRepo.Update(ctx, workerID, secondary.WorkerUpdate{
		FullName:       req.FullName,
		Sex:            req.Sex,
		PhoneNumber:    req.PhoneNumber,
		PassportNumber: req.PassportNumber,
		PassportSeries: req.PassportSeries,
		PostID:         req.PostID,
	})
}

// DeleteWorker removes a worker.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, workerID int64) error {
	if err := s.workerRepo.Delete(ctx, workerID); err != nil {
		return err
	}
	s.logger.Info("worker deleted", "worker_id", workerID)
	return nil
}

// CreatePost creates a post with its duties.
func (s *WorkerServiceImpl) CreatePost(ctx context.Context, req primary.CreatePostRequest) (*primary.Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("post title is required")
	}
	for i, d := range req.Duties {
		if strings.TrimSpace(d) == "" {
			return nil, fmt.Errorf("duty %d has no description", i+1)
		}
	}

	id, err := s.workerRepo.CreatePost(ctx, req.Title, req.Duties)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	created, err := s.workerRepo.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created post: %w", err)
	}

	s.logger.Info("post created", "post_id", id, "duties", len(req.Duties))
	return recordToPost(*created), nil
}

// GetPost retrieves a post by ID.
func (s *WorkerServiceImpl) GetPost(ctx context.Context, postID int64) (*primary.Post, error) {
	record, err := s.workerRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return recordToPost(*record), nil
}

// ListPosts lists every post.
func (s *WorkerServiceImpl) ListPosts(ctx context.Context) ([]*primary.Post, error) {
	records, err := s.workerRepo.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*primary.Post, len(records))
	for i, r := range records {
		posts[i] = recordToPost(*r)
	}
	return posts, nil
}

func recordToPost(r secondary.PostRecord) *primary.Post {
	return &primary.Post{
		ID:     r.ID,
		Title:  r.Title,
		Duties: r.Duties,
	}
}

func recordToWorker(r *secondary.WorkerRecord) *primary.Worker {
	return &primary.Worker{
		ID:             r.ID,
		FullName:       r.FullName,
		Sex:            r.Sex,
		PhoneNumber:    r.PhoneNumber,
		PassportNumber: r.PassportNumber,
		PassportSeries: r.PassportSeries,
		Post:           *recordToPost(r.Post),
		Balance:        r.Balance,
	}
}

// Ensure WorkerServiceImpl implements the interface
var _ primary.WorkerService = (*WorkerServiceImpl)(nil)
