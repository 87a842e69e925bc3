package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/workdesk/internal/ports/primary"
	"github.com/example/workdesk/internal/ports/secondary"
)

// WorkTypeServiceImpl implements the WorkTypeService interface.
type WorkTypeServiceImpl struct {
	workTypeRepo secondary.WorkTypeRepository
	logger       *slog.Logger
}

// NewWorkTypeService creates a new WorkTypeService with injected dependencies.
func NewWorkTypeService(workTypeRepo secondary.WorkTypeRepository, logger *slog.Logger) *WorkTypeServiceImpl {
	return &WorkTypeServiceImpl{
		workTypeRepo: workTypeRepo,
		logger:       logger,
	}
}

// CreateWorkType adds a catalog entry.
func (s *WorkTypeServiceImpl) CreateWorkType(ctx context.Context, req primary.CreateWorkTypeRequest) (*primary.WorkType, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("work type description is required")
	}
	if req.Payment < 0 {
		return nil, fmt.Errorf("work type payment must not be negative (got %.2f)", req.Payment)
	}

	id, err := s.workTypeRepo.Create(ctx, &secondary.WorkTypeRecord{
		Description: req.Description,
		Payment:     req.Payment,
		Label:       req.Label,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create work type: %w", err)
	}

	created, err := s.workTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created work type: %w", err)
	}

	s.logger.Info("work type created", "work_type_id", id, "label", req.Label)
	return recordToWorkType(created), nil
}

// GetWorkType retrieves a catalog entry by ID.
func (s *WorkTypeServiceImpl) GetWorkType(ctx context.Context, workTypeID int64) (*primary.WorkType, error) {
	record, err := s.workTypeRepo.GetByID(ctx, workTypeID)
	if err != nil {
		return nil, err
	}
	return recordToWorkType(record), nil
}

// ListWorkTypes lists the catalog.
func (s *WorkTypeServiceImpl) ListWorkTypes(ctx context.Context) ([]*primary.WorkType, error) {
	records, err := s.workTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work types: %w", err)
	}

	workTypes := make([]*primary.WorkType, len(records))
	for i, r := range records {
		workTypes[i] = recordToWorkType(r)
	}
	return workTypes, nil
}

// UpdateWorkType changes the supplied fields only. Work orders already filed
// keep the label they were created with.
func (s *WorkTypeServiceImpl) UpdateWorkType(ctx context.Context, workTypeID int64, req primary.UpdateWorkTypeRequest) error {
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return fmt.Errorf("work type description is required")
	}
	if req.Payment != nil && *req.Payment < 0 {
		return fmt.Errorf("work type payment must not be negative (got %.2f)", *req.Payment)
	}

	return s.workTypeRepo.Update(ctx, workTypeID, secondary.WorkTypeUpdate{
		Description: req.Description,
		Payment:     req.Payment,
		Label:       req.Label,
	})
}

// DeleteWorkType removes a catalog entry.
func (s *WorkTypeServiceImpl) DeleteWorkType(ctx context.Context, workTypeID int64) error {
	if err := s.workTypeRepo.Delete(ctx, workTypeID); err != nil {
		return err
	}
	s.logger.Info("work type deleted", "work_type_id", workTypeID)
	return nil
}

// ClearWorkTypes removes the unreferenced part of the catalog.
func (s *WorkTypeServiceImpl) ClearWorkTypes(ctx context.Context) error {
	if err := s.workTypeRepo.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("work type catalog cleared")
	return nil
}

func recordToWorkType(r *secondary.WorkTypeRecord) *primary.WorkType {
	return &primary.WorkType{
		ID:          r.ID,
		Description: r.Description,
		Payment:     r.Payment,
		Label:       r.Label,
	}
}

// Ensure WorkTypeServiceImpl implements the interface
var _ primary.WorkTypeService = (*WorkTypeServiceImpl)(nil)
