package primary

import "context"

// WorkTypeService defines the primary port for the work-type catalog.
type WorkTypeService interface {
	CreateWorkType(ctx context.Context, req CreateWorkTypeRequest) (*WorkType, error)
	GetWorkType(ctx context.Context, workTypeID int64) (*WorkType, error)
	ListWorkTypes(ctx context.Context) ([]*WorkType, error)
	UpdateWorkType(ctx context.Context, workTypeID int64, req UpdateWorkTypeRequest) error
	DeleteWorkType(ctx context.Context, workTypeID int64) error

	// ClearWorkTypes removes the work types no order refers to (used before reseeding).
	ClearWorkTypes(ctx context.Context) error
}

// CreateWorkTypeRequest contains parameters for a catalog entry.
type CreateWorkTypeRequest struct {
	Description string
	Payment     float64
	Label       string
}

// UpdateWorkTypeRequest lists the fields to change. Nil means untouched.
type UpdateWorkTypeRequest struct {
	Description *string
	Payment     *float64
	Label       *string
}

// WorkType represents a catalog entry at the port boundary.
type WorkType struct {
	ID          int64
	Description string
	Payment     float64
	Label       string
}
