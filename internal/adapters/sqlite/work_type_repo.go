package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/workdesk/internal/db"
	"github.com/example/workdesk/internal/ports/secondary"
)

// WorkTypeRepository implements secondary.WorkTypeRepository with SQLite.
type WorkTypeRepository struct {
	db *sql.DB
}

// NewWorkTypeRepository creates a new SQLite work-type repository.
func NewWorkTypeRepository(db *sql.DB) *WorkTypeRepository {
	return &WorkTypeRepository{db: db}
}

const workTypeColumns = "id, description, payment, type"

// EnsureSchema creates the extra_work_type table.
func (r *WorkTypeRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, db.WorkTypeSchemaSQL); err != nil {
		return fmt.Errorf("failed to create extra_work_type table: %w", err)
	}
	return nil
}

// Create persists a new work type.
func (r *WorkTypeRepository) Create(ctx context.Context, workType *secondary.WorkTypeRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO extra_work_type (description, payment, type) VALUES (?, ?, ?)",
		workType.Description, workType.Payment, nullString(workType.Label),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create work type: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read work type id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a work type by its ID.
func (r *WorkTypeRepository) GetByID(ctx context.Context, id int64) (*secondary.WorkTypeRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+workTypeColumns+" FROM extra_work_type WHERE id = ?", id)

	record, err := scanWorkType(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("work type %d %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work type: %w", err)
	}
	return record, nil
}

// GetByLabel retrieves the first work type carrying label.
func (r *WorkTypeRepository) GetByLabel(ctx context.Context, label string) (*secondary.WorkTypeRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+workTypeColumns+" FROM extra_work_type WHERE type = ? ORDER BY id LIMIT 1", label)

	record, err := scanWorkType(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("work type %q %w", label, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work type: %w", err)
	}
	return record, nil
}

// List retrieves every work type.
func (r *WorkTypeRepository) List(ctx context.Context) ([]*secondary.WorkTypeRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+workTypeColumns+" FROM extra_work_type ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list work types: %w", err)
	}
	defer rows.Close()

	var workTypes []*secondary.WorkTypeRecord
	for rows.Next() {
		record, err := scanWorkType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work type: %w", err)
		}
		workTypes = append(workTypes, record)
	}

	return workTypes, rows.Err()
}

// Update applies the non-nil fields of update. An empty update writes nothing.
func (r *WorkTypeRepository) Update(ctx context.Context, id int64, update secondary.WorkTypeUpdate) error {
	var set setClause
	if update.Description != nil {
		set.add("description", *update.Description)
	}
	if update.Payment != nil {
		set.add("payment", *update.Payment)
	}
	if update.Label != nil {
		set.add("type", *update.Label)
	}
	if set.empty() {
		return nil
	}

	query, args := set.statement("extra_work_type", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update work type: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("work type %d %w", id, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a work type. Missing keys are ignored.
func (r *WorkTypeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM extra_work_type WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete work type: %w", err)
	}
	return nil
}

// Clear removes every work type that no work order references. Referenced
// rows stay so existing orders keep a valid extra_work_type_id.
func (r *WorkTypeRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM extra_work_type
		WHERE id NOT IN (SELECT extra_work_type_id FROM extra_work WHERE extra_work_type_id IS NOT NULL)`)
	if err != nil {
		return fmt.Errorf("failed to clear work types: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkType(row rowScanner) (*secondary.WorkTypeRecord, error) {
	var (
		payment sql.NullFloat64
		label   sql.NullString
	)

	record := &secondary.WorkTypeRecord{}
	if err := row.Scan(&record.ID, &record.Description, &payment, &label); err != nil {
		return nil, err
	}
	record.Payment = payment.Float64
	record.Label = label.String
	return record, nil
}

// Ensure WorkTypeRepository implements the interface
var _ secondary.WorkTypeRepository = (*WorkTypeRepository)(nil)
