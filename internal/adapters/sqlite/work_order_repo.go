package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/workdesk/internal/db"
	"github.com/example/workdesk/internal/ports/secondary"
)

// WorkOrderRepository implements secondary.WorkOrderRepository with SQLite.
type WorkOrderRepository struct {
	db *sql.DB
}

// NewWorkOrderRepository creates a new SQLite work-order repository.
func NewWorkOrderRepository(db *sql.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

var workOrderSelect = "SELECT id, type, " +
	timestampColumn("start_time") + ", " +
	timestampColumn("end_time") +
	", assignee, extra_work_type_id, status, client_id FROM extra_work"

// EnsureSchema creates the extra_work table.
func (r *WorkOrderRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, db.WorkOrderSchemaSQL); err != nil {
		return fmt.Errorf("failed to create extra_work table: %w", err)
	}
	return nil
}

// Create persists a new work order.
func (r *WorkOrderRepository) Create(ctx context.Context, order *secondary.WorkOrderRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO extra_work (type, start_time, end_time, assignee, extra_work_type_id, status, client_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		nullString(order.Label),
		formatTimestamp(order.StartTime),
		formatTimestamp(order.EndTime),
		nullID(order.AssigneeID),
		order.WorkTypeID,
		order.Status,
		order.ClientID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create work order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read work order id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a work order by its ID.
func (r *WorkOrderRepository) GetByID(ctx context.Context, id int64) (*secondary.WorkOrderRecord, error) {
	row := r.db.QueryRowContext(ctx, workOrderSelect+" WHERE id = ?", id)

	record, err := scanWorkOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("work order %d %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	return record, nil
}

// List retrieves work orders matching the given filters, oldest first.
func (r *WorkOrderRepository) List(ctx context.Context, filters secondary.WorkOrderFilters) ([]*secondary.WorkOrderRecord, error) {
	query := workOrderSelect + " WHERE 1=1"
	args := []any{}

	if filters.AssigneeID != 0 {
		query += " AND assignee = ?"
		args = append(args, filters.AssigneeID)
	}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	defer rows.Close()

	var orders []*secondary.WorkOrderRecord
	for rows.Next() {
		record, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work order: %w", err)
		}
		orders = append(orders, record)
	}

	return orders, rows.Err()
}

// Update applies the non-nil fields of update. An empty update writes nothing.
func (r *WorkOrderRepository) Update(ctx context.Context, id int64, update secondary.WorkOrderUpdate) error {
	var set setClause
	if update.Label != nil {
		set.add("type", *update.Label)
	}
	if update.StartTime != nil {
		set.add("start_time", formatTimestamp(update.StartTime))
	}
	if update.EndTime != nil {
		set.add("end_time", formatTimestamp(update.EndTime))
	}
	if update.AssigneeID != nil {
		set.add("assignee", nullID(*update.AssigneeID))
	}
	if update.WorkTypeID != nil {
		set.add("extra_work_type_id", *update.WorkTypeID)
	}
	if update.Status != nil {
		set.add("status", *update.Status)
	}
	if update.ClientID != nil {
		set.add("client_id", *update.ClientID)
	}
	if set.empty() {
		return nil
	}

	query, args := set.statement("extra_work", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update work order: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("work order %d %w", id, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a work order. Missing keys are ignored.
func (r *WorkOrderRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM extra_work WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete work order: %w", err)
	}
	return nil
}

// Settle pays amount to the worker and marks the work order paid. Both
// writes commit together or not at all.
func (r *WorkOrderRepository) Settle(ctx context.Context, workOrderID, workerID int64, amount float64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		"UPDATE extra_work SET status = 'paid' WHERE id = ? AND status = 'done'", workOrderID)
	if err != nil {
		return fmt.Errorf("failed to mark work order paid: %w", err)
	}
	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return fmt.Errorf("work order %d is no longer done: %w", workOrderID, secondary.ErrTransitionConflict)
	}

	result, err = tx.ExecContext(ctx,
		"UPDATE worker SET balance = COALESCE(balance, 0) + ? WHERE id = ?", amount, workerID)
	if err != nil {
		return fmt.Errorf("failed to credit worker: %w", err)
	}
	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return fmt.Errorf("worker %d %w", workerID, secondary.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settlement: %w", err)
	}
	return nil
}

func scanWorkOrder(row rowScanner) (*secondary.WorkOrderRecord, error) {
	var (
		label, status        sql.NullString
		start, end           sql.NullString
		assignee             sql.NullInt64
		workTypeID, clientID sql.NullInt64
	)

	record := &secondary.WorkOrderRecord{}
	if err := row.Scan(&record.ID, &label, &start, &end, &assignee, &workTypeID, &status, &clientID); err != nil {
		return nil, err
	}

	var err error
	if record.StartTime, err = parseTimestamp(start); err != nil {
		return nil, err
	}
	if record.EndTime, err = parseTimestamp(end); err != nil {
		return nil, err
	}
	record.Label = label.String
	record.Status = status.String
	record.AssigneeID = assignee.Int64
	record.WorkTypeID = workTypeID.Int64
	record.ClientID = clientID.Int64
	return record, nil
}

// Ensure WorkOrderRepository implements the interface
var _ secondary.WorkOrderRepository = (*WorkOrderRepository)(nil)
