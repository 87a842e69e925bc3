package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/workdesk/internal/db"
	"github.com/example/workdesk/internal/ports/secondary"
)

// ClientRepository implements secondary.ClientRepository with SQLite.
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new SQLite client repository.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// EnsureSchema creates the client table and the walk-in client.
func (r *ClientRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, db.ClientSchemaSQL); err != nil {
		return fmt.Errorf("failed to create client table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, db.SentinelSQL); err != nil {
		return fmt.Errorf("failed to create walk-in client: %w", err)
	}
	return nil
}

// Create persists a new client. A zero ID lets the store assign the key.
func (r *ClientRepository) Create(ctx context.Context, client *secondary.ClientRecord) (int64, error) {
	if client.ID != 0 {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO client (id, first_name, last_name, phone_number) VALUES (?, ?, ?, ?)",
			client.ID, nullString(client.FirstName), nullString(client.LastName), nullString(client.PhoneNumber),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to create client: %w", err)
		}
		return client.ID, nil
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO client (first_name, last_name, phone_number) VALUES (?, ?, ?)",
		nullString(client.FirstName), nullString(client.LastName), nullString(client.PhoneNumber),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read client id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a client by its ID.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*secondary.ClientRecord, error) {
	var first, last, phone sql.NullString

	record := &secondary.ClientRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, first_name, last_name, phone_number FROM client WHERE id = ?",
		id,
	).Scan(&record.ID, &first, &last, &phone)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %d %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	record.FirstName = first.String
	record.LastName = last.String
	record.PhoneNumber = phone.String
	return record, nil
}

// List retrieves every client.
func (r *ClientRepository) List(ctx context.Context) ([]*secondary.ClientRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, first_name, last_name, phone_number FROM client ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*secondary.ClientRecord
	for rows.Next() {
		var first, last, phone sql.NullString

		record := &secondary.ClientRecord{}
		if err := rows.Scan(&record.ID, &first, &last, &phone); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		record.FirstName = first.String
		record.LastName = last.String
		record.PhoneNumber = phone.String

		clients = append(clients, record)
	}

	return clients, rows.Err()
}

// Update applies the non-nil fields of update. An empty update writes nothing.
func (r *ClientRepository) Update(ctx context.Context, id int64, update secondary.ClientUpdate) error {
	var set setClause
	if update.FirstName != nil {
		set.add("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		set.add("last_name", *update.LastName)
	}
	if update.PhoneNumber != nil {
		set.add("phone_number", *update.PhoneNumber)
	}
	if set.empty() {
		return nil
	}

	query, args := set.statement("client", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("client %d %w", id, secondary.ErrNotFound)
	}
	return nil
}

// Delete removes a client. Missing keys are ignored.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM client WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

// Ensure ClientRepository implements the interface
var _ secondary.ClientRepository = (*ClientRepository)(nil)
