// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by single-row reads when the key does not exist.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned by secondary lookups that match more than one row.
var ErrAmbiguous = errors.New("ambiguous match")

// ErrTransitionConflict is returned when a conditional status write finds the
// row already moved on (e.g. paid by a concurrent settle).
var ErrTransitionConflict = errors.New("work order changed concurrently")

// ClientRepository defines the secondary port for client persistence.
type ClientRepository interface {
	// EnsureSchema creates the client table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// Create persists a new client. The key is assigned by the store when
	// record.ID is zero, otherwise the caller's key is used.
	Create(ctx context.Context, record *ClientRecord) (int64, error)

	// GetByID retrieves a client by its ID.
	GetByID(ctx context.Context, id int64) (*ClientRecord, error)

	// List retrieves every client.
	List(ctx context.Context) ([]*ClientRecord, error)

	// Update applies the non-nil fields of update.
	Update(ctx context.Context, id int64, update ClientUpdate) error

	// Delete removes a client. Deleting a missing key is not an error.
	Delete(ctx context.Context, id int64) error
}

// ClientRecord represents a client as stored in persistence.
type ClientRecord struct {
	ID          int64
	FirstName   string
	LastName    string
	PhoneNumber string
}

// ClientUpdate lists the client fields to change. Nil means untouched.
type ClientUpdate struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// Empty reports whether the update carries no fields.
func (u ClientUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.PhoneNumber == nil
}

// WorkTypeRepository defines the secondary port for the work-type catalog.
type WorkTypeRepository interface {
	// EnsureSchema creates the extra_work_type table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// Create persists a new work type and returns its key.
	Create(ctx context.Context, record *WorkTypeRecord) (int64, error)

	// GetByID retrieves a work type by its ID.
	GetByID(ctx context.Context, id int64) (*WorkTypeRecord, error)

	// GetByLabel retrieves the first work type carrying label.
	GetByLabel(ctx context.Context, label string) (*WorkTypeRecord, error)

	// List retrieves every work type.
	List(ctx context.Context) ([]*WorkTypeRecord, error)

	// Update applies the non-nil fields of update.
	Update(ctx context.Context, id int64, update WorkTypeUpdate) error

	// Delete removes a work type. Deleting a missing key is not an error.
	Delete(ctx context.Context, id int64) error

	// Clear removes every work type no work order references.
	Clear(ctx context.Context) error
}

// WorkTypeRecord represents a catalog entry as stored in persistence.
type WorkTypeRecord struct {
	ID          int64
	Description string
	Payment     float64
	Label       string // the "type" column
}

// WorkTypeUpdate lists the work-type fields to change. Nil means untouched.
type WorkTypeUpdate struct {
	Description *string
	Payment     *float64
	Label       *string
}

// Empty reports whether the update carries no fields.
func (u WorkTypeUpdate) Empty() bool {
	return u.Description == nil && u.Payment == nil && u.Label == nil
}

// WorkerRepository defines the secondary port for workers and their posts.
type WorkerRepository interface {
	// EnsureSchema creates the post, duties, post_duties and worker tables.
	EnsureSchema(ctx context.Context) error

	// Create persists a new worker and returns its key.
	Create(ctx context.Context, record *WorkerRecord) (int64, error)

	// GetByID retrieves a worker with its post and duties.
	GetByID(ctx context.Context, id int64) (*WorkerRecord, error)

	// GetByName retrieves the worker with the given full name.
	// Returns ErrNotFound on no match and ErrAmbiguous on more than one.
	GetByName(ctx context.Context, fullName string) (*WorkerRecord, error)

	// List retrieves every worker with its post and duties.
	List(ctx context.Context) ([]*WorkerRecord, error)

	// Update applies the non-nil fields of update.
	Update(ctx context.Context, id int64, update WorkerUpdate) error

	// Delete removes a worker. Deleting a missing key is not an error.
	Delete(ctx context.Context, id int64) error

	// CreatePost persists a post with its ordered duties and returns its key.
	CreatePost(ctx context.Context, title string, duties []string) (int64, error)

	// GetPost retrieves a post with its duties.
	GetPost(ctx context.Context, id int64) (*PostRecord, error)

	// ListPosts retrieves every post with its duties.
	ListPosts(ctx context.Context) ([]*PostRecord, error)
}

// PostRecord represents a post with its duties assembled from post_duties.
type PostRecord struct {
	ID     int64
	Title  string
	Duties []string
}

// WorkerRecord represents a worker as stored in persistence, with the post
// looked up at read time.
type WorkerRecord struct {
	ID             int64
	FullName       string
	Sex            string
	PhoneNumber    string
	PassportNumber string
	PassportSeries string
	PostID         int64 // 0 when the worker has no post
	Post           PostRecord
	Balance        float64
}

// WorkerUpdate lists the worker fields to change. Nil means untouched.
type WorkerUpdate struct {
	FullName       *string
	Sex            *string
	PhoneNumber    *string
	PassportNumber *string
	PassportSeries *string
	PostID         *int64
	Balance        *float64
}

// Empty reports whether the update carries no fields.
func (u WorkerUpdate) Empty() bool {
	return u.FullName == nil && u.Sex == nil && u.PhoneNumber == nil &&
		u.PassportNumber == nil && u.PassportSeries == nil &&
		u.PostID == nil && u.Balance == nil
}

// WorkOrderRepository defines the secondary port for work-order persistence.
type WorkOrderRepository interface {
	// EnsureSchema creates the extra_work table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// Create persists a new work order and returns its key.
	Create(ctx context.Context, record *WorkOrderRecord) (int64, error)

	// GetByID retrieves a work order by its ID.
	GetByID(ctx context.Context, id int64) (*WorkOrderRecord, error)

	// List retrieves work orders matching the given filters.
	List(ctx context.Context, filters WorkOrderFilters) ([]*WorkOrderRecord, error)

	// Update applies the non-nil fields of update.
	Update(ctx context.Context, id int64, update WorkOrderUpdate) error

	// Delete removes a work order. Deleting a missing key is not an error.
	Delete(ctx context.Context, id int64) error

	// Settle credits amount to the worker and moves the work order from
	// "done" to "paid" in one transaction. If the order is no longer "done"
	// nothing is written and ErrTransitionConflict is returned.
	Settle(ctx context.Context, workOrderID, workerID int64, amount float64) error
}

// WorkOrderRecord represents a work order as stored in persistence.
type WorkOrderRecord struct {
	ID         int64
	Label      string // copy of the work-type label taken at creation
	StartTime  *time.Time
	EndTime    *time.Time
	AssigneeID int64 // 0 when unassigned
	WorkTypeID int64
	Status     string
	ClientID   int64
}

// WorkOrderUpdate lists the work-order fields to change. Nil means untouched.
type WorkOrderUpdate struct {
	Label      *string
	StartTime  *time.Time
	EndTime    *time.Time
	AssigneeID *int64
	WorkTypeID *int64
	Status     *string
	ClientID   *int64
}

// Empty reports whether the update carries no fields.
func (u WorkOrderUpdate) Empty() bool {
	return u.Label == nil && u.StartTime == nil && u.EndTime == nil &&
		u.AssigneeID == nil && u.WorkTypeID == nil && u.Status == nil &&
		u.ClientID == nil
}

// WorkOrderFilters contains filter options for querying work orders.
// Zero values mean "no filter".
type WorkOrderFilters struct {
	AssigneeID int64
	Status     string
}
