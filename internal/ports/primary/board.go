package primary

import (
	"context"
	"time"
)

// BoardService defines the primary port for the read-only work-order boards.
type BoardService interface {
	// Snapshot builds the board for a view once.
	Snapshot(ctx context.Context, filters BoardFilters) (*Board, error)

	// Watch polls the board every interval and calls fn with the first
	// snapshot and then each time the board changes. It returns nil when ctx
	// is cancelled, or the first error from building a snapshot or from fn.
	Watch(ctx context.Context, filters BoardFilters, interval time.Duration, fn func(*Board) error) error
}

// BoardView selects whose board is shown.
type BoardView string

const (
	BoardViewCustomer BoardView = "customer"
	BoardViewManager  BoardView = "manager"
	BoardViewWorker   BoardView = "worker"
)

// BoardFilters selects the view. WorkerID is required for BoardViewWorker.
type BoardFilters struct {
	View     BoardView
	WorkerID int64
}

// Board is one snapshot of a view.
type Board struct {
	View    BoardView
	Worker  *Worker // set for the worker view
	Entries []BoardEntry
}

// BoardEntry is one work order as displayed.
type BoardEntry struct {
	WorkOrderID int64
	Label       string
	Status      string
	Bucket      string // display colour of the status
	ClientID    int64
	WorkerName  string // set while in progress
	PostTitle   string // set while in progress
	HasElapsed  bool   // set once done or paid
	Elapsed     time.Duration
}
