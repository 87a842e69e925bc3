package primary

import "context"

// WorkerService defines the primary port for workers and posts.
type WorkerService interface {
	// CreateWorker hires a worker, optionally on a post.
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (*Worker, error)

	// GetWorker retrieves a worker with post and duties.
	GetWorker(ctx context.Context, workerID int64) (*Worker, error)

	// GetWorkerByName retrieves the worker with the given full name.
	// Fails when no worker or more than one worker has that name.
	GetWorkerByName(ctx context.Context, fullName string) (*Worker, error)

	// ListWorkers lists every worker, including those without a post.
	ListWorkers(ctx context.Context) ([]*Worker, error)

	// UpdateWorker changes the supplied fields only.
	UpdateWorker(ctx context.Context, workerID int64, req UpdateWorkerRequest) error

	// DeleteWorker removes a worker. Unknown IDs are not an error.
	DeleteWorker(ctx context.Context, workerID int64) error

	// CreatePost creates a post with its ordered duties.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// GetPost retrieves a post with its duties.
	GetPost(ctx context.Context, postID int64) (*Post, error)

	// ListPosts lists every post.
	ListPosts(ctx context.Context) ([]*Post, error)
}

// CreateWorkerRequest contains parameters for hiring a worker.
type CreateWorkerRequest struct {
	FullName       string
	Sex            string
	PhoneNumber    string
	PassportNumber string
	PassportSeries string
	PostID         int64
}

// UpdateWorkerRequest lists the fields to change. Nil means untouched.
type UpdateWorkerRequest struct {
	FullName       *string
	Sex            *string
	PhoneNumber    *string
	PassportNumber *string
	PassportSeries *string
	PostID         *int64
}

// CreatePostRequest contains parameters for creating a post.
type CreatePostRequest struct {
	Title  string
	Duties []string
}

// Post represents a job title and its duties.
type Post struct {
	ID     int64
	Title  string
	Duties []string
}

// Worker represents a worker at the port boundary.
type Worker struct {
	ID             int64
	FullName       string
	Sex            string
	PhoneNumber    string
	PassportNumber string
	PassportSeries string
	Post           Post // zero when the worker has no post
	Balance        float64
}
