package primary

import "context"

// ClientService defines the primary port for client registration.
type ClientService interface {
	// CreateClient registers a client. A non-zero ID is used as the key.
	CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error)

	// GetClient retrieves a client by ID.
	GetClient(ctx context.Context, clientID int64) (*Client, error)

	// ListClients lists every client.
	ListClients(ctx context.Context) ([]*Client, error)

	// UpdateClient changes the supplied fields only.
	UpdateClient(ctx context.Context, clientID int64, req UpdateClientRequest) error

	// DeleteClient removes a client. Unknown IDs are not an error.
	DeleteClient(ctx context.Context, clientID int64) error
}

// CreateClientRequest contains parameters for registering a client.
type CreateClientRequest struct {
	ID          int64
	FirstName   string
	LastName    string
	PhoneNumber string
}

// UpdateClientRequest lists the fields to change. Nil means untouched.
type UpdateClientRequest struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// Client represents a client at the port boundary.
type Client struct {
	ID          int64
	FirstName   string
	LastName    string
	PhoneNumber string
}
