package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/workdesk/internal/ports/primary"
	"github.com/example/workdesk/internal/ports/secondary"
)

// ClientServiceImpl implements the ClientService interface.
type ClientServiceImpl struct {
	clientRepo secondary.ClientRepository
	logger     *slog.Logger
}

// NewClientService creates a new ClientService with injected dependencies.
func NewClientService(clientRepo secondary.ClientRepository, logger *slog.Logger) *ClientServiceImpl {
	return &ClientServiceImpl{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// CreateClient registers a client.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req primary.CreateClientRequest) (*primary.Client, error) {
	if req.ID < 0 {
		return nil, fmt.Errorf("client id must not be negative")
	}

	id, err := s.clientRepo.Create(ctx, &secondary.ClientRecord{
		ID:          req.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	created, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created client: %w", err)
	}

	s.logger.Info("client created", "client_id", id)
	return recordToClient(created), nil
}

// GetClient retrieves a client by ID.
func (s *ClientServiceImpl) GetClient(ctx context.Context, clientID int64) (*primary.Client, error) {
	record, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return recordToClient(record), nil
}

// ListClients lists every client.
func (s *ClientServiceImpl) ListClients(ctx context.Context) ([]*primary.Client, error) {
	records, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*primary.Client, len(records))
	for i, r := range records {
		clients[i] = recordToClient(r)
	}
	return clients, nil
}

// UpdateClient changes the supplied fields only.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, clientID int64, req primary.UpdateClientRequest) error {
	return s.clientRepo.Update(ctx, clientID, secondary.ClientUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
}

// DeleteClient removes a client.
func (s *ClientServiceImpl) DeleteClient(ctx context.Context, clientID int64) error {
	if err := s.clientRepo.Delete(ctx, clientID); err != nil {
		return err
	}
	s.logger.Info("client deleted", "client_id", clientID)
	return nil
}

func recordToClient(r *secondary.ClientRecord) *primary.Client {
	return &primary.Client{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
	}
}

// Ensure ClientServiceImpl implements the interface
var _ primary.ClientService = (*ClientServiceImpl)(nil)
