package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/workdesk/internal/ports/primary"
)

// ClientAdapter translates CLI operations to ClientService calls.
type ClientAdapter struct {
	service primary.ClientService
	out     io.Writer
}

// NewClientAdapter creates a new ClientAdapter.
func NewClientAdapter(service primary.ClientService, out io.Writer) *ClientAdapter {
	return &ClientAdapter{service: service, out: out}
}

// Create registers a client. A zero id lets the store pick one.
func (a *ClientAdapter) Create(ctx context.Context, req primary.CreateClientRequest) error {
	client, err := a.service.CreateClient(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created client %d: %s\n", client.ID, fullName(client.FirstName, client.LastName))
	return nil
}

// List lists clients.
func (a *ClientAdapter) List(ctx context.Context) error {
	clients, err := a.service.ListClients(ctx)
	if err != nil {
		return fmt.Errorf("failed to list clients: %w", err)
	}

	if len(clients) == 0 {
		fmt.Fprintln(a.out, "No clients found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE")
	fmt.Fprintln(w, "--\t----\t-----")
	for _, c := range clients {
		fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, fullName(c.FirstName, c.LastName), c.PhoneNumber)
	}
	return w.Flush()
}

// Show displays a client.
func (a *ClientAdapter) Show(ctx context.Context, clientID int64) error {
	c, err := a.service.GetClient(ctx, clientID)
	if err != nil {
		return fmt.Errorf("failed to get client: %w", err)
	}

	fmt.Fprintf(a.out, "\nClient: %d\n", c.ID)
	fmt.Fprintf(a.out, "Name:   %s\n", fullName(c.FirstName, c.LastName))
	if c.PhoneNumber != "" {
		fmt.Fprintf(a.out, "Phone:  %s\n", c.PhoneNumber)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Update changes the supplied fields.
func (a *ClientAdapter) Update(ctx context.Context, clientID int64, req primary.UpdateClientRequest) error {
	if req.FirstName == nil && req.LastName == nil && req.PhoneNumber == nil {
		return fmt.Errorf("must specify at least one of --first-name, --last-name or --phone")
	}
	if err := a.service.UpdateClient(ctx, clientID, req); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Client %d updated\n", clientID)
	return nil
}

// Delete removes a client.
func (a *ClientAdapter) Delete(ctx context.Context, clientID int64) error {
	if err := a.service.DeleteClient(ctx, clientID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted client %d\n", clientID)
	return nil
}

func fullName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
