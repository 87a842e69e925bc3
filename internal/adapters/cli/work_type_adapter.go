package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/workdesk/internal/ports/primary"
)

// WorkTypeAdapter translates CLI operations to WorkTypeService calls.
type WorkTypeAdapter struct {
	service primary.WorkTypeService
	out     io.Writer
}

// NewWorkTypeAdapter creates a new WorkTypeAdapter.
func NewWorkTypeAdapter(service primary.WorkTypeService, out io.Writer) *WorkTypeAdapter {
	return &WorkTypeAdapter{service: service, out: out}
}

// Create adds a catalog entry.
func (a *WorkTypeAdapter) Create(ctx context.Context, req primary.CreateWorkTypeRequest) error {
	wt, err := a.service.CreateWorkType(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created work type %d: %s (%.2f)\n", wt.ID, wt.Label, wt.Payment)
	return nil
}

// List lists the catalog.
func (a *WorkTypeAdapter) List(ctx context.Context) error {
	types, err := a.service.ListWorkTypes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list work types: %w", err)
	}

	if len(types) == 0 {
		fmt.Fprintln(a.out, "No work types found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tPAYMENT\tDESCRIPTION")
	fmt.Fprintln(w, "--\t----\t-------\t-----------")
	for _, wt := range types {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n", wt.ID, wt.Label, wt.Payment, wt.Description)
	}
	return w.Flush()
}

// Show displays one catalog entry.
func (a *WorkTypeAdapter) Show(ctx context.Context, workTypeID int64) error {
	wt, err := a.service.GetWorkType(ctx, workTypeID)
	if err != nil {
		return fmt.Errorf("failed to get work type: %w", err)
	}

	fmt.Fprintf(a.out, "\nWork type: %d\n", wt.ID)
	fmt.Fprintf(a.out, "Type:        %s\n", wt.Label)
	fmt.Fprintf(a.out, "Payment:     %.2f\n", wt.Payment)
	fmt.Fprintf(a.out, "Description: %s\n", wt.Description)
	fmt.Fprintln(a.out)
	return nil
}

// Update changes the supplied fields.
func (a *WorkTypeAdapter) Update(ctx context.Context, workTypeID int64, req primary.UpdateWorkTypeRequest) error {
	if req.Description == nil && req.Payment == nil && req.Label == nil {
		return fmt.Errorf("must specify at least one of --description, --payment or --type")
	}
	if err := a.service.UpdateWorkType(ctx, workTypeID, req); err != nil {
		return fmt.Errorf("failed to update work type: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Work type %d updated\n", workTypeID)
	return nil
}

// Delete removes a catalog entry.
func (a *WorkTypeAdapter) Delete(ctx context.Context, workTypeID int64) error {
	if err := a.service.DeleteWorkType(ctx, workTypeID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted work type %d\n", workTypeID)
	return nil
}
