package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/workdesk/internal/ports/primary"
)

// WorkerAdapter translates CLI operations to WorkerService calls, for both
// workers and posts.
type WorkerAdapter struct {
	service primary.WorkerService
	out     io.Writer
}

// NewWorkerAdapter creates a new WorkerAdapter.
func NewWorkerAdapter(service primary.WorkerService, out io.Writer) *WorkerAdapter {
	return &WorkerAdapter{service: service, out: out}
}

// Create hires a worker.
func (a *WorkerAdapter) Create(ctx context.Context, req primary.CreateWorkerRequest) error {
	w, err := a.service.CreateWorker(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created worker %d: %s\n", w.ID, w.FullName)
	return nil
}

// List lists workers, including those without a post.
func (a *WorkerAdapter) List(ctx context.Context) error {
	workers, err := a.service.ListWorkers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workers: %w", err)
	}

	if len(workers) == 0 {
		fmt.Fprintln(a.out, "No workers found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPOST\tBALANCE")
	fmt.Fprintln(w, "--\t----\t----\t-------")
	for _, wk := range workers {
		post := wk.Post.Title
		if post == "" {
			post = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\n", wk.ID, wk.FullName, post, wk.Balance)
	}
	return w.Flush()
}

// Show displays a worker with post and duties.
func (a *WorkerAdapter) Show(ctx context.Context, workerID int64) error {
	wk, err := a.service.GetWorker(ctx, workerID)
	if err != nil {
		return fmt.Errorf("failed to get worker: %w", err)
	}

	fmt.Fprintf(a.out, "\nWorker:   %d\n", wk.ID)
	fmt.Fprintf(a.out, "Name:     %s\n", wk.FullName)
	if wk.Sex != "" {
		fmt.Fprintf(a.out, "Sex:      %s\n", wk.Sex)
	}
	if wk.PhoneNumber != "" {
		fmt.Fprintf(a.out, "Phone:    %s\n", wk.PhoneNumber)
	}
	if wk.PassportSeries != "" || wk.PassportNumber != "" {
		fmt.Fprintf(a.out, "Passport: %s %s\n", wk.PassportSeries, wk.PassportNumber)
	}
	fmt.Fprintf(a.out, "Balance:  %.2f\n", wk.Balance)
	if wk.Post.Title != "" {
		fmt.Fprintf(a.out, "Post:     %s\n", wk.Post.Title)
		for _, d := range wk.Post.Duties {
			fmt.Fprintf(a.out, "  - %s\n", d)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// Update changes the supplied fields.
func (a *WorkerAdapter) Update(ctx context.Context, workerID int64, req primary.UpdateWorkerRequest) error {
	if req.FullName == nil && req.Sex == nil && req.PhoneNumber == nil &&
		req.PassportNumber == nil && req.PassportSeries == nil && req.PostID == nil {
		return fmt.Errorf("nothing to update")
	}
	if err := a.service.UpdateWorker(ctx, workerID, req); err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Worker %d updated\n", workerID)
	return nil
}

// Delete removes a worker.
func (a *WorkerAdapter) Delete(ctx context.Context, workerID int64) error {
	if err := a.service.DeleteWorker(ctx, workerID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted worker %d\n", workerID)
	return nil
}

// CreatePost creates a post.
func (a *WorkerAdapter) CreatePost(ctx context.Context, title string, duties []string) error {
	p, err := a.service.CreatePost(ctx, primary.CreatePostRequest{Title: title, Duties: duties})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created post %d: %s (%d duties)\n", p.ID, p.Title, len(p.Duties))
	return nil
}

// ListPosts lists posts with their duties.
func (a *WorkerAdapter) ListPosts(ctx context.Context) error {
	posts, err := a.service.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDUTIES")
	fmt.Fprintln(w, "--\t-----\t------")
	for _, p := range posts {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Title, strings.Join(p.Duties, "; "))
	}
	return w.Flush()
}
