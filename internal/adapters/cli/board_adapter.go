package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/workdesk/internal/core/workorder"
	"github.com/example/workdesk/internal/ports/primary"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// BoardAdapter renders boards.
type BoardAdapter struct {
	service primary.BoardService
	out     io.Writer

	// ClearBetweenFrames redraws in place while watching.
	ClearBetweenFrames bool
}

// NewBoardAdapter creates a new BoardAdapter.
func NewBoardAdapter(service primary.BoardService, out io.Writer) *BoardAdapter {
	return &BoardAdapter{
		service: service,
		out:     out,
	}
}

// Show prints one snapshot.
func (a *BoardAdapter) Show(ctx context.Context, filters primary.BoardFilters) error {
	board, err := a.service.Snapshot(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to build board: %w", err)
	}
	a.Render(board)
	return nil
}

// Watch redraws the board whenever it changes until ctx is cancelled.
func (a *BoardAdapter) Watch(ctx context.Context, filters primary.BoardFilters, interval time.Duration) error {
	return a.service.Watch(ctx, filters, interval, func(board *primary.Board) error {
		if a.ClearBetweenFrames {
			fmt.Fprint(a.out, clearScreen)
		}
		a.Render(board)
		return nil
	})
}

// Render writes a board to the adapter's output.
func (a *BoardAdapter) Render(board *primary.Board) {
	switch board.View {
	case primary.BoardViewCustomer:
		fmt.Fprintln(a.out, "Customer board")
	case primary.BoardViewManager:
		fmt.Fprintln(a.out, "Manager board")
	case primary.BoardViewWorker:
		fmt.Fprintln(a.out, "Worker board")
	}

	if w := board.Worker; w != nil {
		post := w.Post.Title
		if post == "" {
			post = "no post"
		}
		fmt.Fprintf(a.out, "%s (%s)  balance %.2f\n", w.FullName, post, w.Balance)
	}
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")

	if len(board.Entries) == 0 {
		fmt.Fprintln(a.out, "No work orders")
		fmt.Fprintln(a.out)
		return
	}

	for _, e := range board.Entries {
		fmt.Fprintln(a.out, a.entryLine(board.View, e))
	}
	fmt.Fprintln(a.out)
}

func (a *BoardAdapter) entryLine(view primary.BoardView, e primary.BoardEntry) string {
	c := bucketColor(e.Bucket)
	line := fmt.Sprintf("#%-4d %-20s %s", e.WorkOrderID, e.Label, c.Sprintf("%-12s", e.Status))

	if view == primary.BoardViewCustomer {
		line += fmt.Sprintf(" client %d", e.ClientID)
	}
	if e.WorkerName != "" {
		if e.PostTitle != "" {
			line += fmt.Sprintf(" %s, %s", e.WorkerName, e.PostTitle)
		} else {
			line += " " + e.WorkerName
		}
	}
	if e.HasElapsed {
		line += " " + workorder.FormatElapsed(e.Elapsed)
	}
	return line
}
