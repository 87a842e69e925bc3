package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/workdesk/internal/ports/primary"
	"github.com/example/workdesk/internal/wire"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show work-order boards",
		Long: `Show the work orders the way each role sees them:

  customer   every order with its client
  manager    every order; assignee while in progress, elapsed time once done
  worker     one worker's orders and balance

Colours: yellow pending, orange in progress, green done, grey paid.
With --watch the board redraws whenever it changes (poll_interval in config).`,
	}

	run := func(filters primary.BoardFilters) error {
		adapter := wire.BoardAdapter()
		if !watch {
			return adapter.Show(context.Background(), filters)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// color disables itself when stdout is not a terminal.
		adapter.ClearBetweenFrames = !color.NoColor
		return adapter.Watch(ctx, filters, wire.Config().PollInterval)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "customer",
		Short: "Customer board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(primary.BoardFilters{View: primary.BoardViewCustomer})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "manager",
		Short: "Manager board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(primary.BoardFilters{View: primary.BoardViewManager})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "worker [worker-id]",
		Short: "Worker board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntityID(args[0], "worker")
			if err != nil {
				return err
			}
			return run(primary.BoardFilters{View: primary.BoardViewWorker, WorkerID: id})
		},
	})

	cmd.PersistentFlags().BoolVarP(&watch, "watch", "w", false, "Redraw the board when it changes")
	return cmd
}
