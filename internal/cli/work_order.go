package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/workdesk/internal/ctxutil"
	"github.com/example/workdesk/internal/wire"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Request, assign, complete and pay work orders",
	Long: `Work orders move forward only:

  pending -> in progress -> done -> paid

A customer requests work, a manager assigns it to a worker, the worker marks
it done, and the manager pays the work-type fee into the worker's balance.`,
}

var orderRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Request work (customer)",
	RunE: func(cmd *cobra.Command, args []string) error {
		label, _ := cmd.Flags().GetString("type")
		typeID, _ := cmd.Flags().GetInt64("type-id")

		ctx := ctxutil.WithActor(context.Background(), ctxutil.ActorCustomer)
		return wire.WorkOrderAdapter().Request(ctx, typeID, label, changedInt64(cmd, "client"))
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		assignee, _ := cmd.Flags().GetInt64("assignee")
		status, _ := cmd.Flags().GetString("status")

		return wire.WorkOrderAdapter().List(context.Background(), assignee, status)
	},
}

var orderShowCmd = &cobra.Command{
	Use:   "show [order-id]",
	Short: "Show work order details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "work order")
		if err != nil {
			return err
		}
		_, err = wire.WorkOrderAdapter().Show(context.Background(), id)
		return err
	},
}

var orderAssignCmd = &cobra.Command{
	Use:   "assign [order-id]",
	Short: "Assign a pending work order to a worker (manager)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := ctxutil.WithActor(context.Background(), ctxutil.ActorManager)
		id, err := parseEntityID(args[0], "work order")
		if err != nil {
			return err
		}

		workerID, _ := cmd.Flags().GetInt64("worker")
		workerName, _ := cmd.Flags().GetString("worker-name")
		switch {
		case cmd.Flags().Changed("worker") && workerName != "":
			return fmt.Errorf("use either --worker or --worker-name, not both")
		case workerName != "":
			return wire.WorkOrderAdapter().AssignByName(ctx, id, workerName)
		case cmd.Flags().Changed("worker"):
			return wire.WorkOrderAdapter().Assign(ctx, id, workerID)
		}
		return fmt.Errorf("--worker or --worker-name is required")
	},
}

var orderCompleteCmd = &cobra.Command{
	Use:   "complete [order-id]",
	Short: "Mark your in-progress work order done (worker)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "work order")
		if err != nil {
			return err
		}
		workerID, _ := cmd.Flags().GetInt64("worker")

		ctx := ctxutil.WithActor(context.Background(), ctxutil.WorkerActor(workerID))
		return wire.WorkOrderAdapter().Complete(ctx, id, workerID)
	},
}

var orderPayCmd = &cobra.Command{
	Use:   "pay [order-id]",
	Short: "Pay the assignee of a done work order (manager)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "work order")
		if err != nil {
			return err
		}
		ctx := ctxutil.WithActor(context.Background(), ctxutil.ActorManager)
		return wire.WorkOrderAdapter().Pay(ctx, id)
	},
}

var orderDeleteCmd = &cobra.Command{
	Use:   "delete [order-id]",
	Short: "Delete a work order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "work order")
		if err != nil {
			return err
		}
		return wire.WorkOrderAdapter().Delete(context.Background(), id)
	},
}

// WorkOrderCmd returns the order command
func WorkOrderCmd() *cobra.Command {
	orderRequestCmd.Flags().StringP("type", "t", "", "Work type label, e.g. Plumbing")
	orderRequestCmd.Flags().Int64("type-id", 0, "Work type ID (takes precedence over --type)")
	orderRequestCmd.Flags().Int64P("client", "c", 0, "Client ID (defaults to the walk-in client)")

	orderListCmd.Flags().Int64P("assignee", "a", 0, "Filter by assigned worker ID")
	orderListCmd.Flags().StringP("status", "s", "", "Filter by status (pending, in_progress, done, paid)")

	orderAssignCmd.Flags().Int64P("worker", "w", 0, "Worker ID")
	orderAssignCmd.Flags().String("worker-name", "", "Worker full name (must be unique)")

	orderCompleteCmd.Flags().Int64P("worker", "w", 0, "Your worker ID (required)")
	orderCompleteCmd.MarkFlagRequired("worker")

	orderCmd.AddCommand(orderRequestCmd)
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderAssignCmd)
	orderCmd.AddCommand(orderCompleteCmd)
	orderCmd.AddCommand(orderPayCmd)
	orderCmd.AddCommand(orderDeleteCmd)

	return orderCmd
}
