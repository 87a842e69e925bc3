package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/workdesk/internal/ports/primary"
	"github.com/example/workdesk/internal/wire"
)

var workTypeCmd = &cobra.Command{
	Use:     "work-type",
	Aliases: []string{"wt"},
	Short:   "Manage the work-type catalog",
}

var workTypeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a work type",
	RunE: func(cmd *cobra.Command, args []string) error {
		label, _ := cmd.Flags().GetString("type")
		description, _ := cmd.Flags().GetString("description")
		payment, _ := cmd.Flags().GetFloat64("payment")

		return wire.WorkTypeAdapter().Create(context.Background(), primary.CreateWorkTypeRequest{
			Description: description,
			Payment:     payment,
			Label:       label,
		})
	},
}

var workTypeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List work types",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkTypeAdapter().List(context.Background())
	},
}

var workTypeShowCmd = &cobra.Command{
	Use:   "show [work-type-id]",
	Short: "Show a work type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "work type")
		if err != nil {
			return err
		}
		return wire.WorkTypeAdapter().Show(context.Background(), id)
	},
}

var workTypeUpdateCmd = &cobra.Command{
	Use:   "update [work-type-id]",
	Short: "Update a work type",
	Long:  "Update a work type. Existing work orders keep the type label they were filed with.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "work type")
		if err != nil {
			return err
		}
		return wire.WorkTypeAdapter().Update(context.Background(), id, primary.UpdateWorkTypeRequest{
			Description: changedString(cmd, "description"),
			Payment:     changedFloat64(cmd, "payment"),
			Label:       changedString(cmd, "type"),
		})
	},
}

var workTypeDeleteCmd = &cobra.Command{
	Use:   "delete [work-type-id]",
	Short: "Delete a work type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "work type")
		if err != nil {
			return err
		}
		return wire.WorkTypeAdapter().Delete(context.Background(), id)
	},
}

// WorkTypeCmd returns the work-type command
func WorkTypeCmd() *cobra.Command {
	workTypeCreateCmd.Flags().StringP("type", "t", "", "Short type label, e.g. Plumbing (required)")
	workTypeCreateCmd.Flags().StringP("description", "d", "", "Description (required)")
	workTypeCreateCmd.Flags().Float64P("payment", "p", 0, "Fee paid to the worker")
	workTypeCreateCmd.MarkFlagRequired("type")
	workTypeCreateCmd.MarkFlagRequired("description")

	workTypeUpdateCmd.Flags().StringP("type", "t", "", "New type label")
	workTypeUpdateCmd.Flags().StringP("description", "d", "", "New description")
	workTypeUpdateCmd.Flags().Float64P("payment", "p", 0, "New fee")

	workTypeCmd.AddCommand(workTypeCreateCmd)
	workTypeCmd.AddCommand(workTypeListCmd)
	workTypeCmd.AddCommand(workTypeShowCmd)
	workTypeCmd.AddCommand(workTypeUpdateCmd)
	workTypeCmd.AddCommand(workTypeDeleteCmd)

	return workTypeCmd
}
