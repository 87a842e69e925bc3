package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/workdesk/internal/ports/primary"
	"github.com/example/workdesk/internal/wire"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var clientCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt64("id")
		first, _ := cmd.Flags().GetString("first-name")
		last, _ := cmd.Flags().GetString("last-name")
		phone, _ := cmd.Flags().GetString("phone")

		return wire.ClientAdapter().Create(context.Background(), primary.CreateClientRequest{
			ID:          id,
			FirstName:   first,
			LastName:    last,
			PhoneNumber: phone,
		})
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ClientAdapter().List(context.Background())
	},
}

var clientShowCmd = &cobra.Command{
	Use:   "show [client-id]",
	Short: "Show client details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "client")
		if err != nil {
			return err
		}
		return wire.ClientAdapter().Show(context.Background(), id)
	},
}

var clientUpdateCmd = &cobra.Command{
	Use:   "update [client-id]",
	Short: "Update client fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "client")
		if err != nil {
			return err
		}
		return wire.ClientAdapter().Update(context.Background(), id, primary.UpdateClientRequest{
			FirstName:   changedString(cmd, "first-name"),
			LastName:    changedString(cmd, "last-name"),
			PhoneNumber: changedString(cmd, "phone"),
		})
	},
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete [client-id]",
	Short: "Delete a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "client")
		if err != nil {
			return err
		}
		return wire.ClientAdapter().Delete(context.Background(), id)
	},
}

// ClientCmd returns the client command
func ClientCmd() *cobra.Command {
	clientCreateCmd.Flags().Int64("id", 0, "Use this client ID instead of the next free one")
	clientCreateCmd.Flags().String("first-name", "", "First name")
	clientCreateCmd.Flags().String("last-name", "", "Last name")
	clientCreateCmd.Flags().String("phone", "", "Phone number")

	clientUpdateCmd.Flags().String("first-name", "", "New first name")
	clientUpdateCmd.Flags().String("last-name", "", "New last name")
	clientUpdateCmd.Flags().String("phone", "", "New phone number")

	clientCmd.AddCommand(clientCreateCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientShowCmd)
	clientCmd.AddCommand(clientUpdateCmd)
	clientCmd.AddCommand(clientDeleteCmd)

	return clientCmd
}
