package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/workdesk/internal/ports/primary"
	"github.com/example/workdesk/internal/wire"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Manage workers",
}

var workerCreateCmd = &cobra.Command{
	Use:   "create [full-name]",
	Short: "Hire a worker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sex, _ := cmd.Flags().GetString("sex")
		phone, _ := cmd.Flags().GetString("phone")
		passportNumber, _ := cmd.Flags().GetString("passport-number")
		passportSeries, _ := cmd.Flags().GetString("passport-series")
		postID, _ := cmd.Flags().GetInt64("post")

		return wire.WorkerAdapter().Create(context.Background(), primary.CreateWorkerRequest{
			FullName:       args[0],
			Sex:            sex,
			PhoneNumber:    phone,
			PassportNumber: passportNumber,
			PassportSeries: passportSeries,
			PostID:         postID,
		})
	},
}

var workerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workers with post and balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkerAdapter().List(context.Background())
	},
}

var workerShowCmd = &cobra.Command{
	Use:   "show [worker-id]",
	Short: "Show a worker with post duties",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "worker")
		if err != nil {
			return err
		}
		return wire.WorkerAdapter().Show(context.Background(), id)
	},
}

var workerUpdateCmd = &cobra.Command{
	Use:   "update [worker-id]",
	Short: "Update worker fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "worker")
		if err != nil {
			return err
		}
		return wire.WorkerAdapter().Update(context.Background(), id, primary.UpdateWorkerRequest{
			FullName:       changedString(cmd, "name"),
			Sex:            changedString(cmd, "sex"),
			PhoneNumber:    changedString(cmd, "phone"),
			PassportNumber: changedString(cmd, "passport-number"),
			PassportSeries: changedString(cmd, "passport-series"),
			PostID:         changedInt64(cmd, "post"),
		})
	},
}

var workerDeleteCmd = &cobra.Command{
	Use:   "delete [worker-id]",
	Short: "Delete a worker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntityID(args[0], "worker")
		if err != nil {
			return err
		}
		return wire.WorkerAdapter().Delete(context.Background(), id)
	},
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage posts and their duties",
}

var postCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		duties, _ := cmd.Flags().GetStringArray("duty")
		return wire.WorkerAdapter().CreatePost(context.Background(), args[0], duties)
	},
}

var postListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts with duties",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.WorkerAdapter().ListPosts(context.Background())
	},
}

// WorkerCmd returns the worker command
func WorkerCmd() *cobra.Command {
	workerCreateCmd.Flags().String("sex", "", "Sex")
	workerCreateCmd.Flags().String("phone", "", "Phone number")
	workerCreateCmd.Flags().String("passport-number", "", "Passport number")
	workerCreateCmd.Flags().String("passport-series", "", "Passport series")
	workerCreateCmd.Flags().Int64("post", 0, "Post ID")

	workerUpdateCmd.Flags().String("name", "", "New full name")
	workerUpdateCmd.Flags().String("sex", "", "New sex")
	workerUpdateCmd.Flags().String("phone", "", "New phone number")
	workerUpdateCmd.Flags().String("passport-number", "", "New passport number")
	workerUpdateCmd.Flags().String("passport-series", "", "New passport series")
	workerUpdateCmd.Flags().Int64("post", 0, "New post ID (0 clears it)")

	workerCmd.AddCommand(workerCreateCmd)
	workerCmd.AddCommand(workerListCmd)
	workerCmd.AddCommand(workerShowCmd)
	workerCmd.AddCommand(workerUpdateCmd)
	workerCmd.AddCommand(workerDeleteCmd)

	return workerCmd
}

// PostCmd returns the post command
func PostCmd() *cobra.Command {
	postCreateCmd.Flags().StringArray("duty", nil, "Duty description (repeatable, kept in order)")

	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postListCmd)

	return postCmd
}
