package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/workdesk/internal/cli"
	"github.com/example/workdesk/internal/version"
	"github.com/example/workdesk/internal/wire"
)

func main() {
	var (
		store   string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:     "workdesk",
		Short:   "workdesk - request, assign, complete and pay work orders",
		Version: version.String(),
		Long: `workdesk tracks work orders for a small services business.
Customers request work from a catalog, managers assign it to workers,
workers mark it done, and managers pay the fee into the worker's balance.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			wire.Configure(wire.Options{Store: store, Verbose: verbose})
			return wire.Init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return wire.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&store, "store", "", "Store name (e.g. prod, test) or :memory: (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mirror log lines to stderr")

	// Setup
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	// Catalog and staff
	rootCmd.AddCommand(cli.ClientCmd())
	rootCmd.AddCommand(cli.WorkTypeCmd())
	rootCmd.AddCommand(cli.PostCmd())
	rootCmd.AddCommand(cli.WorkerCmd())

	// Work orders
	rootCmd.AddCommand(cli.WorkOrderCmd())
	rootCmd.AddCommand(cli.BoardCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = wire.Close()
		os.Exit(1)
	}
}
