package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/workdesk/internal/db"
	"github.com/example/workdesk/internal/wire"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference fixtures",
		Long: `Load the work-type catalog, posts with duties, and a few workers.
Fixtures already present are left alone. --reset removes the work types
no order refers to, so the catalog is reloaded from the fixtures.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if reset {
				if err := wire.WorkTypeService().ClearWorkTypes(ctx); err != nil {
					return fmt.Errorf("failed to reset work types: %w", err)
				}
				fmt.Println("✓ Work-type catalog cleared")
			}

			if err := db.SeedFixtures(wire.Store()); err != nil {
				return err
			}

			fmt.Println("✓ Fixtures loaded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Remove unreferenced work types before seeding")
	return cmd
}
