package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/workdesk/internal/config"
	"github.com/example/workdesk/internal/db"
	"github.com/example/workdesk/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the workdesk store",
		Long: `Write .workdesk/config.yaml in the current directory (unless one exists)
and create the store schema, including the walk-in client.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			cfg := wire.Config()
			storePath, err := cfg.StorePath()
			if err != nil {
				return err
			}
			fmt.Printf("Initializing workdesk store at %s\n", storePath)

			version, err := db.CurrentVersion(wire.Store())
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			fmt.Printf("✓ Schema ready (version %d)\n", version)

			configPath := filepath.Join(cwd, config.Dir, "config.yaml")
			switch _, err := os.Stat(configPath); {
			case err == nil:
				fmt.Printf("✓ Using existing %s\n", configPath)
			case errors.Is(err, fs.ErrNotExist):
				if err := config.Save(cwd, cfg); err != nil {
					return err
				}
				fmt.Printf("✓ Config written to %s\n", configPath)
			default:
				return fmt.Errorf("failed to check config: %w", err)
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  workdesk seed")
			fmt.Println("  workdesk order request --type Plumbing")
			fmt.Println("  workdesk board manager")

			return nil
		},
	}
}
