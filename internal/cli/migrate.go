package cli

import (
	"fmt"

	"go-hrpms/internal/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func migrateCmd(open Opener) *cobra.Command {
	var skipSeed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and load the default departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, open, func(db *gorm.DB) error {
				if err := database.Migrate(db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s schema up to date\n", green("✓"))

				if skipSeed {
					return nil
				}
				if err := database.Seed(cmd.Context(), db); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s default departments, roles and funnels loaded\n", green("✓"))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&skipSeed, "no-seed", false, "skip loading default departments")
	return cmd
}
