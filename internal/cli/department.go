package cli

import (
	"fmt"
	"strings"

	"go-hrpms/internal/department"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func departmentCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "department",
		Short: "Manage departments",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create [name]",
		Short: "Create a department",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, open, func(db *gorm.DB) error {
				svc := department.NewService(department.NewRepository(db), nil)
				dept, err := svc.Create(cmd.Context(), department.CreateDepartmentRequest{
					Name: strings.Join(args, " "),
				})
				if err != nil {
					return fmt.Errorf("create department: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s created department %s (id %d)\n", green("✓"), bold(dept.Name), dept.ID)
				return nil
			})
		},
	})

	return cmd
}
