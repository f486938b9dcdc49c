package cli

import (
	"fmt"

	"go-hrpms/internal/auth"
	"go-hrpms/internal/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func userCmd(open Opener, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage HR staff accounts",
	}

	var username, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an HR staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, open, func(db *gorm.DB) error {
				svc := auth.NewService(auth.NewRepository(db), cfg.JWTSecret, cfg.TokenTTL)
				user, err := svc.CreateUser(cmd.Context(), auth.CreateUserRequest{
					Username: username,
					Password: password,
				})
				if err != nil {
					return fmt.Errorf("create user: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s created user %s (id %d)\n", green("✓"), bold(user.Username), user.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&username, "username", "", "login name")
	create.Flags().StringVar(&password, "password", "", "password, 8 to 72 characters")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}
