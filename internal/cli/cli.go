// Package cli holds the hrctl admin commands.
package cli

import (
	"context"
	"fmt"

	"go-hrpms/internal/config"
	"go-hrpms/internal/shared/connection"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Opener returns a database handle and a func that releases it.
type Opener func(ctx context.Context) (*gorm.DB, func(), error)

// PostgresOpener connects with the same retry policy as the servers.
func PostgresOpener(cfg config.Config) Opener {
	return func(ctx context.Context) (*gorm.DB, func(), error) {
		db, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), 3)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return db.WithContext(ctx), func() { sqlDB.Close() }, nil
	}
}

var (
	green = color.New(color.FgGreen).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// RootCmd assembles hrctl. cfg supplies the JWT settings the auth service
// is built with.
func RootCmd(open Opener, cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "hrctl",
		Short:         "Administer the HR records database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(migrateCmd(open))
	root.AddCommand(userCmd(open, cfg))
	root.AddCommand(departmentCmd(open))
	root.AddCommand(insightsCmd(open))

	return root
}

func withDB(cmd *cobra.Command, open Opener, fn func(db *gorm.DB) error) error {
	db, closeFn, err := open(cmd.Context())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer closeFn()
	return fn(db)
}
