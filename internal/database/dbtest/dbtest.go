// Package dbtest opens throwaway databases for tests: an in-memory sqlite
// schema for repository and end-to-end tests, and a sqlmock-backed postgres
// handle for transaction expectations.
package dbtest

import (
	"testing"

	"go-hrpms/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated in-memory sqlite database. A single connection
// keeps every statement on the same in-memory schema.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// NewSeeded is New plus the default departments, roles and funnels.
func NewSeeded(t *testing.T) *gorm.DB {
	t.Helper()
	db := New(t)
	require.NoError(t, database.Seed(t.Context(), db))
	return db
}

// NewMock wraps sqlmock in a postgres gorm handle. Only transaction
// boundaries are expected by callers; repositories are mocked separately.
func NewMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}
