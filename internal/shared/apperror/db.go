package apperror

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE values the data layer distinguishes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// FromDB classifies a persistence error into not-found, conflict, invalid
// input or unavailable. Errors that are already an AppError pass through.
func FromDB(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return WithCause(ErrNotFound, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return WithCause(ErrConflict, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return WithCause(ErrInvalidInput, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return WithCause(ErrConflict, err)
		case pgForeignKeyViolation, pgCheckViolation:
			return WithCause(ErrInvalidInput, err)
		}
	}

	if IsConnectionError(err) {
		return WithCause(ErrUnavailable, err)
	}

	return WithCause(ErrInternal, err)
}

// IsConnectionError reports failures of the store itself rather than of the
// statement: refused connections, broken pooled connections, timeouts.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// IsUniqueViolation reports a duplicate key on the named constraint. The
// constraint name is only checked when the driver exposes it.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
