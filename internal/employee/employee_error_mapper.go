package employee

import (
	"errors"

	employeeerrors "go-hrpms/internal/employee/errors"
	"go-hrpms/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_employee_email":
			return employeeerrors.ErrEmployeeAlreadyExists
		case "deleted_employees_pkey":
			return employeeerrors.ErrEmployeeAlreadyArchived
		}
	}

	// Drivers that only report a generic duplicate: email is the one unique
	// column written by create and update.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return apperror.FromDB(err)
}

// mapArchiveError treats any duplicate on the archival insert as a second
// soft delete of the same employee.
func mapArchiveError(err error) error {
	if apperror.IsUniqueViolation(err, "") {
		return employeeerrors.ErrEmployeeAlreadyArchived
	}
	return mapRepositoryError(err)
}
