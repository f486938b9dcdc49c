package department

import (
	departmenterrors "go-hrpms/internal/department/errors"
	"go-hrpms/internal/shared/apperror"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsUniqueViolation(err, "uq_department_name_key") {
		return departmenterrors.ErrDepartmentExists
	}
	return apperror.FromDB(err)
}
