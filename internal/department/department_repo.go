package department

import (
	"context"

	"go-hrpms/internal/shared/scope"

	"gorm.io/gorm"
)

// hrNameKey is the normalized name of the department whose members act as
// reporting managers.
const hrNameKey = "hr"

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindHREmployees(ctx context.Context) ([]HREmployee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Order("department_id ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindHREmployees(ctx context.Context) ([]HREmployee, error) {
	var rows []HREmployee
	err := r.db.WithContext(ctx).
		Table("employees e").
		Select("e.employee_id, e.name").
		Joins("JOIN departments d ON d.department_id = e.department_id").
		Where("d.name_key = ?", hrNameKey).
		Scopes(scope.Active("e")).
		Order("e.employee_id ASC").
		Scan(&rows).Error
	return rows, err
}
