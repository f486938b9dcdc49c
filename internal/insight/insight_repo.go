package insight

import (
	"context"

	"go-hrpms/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=insight_repo.go -destination=mock/insight_repo_mock.go -package=mock
type Repository interface {
	SalaryStats(ctx context.Context) (SalaryStats, error)
	GenderCounts(ctx context.Context) ([]GenderCount, error)
	DepartmentStats(ctx context.Context) ([]DepartmentStat, error)
	TaskStatusCounts(ctx context.Context) ([]StatusCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SalaryStats(ctx context.Context) (SalaryStats, error) {
	var stats SalaryStats
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("MAX(salary) AS max_salary, MIN(salary) AS min_salary, AVG(salary) AS avg_salary").
		Scopes(scope.Active("")).
		Scan(&stats).Error
	return stats, err
}

func (r *repository) GenderCounts(ctx context.Context) ([]GenderCount, error) {
	var rows []GenderCount
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("gender, COUNT(*) AS count").
		Scopes(scope.Active("")).
		Group("gender").
		Order("gender ASC").
		Scan(&rows).Error
	return rows, err
}

// DepartmentStats returns per-department headcount and salary total over
// active employees; callers derive the average.
func (r *repository) DepartmentStats(ctx context.Context) ([]DepartmentStat, error) {
	var rows []DepartmentStat
	err := r.db.WithContext(ctx).
		Table("employees e").
		Select("d.department_name, COUNT(e.employee_id) AS headcount, SUM(e.salary) AS total_salary").
		Joins("JOIN departments d ON d.department_id = e.department_id").
		Scopes(scope.Active("e")).
		Group("d.department_name").
		Order("d.department_name ASC").
		Scan(&rows).Error
	return rows, err
}

// TaskStatusCounts covers every task, whatever the owner's state.
func (r *repository) TaskStatusCounts(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	return rows, err
}
