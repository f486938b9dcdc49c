package rating

import (
	"context"

	"go-hrpms/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rating_repo.go -destination=mock/rating_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, r *PerformanceRating) error
	ListAll(ctx context.Context) ([]RatingRow, error)
	ListForEmployee(ctx context.Context, employeeID uint) ([]PerformanceRating, error)
	EmployeeIsActive(ctx context.Context, employeeID uint) (bool, error)
	// EmployeeName finds the employee whether active or archived.
	EmployeeName(ctx context.Context, employeeID uint) (string, error)
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

func (r *repository) Create(ctx context.Context, pr *PerformanceRating) error {
	return r.db.WithContext(ctx).Create(pr).Error
}

func (r *repository) ListAll(ctx context.Context) ([]RatingRow, error) {
	var rows []RatingRow
	err := r.db.WithContext(ctx).
		Table("performance_ratings pr").
		Select(`pr.rating_id, pr.employee_id, e.name AS employee_name,
			pr.reporting_manager_id, m.name AS reporting_manager_name,
			pr.rating, pr.feedback, pr.rating_date`).
		Joins("JOIN employees e ON e.employee_id = pr.employee_id").
		Joins("JOIN employees m ON m.employee_id = pr.reporting_manager_id").
		Order("pr.rating_date DESC").
		Order("pr.rating_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListForEmployee(ctx context.Context, employeeID uint) ([]PerformanceRating, error) {
	var ratings []PerformanceRating
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("rating_date ASC").
		Order("rating_id ASC").
		Find(&ratings).Error
	return ratings, err
}

func (r *repository) EmployeeIsActive(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(scope.Active("")).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeName(ctx context.Context, employeeID uint) (string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("employee_id = ?", employeeID).
		Limit(1).
		Pluck("name", &names).Error
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return names[0], nil
}
